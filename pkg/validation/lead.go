package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Optional leading +, then digits/spaces/parentheses/hyphens, at least 6
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s()-]{6,}$`)

	// Optional leading @, then letters/digits/underscore, at least 5
	handleRegex = regexp.MustCompile(`^@?[A-Za-z0-9_]{5,}$`)
)

// Field evaluation order is fixed: the landing form shows the first
// message as a toast and the full list in the status region.
var fieldOrder = []string{"Name", "Phone", "Username", "Company", "Message"}

var fieldMessages = map[string]string{
	"Name":     "Ism kamida 2 belgi bo‘lishi kerak.",
	"Phone":    "Telefon raqamini to‘g‘ri kiriting.",
	"Username": "@username to‘g‘ri kiriting.",
	"Company":  "Kompaniya nomi kamida 2 belgi.",
	"Message":  "Xabar kamida 5 belgi bo‘lishi kerak.",
}

// LeadInput is one candidate submission, fields already coerced to text.
type LeadInput struct {
	Name     string
	Phone    string
	Username string
	Company  string
	Message  string
}

// leadRules carries the values actually tested: length rules run on
// trimmed values, the phone and username patterns on the raw input.
type leadRules struct {
	Name     string `validate:"min=2"`
	Phone    string `validate:"lead_phone"`
	Username string `validate:"lead_handle"`
	Company  string `validate:"omitempty,min=2"`
	Message  string `validate:"min=5"`
}

// LeadValidator checks lead submissions against the form rules.
type LeadValidator struct {
	validate *validator.Validate
}

func NewLeadValidator() *LeadValidator {
	v := validator.New()
	_ = v.RegisterValidation("lead_phone", leadPhone)
	_ = v.RegisterValidation("lead_handle", leadHandle)
	return &LeadValidator{validate: v}
}

// Validate evaluates every rule, never short-circuiting, and returns the
// failure messages in fixed field order. Empty result means valid.
func (lv *LeadValidator) Validate(in LeadInput) []string {
	rules := leadRules{
		Name:     strings.TrimSpace(in.Name),
		Phone:    in.Phone,
		Username: in.Username,
		Company:  strings.TrimSpace(in.Company),
		Message:  strings.TrimSpace(in.Message),
	}

	err := lv.validate.Struct(rules)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct() on a value type only ever returns ValidationErrors
		return []string{err.Error()}
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.StructField()] = true
	}

	var msgs []string
	for _, field := range fieldOrder {
		if failed[field] {
			msgs = append(msgs, fieldMessages[field])
		}
	}
	return msgs
}

// leadPhone validates a phone number against the form pattern
func leadPhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// leadHandle validates a Telegram username, with or without the leading @
func leadHandle(fl validator.FieldLevel) bool {
	return handleRegex.MatchString(fl.Field().String())
}
