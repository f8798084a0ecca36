package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() LeadInput {
	return LeadInput{
		Name:     "Ali Valiyev",
		Phone:    "+998901234567",
		Username: "ali_dev",
		Company:  "",
		Message:  "Salom, narxi qancha?",
	}
}

func TestValidateLead_Valid(t *testing.T) {
	lv := NewLeadValidator()

	t.Run("Company empty is allowed", func(t *testing.T) {
		assert.Empty(t, lv.Validate(validInput()))
	})

	t.Run("Company whitespace only is allowed", func(t *testing.T) {
		in := validInput()
		in.Company = "   "
		assert.Empty(t, lv.Validate(in))
	})

	t.Run("Username with leading @", func(t *testing.T) {
		in := validInput()
		in.Username = "@ali_dev"
		assert.Empty(t, lv.Validate(in))
	})

	t.Run("Phone with spaces, parentheses and hyphens", func(t *testing.T) {
		in := validInput()
		in.Phone = "+998 (90) 123-45-67"
		assert.Empty(t, lv.Validate(in))
	})

	t.Run("Name trimmed before length check", func(t *testing.T) {
		in := validInput()
		in.Name = "  Al  "
		assert.Empty(t, lv.Validate(in))
	})
}

func TestValidateLead_SingleViolations(t *testing.T) {
	lv := NewLeadValidator()

	cases := []struct {
		name   string
		mutate func(*LeadInput)
		want   string
	}{
		{"Name too short", func(in *LeadInput) { in.Name = "A" }, "Ism kamida 2 belgi bo‘lishi kerak."},
		{"Name whitespace only", func(in *LeadInput) { in.Name = "   " }, "Ism kamida 2 belgi bo‘lishi kerak."},
		{"Name missing", func(in *LeadInput) { in.Name = "" }, "Ism kamida 2 belgi bo‘lishi kerak."},
		{"Phone too short", func(in *LeadInput) { in.Phone = "12345" }, "Telefon raqamini to‘g‘ri kiriting."},
		{"Phone with letters", func(in *LeadInput) { in.Phone = "99890abc567" }, "Telefon raqamini to‘g‘ri kiriting."},
		{"Phone missing", func(in *LeadInput) { in.Phone = "" }, "Telefon raqamini to‘g‘ri kiriting."},
		{"Username too short", func(in *LeadInput) { in.Username = "abcd" }, "@username to‘g‘ri kiriting."},
		{"Username with hyphen", func(in *LeadInput) { in.Username = "ali-dev" }, "@username to‘g‘ri kiriting."},
		{"Username missing", func(in *LeadInput) { in.Username = "" }, "@username to‘g‘ri kiriting."},
		{"Company one char", func(in *LeadInput) { in.Company = "x" }, "Kompaniya nomi kamida 2 belgi."},
		{"Company one char padded", func(in *LeadInput) { in.Company = " x " }, "Kompaniya nomi kamida 2 belgi."},
		{"Message too short", func(in *LeadInput) { in.Message = "1234" }, "Xabar kamida 5 belgi bo‘lishi kerak."},
		{"Message missing", func(in *LeadInput) { in.Message = "" }, "Xabar kamida 5 belgi bo‘lishi kerak."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			assert.Equal(t, []string{tc.want}, lv.Validate(in))
		})
	}
}

func TestValidateLead_MultipleViolationsKeepFieldOrder(t *testing.T) {
	lv := NewLeadValidator()

	t.Run("All fields empty", func(t *testing.T) {
		// Empty company is valid, the other four fail in fixed order
		assert.Equal(t, []string{
			"Ism kamida 2 belgi bo‘lishi kerak.",
			"Telefon raqamini to‘g‘ri kiriting.",
			"@username to‘g‘ri kiriting.",
			"Xabar kamida 5 belgi bo‘lishi kerak.",
		}, lv.Validate(LeadInput{}))
	})

	t.Run("Message and name fail, message reported last", func(t *testing.T) {
		in := validInput()
		in.Name = "A"
		in.Message = "abc"
		assert.Equal(t, []string{
			"Ism kamida 2 belgi bo‘lishi kerak.",
			"Xabar kamida 5 belgi bo‘lishi kerak.",
		}, lv.Validate(in))
	})
}
