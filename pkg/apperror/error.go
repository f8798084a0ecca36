package apperror

import "net/http"

// Fixed client-facing messages. The set is intentionally Uzbek-only and
// must match what the landing form expects verbatim.
const (
	MsgMethodNotAllowed = "Method yo‘q"
	MsgNotConfigured    = "Server sozlanmagan: BOT_TOKEN/CHAT_ID yo‘q"
	MsgDeliveryFailed   = "Telegram’ga yuborishda xatolik."
	MsgUnexpected       = "Kutilmagan server xatosi"
)

// AppError carries an HTTP status code and the exact error strings shown
// to the client. Err is the internal cause, never serialized.
type AppError struct {
	Code   int      `json:"code"`
	Errors []string `json:"errors"`
	Err    error    `json:"-"`
}

func (e *AppError) Error() string {
	if len(e.Errors) > 0 {
		return e.Errors[0]
	}
	return http.StatusText(e.Code)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, err error, messages ...string) *AppError {
	return &AppError{
		Code:   code,
		Errors: messages,
		Err:    err,
	}
}

// Validation wraps field rule failures. Reported verbatim, never logged
// as an incident.
func Validation(errs []string) *AppError {
	return &AppError{
		Code:   http.StatusBadRequest,
		Errors: errs,
	}
}

// NotConfigured signals missing bot credentials. Raised before any
// external call is attempted.
func NotConfigured() *AppError {
	return New(http.StatusInternalServerError, nil, MsgNotConfigured)
}

// Delivery signals that the Telegram API call failed or reported not-ok.
func Delivery(err error) *AppError {
	return New(http.StatusBadGateway, err, MsgDeliveryFailed)
}

func MethodNotAllowed() *AppError {
	return New(http.StatusMethodNotAllowed, nil, MsgMethodNotAllowed)
}
