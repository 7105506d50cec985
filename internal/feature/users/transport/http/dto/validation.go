package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps a failed field and tag to the fixed message returned in
// the 400 body. The exact wording, punctuation included, is observable API
// behavior.
var fieldMessages = map[string]string{
	"Username.min": "username must be at least 3 characters.",
	"Email.email":  "Invalid email.",
	"Password.min": "password must be at least 8 character.",
}

// fallbackMessage is used for binding failures that are not declared field
// constraints, such as malformed JSON.
const fallbackMessage = "invalid request"

// ValidationMessage resolves a binding error to the message for its first
// failed field constraint.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			return msg
		}
	}
	return fallbackMessage
}
