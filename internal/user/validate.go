package user

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fieldErrors converts validator output to the field-keyed map used by
// the register/update response envelope.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = "invalid request"
		return out
	}

	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "must not be blank"
		case "email":
			msg = "must be a valid email"
		case "min":
			msg = "must be at least " + fe.Param() + " characters"
		case "oneof":
			msg = "must be one of: " + fe.Param()
		default:
			msg = "is invalid"
		}
		out[jsonField(fe.Field())] = msg
	}

	return out
}

// jsonField lowercases the struct field name to match the wire name.
func jsonField(name string) string {
	if name == "" {
		return name
	}
	return string(name[0]|0x20) + name[1:]
}
