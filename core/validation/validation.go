package validation

import (
	"errors"
	"fmt"
	"strings"

	"count-diff/core/server"
	"count-diff/core/upstream"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the project's custom rules registered:
//
//	allowed_domain  host is in the server allow-list
//	service         value is a known upstream kind
func New(srv server.Config) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("allowed_domain", func(fl validator.FieldLevel) bool {
		return srv.IsAllowedDomain(fl.Field().String())
	})
	_ = v.RegisterValidation("service", func(fl validator.FieldLevel) bool {
		return upstream.Kind(fl.Field().String()).Valid()
	})

	return v
}

// Message flattens validation errors into one readable line.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return strings.Join(msgs, "; ")
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "allowed_domain":
		return fmt.Sprintf("%s: domain not allowed: %v", field, fe.Value())
	case "service":
		return fmt.Sprintf("%s: unknown service: %v", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
