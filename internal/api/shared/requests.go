package shared

import (
	"github.com/go-playground/validator/v10"
)

// validate is shared; validator caches struct metadata per type.
var validate = validator.New()

// ValidateRequest checks the validate tags on a request parameter struct.
func ValidateRequest(v any) error {
	return validate.Struct(v)
}
