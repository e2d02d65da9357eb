package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"palmtec-registry/internal/core/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("serialnumber", validateSerialNumber); err != nil {
		panic(err)
	}
}

// ValidateStruct runs the struct's validate tags
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// FailedTag returns the tag of the first failing field
func FailedTag(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}

func validateSerialNumber(fl validator.FieldLevel) bool {
	return domain.IsValidSerialNumber(strings.TrimSpace(fl.Field().String()))
}
