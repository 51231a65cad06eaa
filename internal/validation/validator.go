package validation

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ProjectCategories is the fixed set a project may belong to. "All" is a
// filter sentinel only, never a stored value.
var ProjectCategories = []string{
	"3D Scene",
	"Character",
	"Motion",
	"Environment",
	"Product",
	"VFX",
	"Branding",
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// oneof cannot express values containing spaces, hence a custom rule.
	categories := make(map[string]bool, len(ProjectCategories))
	for _, c := range ProjectCategories {
		categories[c] = true
	}
	v.RegisterValidation("projectcategory", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return categories[value]
	})

	v.RegisterValidation("mediaurl", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		u, err := url.Parse(value)
		if err != nil {
			return false
		}
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})

	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return strings.TrimSpace(value) != ""
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		return ve
	}
	return nil
}
