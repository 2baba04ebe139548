package models

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// phoneRe accepts international numbers with common separators, e.g. "+45 12 34 56 78".
var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{3,}$`)

func init() {
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
}
