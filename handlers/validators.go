package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Regional mobile format: 10 digits starting 6-9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// RegisterValidators installs the custom binding rules on gin's
// validator engine. Call once before serving.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
	}
}
