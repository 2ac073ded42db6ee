package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator configura el validador de esquemas de entrada. Los nombres de
// campo en los mensajes usan la clave JSON, no el nombre Go del campo.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// validationMessage traduce la primera violación a un mensaje legible.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "entrada inválida"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " es requerido"
	case "min":
		return fe.Field() + " debe ser mayor o igual a " + fe.Param()
	case "max":
		return fe.Field() + " debe ser menor o igual a " + fe.Param()
	case "oneof":
		return fe.Field() + " debe ser uno de: " + fe.Param()
	}
	return fe.Field() + " es inválido"
}
