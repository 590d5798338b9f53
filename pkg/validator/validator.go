// Package validator envuelve go-playground/validator para validar structs de
// request con una instancia única compartida.
package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError una regla de validación incumplida.
type FieldError struct {
	FailedField string
	Tag         string
	Param       string
}

var validate = validator.New()

// ValidateStruct valida las etiquetas `validate` del struct y devuelve las
// reglas incumplidas (vacío si todo pasa).
func ValidateStruct(data interface{}) []FieldError {
	var errs []FieldError
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, FieldError{
				FailedField: fe.StructNamespace(),
				Tag:         fe.Tag(),
				Param:       fe.Param(),
			})
		}
	}
	return errs
}

// Message arma un mensaje legible a partir del primer error.
func Message(errs []FieldError) string {
	if len(errs) == 0 {
		return ""
	}
	return fmt.Sprintf("el campo '%s' incumple la regla '%s'", errs[0].FailedField, errs[0].Tag)
}
