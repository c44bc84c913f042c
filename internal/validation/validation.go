package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/primeacres/realty/internal/httperr"
	"github.com/primeacres/realty/internal/models"
)

// Validator plugs go-playground/validator into echo. The custom rules cover
// the closed property vocabularies.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.ValidCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("property_status", func(fl validator.FieldLevel) bool {
		return models.ValidStatus(fl.Field().String())
	})
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return httperr.Validation(err.Error())
	}
	return nil
}
