package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"

	"github.com/go-playground/validator/v10"
)

// validateDecimalGTE0 тэг gte не умеет в decimal.Decimal, проверяем неотрицательность сами.
func validateDecimalGTE0(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !d.IsNegative()
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("decimal_gte0", validateDecimalGTE0); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
