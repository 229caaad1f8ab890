// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"math"
	"reflect"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a validator that also understands decimal amounts.
// A decimal.Decimal is validated through its float64 value, so numeric
// tags such as gte=0 and gt=0 apply to money fields. The sign always
// survives the conversion, which keeps comparisons against zero exact.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	return &CustomValidator{validate: v}
}

// Validate runs struct tag validation.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		// Amounts below float64 precision round to zero; keep their sign.
		if f == 0 && !d.IsZero() {
			f = math.Copysign(math.SmallestNonzeroFloat64, float64(d.Sign()))
		}

		return f
	}

	return nil
}
