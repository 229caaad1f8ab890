package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type priced struct {
	Name  string           `validate:"required,min=3"`
	Price *decimal.Decimal `validate:"required,gte=0"`
	Paid  *decimal.Decimal `validate:"required,gt=0"`
	Items []int            `validate:"required,min=1"`
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)

	return &d
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   priced
		wantErr bool
	}{
		{"valid", priced{Name: "abc", Price: dec("0"), Paid: dec("1.5"), Items: []int{1}}, false},
		{"missing price", priced{Name: "abc", Paid: dec("1.5"), Items: []int{1}}, true},
		{"negative price", priced{Name: "abc", Price: dec("-0.01"), Paid: dec("1.5"), Items: []int{1}}, true},
		{"zero payment", priced{Name: "abc", Price: dec("1"), Paid: dec("0"), Items: []int{1}}, true},
		{"empty items", priced{Name: "abc", Price: dec("1"), Paid: dec("1"), Items: []int{}}, true},
		{"tiny payment", priced{Name: "abc", Price: dec("0"), Paid: dec("1e-400"), Items: []int{1}}, false},
		{"tiny negative price", priced{Name: "abc", Price: dec("-1e-400"), Paid: dec("1"), Items: []int{1}}, true},
		{"huge payment", priced{Name: "abc", Price: dec("1"), Paid: dec("1e400"), Items: []int{1}}, false},
		{"short name", priced{Name: "ab", Price: dec("1"), Paid: dec("1"), Items: []int{1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
