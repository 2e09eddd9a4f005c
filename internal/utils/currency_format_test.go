package utils_test

import (
	"testing"

	"github.com/SscSPs/club_manager_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "0"},
		{in: "500", want: "500"},
		{in: "50000", want: "50.000"},
		{in: "1234567", want: "1.234.567"},
		{in: "-30000", want: "-30.000"},
		{in: "1500.5", want: "1.500,5"},
		{in: "12.34567", want: "12,346"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatVND(decimal.RequireFromString(tt.in)))
		})
	}

	assert.Equal(t, "100.000 đ", utils.FormatVNDWithSymbol(decimal.NewFromInt(100000)))
}
