package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+584141234567", NormalizePhone("0414-123.45.67", "VE"))
	assert.Equal(t, "+584141234567", NormalizePhone(" +58 414 1234567 ", "VE"))
	assert.Equal(t, "", NormalizePhone("   ", "VE"))
	assert.Equal(t, "ext 12", NormalizePhone(" ext 12 ", "VE"))
}

func TestPhoneSearchDigits(t *testing.T) {
	assert.Equal(t, "584141234567", PhoneSearchDigits("0414-1234567", "VE"))
	assert.Equal(t, "584141234567", PhoneSearchDigits("04141234567", "VE"))
	assert.Equal(t, "414", PhoneSearchDigits("0414", "VE"))
	assert.Equal(t, "999", PhoneSearchDigits(" 999 ", "VE"))
	assert.Equal(t, "", PhoneSearchDigits("Ana", "VE"))
	assert.Equal(t, "", PhoneSearchDigits("  ", "VE"))
}

type slotRequest struct {
	Date  string `validate:"required,isodate"`
	Start string `validate:"required,clock"`
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	assert.NoError(t, v.Struct(slotRequest{Date: "2026-10-15", Start: "09:30"}))
	assert.Error(t, v.Struct(slotRequest{Date: "15/10/2026", Start: "09:30"}))
	assert.Error(t, v.Struct(slotRequest{Date: "2026-10-15", Start: "25:00"}))
	assert.Error(t, v.Struct(slotRequest{Date: "2026-10-15", Start: "9h"}))
}
