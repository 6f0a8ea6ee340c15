package validation_test

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/DrekStyler/handypro-api/pkg/validation"
)

type phoneFixture struct {
	Phone string `validate:"omitempty,valid_phone"`
}

type yearFixture struct {
	Year int `validate:"omitempty,max_current_year"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestValidPhone(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(phoneFixture{Phone: "+14155551234"}))
	assert.NoError(t, v.Struct(phoneFixture{Phone: "5551234"}))
	assert.NoError(t, v.Struct(phoneFixture{Phone: ""}))

	assert.Error(t, v.Struct(phoneFixture{Phone: "555-1234"}))
	assert.Error(t, v.Struct(phoneFixture{Phone: "call me"}))
	assert.Error(t, v.Struct(phoneFixture{Phone: "123"}))
}

func TestMaxCurrentYear(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(yearFixture{Year: 1995}))
	assert.NoError(t, v.Struct(yearFixture{Year: time.Now().Year()}))
	assert.NoError(t, v.Struct(yearFixture{Year: 0}))

	assert.Error(t, v.Struct(yearFixture{Year: time.Now().Year() + 1}))
	assert.Error(t, v.Struct(yearFixture{Year: 1492}))
}
