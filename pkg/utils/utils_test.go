package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Title string `json:"title" validate:"required,max=5"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(&sampleRequest{Email: "a@b.co", Title: "ok"}))

	err := ValidateStruct(&sampleRequest{Email: "nope", Title: "too long"})
	assert.Error(t, err)

	details := GetValidationErrors(err)
	assert.Equal(t, "email", details["email"])
	assert.Equal(t, "max=5", details["title"])
}

func TestGetValidationErrorsPlainError(t *testing.T) {
	details := GetValidationErrors(errors.New("boom"))
	assert.Equal(t, "boom", details["_"])
}

func TestNewMeta(t *testing.T) {
	m := NewMeta(25, 2, 10)
	assert.Equal(t, 3, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	m = NewMeta(0, 1, 10)
	assert.Equal(t, 1, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrev)
}
