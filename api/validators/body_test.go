package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
)

type signupBody struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=7"`
	Name        string `json:"name" validate:"required"`
	Gender      string `json:"gender" validate:"omitempty,oneof=MALE FEMALE UNISEX"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"phone_number":"0712345678","name":"Amina","gender":"FEMALE"}`))

	var body signupBody
	require.NoError(t, DecodeJSONBody(req, &body))
	assert.Equal(t, "Amina", body.Name)
	assert.Equal(t, "FEMALE", body.Gender)
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"phone_number":"0712345678","name":"Amina","role":"admin"}`))

	var body signupBody
	err := DecodeJSONBody(req, &body)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

	var body signupBody
	err := DecodeJSONBody(req, &body)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestValidateStructFieldMessages(t *testing.T) {
	err := ValidateStruct(signupBody{PhoneNumber: "07", Gender: "OTHER"})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must have at least 7 items", details["phone_number"])
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "must be one of MALE FEMALE UNISEX", details["gender"])
}
