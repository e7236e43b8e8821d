package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertContactValidate(t *testing.T) {
	valid := InsertContact{Name: "Marie", Email: "marie@example.com", Message: "Bonjour, je souhaite un rendez-vous."}
	assert.Empty(t, valid.Validate())

	empty := InsertContact{}
	details := empty.Validate()
	require.Len(t, details, 3)
	assert.Equal(t, "Le nom doit contenir au moins 2 caractères", details[0].Message)
	assert.Equal(t, "Email invalide", details[1].Message)
	assert.Equal(t, "Le message doit contenir au moins 10 caractères", details[2].Message)
}

func TestInsertContactMessageBoundary(t *testing.T) {
	in := InsertContact{Name: "Marie", Email: "marie@example.com", Message: "123456789"}
	details := in.Validate()
	require.Len(t, details, 1)
	assert.Equal(t, "message", details[0].Field)

	in.Message = "1234567890"
	assert.Empty(t, in.Validate())
}

func TestInsertContactEmailFormat(t *testing.T) {
	in := InsertContact{Name: "Marie", Email: "not-an-email", Message: "Bonjour, je souhaite un rendez-vous."}
	details := in.Validate()
	require.Len(t, details, 1)
	assert.Equal(t, "email", details[0].Field)
	assert.Equal(t, "invalid", details[0].Code)
}

func TestNewValidationErrorJoinsMessages(t *testing.T) {
	body := NewValidationError([]ErrorDetail{
		tooSmall("name", "Le nom doit contenir au moins 2 caractères"),
		invalid("email", "Email invalide"),
	})
	assert.Equal(t, "Validation error: Le nom doit contenir au moins 2 caractères; Email invalide", body.Error)
	assert.Len(t, body.Details, 2)
}
