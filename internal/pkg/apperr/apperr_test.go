package apperr

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation is 400", Validation("missing fields"), fiber.StatusBadRequest},
		{"invalid state is 400", InvalidState("wrong report type"), fiber.StatusBadRequest},
		{"not found is 404", NotFound("no such post"), fiber.StatusNotFound},
		{"authorization is 403", Authorization("not the owner"), fiber.StatusForbidden},
		{"authentication is 401", Authentication("invalid token"), fiber.StatusUnauthorized},
		{"unexpected is 500", Unexpected("db down", errors.New("dial tcp")), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := Unexpected("failed to create claim", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to create claim: connection refused", err.Error())

	plain := Validation("missing required fields")
	assert.Equal(t, "missing required fields", plain.Error())
}
