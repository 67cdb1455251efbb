package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMatching(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", InvalidStateErr("must participate first"))

	assert.ErrorIs(t, err, ErrInvalidState)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, KindInvalidState, KindOf(err))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{NotFoundErr("missing"), fiber.StatusNotFound},
		{ValidationErr("bad page"), fiber.StatusBadRequest},
		{InvalidStateErr("not yet"), fiber.StatusConflict},
		{ConflictErr("taken"), fiber.StatusConflict},
		{&AppError{Kind: KindValidation, Message: "invalid", Err: FieldErrors{"score": "too high"}}, fiber.StatusUnprocessableEntity},
		{errors.New("db down"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error { return HandleError(c, tt.err) })

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, tt.status, resp.StatusCode, tt.err.Error())

		var body ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		if tt.status == fiber.StatusInternalServerError {
			assert.NotContains(t, body.Message, "db down")
		}
	}
}
