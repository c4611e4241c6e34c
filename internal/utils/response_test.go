package utils

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"general-ledger/internal/apperrors"
)

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, StatusFromError(apperrors.Validationf("bad input")))
	assert.Equal(t, fiber.StatusNotFound, StatusFromError(apperrors.NotFoundf("account 7")))
	assert.Equal(t, fiber.StatusConflict, StatusFromError(apperrors.Cyclef("loop")))
	assert.Equal(t, fiber.StatusConflict, StatusFromError(apperrors.Constraintf("has children")))
	assert.Equal(t, fiber.StatusInternalServerError, StatusFromError(apperrors.Storef(errors.New("boom"), "insert")))
	assert.Equal(t, fiber.StatusInternalServerError, StatusFromError(errors.New("unclassified")))
}

func TestCalculatePagination(t *testing.T) {
	meta := CalculatePagination(2, 25, 60)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.LastPage)
	assert.Equal(t, 26, meta.From)
	assert.Equal(t, 50, meta.To)
	assert.True(t, meta.HasMore)

	empty := CalculatePagination(1, 25, 0)
	assert.Equal(t, 0, empty.From)
	assert.Equal(t, 0, empty.To)
	assert.False(t, empty.HasMore)
}
