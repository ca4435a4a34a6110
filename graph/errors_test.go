package graph

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"gorm.io/gorm"
)

func TestErrorPresenterCodes(t *testing.T) {
	present := NewErrorPresenter(nil)
	cases := []struct {
		err     error
		code    string
		message string
	}{
		{utils.ErrUnauthenticated("You are not authenticated"), "UNAUTHENTICATED", "You are not authenticated"},
		{utils.ErrForbidden("Forbidden. You are not allowed to execute addShed"), "FORBIDDEN", "Forbidden. You are not allowed to execute addShed"},
		{utils.ErrInvalidInput("Invalid email"), "BAD_USER_INPUT", "Invalid email"},
		{fmt.Errorf("load shed: %w", utils.ErrNotFound("Invalid idShed")), "NOT_FOUND", "load shed: Invalid idShed"},
		{gorm.ErrRecordNotFound, "NOT_FOUND", "record not found"},
		{errors.New("connection refused"), "INTERNAL_SERVER_ERROR", "connection refused"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			got := present(context.Background(), tc.err)
			assert.Equal(t, tc.message, got.Message)
			assert.Equal(t, tc.code, got.Extensions["code"])
		})
	}
}

func TestErrorPresenterKeepsExistingCode(t *testing.T) {
	validation := &gqlerror.Error{
		Message:    "Cannot query field \"nope\" on type \"Query\".",
		Extensions: map[string]interface{}{"code": "GRAPHQL_VALIDATION_FAILED"},
	}
	got := NewErrorPresenter(nil)(context.Background(), validation)
	assert.Equal(t, "GRAPHQL_VALIDATION_FAILED", got.Extensions["code"])
}

func TestRecoverFuncReturnsInternal(t *testing.T) {
	err := NewRecoverFunc(nil)(context.Background(), "boom")
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindInternal))
	assert.Equal(t, "internal server error", err.Error())
}
