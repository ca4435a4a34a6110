package utils

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"forbidden", ErrForbidden("no"), KindForbidden},
		{"record not found", gorm.ErrRecordNotFound, KindNotFound},
		{"duplicate earring", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, KindInvalidInput},
		{"wrapped forbidden", errors.Wrap(ErrForbidden("no"), "AddCuy"), KindForbidden},
		{"plain", errors.New("connection reset"), KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, KindOf(tc.err))
		})
	}
}

func TestWrapInternal(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapInternal(cause, "%s transaction", "AddCuy")
	assert.EqualError(t, err, "AddCuy transaction: connection reset")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, KindInternal, KindOf(err))

	forbidden := ErrForbidden("Pool of cuy is inactive")
	assert.Same(t, forbidden, WrapInternal(forbidden, "AddCuy transaction"))

	duplicate := &mysql.MySQLError{Number: 1062}
	assert.Same(t, duplicate, WrapInternal(duplicate, "AddCuy transaction"))

	assert.NoError(t, WrapInternal(nil, "AddCuy transaction"))
}

func TestErrInternalKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := ErrInternal(cause)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "boom", err.Error())
	assert.Nil(t, ErrInternal(nil))
}
