package graph

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/99designs/gqlgen/graphql"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

var errorCodes = map[utils.ErrorKind]string{
	utils.KindUnauthenticated: "UNAUTHENTICATED",
	utils.KindForbidden:       "FORBIDDEN",
	utils.KindInvalidInput:    "BAD_USER_INPUT",
	utils.KindNotFound:        "NOT_FOUND",
	utils.KindInternal:        "INTERNAL_SERVER_ERROR",
}

// ErrorCode is the extensions.code reported for err.
func ErrorCode(err error) string {
	return errorCodes[utils.KindOf(err)]
}

// NewErrorPresenter keeps the message of err and adds extensions.code.
// Errors that already carry a code (parse and validation failures) pass unchanged.
func NewErrorPresenter(logger *logrus.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)
		if _, ok := gqlErr.Extensions["code"]; ok {
			return gqlErr
		}
		code := ErrorCode(err)
		if code == errorCodes[utils.KindInternal] {
			config.LogError(logger, "graph", "ErrorPresenter", gqlErr.Path.String(), nil, err)
		}
		if gqlErr.Extensions == nil {
			gqlErr.Extensions = map[string]interface{}{}
		}
		gqlErr.Extensions["code"] = code
		return gqlErr
	}
}

func NewRecoverFunc(logger *logrus.Logger) graphql.RecoverFunc {
	return func(ctx context.Context, p interface{}) error {
		config.LogError(logger, "graph", "Recover", graphql.GetPath(ctx).String(), string(debug.Stack()), fmt.Errorf("panic: %v", p))
		return utils.ErrInternal(errors.New("internal server error"))
	}
}
