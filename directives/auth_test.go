package directives

import (
	"context"
	"errors"
	"testing"

	"github.com/99designs/gqlgen/graphql"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

type fakeSource struct {
	operations map[string]int
	roles      map[int]int
	grants     map[int][]int
	cache      map[int][]int
	computed   int
	version    map[int]int64
	cacheErr   error
	saveErr    error
	onCompute  func(userId int)
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		operations: map[string]int{"sheds": 1, "addShed": 2, "deleteShed": 3},
		roles:      map[int]int{},
		grants:     map[int][]int{},
		cache:      map[int][]int{},
		version:    map[int]int64{},
	}
}

func (f *fakeSource) OperationId(_ context.Context, name string) (int, error) {
	id, ok := f.operations[name]
	if !ok {
		return 0, utils.ErrNotFound("Operation " + name + " is not registered")
	}
	return id, nil
}

func (f *fakeSource) Cached(_ context.Context, userId int) ([]int, error) {
	if f.cacheErr != nil {
		return nil, f.cacheErr
	}
	return f.cache[userId], nil
}

func (f *fakeSource) Version(_ context.Context, userId int) (int64, error) {
	return f.version[userId], nil
}

// onCompute runs between reading the version and saving, like a role change
// committing concurrently.
func (f *fakeSource) Compute(_ context.Context, userId int) (int, []int, error) {
	f.computed++
	roles, ops := f.roles[userId], f.grants[userId]
	if f.onCompute != nil {
		f.onCompute(userId)
	}
	return roles, ops, nil
}

func (f *fakeSource) Save(_ context.Context, userId int, version int64, ops []int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if version != f.version[userId] {
		return nil
	}
	f.cache[userId] = ops
	return nil
}

func newTestAuthorizer(src PermissionSource) (*Authorizer, *config.Metrics) {
	m := config.NewMetrics(prometheus.NewRegistry())
	return NewAuthorizer(src, m, nil), m
}

func fieldCtx(userId int, field string) context.Context {
	ctx := context.Background()
	if userId > 0 {
		ctx = utils.SetUserIdInContext(ctx, userId)
	}
	return graphql.WithFieldContext(ctx, &graphql.FieldContext{
		Field: graphql.CollectedField{Field: &ast.Field{Name: field}},
	})
}

func okResolver(ctx context.Context) (interface{}, error) {
	name, _ := utils.GetOperationNameFromContext(ctx)
	return name, nil
}

func TestIsAuthenticatedWithoutPrincipal(t *testing.T) {
	a, m := newTestAuthorizer(newFakeSource())
	_, err := a.IsAuthenticated(fieldCtx(0, "sheds"), nil, okResolver)
	assert.True(t, utils.IsKind(err, utils.KindUnauthenticated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthorizationDecisions.WithLabelValues("deny")))
}

func TestAuthorizeZeroRoles(t *testing.T) {
	src := newFakeSource()
	a, _ := newTestAuthorizer(src)
	_, err := a.IsAuthenticated(fieldCtx(7, "sheds"), nil, okResolver)
	assert.True(t, utils.IsKind(err, utils.KindUnauthenticated))
	assert.Empty(t, src.cache[7])
}

func TestAuthorizeColdCacheComputesAndSaves(t *testing.T) {
	src := newFakeSource()
	src.roles[7] = 1
	src.grants[7] = []int{1}
	a, m := newTestAuthorizer(src)

	res, err := a.IsAuthenticated(fieldCtx(7, "sheds"), nil, okResolver)
	require.NoError(t, err)
	assert.Equal(t, "sheds", res)
	assert.Equal(t, []int{1}, src.cache[7])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PermissionCache.WithLabelValues("miss")))

	_, err = a.IsAuthenticated(fieldCtx(7, "addShed"), nil, okResolver)
	assert.True(t, utils.IsKind(err, utils.KindForbidden))
	assert.Equal(t, 1, src.computed, "warm set must not be recomputed")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PermissionCache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthorizationDecisions.WithLabelValues("allow")))
}

func TestAuthorizeUsesPatchedCache(t *testing.T) {
	src := newFakeSource()
	src.roles[7] = 1
	src.cache[7] = []int{1, 2}
	a, _ := newTestAuthorizer(src)

	require.NoError(t, a.Authorize(context.Background(), 7, "addShed"))
	assert.Zero(t, src.computed)

	src.cache[7] = []int{1}
	err := a.Authorize(context.Background(), 7, "addShed")
	assert.EqualError(t, err, "Forbidden. You are not allowed to execute addShed")
}

func TestAuthorizeUnknownOperation(t *testing.T) {
	src := newFakeSource()
	src.cache[7] = []int{1}
	a, _ := newTestAuthorizer(src)
	err := a.Authorize(context.Background(), 7, "dropDatabase")
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestAuthorizeDecidesOnComputedSetWhenSaveFails(t *testing.T) {
	src := newFakeSource()
	src.roles[7] = 2
	src.grants[7] = []int{3}
	src.saveErr = errors.New("redis down")
	a, _ := newTestAuthorizer(src)
	assert.NoError(t, a.Authorize(context.Background(), 7, "deleteShed"))
}

func TestAuthorizeCacheFailure(t *testing.T) {
	src := newFakeSource()
	src.cacheErr = errors.New("redis down")
	a, _ := newTestAuthorizer(src)
	assert.EqualError(t, a.Authorize(context.Background(), 7, "sheds"), "redis down")
}

func TestAuthorizeDoesNotCacheSetChangedWhileComputing(t *testing.T) {
	src := newFakeSource()
	src.roles[7] = 1
	src.grants[7] = []int{1}
	src.onCompute = func(userId int) {
		src.grants[userId] = []int{1, 2}
		src.version[userId]++
	}
	a, _ := newTestAuthorizer(src)

	require.NoError(t, a.Authorize(context.Background(), 7, "sheds"))
	assert.Empty(t, src.cache[7])

	src.onCompute = nil
	require.NoError(t, a.Authorize(context.Background(), 7, "addShed"))
	assert.Equal(t, []int{1, 2}, src.cache[7])
}
