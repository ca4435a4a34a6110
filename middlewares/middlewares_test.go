package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/grange_backend/models"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGenerateLoaderResultsKeepsKeyOrder(t *testing.T) {
	sheds := []*models.Shed{{ID: 3, Code: "G3"}, {ID: 1, Code: "G1"}}
	results := generateLoaderResults(sheds, []int{1, 2, 3})
	require.Len(t, results, 3)
	assert.Equal(t, "G1", results[0].Data.Code)
	assert.Nil(t, results[1].Data)
	assert.Equal(t, "G3", results[2].Data.Code)
}

func TestGenerateLoaderArrayResults(t *testing.T) {
	weights := []*models.CuyWeight{{ID: 1, CuyId: 7}, {ID: 2, CuyId: 9}, {ID: 3, CuyId: 7}}
	results := generateLoaderArrayResults(weights, []int{7, 8, 9})
	require.Len(t, results, 3)
	assert.Len(t, results[0].Data, 2)
	assert.Equal(t, 3, results[0].Data[1].ID)
	assert.Empty(t, results[1].Data)
	assert.Len(t, results[2].Data, 1)
}

func TestGenerateLoaderRelatedResults(t *testing.T) {
	deaths := []*models.CuyDeath{{ID: 4, CuyId: 9}}
	results := generateLoaderRelatedResults(deaths, []int{7, 9})
	assert.Nil(t, results[0].Data)
	assert.Equal(t, 4, results[1].Data.ID)
}

func TestHandleErrorRepeatsError(t *testing.T) {
	boom := errors.New("boom")
	results := handleError[*models.Pool](3, boom)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, boom, r.Error)
	}
}

func TestLoadManySkipsMissing(t *testing.T) {
	pools := []*models.Pool{{ID: 1}, {ID: 2}}
	loader := dataloader.NewBatchedLoader(func(_ context.Context, ids []int) []*dataloader.Result[*models.Pool] {
		return generateLoaderResults(pools, ids)
	}, dataloader.WithWait[int, *models.Pool](time.Millisecond))

	got, err := loadMany(context.Background(), loader, []int{1, 5, 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)

	empty, err := loadMany(context.Background(), loader, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func newRouter(handlers ...gin.HandlerFunc) (*gin.Engine, *context.Context) {
	var seen context.Context
	r := gin.New()
	r.Use(handlers...)
	r.GET("/", func(c *gin.Context) {
		seen = c.Request.Context()
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenIssuer("access", "refresh", time.Minute, time.Hour)
	access, err := tokens.GenerateAccess(42)
	require.NoError(t, err)
	refresh, err := tokens.GenerateRefresh(42)
	require.NoError(t, err)

	cases := []struct {
		name     string
		prepare  func(r *http.Request)
		wantCode int
		wantUser int
	}{
		{"anonymous", func(r *http.Request) {}, http.StatusOK, 0},
		{"bearer header", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+access) }, http.StatusOK, 42},
		{"x-token header", func(r *http.Request) { r.Header.Set("x-token", access) }, http.StatusOK, 42},
		{"query token", func(r *http.Request) { r.URL.RawQuery = "token=" + access }, http.StatusOK, 42},
		{"garbage", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized, 0},
		{"refresh used as access", func(r *http.Request) { r.Header.Set("x-token", refresh) }, http.StatusUnauthorized, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, seen := newRouter(AuthMiddleware(tokens))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tc.prepare(req)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantCode != http.StatusOK {
				assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
				return
			}
			userId, ok := utils.GetUserIdFromContext(*seen)
			assert.Equal(t, tc.wantUser > 0, ok)
			assert.Equal(t, tc.wantUser, userId)
		})
	}
}

func TestSessionMiddleware(t *testing.T) {
	router, seen := newRouter(SessionMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	ip, _ := utils.GetClientIPFromContext(*seen)
	assert.Equal(t, "192.0.2.10", ip)
	generated := rec.Header().Get(CorrelationHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	given := uuid.NewString()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationHeader, given)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	id, _ := utils.GetCorrelationIdFromContext(*seen)
	assert.Equal(t, given, id)
	assert.Equal(t, given, rec.Header().Get(CorrelationHeader))
}
