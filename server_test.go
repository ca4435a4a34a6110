package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/models"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*server, string) {
	t.Helper()
	storage, err := utils.NewLocalStorage(t.TempDir(), t.TempDir())
	require.NoError(t, err)
	tokens := utils.NewTokenIssuer("access", "refresh", time.Minute, time.Hour)
	token, err := tokens.GenerateAccess(3)
	require.NoError(t, err)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &server{
		cfg:     &config.Config{},
		logger:  logger,
		storage: storage,
		tokens:  tokens,
	}, token
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartRequest(t *testing.T, target, filename, contentType string, data []byte, belonging string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	if belonging != "" {
		require.NoError(t, w.WriteField("belonging", belonging))
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadKindValidate(t *testing.T) {
	cases := []struct {
		name        string
		kind        uploadKind
		filename    string
		contentType string
		wantExt     string
		wantErr     bool
	}{
		{"png photo", photoUpload, "cuy.PNG", "image/png", ".png", false},
		{"jpeg photo with params", photoUpload, "cuy.jpeg", "image/jpeg; charset=binary", ".jpeg", false},
		{"gif extension with svg mime", photoUpload, "cuy.gif", "image/svg+xml", ".gif", false},
		{"photo wrong extension", photoUpload, "cuy.bmp", "image/png", "", true},
		{"photo wrong mime", photoUpload, "cuy.png", "application/pdf", "", true},
		{"pdf document", documentUpload, "act.pdf", "application/pdf", ".pdf", false},
		{"xlsx document", documentUpload, "act.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx", false},
		{"document missing mime", documentUpload, "act.pdf", "", "", true},
		{"image as document", documentUpload, "act.png", "image/png", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ext, err := tc.kind.validate(tc.filename, tc.contentType)
			if tc.wantErr {
				assert.ErrorIs(t, err, errUnsupportedFile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExt, ext)
		})
	}
}

func TestObjectName(t *testing.T) {
	name, err := objectName(" CUY-001/../x ", ".png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "CUY-001x-"), name)
	assert.True(t, strings.HasSuffix(name, ".png"), name)
	assert.True(t, utils.ValidObjectName(name))

	_, err = objectName("../", ".png")
	assert.ErrorIs(t, err, errBelongingRequired)
}

func TestThumbnail(t *testing.T) {
	thumb, err := thumbnail("cuy.png", pngBytes(t, 512, 128))
	require.NoError(t, err)
	img, err := imaging.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, thumbnailWidth, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	_, err = thumbnail("cuy.png", []byte("not an image"))
	assert.Error(t, err)
}

func TestUploadPhotoStoresOriginalAndThumbnail(t *testing.T) {
	s, token := newTestServer(t)
	r := s.router()

	req := multipartRequest(t, "/storage/upload-photo", "cuy.png", "image/png", pngBytes(t, 300, 300), "cuy-7")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Path string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, strings.HasPrefix(resp.Path, "/storage/photos/cuy-7-"), resp.Path)
	name := strings.TrimPrefix(resp.Path, "/storage/photos/")

	// photos are public
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, resp.Path, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storage/photos/"+thumbnailPrefix+name, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadRequiresAuthentication(t *testing.T) {
	s, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, multipartRequest(t, "/storage/upload-file", "act.pdf", "application/pdf", []byte("%PDF"), "act"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUploadRejections(t *testing.T) {
	s, token := newTestServer(t)
	r := s.router()
	cases := []struct {
		name string
		req  *http.Request
		want string
	}{
		{"wrong type", multipartRequest(t, "/storage/upload-file", "act.exe", "application/octet-stream", []byte("x"), "act"), errUnsupportedFile.Error()},
		{"missing belonging", multipartRequest(t, "/storage/upload-file", "act.pdf", "application/pdf", []byte("%PDF"), ""), errBelongingRequired.Error()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Header.Set("x-token", token)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, tc.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestServeFileRequiresAuthAndReportsMissing(t *testing.T) {
	s, token := newTestServer(t)
	r := s.router()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storage/files/missing.pdf", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/storage/files/missing.pdf", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"File not found"}`, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCorsConfig(t *testing.T) {
	dev := corsConfig(&config.Config{})
	assert.True(t, dev.AllowAllOrigins)

	prod := corsConfig(&config.Config{Env: "production"})
	assert.False(t, prod.AllowAllOrigins)
	assert.Empty(t, prod.AllowOrigins)
	require.NotNil(t, prod.AllowOriginFunc)
	assert.False(t, prod.AllowOriginFunc("https://evil.example"))

	prod = corsConfig(&config.Config{Env: "production", CorsAllowedOrigins: []string{"https://grange.example"}})
	assert.Equal(t, []string{"https://grange.example"}, prod.AllowOrigins)
	assert.Contains(t, prod.AllowHeaders, "x-token")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, httpStatus(utils.ErrUnauthenticated("x")))
	assert.Equal(t, http.StatusForbidden, httpStatus(utils.ErrForbidden("x")))
	assert.Equal(t, http.StatusBadRequest, httpStatus(utils.ErrInvalidInput("x")))
	assert.Equal(t, http.StatusNotFound, httpStatus(utils.ErrNotFound("x")))
	assert.Equal(t, http.StatusInternalServerError, httpStatus(io.ErrUnexpectedEOF))
}

func TestWorkbook(t *testing.T) {
	weight := decimal.RequireFromString("1.25")
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := [][]interface{}{cuyReportRow(&models.CuyReport{
		Earring:       "E-1",
		Race:          "Peru",
		Genre:         models.GenreFemale,
		CurrentWeight: &weight,
		BirthdayDate:  day,
		ShedCode:      "G1",
		ShedName:      "North",
		PoolCode:      "P1",
		PoolPhase:     "ENGORDE",
		RecordDate:    day,
		RecordReason:  "enfermedad",
	})}
	f, err := workbook(cuyReportHeadings, rows)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Earring", got[0][0])
	assert.Equal(t, "E-1", got[1][0])
	assert.Equal(t, "1.25", got[1][4])
	assert.Equal(t, "2024-03-01", got[1][9])
	assert.Equal(t, "enfermedad", got[1][10])

	cell, err := excelize.CoordinatesToCellName(len(cuyReportHeadings), 1)
	require.NoError(t, err)
	v, err := f.GetCellValue(exportSheet, cell)
	require.NoError(t, err)
	assert.Equal(t, "Reason", v)
}

func TestReportFilterFromQuery(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/death.xlsx?idShed=2&dateFrom=2024-01-01&dateTo=2024-01-31&reason=%20peste%20", nil)
	filter, err := reportFilterFromQuery(c)
	require.NoError(t, err)
	require.NotNil(t, filter.ShedId)
	assert.Equal(t, 2, *filter.ShedId)
	assert.Nil(t, filter.PoolId)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filter.DateFrom)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), *filter.DateTo)
	assert.Equal(t, "peste", *filter.Reason)

	c.Request = httptest.NewRequest(http.MethodGet, "/reports/death.xlsx?idPool=abc", nil)
	_, err = reportFilterFromQuery(c)
	assert.True(t, utils.IsKind(err, utils.KindInvalidInput))
}

func TestMobilizationFilterFromQuery(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/reports/mobilizations.xlsx?idCuy=4&from=1&destination=2&dateFrom=2024-01-01T08:00:00Z", nil)
	filter, err := mobilizationFilterFromQuery(c)
	require.NoError(t, err)
	assert.Equal(t, 4, *filter.CuyId)
	assert.Equal(t, 1, *filter.OriginId)
	assert.Equal(t, 2, *filter.DestinationId)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), *filter.DateFrom)
	assert.Nil(t, filter.DateTo)
	assert.Nil(t, filter.Reason)

	c.Request = httptest.NewRequest(http.MethodGet, "/reports/mobilizations.xlsx?dateTo=yesterday", nil)
	_, err = mobilizationFilterFromQuery(c)
	assert.True(t, utils.IsKind(err, utils.KindInvalidInput))
}
