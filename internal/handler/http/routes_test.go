package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// protectedRoutes must answer 401 without a token, which also proves they
// are registered.
var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/users/me"},
	{http.MethodDelete, "/users/me/token"},
	{http.MethodPost, "/properties"},
	{http.MethodGet, "/myproperties"},
	{http.MethodPatch, "/properties/" + testPropertyID},
	{http.MethodDelete, "/properties/" + testPropertyID},
	{http.MethodPost, "/todos"},
	{http.MethodGet, "/todos"},
	{http.MethodGet, "/todos/" + testTodoID},
	{http.MethodPatch, "/todos/" + testTodoID},
	{http.MethodDelete, "/todos/" + testTodoID},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := ts.do(tc.method, tc.path, nil, "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/nonexistent", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_UnsupportedMethodReturns404(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPut, "/properties", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_CORSExposesAuthHeader(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/users", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	req = httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	rec = httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Auth")
}
