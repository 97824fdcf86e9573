package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-realty-api/internal/config"
	"github.com/MKhiriev/go-realty-api/internal/logger"
	"github.com/MKhiriev/go-realty-api/internal/mock"
	"github.com/MKhiriev/go-realty-api/internal/service"
	"github.com/MKhiriev/go-realty-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken      = "valid-token"
	testUserID     = "0190f5a2-7b3c-7d4e-8f90-123456789abc"
	testPropertyID = "0190f5a2-7b3c-7d4e-8f90-aaaaaaaaaaaa"
	testTodoID     = "0190f5a2-7b3c-7d4e-8f90-cccccccccccc"
)

var testUser = models.User{ID: testUserID, Email: "a@a.com", PasswordHash: "$2a$10$hash"}

// testServer bundles a router with the mocked services behind it.
type testServer struct {
	router     http.Handler
	services   *service.Services
	auth       *mock.MockAuthService
	properties *mock.MockPropertyService
	todos      *mock.MockTodoService
	appInfo    *mock.MockAppInfoService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	ts := &testServer{
		auth:       mock.NewMockAuthService(ctrl),
		properties: mock.NewMockPropertyService(ctrl),
		todos:      mock.NewMockTodoService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}

	ts.services = &service.Services{
		AuthService:     ts.auth,
		PropertyService: ts.properties,
		TodoService:     ts.todos,
		AppInfoService:  ts.appInfo,
	}
	h := NewHandler(ts.services, config.Server{}, logger.Nop())
	ts.router = h.Init()

	return ts
}

// expectAuthenticated makes testToken resolve to testUser.
func (ts *testServer) expectAuthenticated() {
	ts.auth.EXPECT().ValidateToken(gomock.Any(), testToken).Return(testUser, nil)
}

func (ts *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(authTokenHeader, token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{HTTPAddress: ":3000"}

	h := NewHandler(svcs, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, cfg.HTTPAddress, h.cfg.HTTPAddress)
}
