package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-realty-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name          string
		xAuth         string
		authorization string
		want          string
		wantErr       error
	}{
		{name: "x-auth header", xAuth: "abc", want: "abc"},
		{name: "x-auth wins over bearer", xAuth: "abc", authorization: "Bearer def", want: "abc"},
		{name: "bearer fallback", authorization: "Bearer def", want: "def"},
		{name: "lowercase scheme", authorization: "bearer def", want: "def"},
		{name: "no headers", wantErr: ErrEmptyAuthHeader},
		{name: "missing token", authorization: "Bearer", wantErr: utils.ErrInvalidAuthHeader},
		{name: "wrong scheme", authorization: "Basic def", wantErr: utils.ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.xAuth != "" {
				req.Header.Set(authTokenHeader, tt.xAuth)
			}
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}

			got, err := tokenFromRequest(req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuth_AttachesUserAndToken(t *testing.T) {
	ts := newTestServer(t)
	ts.expectAuthenticated()

	var called bool
	h := &Handler{services: ts.services}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		auth, ok := utils.GetAuthFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, testUser, auth.User)
		assert.Equal(t, testToken, auth.Token)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(authTokenHeader, testToken)
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
