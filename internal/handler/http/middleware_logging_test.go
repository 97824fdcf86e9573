package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   []string
	}{
		{name: "ok", status: http.StatusOK, body: "OK", want: []string{`"level":"info"`, `"status":200`, `"size":2`, `"method":"GET"`, `"uri":"/properties"`}},
		{name: "not found", status: http.StatusNotFound, want: []string{`"level":"info"`, `"status":404`, `"size":0`}},
		{name: "server error", status: http.StatusInternalServerError, want: []string{`"level":"error"`, `"status":500`}},
		{name: "handler writes nothing", want: []string{`"status":200`, `"size":0`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(http.MethodGet, "/properties", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
			rec := httptest.NewRecorder()
			(&Handler{}).withLogging(next).ServeHTTP(rec, req)

			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
			assert.Contains(t, buf.String(), `"duration":`)
			assert.Contains(t, buf.String(), `"remote_addr":"192.0.2.1:1234"`)
		})
	}
}
