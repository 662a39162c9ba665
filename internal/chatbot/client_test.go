package chatbot

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/homestock-server/internal/model"
)

func TestClient_Generate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
			assert.Equal(t, "secret", r.URL.Query().Get("key"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req generateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Contents, 1)
			require.Len(t, req.Contents[0].Parts, 1)
			assert.Equal(t, "what can I cook?", req.Contents[0].Parts[0].Text)

			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":" Make an omelette. "}]}}]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL+"/", "secret", "test-model", time.Second)
		reply, err := c.Generate(t.Context(), "what can I cook?")

		require.NoError(t, err)
		assert.Equal(t, "Make an omelette.", reply)
	})

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "error status with message", status: http.StatusForbidden, body: `{"error":{"code":403,"message":"bad key"}}`, wantMsg: "bad key"},
		{name: "error status without json", status: http.StatusInternalServerError, body: `oops`, wantMsg: "status 500"},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`, wantMsg: "no candidates"},
		{name: "empty text", status: http.StatusOK, body: `{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`, wantMsg: "empty reply"},
		{name: "malformed body", status: http.StatusOK, body: `{`, wantMsg: "bad response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "", "m", time.Second)
			_, err := c.Generate(t.Context(), "hi")

			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrUpstream)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", "m", 20*time.Millisecond)
		_, err := c.Generate(t.Context(), "hi")

		assert.ErrorIs(t, err, model.ErrUpstream)
	})

	t.Run("unreachable", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1", "", "m", time.Second)
		_, err := c.Generate(t.Context(), "hi")

		assert.ErrorIs(t, err, model.ErrUpstream)
	})
}
