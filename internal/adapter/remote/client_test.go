package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkiven/ResumeBuilder/internal/domain"
	"github.com/xkiven/ResumeBuilder/internal/model"
)

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/resume/u1", r.URL.Path)
		_, _ = w.Write([]byte(`{"user_id":"u1","skills":["Go"],"experience":[{"company":"Acme","achievements":"a\nb"}]}`))
	}))
	defer srv.Close()

	doc, err := NewClient(srv.URL).Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, doc.Skills)
	assert.Equal(t, model.Achievements{"a", "b"}, doc.Experience[0].Achievements)
}

func TestClient_GetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"resume not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, domain.IsUpstream(err))

	_, err = c.Generate(context.Background(), "ghost", "text")
	assert.Equal(t, &domain.RequestError{Status: 404, Message: "resume not found"}, err)
}

func TestClient_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantErr error
		parse   bool
	}{
		{name: "service message verbatim", status: http.StatusBadRequest, body: `{"error":"name is required"}`,
			wantErr: &domain.RequestError{Status: 400, Message: "name is required"}},
		{name: "no message", status: http.StatusInternalServerError, body: `oops`,
			wantErr: &domain.RequestError{Status: 500}},
		{name: "not a document", status: http.StatusOK, body: `[1,2]`, parse: true},
		{name: "not json", status: http.StatusOK, body: `<html>`, parse: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).Generate(context.Background(), "u1", "text")
			if tc.parse {
				var pe *domain.ParseError
				assert.True(t, errors.As(err, &pe), "%v", err)
				return
			}
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestClient_RequestErrorText(t *testing.T) {
	assert.EqualError(t, &domain.RequestError{Status: 503}, "request failed (status 503)")
}

func TestClient_SaveAndGenerateBodies(t *testing.T) {
	var got []map[string]interface{}
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var m map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		got = append(got, m)
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"user_id":"u1","projects":[{"name":"b"}]}`))
	}))
	defer srv.Close()
	c := NewClient(srv.URL)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, model.Resume{UserID: "u1"}))
	doc, err := c.GenerateFromRepository(ctx, "u1", "github.com/a/b")
	require.NoError(t, err)
	assert.Equal(t, "b", doc.Projects[0].Name)

	assert.Equal(t, []string{"/api/resume", "/api/resume/u1/generate/github"}, paths)
	assert.Equal(t, "u1", got[0]["user_id"])
	assert.Equal(t, "github.com/a/b", got[1]["repo_url"])
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url)
	c.Attempts = 2
	_, err := c.Get(context.Background(), "u1")
	var re *domain.RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 0, re.Status)
}
