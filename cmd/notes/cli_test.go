package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorded is one request seen by the fake API.
type recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
	Type   string
}

// fakeAPI answers every request with the given status and data and records it.
func fakeAPI(t *testing.T, status int, data interface{}) (*httptest.Server, *[]recorded) {
	t.Helper()
	var seen []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen = append(seen, recorded{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.RawQuery,
			Body:   string(body),
			Type:   r.Header.Get("Content-Type"),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status >= 400 {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"code":    3000,
				"message": "Failed to process meeting. Please try again.",
				"details": map[string]string{"kind": "reported_failure"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"code": 200, "message": "success", "data": data})
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func run(t *testing.T, srv *httptest.Server, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newCLIApp(strings.NewReader(stdin), &out)
	err := app.Run(append([]string{"notes", "--api", srv.URL}, args...))
	return out.String(), err
}

func TestMeetingsCommand(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, map[string]interface{}{"total": 4, "pending": 4})

	out, err := run(t, srv, "", "meetings")
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodGet, (*seen)[0].Method)
	assert.Equal(t, "/v1/meetings", (*seen)[0].Path)

	var got map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got["total"])
}

func TestProcessCommand(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusAccepted, map[string]interface{}{"pending": true})

	out, err := run(t, srv, "", "process", "--async", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"pending": true`)

	req := (*seen)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/meetings/1/process", req.Path)
	assert.Equal(t, "async=true", req.Query)
}

func TestProcessCommand_MissingID(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, nil)

	_, err := run(t, srv, "", "process")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meeting id is required")
	assert.Empty(t, *seen)
}

func TestProcessCommand_APIError(t *testing.T) {
	srv, _ := fakeAPI(t, http.StatusBadGateway, nil)

	_, err := run(t, srv, "", "process", "1")
	require.Error(t, err)
	assert.Equal(t, "[3000] Failed to process meeting. Please try again. (kind=reported_failure)", err.Error())
}

func TestSubmitCommand_Stdin(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, map[string]string{"meeting_id": "custom-1"})

	_, err := run(t, srv, "  Weekly sync notes\n", "submit")
	require.NoError(t, err)

	req := (*seen)[0]
	assert.Equal(t, "/v1/meetings/custom", req.Path)
	assert.Equal(t, "application/json", req.Type)
	assert.JSONEq(t, `{"text":"Weekly sync notes"}`, req.Body)
}

func TestSubmitCommand_File(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, nil)

	path := filepath.Join(t.TempDir(), "meeting.txt")
	require.NoError(t, os.WriteFile(path, []byte("Budget review"), 0o600))

	_, err := run(t, srv, "", "submit", "--file", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Budget review"}`, (*seen)[0].Body)
}

func TestSubmitCommand_Empty(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, nil)

	_, err := run(t, srv, "   ", "submit")
	require.Error(t, err)
	assert.Empty(t, *seen)
}

func TestSearchCommand(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, map[string]interface{}{"results": []string{}})

	_, err := run(t, srv, "", "search", "budget", "decisions")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, (*seen)[0].Method)
	assert.JSONEq(t, `{"query":"budget decisions"}`, (*seen)[0].Body)

	_, err = run(t, srv, "", "search")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, (*seen)[1].Method)
	assert.Equal(t, "/v1/search", (*seen)[1].Path)
}

func TestRefineCommand(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, nil)

	_, err := run(t, srv, "", "refine", "2")
	require.NoError(t, err)
	assert.Equal(t, "/v1/search/refinements/2", (*seen)[0].Path)

	_, err = run(t, srv, "", "refine", "two")
	require.Error(t, err)
	assert.Len(t, *seen, 1)
}

func TestDocsCommands(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, map[string]interface{}{"total": 0})

	_, err := run(t, srv, "", "docs", "list")
	require.NoError(t, err)
	_, err = run(t, srv, "", "docs", "list", "--refresh")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "handbook.txt")
	require.NoError(t, os.WriteFile(path, []byte("policies"), 0o600))
	_, err = run(t, srv, "", "docs", "upload", path)
	require.NoError(t, err)

	_, err = run(t, srv, "", "docs", "delete", "q3 plan.pdf")
	require.NoError(t, err)

	require.Len(t, *seen, 4)
	assert.Equal(t, "GET /v1/documents", (*seen)[0].Method+" "+(*seen)[0].Path)
	assert.Equal(t, "POST /v1/documents/refresh", (*seen)[1].Method+" "+(*seen)[1].Path)

	upload := (*seen)[2]
	assert.Equal(t, "POST /v1/documents", upload.Method+" "+upload.Path)
	assert.True(t, strings.HasPrefix(upload.Type, "multipart/form-data"))
	assert.Contains(t, upload.Body, `name="file"; filename="handbook.txt"`)
	assert.Contains(t, upload.Body, "policies")

	assert.Equal(t, "DELETE /v1/documents/q3%20plan.pdf", (*seen)[3].Method+" "+(*seen)[3].Path)
}

func TestStateCommands(t *testing.T) {
	srv, seen := fakeAPI(t, http.StatusOK, map[string]interface{}{"process_error": ""})

	_, err := run(t, srv, "", "state")
	require.NoError(t, err)
	_, err = run(t, srv, "", "state", "clear", "search")
	require.NoError(t, err)
	_, err = run(t, srv, "", "agents")
	require.NoError(t, err)

	assert.Equal(t, "GET /v1/state", (*seen)[0].Method+" "+(*seen)[0].Path)
	assert.Equal(t, "DELETE /v1/state/errors/search", (*seen)[1].Method+" "+(*seen)[1].Path)
	assert.Equal(t, "GET /v1/agents", (*seen)[2].Method+" "+(*seen)[2].Path)
}

func TestAPIError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gateway down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	_, err := run(t, srv, "", "notes")
	require.Error(t, err)
	assert.Equal(t, "[Service Unavailable] gateway down", err.Error())
}
