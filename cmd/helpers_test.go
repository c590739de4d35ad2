package cmd

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

var testNow = time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
}

// fakeGitHub serves two pull requests. Each has one review holding one inline
// comment and one conversation comment. failPath, when set, answers 500.
type fakeGitHub struct {
	calls    int64
	failPath string
	authz    atomic.Value
}

func (f *fakeGitHub) client() *http.Client {
	return &http.Client{Transport: roundTripFunc(f.serve)}
}

func (f *fakeGitHub) serve(req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&f.calls, 1)
	f.authz.Store(req.Header.Get("Authorization"))

	path := req.URL.Path
	if f.failPath != "" && path == f.failPath {
		return jsonResponse(req, http.StatusInternalServerError, `{"message":"boom"}`), nil
	}

	switch path {
	case "/repos/acme/widgets/pulls":
		return jsonResponse(req, http.StatusOK, `[
			{"id": 101, "number": 1, "title": "First change", "state": "closed",
			 "html_url": "https://github.com/acme/widgets/pull/1",
			 "user": {"login": "alice"},
			 "created_at": "2024-01-10T09:00:00Z", "closed_at": "2024-01-12T09:00:00Z"},
			{"id": 102, "number": 2, "title": "Second change", "state": "open",
			 "html_url": "https://github.com/acme/widgets/pull/2",
			 "user": {"login": "bob"},
			 "created_at": "2024-02-01T09:00:00Z"}
		]`), nil
	case "/rate_limit":
		return jsonResponse(req, http.StatusOK, fmt.Sprintf(
			`{"resources": {"core": {"limit": 5000, "remaining": 4990, "reset": %d}}}`,
			testNow.Add(30*time.Minute).Unix())), nil
	}

	for _, n := range []int{1, 2} {
		switch path {
		case fmt.Sprintf("/repos/acme/widgets/pulls/%d/reviews", n):
			return jsonResponse(req, http.StatusOK, fmt.Sprintf(
				`[{"id": %d, "user": {"login": "carol"}, "state": "APPROVED", "submitted_at": "2024-01-11T09:00:00Z"}]`,
				1000+n)), nil
		case fmt.Sprintf("/repos/acme/widgets/pulls/%d/comments", n):
			return jsonResponse(req, http.StatusOK, fmt.Sprintf(
				`[{"id": %d, "pull_request_review_id": %d, "user": {"login": "carol"}, "body": "nit", "created_at": "2024-01-11T09:00:00Z"}]`,
				2000+n, 1000+n)), nil
		case fmt.Sprintf("/repos/acme/widgets/issues/%d/comments", n):
			return jsonResponse(req, http.StatusOK, fmt.Sprintf(
				`[{"id": %d, "user": {"login": "dave"}, "body": "thanks", "created_at": "2024-01-11T10:00:00Z"}]`,
				3000+n)), nil
		}
	}

	return jsonResponse(req, http.StatusNotFound, `{"message": "Not Found"}`), nil
}

func (f *fakeGitHub) callCount() int64 {
	return atomic.LoadInt64(&f.calls)
}

// isolate points config lookups at empty directories and clears the token.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GITHUB_TOKEN", "")
	t.Chdir(t.TempDir())
}

// report runs a report with the TUI disabled.
func report(t *testing.T, gh *fakeGitHub, args ...string) (string, error) {
	t.Helper()
	return execute(t, gh, append(args, "--tui=false")...)
}

// execute runs the root command against gh and returns what it printed.
func execute(t *testing.T, gh *fakeGitHub, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(
		WithHTTPClient(gh.client()),
		WithClock(func() time.Time { return testNow }),
		WithStdout(&out),
	)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

// writeLocalConfig writes .prreport.yaml in the working directory.
func writeLocalConfig(content string) error {
	return os.WriteFile(".prreport.yaml", []byte(content), 0o600)
}
