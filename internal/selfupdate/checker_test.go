package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, handler http.HandlerFunc) *Checker {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewChecker("abhisek", "studiz",
		WithAPIBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
	)
}

func releaseHandler(tag string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://github.com/abhisek/studiz/releases/tag/%s"}`, tag, tag)
	}
}

func TestCheckUpdateAvailable(t *testing.T) {
	c := newTestChecker(t, releaseHandler("v1.3.0"))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.CurrentVersion)
	assert.Equal(t, "v1.3.0", result.LatestVersion)
	assert.Contains(t, result.ReleaseURL, "v1.3.0")
}

func TestCheckAlreadyLatest(t *testing.T) {
	c := newTestChecker(t, releaseHandler("v1.2.0"))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckOlderRelease(t *testing.T) {
	// A latest release behind the running version should not offer an update.
	c := newTestChecker(t, releaseHandler("v1.1.9"))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckAcceptsBareVersions(t *testing.T) {
	c := newTestChecker(t, releaseHandler("1.3.0"))

	result, err := c.Check(context.Background(), &CheckInput{Version: "1.2.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.3.0", result.LatestVersion)
}

func TestCheckDevBuild(t *testing.T) {
	c := NewChecker("abhisek", "studiz")

	for _, version := range []string{"", "(devel)"} {
		_, err := c.Check(context.Background(), &CheckInput{Version: version})
		assert.ErrorIs(t, err, ErrDevBuild, "version %q", version)
	}
}

func TestCheckInvalidCurrentVersion(t *testing.T) {
	c := newTestChecker(t, releaseHandler("v1.3.0"))

	_, err := c.Check(context.Background(), &CheckInput{Version: "not-a-version"})
	require.Error(t, err)
}

func TestCheckServerError(t *testing.T) {
	c := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	})

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestCheckMalformedTag(t *testing.T) {
	c := newTestChecker(t, releaseHandler("nightly-build"))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
