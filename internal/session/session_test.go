package session

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tanq16/cwdl/internal/utils"
)

func writeCookieFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseCookieFile(t *testing.T) {
	path := writeCookieFile(t, "# Netscape HTTP Cookie File\n"+
		"\n"+
		"web.careerwill.com\tFALSE\t/\tTRUE\t0\tsession\tabc123\n"+
		".careerwill.com\tFALSE\t/\tTRUE\t0\ttoken\txyz\textra\n"+
		"short.example\tFALSE\t/\tTRUE\t0\tnovalue\n")

	cookies, err := ParseCookieFile(path)
	require.NoError(t, err)
	// the 6-field line is skipped, comments and blanks ignored
	require.Len(t, cookies, 2)
	require.Equal(t, "web.careerwill.com", cookies[0].Domain)
	require.Equal(t, "session", cookies[0].Name)
	require.Equal(t, "abc123", cookies[0].Value)
	require.Equal(t, ".careerwill.com", cookies[1].Domain)
	require.Equal(t, "token", cookies[1].Name)
	require.Equal(t, "xyz", cookies[1].Value)
}

func TestParseCookieFileMissing(t *testing.T) {
	_, err := ParseCookieFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSessionBearerToken(t *testing.T) {
	var gotAuth, gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	// bearer takes precedence: the cookie file must not be loaded
	path := writeCookieFile(t, "127.0.0.1\tFALSE\t/\tFALSE\t0\tsession\tabc\n")
	sess, err := New(utils.SessionConfig{
		BearerToken: "tok-123",
		CookieFile:  path,
		Timeout:     5 * time.Second,
	})
	require.NoError(t, err)
	require.Empty(t, sess.CookieFile())

	body, err := sess.FetchPage(srv.URL)
	require.NoError(t, err)
	require.Equal(t, "ok", body)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Empty(t, gotCookie)
}

func TestSessionCookieAuth(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	path := writeCookieFile(t, "127.0.0.1\tFALSE\t/\tFALSE\t0\tsession\tabc123\n")
	sess, err := New(utils.SessionConfig{CookieFile: path, Timeout: 5 * time.Second})
	require.NoError(t, err)
	require.Equal(t, path, sess.CookieFile())

	_, err = sess.FetchPage(srv.URL)
	require.NoError(t, err)
	require.Equal(t, "session=abc123", gotCookie)
}

func TestSessionUnreadableCookieFileContinues(t *testing.T) {
	sess, err := New(utils.SessionConfig{
		CookieFile: filepath.Join(t.TempDir(), "missing.txt"),
		Timeout:    5 * time.Second,
	})
	require.NoError(t, err)
	require.Empty(t, sess.CookieFile())
}

func TestFetchPageErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	sess, err := New(utils.SessionConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	_, err = sess.FetchPage(srv.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}
