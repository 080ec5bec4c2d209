package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	text.DisableColors()
	os.Exit(m.Run())
}

const loginPath = "GET /api/rainbow/authentication/v1.0/login"

// fakePlatform answers the routes registered with on and 404 otherwise.
type fakePlatform struct {
	*httptest.Server
	mu       sync.Mutex
	routes   map[string]string
	requests []string
}

func newFakePlatform(t *testing.T) *fakePlatform {
	p := &fakePlatform{routes: map[string]string{
		loginPath: `{"token":"tok-1","loggedInUser":{"id":"u1","loginEmail":"ada@example.com","displayName":"Ada","adminType":"superadmin"}}`,
	}}
	p.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		p.mu.Lock()
		p.requests = append(p.requests, key)
		body, ok := p.routes[key]
		p.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			body = `{"errorCode":404,"errorMsg":"Resource not found"}`
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(p.Close)
	return p
}

func (p *fakePlatform) on(key, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.routes[key] = body
}

func (p *fakePlatform) served() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.requests...)
}

type result struct {
	out    string
	errOut string
	err    error
}

// execute runs a fresh command tree against the preferences in dir.
func execute(t *testing.T, dir string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.Version = "1.0.0"
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(append([]string{"--config-path", dir}, args...))
	err := root.Execute()
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

// signedIn stores a session for p in a fresh preferences directory.
func signedIn(t *testing.T, p *fakePlatform) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, preferences.NewStorageWithPath(dir).Save(&preferences.Session{
		Email:    "ada@example.com",
		Password: "hunter2",
		Host:     p.URL,
		Token:    "stale",
		User:     preferences.User{"id": "u1", "adminType": "superadmin"},
	}))
	return dir
}

func TestLoginStoresTheSession(t *testing.T) {
	p := newFakePlatform(t)
	dir := t.TempDir()

	got := execute(t, dir, "login", "ada@example.com", "secret", "--host", p.URL)
	require.NoError(t, got.err, got.errOut)
	assert.Contains(t, got.out, "Signed in as")

	session, err := preferences.NewStorageWithPath(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", session.Email)
	assert.Equal(t, "secret", session.Password)
	assert.Equal(t, p.URL, session.Host)
	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, "u1", session.User.ID())
}

func TestLoginWithoutCredentials(t *testing.T) {
	got := execute(t, t.TempDir(), "login")
	require.Error(t, got.err)
	assert.Contains(t, got.err.Error(), "missing email or password")
}

func TestCommandRequiresLogin(t *testing.T) {
	got := execute(t, t.TempDir(), "users")

	require.Error(t, got.err)
	assert.ErrorIs(t, got.err, &cli.NotAuthenticatedError{})
	assert.True(t, cli.IsReported(got.err))
	assert.Contains(t, got.out, "You are not logged in")
	assert.Equal(t, ExitCodeError, getExitCode(got.err))
}

func TestListUsersUsesRefreshedToken(t *testing.T) {
	p := newFakePlatform(t)
	p.on("GET /api/rainbow/admin/v1.0/users",
		`{"data":[{"id":"u7","loginEmail":"g@h.io","displayName":"Grace","companyName":"ACME"}],"total":1,"limit":10,"offset":0}`)
	dir := signedIn(t, p)

	got := execute(t, dir, "users", "--limit", "10", "--name", "Grace")
	require.NoError(t, got.err, got.errOut)
	assert.Contains(t, got.out, "Grace")
	assert.Contains(t, got.out, "1 users found.")
	assert.Equal(t, []string{loginPath, "GET /api/rainbow/admin/v1.0/users"}, p.served())

	session, err := preferences.NewStorageWithPath(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
}

func TestJSONOutputIsMachineReadable(t *testing.T) {
	p := newFakePlatform(t)
	p.on("GET /api/rainbow/admin/v1.0/users/u7", `{"data":{"id":"u7","displayName":"Grace"}}`)
	dir := signedIn(t, p)

	got := execute(t, dir, "--json", "user", "u7")
	require.NoError(t, got.err, got.errOut)

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got.out), &user), got.out)
	assert.Equal(t, "Grace", user["displayName"])
}

func TestRemoteFailureIsReportedOnce(t *testing.T) {
	p := newFakePlatform(t)
	dir := signedIn(t, p)

	got := execute(t, dir, "system", "missing")
	require.Error(t, got.err)
	assert.True(t, cli.IsReported(got.err))
	assert.Equal(t, 1, strings.Count(got.errOut, "Resource not found"))
}

func TestDeleteUserWithoutConfirmation(t *testing.T) {
	p := newFakePlatform(t)
	p.on("DELETE /api/rainbow/admin/v1.0/users/u7", `{"status":"ok"}`)
	dir := signedIn(t, p)

	got := execute(t, dir, "delete", "user", "u7", "--noconfirmation")
	require.NoError(t, got.err, got.errOut)
	assert.Contains(t, p.served(), "DELETE /api/rainbow/admin/v1.0/users/u7")
}

func TestPaymentsDefaultToConnectedUser(t *testing.T) {
	p := newFakePlatform(t)
	p.on("GET /api/rainbow/subscription/v1.0/developers/u1/accounts", `{"data":{"id":"acc1","status":"active"}}`)
	dir := signedIn(t, p)

	got := execute(t, dir, "payments")
	require.NoError(t, got.err, got.errOut)
	assert.Contains(t, got.out, "acc1")
}

func TestCreateSystemRejectsUnknownType(t *testing.T) {
	p := newFakePlatform(t)
	dir := signedIn(t, p)

	got := execute(t, dir, "create", "system", "PBX", "site1", "--type", "analog", "--country", "FRA")
	require.Error(t, got.err)
	assert.Contains(t, got.err.Error(), "unsupported system type")
	assert.Empty(t, p.served())
}

func TestPreferencesAreMasked(t *testing.T) {
	p := newFakePlatform(t)
	dir := signedIn(t, p)

	got := execute(t, dir, "preferences")
	require.NoError(t, got.err, got.errOut)
	assert.Contains(t, got.out, "ada@example.com")
	assert.NotContains(t, got.out, "hunter2")
	assert.NotContains(t, got.out, "stale")
}

func TestSetAndRemovePreferences(t *testing.T) {
	dir := t.TempDir()
	storage := preferences.NewStorageWithPath(dir)

	require.NoError(t, execute(t, dir, "set", "proxy", "http://proxy:8080").err)
	require.NoError(t, execute(t, dir, "set", "keys", "app", "shh").err)
	session, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://proxy:8080", session.Proxy)
	assert.Equal(t, "app", session.AppID)
	assert.Equal(t, "shh", session.AppSecret)

	require.NoError(t, execute(t, dir, "remove", "proxy").err)
	require.NoError(t, execute(t, dir, "remove", "keys").err)
	session, err = storage.Load()
	require.NoError(t, err)
	assert.Empty(t, session.Proxy)
	assert.False(t, session.HasKeys())
}

func TestLogoutKeepsCredentials(t *testing.T) {
	p := newFakePlatform(t)
	dir := signedIn(t, p)

	got := execute(t, dir, "logout")
	require.NoError(t, got.err)
	assert.Contains(t, got.out, "logged out")

	session, err := preferences.NewStorageWithPath(dir).Load()
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())
	assert.Equal(t, "ada@example.com", session.Email)
}

func TestInvalidOutputFormat(t *testing.T) {
	got := execute(t, t.TempDir(), "--output", "xml", "status")
	require.Error(t, got.err)
}

func TestDeleteWithoutAnswerIsCancelled(t *testing.T) {
	p := newFakePlatform(t)
	dir := signedIn(t, p)

	got := execute(t, dir, "delete", "system", "s1")
	require.Error(t, got.err)
	assert.ErrorIs(t, got.err, &cli.CancelledError{})
	assert.Contains(t, got.out, "Your command has been canceled")
	assert.Empty(t, p.served())
	assert.Equal(t, ExitCodeError, getExitCode(got.err))
}
