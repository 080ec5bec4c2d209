package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"
)

// fakeRemote records the calls it receives in the shared event log.
type fakeRemote struct {
	events    *[]string
	login     *sdk.Login
	startErr  error
	responses map[string]*sdk.Response
	errs      map[string]error
	tokens    []string
}

func newFakeRemote(events *[]string) *fakeRemote {
	return &fakeRemote{
		events:    events,
		login:     &sdk.Login{Token: "fresh-token", User: map[string]interface{}{"id": "u1", "displayName": "Ada"}},
		responses: map[string]*sdk.Response{},
		errs:      map[string]error{},
	}
}

func (r *fakeRemote) Start(_ context.Context, creds sdk.Credentials) (*sdk.Login, error) {
	*r.events = append(*r.events, "START "+creds.Email)
	if r.startErr != nil {
		return nil, r.startErr
	}
	return r.login, nil
}

func (r *fakeRemote) call(method, path, token string) (*sdk.Response, error) {
	key := method + " " + path
	*r.events = append(*r.events, key)
	r.tokens = append(r.tokens, token)
	if err, ok := r.errs[key]; ok {
		return nil, err
	}
	if resp, ok := r.responses[key]; ok {
		return resp, nil
	}
	return &sdk.Response{StatusCode: 200, Body: []byte(`{}`)}, nil
}

func (r *fakeRemote) Get(_ context.Context, path, token string) (*sdk.Response, error) {
	return r.call("GET", path, token)
}

func (r *fakeRemote) Post(_ context.Context, path, token string, _ interface{}) (*sdk.Response, error) {
	return r.call("POST", path, token)
}

func (r *fakeRemote) Put(_ context.Context, path, token string, _ interface{}) (*sdk.Response, error) {
	return r.call("PUT", path, token)
}

func (r *fakeRemote) Delete(_ context.Context, path, token string) (*sdk.Response, error) {
	return r.call("DELETE", path, token)
}

// fakePrompter answers confirmations with a fixed value.
type fakePrompter struct {
	t      *testing.T
	answer bool
	asked  []string
	forbid bool
}

func (p *fakePrompter) Confirm(question string) (bool, error) {
	if p.forbid {
		p.t.Errorf("prompter must not be called, asked %q", question)
	}
	p.asked = append(p.asked, question)
	return p.answer, nil
}

func (p *fakePrompter) Choose(question string, choices []string) (string, error) {
	return "", errors.New("not supported")
}

func (p *fakePrompter) Ask(question string, secret bool) (string, error) {
	return "", errors.New("not supported")
}

// fakeIndicator logs its transitions into the shared event log.
type fakeIndicator struct {
	events *[]string
}

func (i *fakeIndicator) Start() { *i.events = append(*i.events, "SPIN") }
func (i *fakeIndicator) Stop()  { *i.events = append(*i.events, "UNSPIN") }

// eventWriter logs every write into the shared event log.
type eventWriter struct {
	events *[]string
	prefix string
	buf    []byte
}

func (w *eventWriter) Write(p []byte) (int, error) {
	*w.events = append(*w.events, fmt.Sprintf("%s %s", w.prefix, p))
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *eventWriter) String() string {
	return string(w.buf)
}

type fakeRecorder struct {
	token string
	user  preferences.User
	err   error
}

func (r *fakeRecorder) RecordSession(token string, user preferences.User) error {
	r.token = token
	r.user = user
	return r.err
}

func authenticatedSession() *preferences.Session {
	return &preferences.Session{
		Email:    "ada@example.com",
		Password: "secret",
		Host:     "sandbox",
		Token:    "stale-token",
		User:     preferences.User{"id": "u1", "displayName": "Ada"},
	}
}
