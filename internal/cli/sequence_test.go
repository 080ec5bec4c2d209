package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceFailFastStopsAtFirstError(t *testing.T) {
	var events []string
	remote := newFakeRemote(&events)
	remote.errs["GET /systems/s1"] = &sdk.APIError{StatusCode: 404, Message: "not found"}

	seq := Sequence{Policy: FailFast, Steps: []Step{
		GetStep("Get system", "/systems/s1"),
		PostStep("Link system", "/sites/x/systems", map[string]string{"systemId": "s1"}),
	}}

	results, err := seq.Run(context.Background(), remote, "tok")

	var rce *RemoteCallError
	require.ErrorAs(t, err, &rce)
	assert.Equal(t, "Get system", rce.Step)
	var apiErr *sdk.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Empty(t, results)
	assert.Equal(t, []string{"GET /systems/s1"}, events)
}

func TestSequenceTolerantKeepsEveryEntry(t *testing.T) {
	var events []string
	remote := newFakeRemote(&events)
	remote.errs["GET /c"] = errors.New("connection refused")

	seq := Sequence{Policy: Tolerant, Steps: []Step{
		GetStep("A", "/a"),
		GetStep("B", "/b"),
		GetStep("C", "/c"),
		GetStep("D", "/d"),
	}}

	results, err := seq.Run(context.Background(), remote, "tok")
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, []string{"GET /a", "GET /b", "GET /c", "GET /d"}, events)
	assert.Equal(t, "C", results[2].StringField("name"))
	assert.Equal(t, NotStarted, results[2].StringField("version"))
}

func TestSequenceCustomPlaceholder(t *testing.T) {
	var events []string
	remote := newFakeRemote(&events)
	remote.errs["GET /a"] = errors.New("boom")

	step := GetStep("A", "/a")
	step.Placeholder = func(err error) *sdk.Response {
		resp, _ := sdk.NewResponse(map[string]string{"error": err.Error()})
		return resp
	}

	results, err := Sequence{Policy: Tolerant, Steps: []Step{step}}.Run(context.Background(), remote, "tok")
	require.NoError(t, err)
	assert.Equal(t, "boom", results[0].StringField("error"))
}

func TestSequencePassesPriorResults(t *testing.T) {
	var events []string
	remote := newFakeRemote(&events)
	remote.responses["GET /first"] = &sdk.Response{Body: []byte(`{"id":"abc"}`)}

	var seen []*sdk.Response
	second := Step{Name: "second", Call: func(ctx context.Context, r Requester, token string, prior []*sdk.Response) (*sdk.Response, error) {
		seen = prior
		return r.Delete(ctx, "/items/"+prior[0].StringField("id"), token)
	}}

	results, err := Sequence{Steps: []Step{GetStep("first", "/first"), second}}.Run(context.Background(), remote, "tok")
	require.NoError(t, err)
	assert.Len(t, results, 2)
	require.Len(t, seen, 1)
	assert.Equal(t, []string{"GET /first", "DELETE /items/abc"}, events)
	assert.Equal(t, []string{"tok", "tok"}, remote.tokens)
}

func TestSequenceHonoursCancelledContext(t *testing.T) {
	var events []string
	remote := newFakeRemote(&events)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Single(GetStep("A", "/a")).Run(ctx, remote, "tok")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, events)
}
