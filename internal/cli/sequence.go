package cli

import (
	"context"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"
	"github.com/crazyrex/Rainbow-CLI-SDK/pkg/logging"
)

// Requester issues authenticated calls against the platform.
type Requester interface {
	Get(ctx context.Context, path, token string) (*sdk.Response, error)
	Post(ctx context.Context, path, token string, body interface{}) (*sdk.Response, error)
	Put(ctx context.Context, path, token string, body interface{}) (*sdk.Response, error)
	Delete(ctx context.Context, path, token string) (*sdk.Response, error)
}

// Remote is a Requester that can also sign in.
type Remote interface {
	Requester
	Start(ctx context.Context, creds sdk.Credentials) (*sdk.Login, error)
}

// Policy decides what a failing step does to the rest of a sequence.
type Policy int

const (
	// FailFast aborts the sequence at the first failing step.
	FailFast Policy = iota
	// Tolerant records a placeholder for a failing step and carries on.
	Tolerant
)

// CallFunc performs one remote call. prior holds the results of the steps
// already run, in order.
type CallFunc func(ctx context.Context, r Requester, token string, prior []*sdk.Response) (*sdk.Response, error)

// Step is one remote call of a command.
type Step struct {
	// Name identifies the step in errors and in placeholders.
	Name string
	// Call performs the request.
	Call CallFunc
	// Placeholder replaces a failed result under the Tolerant policy. When
	// nil the step name is used with a "Not started" version.
	Placeholder func(err error) *sdk.Response
}

// Sequence is the ordered list of calls a command makes.
type Sequence struct {
	Policy Policy
	Steps  []Step
}

// Single returns a fail-fast sequence of one step.
func Single(step Step) Sequence {
	return Sequence{Policy: FailFast, Steps: []Step{step}}
}

// Run executes the steps in order. Steps never overlap. Under FailFast the
// first error is returned as a *RemoteCallError and later steps are not
// issued. Under Tolerant every step runs and Run returns no error.
func (s Sequence) Run(ctx context.Context, r Requester, token string) ([]*sdk.Response, error) {
	results := make([]*sdk.Response, 0, len(s.Steps))
	for _, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return results, &RemoteCallError{Step: step.Name, Reason: err}
		}
		resp, err := step.Call(ctx, r, token, results)
		if err == nil {
			results = append(results, resp)
			continue
		}
		if s.Policy == FailFast {
			return results, &RemoteCallError{Step: step.Name, Reason: err}
		}
		logging.Debug("CLI", "%s failed, using placeholder: %v", step.Name, err)
		results = append(results, step.placeholder(err))
	}
	return results, nil
}

// NotStarted is the version shown for a service that did not answer.
const NotStarted = "Not started"

func (s Step) placeholder(err error) *sdk.Response {
	if s.Placeholder != nil {
		return s.Placeholder(err)
	}
	resp, _ := sdk.NewResponse(map[string]string{"name": s.Name, "version": NotStarted})
	return resp
}

// GetStep returns a step reading path.
func GetStep(name, path string) Step {
	return Step{Name: name, Call: func(ctx context.Context, r Requester, token string, _ []*sdk.Response) (*sdk.Response, error) {
		return r.Get(ctx, path, token)
	}}
}

// PostStep returns a step creating body at path.
func PostStep(name, path string, body interface{}) Step {
	return Step{Name: name, Call: func(ctx context.Context, r Requester, token string, _ []*sdk.Response) (*sdk.Response, error) {
		return r.Post(ctx, path, token, body)
	}}
}

// PutStep returns a step updating path with body.
func PutStep(name, path string, body interface{}) Step {
	return Step{Name: name, Call: func(ctx context.Context, r Requester, token string, _ []*sdk.Response) (*sdk.Response, error) {
		return r.Put(ctx, path, token, body)
	}}
}

// DeleteStep returns a step deleting path.
func DeleteStep(name, path string) Step {
	return Step{Name: name, Call: func(ctx context.Context, r Requester, token string, _ []*sdk.Response) (*sdk.Response, error) {
		return r.Delete(ctx, path, token)
	}}
}
