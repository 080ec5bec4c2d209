package rainbow

import (
	"context"
	"encoding/json"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"
)

// ServiceStatus is one line of the status report.
type ServiceStatus struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type about struct {
	Description string `json:"description"`
	Version     string `json:"version"`
}

// services are queried in this order; the label names a service that did
// not answer.
var services = []struct {
	label string
	path  string
}{
	{label: "Rainbow Admin Portal", path: endpoint(adminAPI, "about")},
	{label: "Rainbow Applications Portal", path: endpoint(applicationsAPI, "about")},
	{label: "Rainbow Authentication Portal", path: endpoint(authenticationAPI, "about")},
	{label: "Rainbow Subscription Portal", path: endpoint(subscriptionAPI, "about")},
}

func aboutStep(label, path string) cli.Step {
	return cli.Step{
		Name: label,
		Call: func(ctx context.Context, r cli.Requester, token string, _ []*sdk.Response) (*sdk.Response, error) {
			resp, err := r.Get(ctx, path, token)
			if err != nil {
				return nil, err
			}
			var a about
			if err := json.Unmarshal(resp.Body, &a); err != nil {
				return nil, err
			}
			name := a.Description
			if name == "" {
				name = label
			}
			return sdk.NewResponse(ServiceStatus{Name: name, Version: a.Version})
		},
	}
}

// Status reports the version of every platform service. A service that
// fails to answer is listed as not started instead of failing the command.
func Status() cli.Command {
	steps := make([]cli.Step, 0, len(services))
	for _, s := range services {
		steps = append(steps, aboutStep(s.label, s.path))
	}
	return cli.Command{
		Action:   "API status information",
		Sequence: cli.Sequence{Policy: cli.Tolerant, Steps: steps},
		Render: func(f *cli.Formatter, results []*sdk.Response) error {
			report, err := Aggregate(results)
			if err != nil {
				return err
			}
			return f.Render(report, cli.APIStatusView)
		},
	}
}

// Aggregate collects the per-service results into one list response.
func Aggregate(results []*sdk.Response) (*sdk.Response, error) {
	statuses := make([]ServiceStatus, 0, len(results))
	for _, r := range results {
		var s ServiceStatus
		if err := json.Unmarshal(r.Payload(), &s); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return sdk.NewResponse(statuses)
}
