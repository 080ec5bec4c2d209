package rainbow

import (
	"context"
	"fmt"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"
)

// PBXTypes are the system types the platform accepts.
var PBXTypes = []string{"oxe", "oxo", "third_party"}

// Countries are the ISO 3166-1 alpha-3 codes offered when creating a system.
var Countries = []string{"FRA", "USA", "GBR", "DEU", "ESP", "ITA", "BEL", "CHE", "NLD", "CAN", "AUS", "IND", "CHN", "BRA"}

// ListSystems lists PBX systems, optionally those of one site.
func ListSystems(opts cli.Options) cli.Command {
	q := cli.PageQuery(opts.Page, opts.Limit)
	q.Set("format", "full")

	p := endpoint(adminAPI, "systems")
	if opts.SiteID != "" {
		p = endpoint(adminAPI, "sites", opts.SiteID, "systems")
	}
	return cli.Command{
		Action:   "List systems",
		Sequence: cli.Single(cli.GetStep("List systems", withQuery(p, q))),
		Render:   cli.ShowLast(cli.SystemsView),
	}
}

// GetSystem shows one system.
func GetSystem(id string) cli.Command {
	return cli.Command{
		Action:   "Request information for system",
		Target:   id,
		Sequence: cli.Single(cli.GetStep("Get system", endpoint(adminAPI, "systems", id))),
		Render:   cli.ShowLast(cli.KeyValueView),
		Success:  constant("System information retrieved successfully."),
	}
}

// NewSystem is the input of CreateSystem.
type NewSystem struct {
	Name    string
	SiteID  string
	Type    string
	Country string
}

// Body returns the creation payload.
func (s NewSystem) Body() map[string]interface{} {
	return map[string]interface{}{
		"name":                s.Name,
		"siteId":              s.SiteID,
		"type":                s.Type,
		"country":             s.Country,
		"pbxMainBundlePrefix": []string{"0"},
	}
}

// CreateSystem creates a system on a site.
func CreateSystem(s NewSystem) cli.Command {
	return cli.Command{
		Action:   "Request to create system",
		Target:   s.Name,
		Sequence: cli.Single(cli.PostStep("Create system", endpoint(adminAPI, "systems"), s.Body())),
		Success:  dataID(fmt.Sprintf("System '%s' has been successfully created with Id", s.Name)),
	}
}

// DeleteSystem removes a system after confirmation. It succeeds only once
// the platform has answered the delete.
func DeleteSystem(id string) cli.Command {
	return cli.Command{
		Action:       "Request to delete system",
		Target:       id,
		Destructive:  true,
		Confirmation: "Are you sure? It will definitively remove this system",
		Sequence:     cli.Single(cli.DeleteStep("Delete system", endpoint(adminAPI, "systems", id))),
		Success:      constant(fmt.Sprintf("System '%s' has been successfully deleted.", id)),
	}
}

// LinkSystem attaches an existing system to a site. The system is fetched
// first so an unknown id fails before the site is touched.
func LinkSystem(systemID, siteID string) cli.Command {
	link := cli.Step{
		Name: "Link system",
		Call: func(ctx context.Context, r cli.Requester, token string, prior []*sdk.Response) (*sdk.Response, error) {
			body := map[string]string{"systemId": systemIDFrom(prior, systemID)}
			return r.Post(ctx, endpoint(adminAPI, "sites", siteID, "systems"), token, body)
		},
	}
	return cli.Command{
		Action: "Request to link system",
		Target: systemID,
		Sequence: cli.Sequence{Policy: cli.FailFast, Steps: []cli.Step{
			cli.GetStep("Get system", endpoint(adminAPI, "systems", systemID)),
			link,
		}},
		Success: constant(fmt.Sprintf("System '%s' has been successfully linked to site %s", systemID, siteID)),
	}
}

// UnlinkSystem detaches a system from a site.
func UnlinkSystem(systemID, siteID string) cli.Command {
	unlink := cli.Step{
		Name: "Unlink system",
		Call: func(ctx context.Context, r cli.Requester, token string, prior []*sdk.Response) (*sdk.Response, error) {
			id := systemIDFrom(prior, systemID)
			return r.Delete(ctx, endpoint(adminAPI, "sites", siteID, "systems", id), token)
		},
	}
	return cli.Command{
		Action: "Request to unlink system",
		Target: systemID,
		Sequence: cli.Sequence{Policy: cli.FailFast, Steps: []cli.Step{
			cli.GetStep("Get system", endpoint(adminAPI, "systems", systemID)),
			unlink,
		}},
		Success: constant(fmt.Sprintf("System '%s' has been successfully unlinked from site %s", systemID, siteID)),
	}
}

// systemIDFrom returns the id of the fetched system, or fallback.
func systemIDFrom(prior []*sdk.Response, fallback string) string {
	if len(prior) == 0 {
		return fallback
	}
	record, err := cli.DecodeRecord(prior[0].Payload())
	if err != nil {
		return fallback
	}
	if id := cli.Field(record, "id").Cell(); id != "" {
		return id
	}
	return fallback
}
