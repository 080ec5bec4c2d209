package rainbow

import (
	"fmt"
	"net/url"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"
)

const (
	adminTypeCompany      = "company_admin"
	adminTypeOrganization = "organization_admin"
)

// UsersQuery builds the filters of a user search. Without an explicit
// company, company and organization admins only see their own users.
func UsersQuery(opts cli.Options, caller preferences.User) url.Values {
	q := cli.PageQuery(opts.Page, opts.Limit)

	format := opts.Format
	if format == "" {
		format = "full"
	}
	q.Set("format", format)

	switch {
	case opts.CompanyID != "":
		q.Set("companyId", opts.CompanyID)
	case caller.AdminType() == adminTypeCompany:
		q.Set("companyId", caller.CompanyID())
	case caller.AdminType() == adminTypeOrganization:
		q.Set("organisationId", caller.OrganisationID())
	}

	if opts.Name != "" {
		q.Set("displayName", opts.Name)
	}
	if opts.Company != "" {
		q.Set("companyName", opts.Company)
	}
	q.Set("isTerminated", fmt.Sprintf("%t", opts.OnlyTerminated))
	return q
}

// ListUsers searches users.
func ListUsers(opts cli.Options, caller preferences.User) cli.Command {
	q := UsersQuery(opts, caller)
	return cli.Command{
		Action:   "List users",
		Sequence: cli.Single(cli.GetStep("List users", withQuery(endpoint(adminAPI, "users"), q))),
		Render:   cli.ShowLast(cli.UsersView),
	}
}

// GetUser shows one user.
func GetUser(id string) cli.Command {
	return cli.Command{
		Action:   "Get information for user",
		Target:   id,
		Sequence: cli.Single(cli.GetStep("Get user", endpoint(adminAPI, "users", id))),
		Render:   cli.ShowLast(cli.KeyValueView),
		Success:  constant("User information retrieved successfully."),
	}
}

// NewUser is the input of CreateUser.
type NewUser struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	CompanyID string
	Admin     bool
}

// Body returns the creation payload.
func (u NewUser) Body() map[string]interface{} {
	body := map[string]interface{}{
		"loginEmail":    u.Email,
		"password":      u.Password,
		"firstName":     u.FirstName,
		"lastName":      u.LastName,
		"isActive":      true,
		"isInitialized": false,
		"language":      "en",
		"adminType":     "undefined",
		"roles":         []string{"user"},
		"accountType":   "free",
	}
	if u.CompanyID != "" {
		body["companyId"] = u.CompanyID
	}
	if u.Admin {
		body["roles"] = []string{"user", "admin"}
		body["adminType"] = adminTypeCompany
	}
	return body
}

// CreateUser creates a user and reports its id.
func CreateUser(u NewUser) cli.Command {
	return cli.Command{
		Action:   "Create new user",
		Target:   u.Email,
		Sequence: cli.Single(cli.PostStep("Create user", endpoint(adminAPI, "users"), u.Body())),
		Success:  dataID("User created with Id"),
	}
}

// DeleteUser removes a user after confirmation.
func DeleteUser(id string) cli.Command {
	return cli.Command{
		Action:       "Delete user",
		Target:       id,
		Destructive:  true,
		Confirmation: "Are you sure? It will remove it completely",
		Sequence:     cli.Single(cli.DeleteStep("Delete user", endpoint(adminAPI, "users", id))),
		Success:      constant("Successfully executed"),
	}
}

// ChangePassword replaces the password of a user.
func ChangePassword(id, password string) cli.Command {
	return cli.Command{
		Action: "Change password of user",
		Target: id,
		Sequence: cli.Single(cli.PutStep("Change password", endpoint(adminAPI, "users", id),
			map[string]string{"password": password})),
		Success: dataID("Password changed for user"),
	}
}

func constant(msg string) func([]*sdk.Response) string {
	return func([]*sdk.Response) string { return msg }
}

// dataID reports the id of the entity returned by the last call.
func dataID(label string) func([]*sdk.Response) string {
	return func(results []*sdk.Response) string {
		if len(results) == 0 {
			return label
		}
		record, err := cli.DecodeRecord(results[len(results)-1].Payload())
		if err != nil {
			return label
		}
		id := cli.Field(record, "id").Cell()
		if id == "" {
			return label
		}
		return fmt.Sprintf("%s '%s'", label, id)
	}
}
