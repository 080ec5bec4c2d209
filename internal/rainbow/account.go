package rainbow

import (
	"encoding/json"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/cli"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"
	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"
)

// Login signs in with the credentials held by session. The executor stores
// the returned token and user.
func Login(session *preferences.Session) cli.Command {
	return cli.Command{
		Action: "Sign in",
		Target: session.Email,
		Public: true,
		Render: connectedUser(session, false),
		Success: func([]*sdk.Response) string {
			return "Signed in as " + session.User.DisplayName()
		},
	}
}

// WhoAmI refreshes the session and shows the connected user.
func WhoAmI(session *preferences.Session) cli.Command {
	return cli.Command{
		Action: "Get information for connected user",
		Render: connectedUser(session, true),
	}
}

// connectedUser renders session.User once the session is established. With
// table false only machine-readable modes print it.
func connectedUser(session *preferences.Session, table bool) cli.RenderFunc {
	return func(f *cli.Formatter, _ []*sdk.Response) error {
		data, err := json.Marshal(session.User)
		if err != nil {
			return err
		}
		resp := &sdk.Response{Body: data, Data: data}
		if !table && !f.MachineReadable() {
			return nil
		}
		return f.Render(resp, cli.KeyValueView)
	}
}
