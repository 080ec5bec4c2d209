package cli

import "github.com/crazyrex/Rainbow-CLI-SDK/internal/preferences"

// EnsureAuthenticated reports whether session holds a token and a user, and
// tells the user which account is in use.
func EnsureAuthenticated(session *preferences.Session, n *Notifier) bool {
	if !session.IsAuthenticated() {
		n.NotLoggedIn()
		return false
	}
	n.LoggedIn(session.User.DisplayName())
	return true
}
