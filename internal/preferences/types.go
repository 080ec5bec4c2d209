package preferences

import (
	"fmt"
	"strings"
)

// EnvPrefix is the prefix of environment variables overriding stored preferences.
const EnvPrefix = "RBW_"

// User is the connected user record as returned by the authentication service.
// It is kept as a loose map because the CLI only reads a handful of fields
// and displays the rest verbatim.
type User map[string]interface{}

// Field returns the string value of key, or an empty string when the key is
// absent or not a string.
func (u User) Field(key string) string {
	if u == nil {
		return ""
	}
	if v, ok := u[key].(string); ok {
		return v
	}
	return ""
}

// ID returns the user identifier.
func (u User) ID() string { return u.Field("id") }

// AdminType returns the administration profile (company_admin, organization_admin, superadmin...).
func (u User) AdminType() string { return u.Field("adminType") }

// CompanyID returns the company the user belongs to.
func (u User) CompanyID() string { return u.Field("companyId") }

// OrganisationID returns the organisation the user belongs to.
func (u User) OrganisationID() string { return u.Field("organisationId") }

// DisplayName returns the best human-readable name available for the user.
func (u User) DisplayName() string {
	if name := u.Field("displayName"); name != "" {
		return name
	}
	if name := strings.TrimSpace(u.Field("firstName") + " " + u.Field("lastName")); name != "" {
		return name
	}
	return u.Field("loginEmail")
}

// Session is the cached credentials plus the token obtained from the remote
// service. It is passed explicitly to every command; there is no process-wide
// instance.
type Session struct {
	Email     string `yaml:"email,omitempty" koanf:"email"`
	Password  string `yaml:"password,omitempty" koanf:"password"`
	Host      string `yaml:"host,omitempty" koanf:"host"`
	Proxy     string `yaml:"proxy,omitempty" koanf:"proxy"`
	AppID     string `yaml:"appid,omitempty" koanf:"appid"`
	AppSecret string `yaml:"appsecret,omitempty" koanf:"appsecret"`
	Token     string `yaml:"token,omitempty" koanf:"token"`
	User      User   `yaml:"user,omitempty" koanf:"user"`
}

// IsAuthenticated reports whether both a token and a user are cached.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != "" && len(s.User) > 0
}

// Clear forgets the token and user. Credentials are kept so that a later
// login can reuse them.
func (s *Session) Clear() {
	s.Token = ""
	s.User = nil
}

// HasKeys reports whether application credentials are configured.
func (s *Session) HasKeys() bool {
	return s.AppID != "" && s.AppSecret != ""
}

// Masked returns the stored preferences as ordered name/value pairs with
// secrets hidden, suitable for display.
func (s *Session) Masked() [][2]string {
	return [][2]string{
		{"email", s.Email},
		{"password", mask(s.Password)},
		{"host", s.Host},
		{"proxy", s.Proxy},
		{"appid", s.AppID},
		{"appsecret", mask(s.AppSecret)},
		{"token", mask(s.Token)},
		{"user", s.User.ID()},
	}
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return fmt.Sprintf("%s (%d chars)", strings.Repeat("*", 8), len(secret))
}
