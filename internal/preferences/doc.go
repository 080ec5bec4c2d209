// Package preferences persists the rbw session between invocations.
//
// Everything the CLI needs to re-establish a session with the Rainbow
// platform lives in a single YAML file, by default
// ~/.config/rbw/preferences.yaml:
//
//	email: johndoe@mycompany.com
//	password: Password_12345
//	host: sandbox
//	proxy: http://192.168.0.10:8080
//	appid: ece540802b5234e8b514e9067ae48fad
//	appsecret: TSIDA5LXbk1M10x
//	token: eyJhbGciOi...
//	user:
//	  id: 5978e048f8abe8ad97357f06
//	  loginEmail: johndoe@mycompany.com
//	  adminType: company_admin
//
// # Precedence
//
// Values are read from the file first and then overridden by environment
// variables prefixed with RBW_ (RBW_EMAIL, RBW_PASSWORD, RBW_HOST, RBW_PROXY,
// RBW_APPID, RBW_APPSECRET). Environment overrides are never written back to
// the file: updates are applied to the file content alone.
//
// # Concurrency
//
// Storage operations are safe within a single process. rbw runs exactly one
// command per process, so cross-process locking is not attempted.
package preferences
