package sdk

import "strings"

const (
	// SandboxHost is the developer sandbox, used when no host is configured.
	SandboxHost = "https://sandbox.openrainbow.com"
	// OfficialHost is the production platform.
	OfficialHost = "https://openrainbow.com"
)

// ResolveHost maps the host preference to a base URL. "sandbox" and
// "official" are aliases, values carrying a scheme are used verbatim and
// anything else is treated as a hostname served over https.
func ResolveHost(host string) string {
	host = strings.TrimSpace(host)
	switch strings.ToLower(host) {
	case "", "sandbox":
		return SandboxHost
	case "official":
		return OfficialHost
	}
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return strings.TrimRight(host, "/")
	}
	return "https://" + strings.TrimRight(host, "/")
}
