package rainbow

import (
	"net/url"
	"path"
)

const (
	adminAPI          = "/api/rainbow/admin/v1.0"
	applicationsAPI   = "/api/rainbow/applications/v1.0"
	authenticationAPI = "/api/rainbow/authentication/v1.0"
	subscriptionAPI   = "/api/rainbow/subscription/v1.0"
)

func endpoint(base string, elems ...string) string {
	escaped := make([]string, 0, len(elems)+1)
	escaped = append(escaped, base)
	for _, e := range elems {
		escaped = append(escaped, url.PathEscape(e))
	}
	return path.Join(escaped...)
}

func withQuery(p string, q url.Values) string {
	if len(q) == 0 {
		return p
	}
	return p + "?" + q.Encode()
}
