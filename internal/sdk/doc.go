// Package sdk is the HTTP transport to the Rainbow platform.
//
// A Client is created once per command. Start establishes a session with the
// stored credentials and returns the bearer token plus the connected user;
// the request helpers then issue authenticated calls:
//
//	client := sdk.NewClient(sdk.WithUserAgent("rbw/1.2.0"))
//	login, err := client.Start(ctx, sdk.Credentials{Email: e, Password: p, Host: "sandbox"})
//	resp, err := client.Get(ctx, "/api/rainbow/admin/v1.0/users?format=small", login.Token)
//
// Every response body is kept verbatim in Response.Body; the conventional
// {data, total, limit, offset} envelope is decoded alongside. Non-2xx
// responses are returned as *APIError carrying the platform's error message.
package sdk
