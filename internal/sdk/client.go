package sdk

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/crazyrex/Rainbow-CLI-SDK/pkg/logging"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	// RequestIDHeader correlates every request issued by one invocation.
	RequestIDHeader = "X-Request-Id"
	// appAuthHeader carries the application credentials on login.
	appAuthHeader = "x-rainbow-app-auth"

	loginPath = "/api/rainbow/authentication/v1.0/login"
)

// Credentials are the inputs of session establishment.
type Credentials struct {
	Email     string
	Password  string
	Host      string
	Proxy     string
	AppID     string
	AppSecret string
}

// Login is the outcome of a successful Start.
type Login struct {
	Token string
	User  map[string]interface{}
}

type loginBody struct {
	Token        string                 `json:"token"`
	LoggedInUser map[string]interface{} `json:"loggedInUser"`
}

// Client talks to one Rainbow platform.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	requestID  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a Client. No request can be issued before Start.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		userAgent:  "rbw",
		requestID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestID returns the correlation id sent with every request.
func (c *Client) RequestID() string {
	return c.requestID
}

// BaseURL returns the platform URL resolved by Start.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Start establishes a session: it resolves the host, applies the proxy and
// logs in with the given credentials.
func (c *Client) Start(ctx context.Context, creds Credentials) (*Login, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, fmt.Errorf("missing email or password")
	}
	if err := c.configureProxy(creds.Proxy); err != nil {
		return nil, err
	}
	c.baseURL = ResolveHost(creds.Host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+loginPath, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(creds.Email, creds.Password)
	if creds.AppID != "" && creds.AppSecret != "" {
		req.Header.Set(appAuthHeader, "Basic "+appAuth(creds.AppID, creds.AppSecret, creds.Password))
	}

	logging.Debug("SDK", "signing in %s on %s", creds.Email, c.baseURL)
	resp, err := c.send(c.httpClient, req, loginPath)
	if err != nil {
		return nil, err
	}

	var body loginBody
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("invalid login response: %w", err)
	}
	if body.Token == "" {
		return nil, fmt.Errorf("invalid login response: no token returned")
	}
	return &Login{Token: body.Token, User: body.LoggedInUser}, nil
}

// appAuth computes base64(appID:sha256hex(appSecret+password)).
func appAuth(appID, appSecret, password string) string {
	sum := sha256.Sum256([]byte(appSecret + password))
	return base64.StdEncoding.EncodeToString([]byte(appID + ":" + hex.EncodeToString(sum[:])))
}

func (c *Client) configureProxy(proxy string) error {
	if proxy == "" {
		return nil
	}
	proxyURL, err := url.Parse(proxy)
	if err != nil || proxyURL.Host == "" {
		return fmt.Errorf("invalid proxy %q", proxy)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if t, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport = t.Clone()
	}
	transport.Proxy = http.ProxyURL(proxyURL)
	c.httpClient = &http.Client{Transport: transport, Timeout: c.httpClient.Timeout}
	return nil
}

// Get issues an authenticated GET.
func (c *Client) Get(ctx context.Context, path, token string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, token, nil)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, path, token string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, token, body)
}

// Put issues an authenticated PUT with a JSON body. A nil body sends no content.
func (c *Client) Put(ctx context.Context, path, token string, body interface{}) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, token, body)
}

// Delete issues an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path, token string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, token, nil)
}

// Do issues a request against the started platform.
func (c *Client) Do(ctx context.Context, method, path, token string, body interface{}) (*Response, error) {
	if c.baseURL == "" {
		return nil, ErrNotStarted
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	hc := c.httpClient
	if token != "" {
		// oauth2.Transport attaches "Authorization: Bearer <token>" on top of
		// the proxy-aware base client.
		base := context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
		hc = oauth2.NewClient(base, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "Bearer",
		}))
	}

	logging.Debug("SDK", "%s %s", method, path)
	return c.send(hc, req, path)
}

func (c *Client) send(hc *http.Client, req *http.Request, path string) (*Response, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, c.requestID)

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: failed to read response: %w", req.Method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(req.Method, path, resp.StatusCode, data)
		logging.Debug("SDK", "%s %s answered %d", req.Method, path, resp.StatusCode)
		return nil, apiErr
	}
	return decodeResponse(resp.StatusCode, data)
}
