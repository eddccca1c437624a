// Copyright (C) The BoM Analytics Go Authors. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package bomanalytics

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/grantami/bomanalytics-go/ctxlog"
)

// DefaultDatabaseKey is the key of the standard restricted substances
// database, used when Client.DatabaseKey is empty.
const DefaultDatabaseKey = "MI_Restricted_Substances"

// A Client is an HTTP client with a BoM Analytics Service Layer
// endpoint and a set of credentials.
//
// It carries the connection-level settings shared by every query:
// which database to query, optional table name overrides, timeouts and
// retries. Queries are run against a Client via their Run methods.
type Client struct {
	// HTTP client used to make requests. If nil,
	// DefaultSecureClient or InsecureHTTPClient will be used.
	Client *http.Client `json:"-"`

	// Protocol scheme: "http", "https", or "" (https)
	Scheme string

	// Hostname (or host:port) of the Granta MI server.
	APIHost string

	// Path of the BoM Analytics service below the host, without
	// leading or trailing slashes, e.g.
	// "mi_servicelayer/BomAnalytics/v1.svc".
	ServicePath string

	// Basic authentication credentials. Ignored if AuthToken is
	// set.
	Username string
	Password string

	// Bearer token, for servers configured with OIDC.
	AuthToken string

	// Key of the Granta MI database to run queries against.
	// Defaults to DefaultDatabaseKey.
	DatabaseKey string

	// Non-standard table names, sent with every query so the
	// service resolves references against the right tables.
	TableConfig TableConfig

	// Accept unverified certificates. This works only if the
	// Client field is nil: otherwise, it has no effect.
	Insecure bool

	// Maximum number of times to retry a request that fails with
	// a 5xx status or a transport error. Zero disables retries.
	MaxRetries int

	// HTTP headers to add/override in outgoing requests.
	SendHeader http.Header

	// Timeout for requests. NewClient and NewClientFromEnv return
	// a Client with a default 5 minute timeout. To disable this
	// timeout and rely on each http.Request's context deadline
	// instead, set Timeout to zero.
	Timeout time.Duration

	// ServicePath etc. were loaded from BOMANALYTICS_* env vars
	// (used to customize "no host" error messages)
	loadedFromEnv bool
}

// TableConfig overrides the default names of the tables queried by the
// Restricted Substances reports. Empty fields are omitted from request
// payloads and the service uses its defaults.
type TableConfig struct {
	MaterialUniverse string `json:"material_universe_table_name,omitempty"`
	InHouseMaterials string `json:"in_house_materials_table_name,omitempty"`
	Specifications   string `json:"specifications_table_name,omitempty"`
	ProductsAndParts string `json:"products_and_parts_table_name,omitempty"`
	Substances       string `json:"substances_table_name,omitempty"`
	Coatings         string `json:"coatings_table_name,omitempty"`
}

func (tc TableConfig) isZero() bool {
	return tc == TableConfig{}
}

// InsecureHTTPClient is the default http.Client used by a Client with
// Insecure==true and Client==nil.
var InsecureHTTPClient = &http.Client{
	Transport: &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true}}}

// DefaultSecureClient is the default http.Client used by a Client otherwise.
var DefaultSecureClient = &http.Client{}

// NewClient returns a Client for the BoM Analytics service exposed by
// the Granta MI Service Layer at the given URL, e.g.
// "https://example.com/mi_servicelayer".
//
// Credentials are left empty for the caller to populate.
func NewClient(serviceURL string) (*Client, error) {
	u, err := url.Parse(serviceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid service URL %q: %w", serviceURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("no host in service URL %q", serviceURL)
	}
	svcpath := strings.Trim(u.Path, "/")
	if svcpath != "" {
		svcpath += "/"
	}
	return &Client{
		Scheme:      u.Scheme,
		APIHost:     u.Host,
		ServicePath: svcpath + "BomAnalytics/v1.svc",
		Timeout:     5 * time.Minute,
	}, nil
}

// NewClientFromEnv creates a new Client with the endpoint and
// credentials given by the BOMANALYTICS_* environment variables:
// BOMANALYTICS_SERVICE_URL, BOMANALYTICS_USERNAME,
// BOMANALYTICS_PASSWORD, BOMANALYTICS_AUTH_TOKEN,
// BOMANALYTICS_DATABASE_KEY, and BOMANALYTICS_INSECURE.
func NewClientFromEnv() *Client {
	client := &Client{
		Scheme:  "https",
		Timeout: 5 * time.Minute,
	}
	if s := os.Getenv("BOMANALYTICS_SERVICE_URL"); s != "" {
		if c, err := NewClient(s); err == nil {
			client = c
		} else {
			ctxlog.FromContext(nil).WithError(err).Warn("BOMANALYTICS_SERVICE_URL is not a usable URL")
		}
	}
	client.Username = os.Getenv("BOMANALYTICS_USERNAME")
	client.Password = os.Getenv("BOMANALYTICS_PASSWORD")
	client.AuthToken = os.Getenv("BOMANALYTICS_AUTH_TOKEN")
	client.DatabaseKey = os.Getenv("BOMANALYTICS_DATABASE_KEY")
	if s := strings.ToLower(os.Getenv("BOMANALYTICS_INSECURE")); s == "1" || s == "yes" || s == "true" {
		client.Insecure = true
	}
	client.loadedFromEnv = true
	return client
}

// Do adds Authorization and X-Request-Id headers and then calls
// (*http.Client)Do().
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	} else if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	if req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}
	var cancel context.CancelFunc
	if c.Timeout > 0 {
		ctx := req.Context()
		ctx, cancel = context.WithDeadline(ctx, time.Now().Add(c.Timeout))
		req = req.WithContext(ctx)
	}
	resp, err := c.httpClient().Do(req)
	if err == nil && cancel != nil {
		// We need to call cancel() eventually, but we can't
		// use "defer cancel()" because the context has to
		// stay alive until the caller has finished reading
		// the response body.
		resp.Body = cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	} else if cancel != nil {
		cancel()
	}
	return resp, err
}

// cancelOnClose calls a provided CancelFunc when its wrapped
// ReadCloser's Close() method is called.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (coc cancelOnClose) Close() error {
	err := coc.ReadCloser.Close()
	coc.cancel()
	return err
}

// DoAndDecode performs req and unmarshals the response (which must be
// JSON) into dst. Use this instead of RequestAndDecode if you need
// more control of the http.Request object.
func (c *Client) DoAndDecode(dst interface{}, req *http.Request) error {
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	switch {
	case resp.StatusCode == http.StatusOK && dst == nil:
		return nil
	case resp.StatusCode == http.StatusOK:
		return json.Unmarshal(buf, dst)
	default:
		return newTransactionError(req, resp, buf)
	}
}

// RequestAndDecode performs an API request and unmarshals the response
// (which must be JSON) into dst. The given path is appended to the
// service's scheme/host/service path to form the request URL. A
// non-nil body is marshaled to JSON and sent as the request payload.
//
// path must not contain a query string.
func (c *Client) RequestAndDecode(dst interface{}, method, path string, body interface{}) error {
	return c.RequestAndDecodeContext(context.Background(), dst, method, path, body)
}

// RequestAndDecodeContext does the same as RequestAndDecode, but with a context
func (c *Client) RequestAndDecodeContext(ctx context.Context, dst interface{}, method, path string, body interface{}) error {
	if c.APIHost == "" {
		if c.loadedFromEnv {
			return errors.New("BOMANALYTICS_SERVICE_URL environment variable is not set")
		}
		return errors.New("bomanalytics.Client cannot perform request: APIHost is not set")
	}
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}
	urlString := c.apiURL(path)
	req, err := http.NewRequestWithContext(ctx, method, urlString, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.SendHeader {
		req.Header[k] = v
	}
	ctxlog.FromContext(ctx).WithFields(map[string]interface{}{
		"method": method,
		"url":    urlString,
	}).Debug("sending request")
	return c.DoAndDecode(dst, req)
}

// CheckConnection verifies that the Service Layer is reachable and
// accepts the client's credentials, without running a query.
func (c *Client) CheckConnection(ctx context.Context) error {
	err := c.RequestAndDecodeContext(ctx, nil, http.MethodGet, "", nil)
	if err != nil {
		return fmt.Errorf("cannot connect to BoM Analytics service: %w", err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	var base *http.Client
	switch {
	case c.Client != nil:
		base = c.Client
	case c.Insecure:
		base = InsecureHTTPClient
	default:
		base = DefaultSecureClient
	}
	if c.MaxRetries <= 0 {
		return base
	}
	rc := retryablehttp.NewClient()
	rc.HTTPClient = base
	rc.RetryMax = c.MaxRetries
	rc.Logger = nil
	return rc.StandardClient()
}

func (c *Client) apiURL(path string) string {
	scheme := c.Scheme
	if scheme == "" {
		scheme = "https"
	}
	u := scheme + "://" + c.APIHost + "/" + c.ServicePath
	if path != "" {
		u = strings.TrimSuffix(u, "/") + "/" + path
	}
	return u
}

func (c *Client) databaseKey() string {
	if c.DatabaseKey != "" {
		return c.DatabaseKey
	}
	return DefaultDatabaseKey
}

func (c *Client) tableConfig() *TableConfig {
	if c.TableConfig.isZero() {
		return nil
	}
	tc := c.TableConfig
	return &tc
}
