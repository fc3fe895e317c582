// http is used to interact with the home assistant
// REST API: the state catalog, the component list,
// service calls and the conversation endpoint.
package internal

import (
	"context"
	"crypto/tls"
	"net/url"
	"time"

	"resty.dev/v3"
)

var currentVersion = "0.1.0"

// requestTimeout bounds every remote call. There is no retry: a voice
// interaction is better off failing fast than executing a service twice.
const requestTimeout = 10 * time.Second

type HttpClient struct {
	client      *resty.Client
	baseRequest *resty.Request
}

// NewHttpClient builds the transport for one Home Assistant instance.
// tlsConfig may be nil to use the default certificate verification.
func NewHttpClient(baseUrl *url.URL, token string, tlsConfig *tls.Config) *HttpClient {
	// Shallow copy the URL to avoid modifying the original
	u := *baseUrl
	u.Path = "/api"

	client := resty.New().
		SetBaseURL(u.String()).
		SetTimeout(requestTimeout).
		SetHeader("User-Agent", "go-hass-voice/"+currentVersion)

	if tlsConfig != nil {
		client.SetTLSClientConfig(tlsConfig)
	}

	return &HttpClient{
		client: client,
		baseRequest: client.R().
			SetContentType("application/json").
			SetHeader("Accept", "application/json").
			SetAuthToken(token),
	}
}

// getRequest returns a new request bound to the caller's context.
func (c *HttpClient) getRequest(ctx context.Context) *resty.Request {
	return c.baseRequest.Clone(ctx)
}

// check maps the two failure modes of a call: transport errors become
// NetworkError, completed non-2xx exchanges become StatusError.
func check(resp *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode() >= 400 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       resp.Bytes(),
		}
	}

	return resp, nil
}

// GetStates returns the raw state catalog of every entity known to the server.
func (c *HttpClient) GetStates(ctx context.Context) ([]byte, error) {
	resp, err := check(c.getRequest(ctx).Get("/states"))
	if err != nil {
		return nil, err
	}

	return resp.Bytes(), nil
}

// GetComponents returns the raw list of components loaded on the server.
func (c *HttpClient) GetComponents(ctx context.Context) ([]byte, error) {
	resp, err := check(c.getRequest(ctx).Get("/components"))
	if err != nil {
		return nil, err
	}

	return resp.Bytes(), nil
}

// CallService posts a service call payload to /services/<domain>/<service>
// and returns the raw response.
func (c *HttpClient) CallService(ctx context.Context, domain string, service string, data any) (*resty.Response, error) {
	return check(c.getRequest(ctx).SetBody(data).Post("/services/" + domain + "/" + service))
}

// Converse posts one conversation turn and returns the raw response body.
func (c *HttpClient) Converse(ctx context.Context, body any) ([]byte, error) {
	resp, err := check(c.getRequest(ctx).SetBody(body).Post("/conversation/process"))
	if err != nil {
		return nil, err
	}

	return resp.Bytes(), nil
}
