// Package hassvoice is a polling REST client for Home Assistant built for
// voice skills: it resolves spoken device names to entity ids by fuzzy
// matching, reads entity attributes for spoken answers, and invokes
// services.
package hassvoice

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"slices"
	"strconv"

	"resty.dev/v3"

	"github.com/Xevion/go-hass-voice/internal"
	"github.com/Xevion/go-hass-voice/types"
)

var ErrInvalidArgs = errors.New("invalid arguments provided")

// NetworkError and StatusError are the two transport-level failure modes
// every remote call can return; both can be matched with errors.As. They
// propagate to the caller uninterpreted, so the skill layer decides how to
// degrade.
type (
	NetworkError = internal.NetworkError
	StatusError  = internal.StatusError
)

// Client talks to one Home Assistant instance over its REST API. It holds
// no mutable state beyond the connection configuration, so it is safe for
// concurrent use; concurrent calls each perform their own catalog fetch.
type Client struct {
	config     Config
	httpClient *internal.HttpClient
}

// NewClient validates the configuration and builds a client. No network
// traffic happens until the first call.
func NewClient(config Config) (*Client, error) {
	if config.IPAddress == "" || config.Token == "" {
		slog.Error("IPAddress and Token are required fields in Config")
		return nil, ErrInvalidArgs
	}

	scheme := "http"
	if config.SSL {
		scheme = "https"
	}

	host := config.IPAddress
	if config.PortNumber != 0 {
		host = net.JoinHostPort(config.IPAddress, strconv.Itoa(config.PortNumber))
	}

	var tlsConfig *tls.Config
	if config.SSL && !config.VerifyTLS() {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	baseURL := &url.URL{Scheme: scheme, Host: host}

	return &Client{
		config:     config,
		httpClient: internal.NewHttpClient(baseURL, config.Token, tlsConfig),
	}, nil
}

// GetStates fetches the current state of every entity known to the server.
// The snapshot is not cached; each call answers with whatever the server
// holds right now.
func (c *Client) GetStates(ctx context.Context) ([]types.EntityState, error) {
	body, err := c.httpClient.GetStates(ctx)
	if err != nil {
		return nil, err
	}

	var states []types.EntityState
	if err := json.Unmarshal(body, &states); err != nil {
		return nil, fmt.Errorf("failed to decode state catalog: %w", err)
	}

	return states, nil
}

// Connected reports whether the server answers a state fetch. This is the
// one operation that swallows transport errors; it exists to give the
// skill a plain health signal.
func (c *Client) Connected(ctx context.Context) bool {
	_, err := c.httpClient.GetStates(ctx)
	return err == nil
}

// CallService invokes <domain>.<service> with the given payload and
// returns the raw response. Service calls change remote state and are not
// idempotent in general; whether to retry is the caller's decision.
func (c *Client) CallService(ctx context.Context, domain string, service string, data map[string]any) (*resty.Response, error) {
	return c.httpClient.CallService(ctx, domain, service, data)
}

// HasComponent reports whether the named component is loaded on the server.
func (c *Client) HasComponent(ctx context.Context, component string) (bool, error) {
	body, err := c.httpClient.GetComponents(ctx)
	if err != nil {
		return false, err
	}

	var components []string
	if err := json.Unmarshal(body, &components); err != nil {
		return false, fmt.Errorf("failed to decode component list: %w", err)
	}

	return slices.Contains(components, component), nil
}

// Converse sends one free-text turn to the conversation endpoint and
// returns the plain-text reply.
func (c *Client) Converse(ctx context.Context, utterance string) (string, error) {
	body, err := c.httpClient.Converse(ctx, map[string]string{"text": utterance})
	if err != nil {
		return "", err
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode conversation response: %w", err)
	}

	speech, ok := decoded["speech"].(map[string]any)
	if !ok {
		return "", errors.New("conversation response has no speech object")
	}
	plain, ok := speech["plain"].(map[string]any)
	if !ok {
		return "", errors.New("conversation response has no plain speech")
	}
	text, ok := plain["speech"].(string)
	if !ok {
		return "", errors.New("conversation response has no speech text")
	}

	return text, nil
}
