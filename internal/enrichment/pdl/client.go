package pdl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gazette/internal/identity"
)

// Lookuper defines the provider operations the backfill runner uses.
type Lookuper interface {
	EnrichPerson(ctx context.Context, person identity.Person) (map[string]any, error)
	RetrievePerson(ctx context.Context, providerID string) (map[string]any, error)
}

// Client provides access to the People Data Labs API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Lookuper = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a People Data Labs client.
func New(apiKey, baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("pdl api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("pdl base url required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// EnrichPerson performs an identity lookup for the supplied person. The
// response is an opaque JSON object; only the `data` sub-object is returned
// when the provider wraps its payload.
func (c *Client) EnrichPerson(ctx context.Context, person identity.Person) (map[string]any, error) {
	first := strings.TrimSpace(person.FirstName)
	last := strings.TrimSpace(person.LastName)
	if first == "" || last == "" {
		return nil, errors.New("person requires first and last name")
	}

	endpoint, err := url.Parse(c.baseURL + "/person/enrich")
	if err != nil {
		return nil, fmt.Errorf("parse pdl url: %w", err)
	}
	params := url.Values{}
	params.Set("first_name", first)
	params.Set("last_name", last)
	if city := strings.TrimSpace(person.City); city != "" {
		params.Set("locality", city)
	}
	if state := strings.TrimSpace(person.State); state != "" {
		params.Set("region", state)
	}
	if country := strings.TrimSpace(person.Country); country != "" {
		params.Set("country", country)
	}
	endpoint.RawQuery = params.Encode()

	return c.get(ctx, endpoint.String())
}

// RetrievePerson fetches a previously enriched record by its provider id.
func (c *Client) RetrievePerson(ctx context.Context, providerID string) (map[string]any, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, errors.New("provider id required")
	}
	endpoint, err := url.Parse(c.baseURL + "/person/retrieve/" + url.PathEscape(providerID))
	if err != nil {
		return nil, fmt.Errorf("parse pdl url: %w", err)
	}
	return c.get(ctx, endpoint.String())
}

func (c *Client) get(ctx context.Context, rawURL string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("pdl person not found (latency=%v)", latency)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pdl returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode pdl response: %w", err)
	}

	// The enrich endpoint wraps the person object in a data key; retrieve
	// returns it bare. Hand callers the person object either way.
	if data, ok := payload["data"].(map[string]any); ok {
		return data, nil
	}
	return payload, nil
}
