package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"gazette/internal/identity"
)

// Client scrapes the directory site for one person at a time.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

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

// WithUserAgent overrides the browser user agent sent with scrape requests.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if strings.TrimSpace(agent) != "" {
			c.userAgent = agent
		}
	}
}

// New creates a directory scrape client.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("directory base url required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/140.0",
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

var (
	phonePattern    = regexp.MustCompile(`\(?\d{3}\)?[-. ]\d{3}[-. ]\d{4}`)
	locationPattern = regexp.MustCompile(`(?i)<span[^>]*class="[^"]*location[^"]*"[^>]*>([^<]+)</span>`)
	tagPattern      = regexp.MustCompile(`<[^>]+>`)
)

// LookupPerson fetches the listing page for a person and extracts contact
// details. The result is an opaque payload; an empty page yields an empty
// map, which the staleness check treats as needing backfill.
func (c *Client) LookupPerson(ctx context.Context, person identity.Person) (map[string]any, error) {
	first := strings.TrimSpace(person.FirstName)
	last := strings.TrimSpace(person.LastName)
	if first == "" || last == "" {
		return nil, errors.New("person requires first and last name")
	}

	endpoint, err := url.Parse(c.baseURL + "/people")
	if err != nil {
		return nil, fmt.Errorf("parse directory url: %w", err)
	}
	params := url.Values{}
	params.Set("name", first+" "+last)
	if state := strings.TrimSpace(person.State); state != "" {
		params.Set("state", state)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned %d (latency=%v)", resp.StatusCode, latency)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read directory page: %w", err)
	}

	return extractListing(string(body), first, last), nil
}

func extractListing(page, first, last string) map[string]any {
	payload := map[string]any{}

	phones := dedupeStrings(phonePattern.FindAllString(page, -1))
	if len(phones) > 0 {
		payload["phone_numbers"] = toAnySlice(phones)
	}

	var locations []string
	for _, match := range locationPattern.FindAllStringSubmatch(page, -1) {
		if cleaned := strings.TrimSpace(tagPattern.ReplaceAllString(match[1], "")); cleaned != "" {
			locations = append(locations, cleaned)
		}
	}
	locations = dedupeStrings(locations)
	if len(locations) > 0 {
		payload["location_names"] = toAnySlice(locations)
	}

	if len(payload) > 0 {
		payload["full_name"] = first + " " + last
		payload["source"] = "directory"
	}
	return payload
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

func toAnySlice(values []string) []any {
	out := make([]any, 0, len(values))
	for _, value := range values {
		out = append(out, value)
	}
	return out
}
