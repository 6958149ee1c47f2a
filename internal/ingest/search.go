package ingest

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

// Fetcher defines the search API operations used by the ingest command.
type Fetcher interface {
	FetchPatent(ctx context.Context, patentNumber string) ([]identity.Person, error)
	FetchByGrantDate(ctx context.Context, grantDate string) ([]identity.Person, error)
}

// SearchClient provides access to the patent search API.
type SearchClient struct {
	apiKey     string
	baseURL    string
	pageSize   int
	httpClient *http.Client
}

var _ Fetcher = (*SearchClient)(nil)

// SearchOption configures a SearchClient.
type SearchOption func(*SearchClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) SearchOption {
	return func(c *SearchClient) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewSearchClient creates a search API client.
func NewSearchClient(apiKey, baseURL string, timeout time.Duration, pageSize int, opts ...SearchOption) (*SearchClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("search api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("search base url required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if pageSize <= 0 {
		pageSize = 100
	}
	client := &SearchClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type searchResponse struct {
	Error     bool           `json:"error"`
	Count     int            `json:"count"`
	TotalHits int            `json:"total_hits"`
	Patents   []searchPatent `json:"patents"`
}

type searchPatent struct {
	PatentID  string           `json:"patent_id"`
	Inventors []searchInventor `json:"inventors"`
	Assignees []searchAssignee `json:"assignees"`
}

type searchInventor struct {
	First   string `json:"inventor_name_first"`
	Last    string `json:"inventor_name_last"`
	City    string `json:"inventor_city"`
	State   string `json:"inventor_state"`
	Country string `json:"inventor_country"`
}

type searchAssignee struct {
	Organization string `json:"assignee_organization"`
	First        string `json:"assignee_individual_name_first"`
	Last         string `json:"assignee_individual_name_last"`
	City         string `json:"assignee_city"`
	State        string `json:"assignee_state"`
	Country      string `json:"assignee_country"`
}

var searchFields = []string{
	"patent_id",
	"inventors.inventor_name_first", "inventors.inventor_name_last",
	"inventors.inventor_city", "inventors.inventor_state", "inventors.inventor_country",
	"assignees.assignee_organization",
	"assignees.assignee_individual_name_first", "assignees.assignee_individual_name_last",
	"assignees.assignee_city", "assignees.assignee_state", "assignees.assignee_country",
}

// FetchPatent returns the people attached to a single patent.
func (c *SearchClient) FetchPatent(ctx context.Context, patentNumber string) ([]identity.Person, error) {
	patentNumber = strings.TrimSpace(patentNumber)
	if patentNumber == "" {
		return nil, errors.New("patent number must not be empty")
	}
	query := map[string]any{"patent_id": patentNumber}
	page, _, err := c.fetchPage(ctx, query, "")
	if err != nil {
		return nil, err
	}
	return page, nil
}

// FetchByGrantDate returns everyone from patents granted on the supplied
// date (YYYY-MM-DD), following the cursor until the result set is exhausted.
func (c *SearchClient) FetchByGrantDate(ctx context.Context, grantDate string) ([]identity.Person, error) {
	grantDate = strings.TrimSpace(grantDate)
	if grantDate == "" {
		return nil, errors.New("grant date must not be empty")
	}
	query := map[string]any{"patent_date": grantDate}
	var people []identity.Person
	after := ""
	for {
		page, next, err := c.fetchPage(ctx, query, after)
		if err != nil {
			return nil, err
		}
		people = append(people, page...)
		if next == "" || next == after {
			return people, nil
		}
		after = next
	}
}

func (c *SearchClient) fetchPage(ctx context.Context, query map[string]any, after string) ([]identity.Person, string, error) {
	endpoint, err := url.Parse(c.baseURL + "/patent/")
	if err != nil {
		return nil, "", fmt.Errorf("parse search url: %w", err)
	}
	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, "", fmt.Errorf("encode search query: %w", err)
	}
	fieldsJSON, err := json.Marshal(searchFields)
	if err != nil {
		return nil, "", fmt.Errorf("encode search fields: %w", err)
	}
	options := map[string]any{"size": c.pageSize}
	if after != "" {
		options["after"] = after
	}
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return nil, "", fmt.Errorf("encode search options: %w", err)
	}

	params := url.Values{}
	params.Set("q", string(queryJSON))
	params.Set("f", string(fieldsJSON))
	params.Set("o", string(optionsJSON))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, "", fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("patent search returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, "", fmt.Errorf("decode search response: %w", err)
	}
	if payload.Error {
		return nil, "", errors.New("patent search reported an error payload")
	}

	var people []identity.Person
	lastID := ""
	for _, patent := range payload.Patents {
		lastID = patent.PatentID
		people = append(people, patentPeople(patent)...)
	}
	// A short page means the cursor is exhausted.
	if payload.Count < c.pageSize {
		return people, "", nil
	}
	return people, lastID, nil
}

func patentPeople(patent searchPatent) []identity.Person {
	people := make([]identity.Person, 0, len(patent.Inventors)+len(patent.Assignees))
	for _, inv := range patent.Inventors {
		if inv.First == "" && inv.Last == "" {
			continue
		}
		people = append(people, identity.Person{
			FirstName:    inv.First,
			LastName:     inv.Last,
			City:         inv.City,
			State:        inv.State,
			Country:      inv.Country,
			PersonType:   identity.TypeInventor,
			PatentNumber: patent.PatentID,
		})
	}
	for _, asg := range patent.Assignees {
		last := asg.Last
		if last == "" {
			last = asg.Organization
		}
		if asg.First == "" && last == "" {
			continue
		}
		people = append(people, identity.Person{
			FirstName:    asg.First,
			LastName:     last,
			City:         asg.City,
			State:        asg.State,
			Country:      asg.Country,
			PersonType:   identity.TypeAssignee,
			PatentNumber: patent.PatentID,
		})
	}
	return people
}
