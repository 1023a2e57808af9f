package scryfall

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// MaxCollectionIdentifiers is the identifier limit the collection
	// endpoint accepts per call.
	MaxCollectionIdentifiers = 75

	// DefaultRequestDelay paces consecutive API calls. The published
	// guidance asks clients to leave 50-100ms between requests.
	DefaultRequestDelay = 100 * time.Millisecond
)

// Identifier addresses exactly one printing in a collection lookup. Exactly
// one identifier shape should be populated: an ID, a numeric catalog ID, a
// set/collector-number pair, a name/set pair, or a bare name.
type Identifier struct {
	ID              string `json:"id,omitempty"`
	MultiverseID    int64  `json:"multiverse_id,omitempty"`
	MTGOID          int64  `json:"mtgo_id,omitempty"`
	Set             string `json:"set,omitempty"`
	CollectorNumber string `json:"collector_number,omitempty"`
	Name            string `json:"name,omitempty"`
}

// CollectionResult is the decoded payload of a collection lookup.
type CollectionResult struct {
	Cards    []Card
	NotFound []Identifier
}

type collectionRequest struct {
	Identifiers []Identifier `json:"identifiers"`
}

type collectionResponse struct {
	Object   string       `json:"object"`
	Data     []Card       `json:"data"`
	NotFound []Identifier `json:"not_found"`
}

type listResponse struct {
	Object     string `json:"object"`
	TotalCards int    `json:"total_cards"`
	HasMore    bool   `json:"has_more"`
	Data       []Card `json:"data"`
}

// SearchOptions contains optional filters for a card search.
type SearchOptions struct {
	Set             string
	CollectorNumber string
	Language        string
}

// Service defines the card database operations used by the lookup pipeline.
type Service interface {
	Collection(ctx context.Context, identifiers []Identifier) (*CollectionResult, error)
	Search(ctx context.Context, name string, opts SearchOptions) ([]Card, error)
}

// Client provides access to the card database API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Service = (*Client)(nil)

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

// WithRequestDelay overrides the pacing between consecutive requests.
// A zero delay disables pacing entirely, which is only appropriate in tests.
func WithRequestDelay(delay time.Duration) Option {
	return func(c *Client) {
		if delay <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(delay), 1)
	}
}

// New creates a card database client.
func New(baseURL, userAgent string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("scryfall base url required")
	}
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil, errors.New("scryfall user agent required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(DefaultRequestDelay), 1),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Collection resolves up to MaxCollectionIdentifiers identifiers in a single
// call. Identifiers the database cannot resolve come back in NotFound rather
// than failing the call.
func (c *Client) Collection(ctx context.Context, identifiers []Identifier) (*CollectionResult, error) {
	if len(identifiers) == 0 {
		return &CollectionResult{}, nil
	}
	if len(identifiers) > MaxCollectionIdentifiers {
		return nil, fmt.Errorf("collection lookup limited to %d identifiers, got %d", MaxCollectionIdentifiers, len(identifiers))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for request slot: %w", err)
	}

	body, err := json.Marshal(collectionRequest{Identifiers: identifiers})
	if err != nil {
		return nil, fmt.Errorf("encode collection request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/cards/collection", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setCommonHeaders(req)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("collection lookup returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload collectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode collection response: %w", err)
	}
	return &CollectionResult{Cards: payload.Data, NotFound: payload.NotFound}, nil
}

// Search performs a full-text card search. The name is matched exactly when
// provided; set, collector number, and language filters narrow the printing.
// An empty result is not an error: the database answers "no matches" with a
// 404, which Search translates to an empty slice.
func (c *Client) Search(ctx context.Context, name string, opts SearchOptions) ([]Card, error) {
	query := buildSearchQuery(name, opts)
	if query == "" {
		return nil, errors.New("search requires a name or a set and collector number")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for request slot: %w", err)
	}

	endpoint, err := url.Parse(c.baseURL + "/cards/search")
	if err != nil {
		return nil, fmt.Errorf("parse search url: %w", err)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("unique", "prints")
	if opts.Language != "" {
		params.Set("include_multilingual", "true")
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.setCommonHeaders(req)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("card search returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload listResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return payload.Data, nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
}

func buildSearchQuery(name string, opts SearchOptions) string {
	parts := make([]string, 0, 4)
	if name = strings.TrimSpace(name); name != "" {
		parts = append(parts, `!"`+name+`"`)
	}
	if set := strings.TrimSpace(opts.Set); set != "" {
		parts = append(parts, "e:"+strings.ToLower(set))
	}
	if number := strings.TrimSpace(opts.CollectorNumber); number != "" {
		parts = append(parts, "cn:"+number)
	}
	if lang := strings.TrimSpace(opts.Language); lang != "" {
		parts = append(parts, "lang:"+strings.ToLower(lang))
	}
	if len(parts) == 0 {
		return ""
	}
	if name == "" && (opts.Set == "" || opts.CollectorNumber == "") {
		return ""
	}
	return strings.Join(parts, " ")
}
