package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-sitecontent/content"
)

// Client consumes the content query API over HTTP. It mirrors what the page
// components do in the browser: list a collection, fetch one record by slug.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the API mounted at baseURL (e.g.
// "http://localhost:8080/api"). When httpClient is nil a default with a
// 10 second timeout is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type listEnvelope struct {
	Articles []content.Record `json:"articles"`
	Featured *content.Record  `json:"featured"`
}

type detailEnvelope struct {
	Tutorial *content.Record `json:"tutorial"`
}

// List fetches the collection listing together with the featured record.
func (c *Client) List(ctx context.Context, collection string) ([]content.Record, *content.Record, error) {
	var envelope listEnvelope
	if err := c.get(ctx, c.baseURL+"/"+url.PathEscape(collection), &envelope); err != nil {
		return nil, nil, err
	}
	return envelope.Articles, envelope.Featured, nil
}

// Get fetches a single record by slug, optionally scoped to a category
// partition. Missing records surface as *content.NotFoundError so callers
// can distinguish the not-found state from transport failures.
func (c *Client) Get(ctx context.Context, collection, category, slug string) (*content.Record, error) {
	query := url.Values{"slug": {slug}}
	if strings.TrimSpace(category) != "" {
		query.Set("category", category)
	}

	var envelope detailEnvelope
	endpoint := c.baseURL + "/" + url.PathEscape(collection) + "?" + query.Encode()
	if err := c.get(ctx, endpoint, &envelope); err != nil {
		return nil, err
	}
	if envelope.Tutorial == nil {
		return nil, &content.NotFoundError{Resource: "content", Key: slug}
	}
	return envelope.Tutorial, nil
}

// Load drives a session through one fetch round trip.
func (c *Client) Load(ctx context.Context, session *Session, collection, category string) {
	record, err := c.Get(ctx, collection, category, session.Slug())
	session.Complete(session.Slug(), record, err)
}

func (c *Client) get(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("reader client: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("reader client: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &content.NotFoundError{Resource: "content", Key: endpoint}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("reader client: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("reader client: decode response: %w", err)
	}
	return nil
}
