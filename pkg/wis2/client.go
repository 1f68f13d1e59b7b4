// Package wis2 implements the remote WIS2 catalogue pipeline: querying a
// Global Discovery Catalogue (an OGC API - Records collection of WCMP2
// documents), fetching its bulk archive and analyzing extracted records.
package wis2

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wmo-im/wiscat/pkg/log"
)

var logger = log.ForService("wis2")

// ErrNotFound signals that a record identifier does not exist in the
// catalogue.
var ErrNotFound = errors.New("record not found")

const titleMaxLen = 50

// Client queries one GDC collection endpoint. The base URL is threaded in
// explicitly by the caller (resolved from config and environment at the
// CLI boundary); there is no process-global endpoint state.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the collection at baseURL, e.g.
// https://api.weather.gc.ca/collections/wis2-discovery-metadata.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SearchOptions are the recognized GDC query filters. Zero values are
// omitted from the outbound query.
type SearchOptions struct {
	// Query is a free-text filter; slashes are escaped on the wire.
	Query string
	// BBox is a comma-separated minx,miny,maxx,maxy. Validated as four
	// floats but transmitted verbatim.
	BBox string
	// Begin and End bound the time range (RFC3339). An open side is sent
	// as the ".." wildcard.
	Begin string
	End   string
	// SortBy is "<property>[:A|D]"; direction defaults to ascending.
	SortBy string
	// CentreID is folded into the free-text filter as an additional
	// required term.
	CentreID string
	// DataPolicy filters on the record data policy (core or recommended).
	DataPolicy string
	Limit      int
	Offset     int
}

// Record is one display-ready search result.
type Record struct {
	ID         string `json:"id"`
	Centre     string `json:"centre"`
	Title      string `json:"title"`
	Topic      string `json:"topic,omitempty"`
	DataPolicy string `json:"data_policy"`
}

// SearchResults is the reshaped response of one catalogue query.
type SearchResults struct {
	Matched  int      `json:"matched"`
	Returned int      `json:"returned"`
	Records  []Record `json:"records"`
}

// Link is one hyperlink of a catalogue record.
type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

// FullRecord is a single record fetched by identifier, carrying the
// fields the detail view renders.
type FullRecord struct {
	ID          string
	Title       string
	Description string
	DataPolicy  string
	Links       []Link
	// URL is the catalogue URL the record was fetched from.
	URL string
}

type featureProperties struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	DataPolicy     json.RawMessage `json:"wmo:dataPolicy"`
	TopicHierarchy string          `json:"wmo:topicHierarchy"`
}

type feature struct {
	ID         string            `json:"id"`
	Properties featureProperties `json:"properties"`
	Links      []Link            `json:"links"`
}

type featureCollection struct {
	NumberMatched  int       `json:"numberMatched"`
	NumberReturned int       `json:"numberReturned"`
	Features       []feature `json:"features"`
}

// buildParams translates opts into outbound query parameters.
func buildParams(opts SearchOptions) (url.Values, error) {
	params := url.Values{}

	q := opts.Query
	if opts.CentreID != "" {
		q = strings.TrimSpace(q + " " + opts.CentreID)
	}
	if q != "" {
		params.Set("q", strings.ReplaceAll(q, "/", `\/`))
	}

	if opts.BBox != "" {
		parts := strings.Split(opts.BBox, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("bbox must have 4 values, got %d", len(parts))
		}
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
			if _, err := strconv.ParseFloat(parts[i], 64); err != nil {
				return nil, fmt.Errorf("invalid bbox value %q", p)
			}
		}
		params.Set("bbox", strings.Join(parts, ","))
	}

	if opts.Begin != "" || opts.End != "" {
		begin, end := opts.Begin, opts.End
		if begin == "" {
			begin = ".."
		}
		if end == "" {
			end = ".."
		}
		params.Set("datetime", begin+"/"+end)
	}

	if opts.SortBy != "" {
		sortby := opts.SortBy
		if !strings.Contains(sortby, ":") {
			sortby += ":A"
		}
		params.Set("sortby", sortby)
	}

	if opts.DataPolicy != "" {
		params.Set("wmo:dataPolicy", opts.DataPolicy)
	}

	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		params.Set("offset", strconv.Itoa(opts.Offset))
	}

	return params, nil
}

// Search runs one paginated query against the collection items endpoint
// and reshapes the feature list into display-ready records. Malformed
// features are logged and dropped; a non-2xx response fails the query.
func (c *Client) Search(ctx context.Context, opts SearchOptions) (*SearchResults, error) {
	params, err := buildParams(opts)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/items"
	logger.Debugf("query parameters: %v", params)

	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var collection featureCollection
	if err := json.Unmarshal(body, &collection); err != nil {
		return nil, fmt.Errorf("decoding catalogue response: %w", err)
	}

	results := &SearchResults{
		Matched:  collection.NumberMatched,
		Returned: collection.NumberReturned,
		Records:  []Record{},
	}

	for _, item := range collection.Features {
		if item.ID == "" {
			logger.Warnf("dropping feature without id")
			continue
		}

		_, centre := CountryAndCentre(item.ID)

		results.Records = append(results.Records, Record{
			ID:         item.ID,
			Centre:     centre,
			Title:      truncateTitle(item.Properties.Title),
			Topic:      item.Properties.TopicHierarchy,
			DataPolicy: dataPolicyLabel(item.Properties.DataPolicy),
		})
	}

	return results, nil
}

// GetRecord fetches one record by exact identifier. A missing identifier
// yields ErrNotFound rather than a generic HTTP failure.
func (c *Client) GetRecord(ctx context.Context, identifier string) (*FullRecord, error) {
	endpoint := c.baseURL + "/items/" + url.PathEscape(identifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying catalogue: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", identifier, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalogue returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue response: %w", err)
	}

	var item feature
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("decoding catalogue response: %w", err)
	}
	if item.ID == "" {
		return nil, fmt.Errorf("%s: %w", identifier, ErrNotFound)
	}

	return &FullRecord{
		ID:          item.ID,
		Title:       item.Properties.Title,
		Description: item.Properties.Description,
		DataPolicy:  dataPolicyLabel(item.Properties.DataPolicy),
		Links:       item.Links,
		URL:         endpoint,
	}, nil
}

// get issues one GET and returns the body, failing on non-2xx statuses.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}

	logger.Debugf("URL: %s", req.URL)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying catalogue: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warnf("catalogue error: %s", strings.TrimSpace(string(body)))
		return nil, fmt.Errorf("catalogue returned %s", resp.Status)
	}

	return body, nil
}

// truncateTitle shortens titles over 50 runes with an ellipsis suffix.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) > titleMaxLen {
		return string(runes[:titleMaxLen]) + "..."
	}
	return title
}

// dataPolicyLabel normalizes the wmo:dataPolicy property, which appears
// either as a bare string or as an object with a name field. A missing
// policy becomes the literal "missing" instead of failing the record.
func dataPolicyLabel(raw json.RawMessage) string {
	if len(raw) == 0 {
		logger.Warnf("missing wmo:dataPolicy")
		return "missing"
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Name != "" {
		return obj.Name
	}

	logger.Warnf("unrecognized wmo:dataPolicy value: %s", string(raw))
	return "missing"
}
