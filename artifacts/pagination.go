package artifacts

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"net/url"
	"strconv"
)

// Page is one page of a paginated listing
type Page[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// HasMorePages checks if there are more pages to fetch
func (p *Page[T]) HasMorePages() bool {
	return p.Page < p.Pages
}

// NextPage returns the next page number, or ErrNoMorePages on the last page
func (p *Page[T]) NextPage() (int, error) {
	if !p.HasMorePages() {
		return 0, ErrNoMorePages
	}
	return p.Page + 1, nil
}

// fetchPage requests a single page of a listing
func fetchPage[T any](ctx context.Context, c *Client, r request, page int) (*Page[T], error) {
	query := url.Values{}
	maps.Copy(query, r.query)
	query.Set("page", strconv.Itoa(page))
	if c.pageSize > 0 {
		query.Set("size", strconv.Itoa(c.pageSize))
	}
	r.query = query

	status, raw, err := c.doRequest(ctx, r)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, decodeError(status, raw)
	}

	var p Page[T]
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &DecodeError{StatusCode: status, Body: string(raw), Err: err}
	}
	if p.Data == nil && !hasData(raw) {
		return nil, &DecodeError{StatusCode: status, Body: string(raw), Err: errMissingData}
	}
	return &p, nil
}

// sendPaginated walks pages 1..pages and concatenates their data.
// A failure on any page discards everything fetched so far.
func sendPaginated[T any](ctx context.Context, c *Client, r request) ([]T, error) {
	var results []T
	page := 1

	for {
		p, err := fetchPage[T](ctx, c, r, page)
		if err != nil {
			return nil, err
		}
		results = append(results, p.Data...)

		c.logger.Debug().
			Str("path", r.path).
			Int("page", page).
			Int("pages", p.Pages).
			Int("count", len(p.Data)).
			Int("total", len(results)).
			Msg("Retrieved page from ArtifactsMMO")

		if page >= p.Pages {
			break
		}
		page++
	}

	if results == nil {
		results = []T{}
	}
	return results, nil
}

// hasData reports whether a page body carries a non-null data field
func hasData(raw []byte) bool {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false
	}
	return !isNull(env.Data)
}
