package artifacts

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	out, err := send[T](ctx, c, request{method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func list[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	return sendPaginated[T](ctx, c, request{method: http.MethodGet, path: path, query: query})
}

// Items retrieves every item definition
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	return list[Item](ctx, c, "/items", nil)
}

// Item retrieves a single item definition
func (c *Client) Item(ctx context.Context, code string) (*Item, error) {
	return get[Item](ctx, c, "/items/"+url.PathEscape(code))
}

// Resources retrieves every resource definition
func (c *Client) Resources(ctx context.Context) ([]Resource, error) {
	return list[Resource](ctx, c, "/resources", nil)
}

// ResourcesDropping retrieves the resources that can yield the given item
func (c *Client) ResourcesDropping(ctx context.Context, code string) ([]Resource, error) {
	return list[Resource](ctx, c, "/resources", url.Values{"drop": {code}})
}

// Resource retrieves a single resource definition
func (c *Client) Resource(ctx context.Context, code string) (*Resource, error) {
	return get[Resource](ctx, c, "/resources/"+url.PathEscape(code))
}

// Maps retrieves every map tile
func (c *Client) Maps(ctx context.Context) ([]Map, error) {
	return list[Map](ctx, c, "/maps", nil)
}

// MapsByContent retrieves the tiles holding the given content. Empty
// arguments are not sent.
func (c *Client) MapsByContent(ctx context.Context, contentType MapContentType, contentCode string) ([]Map, error) {
	query := url.Values{}
	if contentType != "" {
		query.Set("content_type", string(contentType))
	}
	if contentCode != "" {
		query.Set("content_code", contentCode)
	}
	return list[Map](ctx, c, "/maps", query)
}

// Map retrieves the tile at (x, y)
func (c *Client) Map(ctx context.Context, x, y int) (*Map, error) {
	return get[Map](ctx, c, fmt.Sprintf("/maps/%d/%d", x, y))
}

// Monsters retrieves every monster definition
func (c *Client) Monsters(ctx context.Context) ([]Monster, error) {
	return list[Monster](ctx, c, "/monsters", nil)
}

// Monster retrieves a single monster definition
func (c *Client) Monster(ctx context.Context, code string) (*Monster, error) {
	return get[Monster](ctx, c, "/monsters/"+url.PathEscape(code))
}
