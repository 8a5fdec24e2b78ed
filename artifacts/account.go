package artifacts

import (
	"context"
	"net/http"
	"net/url"
)

// Status retrieves the server status. It doubles as a connection check.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	return get[Status](ctx, c, "/")
}

// TestConnection verifies the server is reachable and answering
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.Status(ctx)
	return err
}

// Character retrieves any character by name
func (c *Client) Character(ctx context.Context, name string) (*Character, error) {
	return get[Character](ctx, c, "/characters/"+url.PathEscape(name))
}

// MyCharacters retrieves the characters owned by the token's account
func (c *Client) MyCharacters(ctx context.Context) ([]Character, error) {
	return send[[]Character](ctx, c, request{method: http.MethodGet, path: "/my/characters"})
}

// BankItems retrieves every item stored in the account bank
func (c *Client) BankItems(ctx context.Context) ([]ItemComponent, error) {
	return list[ItemComponent](ctx, c, "/my/bank/items", nil)
}

// BankDetails retrieves the account bank summary
func (c *Client) BankDetails(ctx context.Context) (*BankDetails, error) {
	return get[BankDetails](ctx, c, "/my/bank")
}
