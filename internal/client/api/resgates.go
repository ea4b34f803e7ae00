package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/enokjanuario/primeholding/internal/client/models"
)

// ListResgates returns the logged-in investor's redemption requests.
func (c *Client) ListResgates(ctx context.Context) ([]models.Resgate, error) {
	var res listResponse[models.Resgate]
	if err := c.get(ctx, "/resgates", &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// RequestResgate files a redemption request and returns the new record's id.
func (c *Client) RequestResgate(ctx context.Context, novo models.NovoResgate) (string, error) {
	var res createResult
	if err := c.post(ctx, "/resgates", novo, &res); err != nil {
		return "", err
	}
	return res.ID, nil
}

// ListAllResgates returns every redemption request, optionally filtered
// (admin only).
func (c *Client) ListAllResgates(ctx context.Context, filtros url.Values) ([]models.Resgate, error) {
	path := "/admin/resgates"
	if len(filtros) > 0 {
		path += "?" + filtros.Encode()
	}
	var res listResponse[models.Resgate]
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// ProcessResgate records the admin decision on a redemption request.
func (c *Client) ProcessResgate(ctx context.Context, id string, p models.ProcessamentoResgate) error {
	return c.put(ctx, fmt.Sprintf("/admin/resgates/%s", url.PathEscape(id)), p, nil)
}
