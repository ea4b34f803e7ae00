package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/enokjanuario/primeholding/internal/client/models"
)

// ListAportes returns the logged-in investor's deposit notices.
func (c *Client) ListAportes(ctx context.Context) ([]models.Aporte, error) {
	var res listResponse[models.Aporte]
	if err := c.get(ctx, "/aportes", &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// createResult acknowledges a created record.
type createResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// RegisterAporte files a deposit notice and returns the new record's id.
func (c *Client) RegisterAporte(ctx context.Context, novo models.NovoAporte) (string, error) {
	var res createResult
	if err := c.post(ctx, "/aportes", novo, &res); err != nil {
		return "", err
	}
	return res.ID, nil
}

// ListAllAportes returns every deposit notice, optionally filtered
// (admin only; the backend rejects non-admin tokens).
func (c *Client) ListAllAportes(ctx context.Context, filtros url.Values) ([]models.Aporte, error) {
	path := "/admin/aportes"
	if len(filtros) > 0 {
		path += "?" + filtros.Encode()
	}
	var res listResponse[models.Aporte]
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// ProcessAporte records the admin decision on a deposit notice.
func (c *Client) ProcessAporte(ctx context.Context, id string, p models.ProcessamentoAporte) error {
	return c.put(ctx, fmt.Sprintf("/admin/aportes/%s", url.PathEscape(id)), p, nil)
}
