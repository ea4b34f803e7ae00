package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/enokjanuario/primeholding/internal/client/models"
)

// ListRelatorios returns the reports visible to the logged-in investor.
// Supported filters: tipo, periodo (e.g. "2025-01").
func (c *Client) ListRelatorios(ctx context.Context, filtros url.Values) ([]models.Relatorio, error) {
	path := "/relatorios"
	if len(filtros) > 0 {
		path += "?" + filtros.Encode()
	}
	var res listResponse[models.Relatorio]
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// RegisterDownload tells the backend a report was downloaded, for the
// audit trail.
func (c *Client) RegisterDownload(ctx context.Context, id string) error {
	return c.post(ctx, fmt.Sprintf("/relatorios/%s/download", url.PathEscape(id)), struct{}{}, nil)
}

// ListAllRelatorios returns every published report (admin only).
func (c *Client) ListAllRelatorios(ctx context.Context) ([]models.Relatorio, error) {
	var res listResponse[models.Relatorio]
	if err := c.get(ctx, "/admin/relatorios", &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// PublishRelatorio publishes a report and returns the new record's id
// (admin only).
func (c *Client) PublishRelatorio(ctx context.Context, novo models.NovoRelatorio) (string, error) {
	var res createResult
	if err := c.post(ctx, "/admin/relatorios", novo, &res); err != nil {
		return "", err
	}
	return res.ID, nil
}

// UpdateRelatorio updates a published report (admin only).
func (c *Client) UpdateRelatorio(ctx context.Context, id string, novo models.NovoRelatorio) error {
	return c.put(ctx, fmt.Sprintf("/admin/relatorios/%s", url.PathEscape(id)), novo, nil)
}

// RemoveRelatorio removes a published report (admin only).
func (c *Client) RemoveRelatorio(ctx context.Context, id string) error {
	return c.delete(ctx, fmt.Sprintf("/admin/relatorios/%s", url.PathEscape(id)))
}
