package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/enokjanuario/primeholding/internal/client/models"
)

// Dashboard returns the investor's headline figures.
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardKPIs, error) {
	var kpis models.DashboardKPIs
	if err := c.get(ctx, "/dashboard", &kpis); err != nil {
		return nil, err
	}
	return &kpis, nil
}

// EvolucaoPatrimonio returns the equity evolution series.
func (c *Client) EvolucaoPatrimonio(ctx context.Context) ([]models.PontoPatrimonio, error) {
	var res listResponse[models.PontoPatrimonio]
	if err := c.get(ctx, "/evolucaoPatrimonio", &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// RentabilidadeMensal returns the monthly profitability series.
func (c *Client) RentabilidadeMensal(ctx context.Context) ([]models.PontoRentabilidade, error) {
	var res listResponse[models.PontoRentabilidade]
	if err := c.get(ctx, "/rentabilidadeMensal", &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// Movimentacoes returns the most recent statement lines, newest first.
func (c *Client) Movimentacoes(ctx context.Context, limit int) ([]models.Movimentacao, error) {
	var res listResponse[models.Movimentacao]
	if err := c.get(ctx, fmt.Sprintf("/movimentacoes?limit=%d", limit), &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// AdminDashboard returns the administrative headline figures (admin only).
func (c *Client) AdminDashboard(ctx context.Context) (*models.AdminKPIs, error) {
	var kpis models.AdminKPIs
	if err := c.get(ctx, "/adminDashboard", &kpis); err != nil {
		return nil, err
	}
	return &kpis, nil
}

// RegisterRentabilidade books a monthly profitability entry (admin only).
func (c *Client) RegisterRentabilidade(ctx context.Context, reg models.RegistroRentabilidade) error {
	return c.put(ctx, "/adminRentabilidade", reg, nil)
}

// ListRentabilidades returns booked profitability entries (admin only).
func (c *Client) ListRentabilidades(ctx context.Context, filtros url.Values) ([]models.Rentabilidade, error) {
	path := "/adminRentabilidade"
	if len(filtros) > 0 {
		path += "?" + filtros.Encode()
	}
	var res listResponse[models.Rentabilidade]
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// Auditoria returns the audit trail (admin only).
func (c *Client) Auditoria(ctx context.Context, filtros url.Values) ([]models.Auditoria, error) {
	path := "/adminAuditoria"
	if len(filtros) > 0 {
		path += "?" + filtros.Encode()
	}
	var res listResponse[models.Auditoria]
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}
