package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/enokjanuario/primeholding/internal/client/models"
)

// PerfilUpdate carries the profile fields an investor may edit on their own
// account. Zero-valued fields are omitted so a partial update leaves the
// rest untouched.
type PerfilUpdate struct {
	Telefone     string `json:"telefone,omitempty"`
	Banco        string `json:"banco,omitempty"`
	Agencia      string `json:"agencia,omitempty"`
	Conta        string `json:"conta,omitempty"`
	TipoConta    string `json:"tipoConta,omitempty"`
	TitularConta string `json:"titularConta,omitempty"`
}

// UpdatePerfil updates the logged-in investor's contact and bank details.
func (c *Client) UpdatePerfil(ctx context.Context, dados PerfilUpdate) error {
	return c.put(ctx, "/perfil", dados, nil)
}

// ListInvestidores returns every investor account (admin only).
func (c *Client) ListInvestidores(ctx context.Context, filtros url.Values) ([]models.Investidor, error) {
	path := "/admin/investidores"
	if len(filtros) > 0 {
		path += "?" + filtros.Encode()
	}
	var res listResponse[models.Investidor]
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// CreateInvestidor registers a new investor account (admin only) and
// returns the id assigned by the backend.
func (c *Client) CreateInvestidor(ctx context.Context, novo models.NovoInvestidor) (string, error) {
	var res struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/admin/investidores", novo, &res); err != nil {
		return "", err
	}
	return res.ID, nil
}

// UpdateInvestidor updates an investor account, typically its status or
// linked SCPs (admin only).
func (c *Client) UpdateInvestidor(ctx context.Context, id string, inv models.Investidor) error {
	return c.put(ctx, fmt.Sprintf("/admin/investidores/%s", url.PathEscape(id)), inv, nil)
}
