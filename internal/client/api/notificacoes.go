package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/enokjanuario/primeholding/internal/client/models"
)

// ListNotificacoes returns the logged-in investor's notifications.
func (c *Client) ListNotificacoes(ctx context.Context) ([]models.Notificacao, error) {
	var res listResponse[models.Notificacao]
	if err := c.get(ctx, "/notificacoes", &res); err != nil {
		return nil, err
	}
	return res.Dados, nil
}

// MarkNotificacaoLida marks a single notification as read.
func (c *Client) MarkNotificacaoLida(ctx context.Context, id string) error {
	return c.put(ctx, fmt.Sprintf("/notificacoes/%s/lida", url.PathEscape(id)), struct{}{}, nil)
}

// MarkTodasLidas marks every notification as read.
func (c *Client) MarkTodasLidas(ctx context.Context) error {
	return c.put(ctx, "/notificacoes/marcar-todas-lidas", struct{}{}, nil)
}

// CountNaoLidas returns the number of unread notifications.
func (c *Client) CountNaoLidas(ctx context.Context) (int, error) {
	var res struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/notificacoes/nao-lidas/count", &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}
