package api

import (
	"context"

	"github.com/enokjanuario/primeholding/internal/client/models"
)

// LoginResult is the /login success payload.
type LoginResult struct {
	Token      string            `json:"token"`
	Investidor models.Investidor `json:"investidor"`
}

// Login exchanges an email/password pair for a bearer token and the
// authenticated profile. A rejection comes back as ErrInvalidCredentials.
// The token is NOT persisted here; that is the session service's job.
func (c *Client) Login(ctx context.Context, email, senha string) (*LoginResult, error) {
	body := struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}{Email: email, Senha: senha}

	var res LoginResult
	if err := c.post(ctx, "/login", body, &res); err != nil {
		// On this endpoint a 401 means the pair was wrong, not that the
		// session expired.
		return nil, reclassify(err, ErrUnauthenticated, ErrInvalidCredentials)
	}
	if res.Token == "" {
		return nil, &Error{Status: 200, Message: "resposta de login sem token", Kind: ErrServer}
	}
	return &res, nil
}

// Me fetches the profile of the credential's owner. A 401 means the token
// is absent, expired or revoked.
func (c *Client) Me(ctx context.Context) (*models.Investidor, error) {
	var inv models.Investidor
	if err := c.get(ctx, "/me", &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// ChangePassword asks the backend to replace the account password. A 401
// here means the current password did not match.
func (c *Client) ChangePassword(ctx context.Context, senhaAtual, novaSenha string) error {
	body := struct {
		SenhaAtual string `json:"senhaAtual"`
		NovaSenha  string `json:"novaSenha"`
	}{SenhaAtual: senhaAtual, NovaSenha: novaSenha}

	if err := c.put(ctx, "/perfil/senha", body, nil); err != nil {
		return reclassify(err, ErrUnauthenticated, ErrInvalidCredentials)
	}
	return nil
}

// RecoverPassword requests a password-recovery email. The backend answers
// 200 regardless of whether the address exists.
func (c *Client) RecoverPassword(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.post(ctx, "/recuperar-senha", body, nil)
}
