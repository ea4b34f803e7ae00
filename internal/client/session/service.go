// Package session implements the client's authentication lifecycle: the
// service translating session intents into backend calls, and the context
// holding "who is logged in right now" for the rest of the program.
package session

import (
	"context"
	"fmt"

	"github.com/enokjanuario/primeholding/internal/client/api"
	"github.com/enokjanuario/primeholding/internal/client/models"
	"github.com/enokjanuario/primeholding/internal/client/token"
	"github.com/enokjanuario/primeholding/internal/logging"
)

// Backend is the slice of the API client the session layer needs.
// *api.Client satisfies it; tests provide fakes.
type Backend interface {
	Login(ctx context.Context, email, senha string) (*api.LoginResult, error)
	Me(ctx context.Context) (*models.Investidor, error)
	ChangePassword(ctx context.Context, senhaAtual, novaSenha string) error
	RecoverPassword(ctx context.Context, email string) error
}

// Service defines the session operations available to the UI layer.
//
// Contract:
//   - Login: authenticate and persist the returned credential.
//   - CurrentUser: fetch the credential owner's profile; api.ErrUnauthenticated
//     without any network call when no credential is stored.
//   - ChangePassword: local policy check first, then the backend call.
//   - RecoverPassword: request a recovery email.
//   - Logout: clear the stored credential; local only, never fails.
//   - HasCredential: report whether a credential is stored.
type Service interface {
	Login(ctx context.Context, email, senha string) (*models.Investidor, error)
	CurrentUser(ctx context.Context) (*models.Investidor, error)
	ChangePassword(ctx context.Context, senhaAtual, novaSenha string) error
	RecoverPassword(ctx context.Context, email string) error
	Logout()
	HasCredential() bool
}

type service struct {
	backend Backend
	tokens  token.Store
	log     logging.Logger
}

// NewService constructs a Service bound to the given backend and token store.
func NewService(backend Backend, tokens token.Store, log logging.Logger) Service {
	if log == nil {
		log = logging.Nop()
	}
	return &service{backend: backend, tokens: tokens, log: log}
}

func (s *service) Login(ctx context.Context, email, senha string) (*models.Investidor, error) {
	res, err := s.backend.Login(ctx, email, senha)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Set(res.Token); err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}
	s.log.Info(ctx, "login ok", "email", email, "role", res.Investidor.Role)
	return &res.Investidor, nil
}

func (s *service) CurrentUser(ctx context.Context) (*models.Investidor, error) {
	if _, ok := s.tokens.Get(); !ok {
		return nil, api.ErrUnauthenticated
	}
	return s.backend.Me(ctx)
}

func (s *service) ChangePassword(ctx context.Context, senhaAtual, novaSenha string) error {
	if err := ValidatePassword(novaSenha); err != nil {
		return err
	}
	return s.backend.ChangePassword(ctx, senhaAtual, novaSenha)
}

func (s *service) RecoverPassword(ctx context.Context, email string) error {
	return s.backend.RecoverPassword(ctx, email)
}

func (s *service) Logout() {
	if err := s.tokens.Clear(); err != nil {
		// The credential file could not be removed; the session is still
		// over from the caller's point of view.
		s.log.Warn(context.Background(), "clear credential", "error", err)
	}
}

func (s *service) HasCredential() bool {
	_, ok := s.tokens.Get()
	return ok
}
