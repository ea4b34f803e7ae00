package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/enokjanuario/primeholding/internal/client/api"
	"github.com/enokjanuario/primeholding/internal/client/guard"
	"github.com/enokjanuario/primeholding/internal/client/render"
	"github.com/enokjanuario/primeholding/internal/client/session"
	"github.com/enokjanuario/primeholding/internal/common"
)

// Login is the login view. When a user is already authenticated the guard
// redirects to the role-appropriate home instead, exactly like the SPA's
// /login route.
func (a *App) Login(ctx context.Context) error {
	return a.visit(ctx, guard.Public, a.login)
}

func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	senha, err := getPassword("Senha", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(senha)

	if err := a.session.Login(ctx, email, string(senha)); err != nil {
		fmt.Fprintf(a.out, "Falha no login: %v\n", err)
		return err
	}

	user := a.currentUser()
	if user == nil {
		// The resolution was discarded because a logout (or a newer login)
		// superseded it; there is nobody to greet.
		return nil
	}
	fmt.Fprintf(a.out, "Olá, %s!\n", user.Nome)
	return nil
}

// Logout ends the session. Safe to call any number of times.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Sessão encerrada.")
	return nil
}

// Whoami prints the cached profile of the logged-in user.
func (a *App) Whoami(ctx context.Context) error {
	return a.visit(ctx, guard.AnyAuthenticated, func(context.Context) error {
		snap := a.session.Snapshot()
		u := snap.User
		fmt.Fprintf(a.out, "%s <%s> (%s)\n", u.Nome, u.Email, u.Role)
		if len(u.SCPsVinculadas) > 0 {
			fmt.Fprintf(a.out, "SCPs: %v\n", u.SCPsVinculadas)
		}
		if !snap.CheckedAt.IsZero() {
			fmt.Fprintf(a.out, "Sessão confirmada em %s\n", render.Moment(snap.CheckedAt))
		}
		return nil
	})
}

// Perfil refreshes the profile from the backend, prints it and offers to
// edit the phone and the bank details used to prefill redemptions.
func (a *App) Perfil(ctx context.Context) error {
	return a.visit(ctx, guard.AnyAuthenticated, a.perfil)
}

func (a *App) perfil(ctx context.Context) error {
	u, err := a.session.RefreshUser(ctx)
	if err != nil {
		if !a.isLoggedIn() {
			// The credential expired; the refresh already ended the session.
			fmt.Fprintln(a.out, "Sessão expirada. Faça login novamente.")
			return nil
		}
		fmt.Fprintf(a.out, "Não foi possível atualizar o perfil: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "%s <%s> (%s)\n", u.Nome, u.Email, u.Role)
	if u.CPF != "" {
		fmt.Fprintf(a.out, "CPF: %s\n", u.CPF)
	}
	if u.Telefone != "" {
		fmt.Fprintf(a.out, "Telefone: %s\n", u.Telefone)
	}
	if len(u.SCPsVinculadas) > 0 {
		fmt.Fprintf(a.out, "SCPs vinculadas: %v\n", u.SCPsVinculadas)
	}
	fmt.Fprintf(a.out, "Patrimônio atual: %s\n", render.BRL(u.PatrimonioAtual))
	if u.Banco != "" {
		fmt.Fprintf(a.out, "Conta: %s ag %s c/c %s (%s)\n", u.Banco, u.Agencia, u.Conta, u.TipoConta)
	}

	editar, err := GetYesNo(a.reader, "Atualizar telefone e dados bancários?", a.out)
	if err != nil || !editar {
		return err
	}

	telefone, err := a.prefilled("Telefone", u.Telefone)
	if err != nil {
		return err
	}
	banco, err := a.prefilled("Banco", u.Banco)
	if err != nil {
		return err
	}
	agencia, err := a.prefilled("Agência", u.Agencia)
	if err != nil {
		return err
	}
	conta, err := a.prefilled("Conta", u.Conta)
	if err != nil {
		return err
	}
	tipoConta, err := a.prefilled("Tipo de conta (Corrente/Poupança)", u.TipoConta)
	if err != nil {
		return err
	}
	titular, err := a.prefilled("Titular da conta", u.TitularConta)
	if err != nil {
		return err
	}

	upd := api.PerfilUpdate{
		Telefone:     telefone,
		Banco:        banco,
		Agencia:      agencia,
		Conta:        conta,
		TipoConta:    tipoConta,
		TitularConta: titular,
	}
	if err := a.api.UpdatePerfil(ctx, upd); err != nil {
		fmt.Fprintf(a.out, "Não foi possível salvar o perfil: %v\n", err)
		return err
	}
	// Reconcile the cached profile; the new bank details prefill resgates.
	if _, err := a.session.RefreshUser(ctx); err != nil {
		a.log.Info(ctx, "refresh after profile update failed", "error", err)
	}
	fmt.Fprintln(a.out, "Perfil atualizado.")
	return nil
}

// Passwd changes the account password. The complexity policy is checked
// locally before anything goes to the backend.
func (a *App) Passwd(ctx context.Context) error {
	return a.visit(ctx, guard.AnyAuthenticated, a.passwd)
}

func (a *App) passwd(ctx context.Context) error {
	atual, err := getPassword("Senha atual", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(atual)

	nova, err := getPassword("Nova senha", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(nova)

	confirma, err := getPassword("Confirme a nova senha", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirma)

	if string(nova) != string(confirma) {
		fmt.Fprintln(a.out, "As senhas não conferem.")
		return errors.New("senhas não conferem")
	}

	if err := a.svc.ChangePassword(ctx, string(atual), string(nova)); err != nil {
		var weak *session.WeakPasswordError
		if errors.As(err, &weak) {
			fmt.Fprintln(a.out, "A nova senha não atende à política:")
			for _, falta := range weak.Faltas {
				fmt.Fprintf(a.out, "  - %s\n", falta)
			}
			return err
		}
		fmt.Fprintf(a.out, "Não foi possível alterar a senha: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Senha alterada com sucesso.")
	return nil
}

// Recover asks the backend to send a password-recovery email.
func (a *App) Recover(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email cadastrado", a.out)
	if err != nil {
		return err
	}
	if err := a.svc.RecoverPassword(ctx, email); err != nil {
		fmt.Fprintf(a.out, "Não foi possível solicitar a recuperação: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Se o email existir, as instruções de recuperação foram enviadas.")
	return nil
}
