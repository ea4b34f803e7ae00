package cli

import (
	"context"
	"fmt"

	"github.com/enokjanuario/primeholding/internal/client/guard"
	"github.com/enokjanuario/primeholding/internal/client/render"
)

// Notificacoes lists notifications and lets the investor mark them as read.
func (a *App) Notificacoes(ctx context.Context) error {
	return a.visit(ctx, guard.AnyAuthenticated, a.notificacoes)
}

func (a *App) notificacoes(ctx context.Context) error {
	naoLidas, err := a.api.CountNaoLidas(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao consultar notificações: %v\n", err)
		return err
	}

	notificacoes, err := a.api.ListNotificacoes(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao listar notificações: %v\n", err)
		return err
	}
	if len(notificacoes) == 0 {
		fmt.Fprintln(a.out, "Nenhuma notificação.")
		return nil
	}

	fmt.Fprintf(a.out, "%d não lida(s)\n", naoLidas)
	rows := make([][]string, 0, len(notificacoes))
	for _, n := range notificacoes {
		lida := " "
		if !n.Lida {
			lida = "*"
		}
		rows = append(rows, []string{lida, n.ID, n.Titulo, n.Mensagem, render.Moment(n.CriadaEm)})
	}
	if err := render.Table(a.out, []string{"", "ID", "Título", "Mensagem", "Data"}, rows); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "ID para marcar como lida ('todas' ou vazio para voltar)", a.out)
	if err != nil || id == "" {
		return err
	}
	if id == "todas" {
		if err := a.api.MarkTodasLidas(ctx); err != nil {
			fmt.Fprintf(a.out, "Erro ao marcar notificações: %v\n", err)
			return err
		}
		fmt.Fprintln(a.out, "Todas as notificações foram marcadas como lidas.")
		return nil
	}
	if err := a.api.MarkNotificacaoLida(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Erro ao marcar a notificação: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Notificação marcada como lida.")
	return nil
}
