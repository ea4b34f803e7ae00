package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/enokjanuario/primeholding/internal/client/guard"
	"github.com/enokjanuario/primeholding/internal/client/models"
	"github.com/enokjanuario/primeholding/internal/client/render"
)

// Deposito files a deposit notice (aviso de depósito).
func (a *App) Deposito(ctx context.Context) error {
	return a.visit(ctx, guard.AnyAuthenticated, a.deposito)
}

func (a *App) deposito(ctx context.Context) error {
	scp, err := getSimpleText(a.reader, "SCP (ex: SCP 1)", a.out)
	if err != nil {
		return err
	}
	valor, err := GetDecimal(a.reader, "Valor do depósito (R$)", a.out)
	if err != nil {
		return err
	}
	data, err := GetDate(a.reader, "Data do depósito", a.out)
	if err != nil {
		return err
	}
	descricao, err := getSimpleText(a.reader, "Descrição (opcional)", a.out)
	if err != nil {
		return err
	}

	novo := models.NovoAporte{
		RequestID:    uuid.NewString(),
		SCP:          scp,
		Valor:        valor,
		DataDeposito: data,
		Descricao:    descricao,
	}
	if err := novo.Validate(); err != nil {
		fmt.Fprintf(a.out, "Dados inválidos: %v\n", err)
		return err
	}

	id, err := a.api.RegisterAporte(ctx, novo)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao registrar o aviso: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Aviso de depósito registrado com sucesso! Protocolo %s\n", id)
	return nil
}

// GestaoAportes lists pending deposit notices and lets the admin decide.
func (a *App) GestaoAportes(ctx context.Context) error {
	return a.visit(ctx, guard.ElevatedOnly, a.gestaoAportes)
}

func (a *App) gestaoAportes(ctx context.Context) error {
	aportes, err := a.api.ListAllAportes(ctx, nil)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao listar aportes: %v\n", err)
		return err
	}
	if len(aportes) == 0 {
		fmt.Fprintln(a.out, "Nenhum aporte registrado.")
		return nil
	}

	rows := make([][]string, 0, len(aportes))
	for _, ap := range aportes {
		rows = append(rows, []string{
			ap.ID, ap.InvestidorEmail, ap.SCP, render.BRL(ap.Valor), render.Day(ap.DataDeposito), string(ap.Status),
		})
	}
	if err := render.Table(a.out, []string{"ID", "Investidor", "SCP", "Valor", "Data", "Status"}, rows); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "ID do aporte a processar (vazio para voltar)", a.out)
	if err != nil || id == "" {
		return err
	}

	aprovar, err := GetYesNo(a.reader, "Aprovar?", a.out)
	if err != nil {
		return err
	}

	var proc models.ProcessamentoAporte
	if aprovar {
		valor, err := GetDecimal(a.reader, "Valor aprovado (R$)", a.out)
		if err != nil {
			return err
		}
		msg, err := getSimpleText(a.reader, "Mensagem para o cliente (opcional)", a.out)
		if err != nil {
			return err
		}
		proc = models.ProcessamentoAporte{Status: models.AporteAprovado, ValorAprovado: valor, MensagemCliente: msg}
	} else {
		motivo, err := getSimpleText(a.reader, "Motivo da negação", a.out)
		if err != nil {
			return err
		}
		proc = models.ProcessamentoAporte{Status: models.AporteNegado, MensagemCliente: motivo}
	}

	if err := a.api.ProcessAporte(ctx, id, proc); err != nil {
		fmt.Fprintf(a.out, "Erro ao processar o aporte: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Aporte processado.")
	return nil
}
