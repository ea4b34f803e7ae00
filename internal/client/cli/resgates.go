package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/enokjanuario/primeholding/internal/client/guard"
	"github.com/enokjanuario/primeholding/internal/client/models"
	"github.com/enokjanuario/primeholding/internal/client/render"
)

// Resgate files a redemption request. Bank details default to the ones on
// the investor's profile.
func (a *App) Resgate(ctx context.Context) error {
	return a.visit(ctx, guard.AnyAuthenticated, a.resgate)
}

func (a *App) resgate(ctx context.Context) error {
	user := a.currentUser()

	scp, err := getSimpleText(a.reader, "SCP (ex: SCP 1)", a.out)
	if err != nil {
		return err
	}
	valor, err := GetDecimal(a.reader, "Valor do resgate (R$)", a.out)
	if err != nil {
		return err
	}
	data, err := GetDate(a.reader, fmt.Sprintf("Data desejada, mínimo D+%d (vazio para o prazo padrão)", models.MinDiasResgate), a.out)
	if err != nil {
		return err
	}

	banco, err := a.prefilled("Banco", user.Banco)
	if err != nil {
		return err
	}
	agencia, err := a.prefilled("Agência", user.Agencia)
	if err != nil {
		return err
	}
	conta, err := a.prefilled("Conta", user.Conta)
	if err != nil {
		return err
	}
	tipoConta, err := a.prefilled("Tipo de conta (Corrente/Poupança)", user.TipoConta)
	if err != nil {
		return err
	}
	titular, err := a.prefilled("Titular da conta", user.TitularConta)
	if err != nil {
		return err
	}
	documento, err := a.prefilled("CPF/CNPJ do titular", user.CPF)
	if err != nil {
		return err
	}

	concordou, err := GetYesNo(a.reader, "Concorda com os termos de resgate?", a.out)
	if err != nil {
		return err
	}

	novo := models.NovoResgate{
		RequestID:       uuid.NewString(),
		SCP:             scp,
		Valor:           valor,
		DataDesejada:    data,
		Banco:           banco,
		Agencia:         agencia,
		Conta:           conta,
		TipoConta:       tipoConta,
		TitularConta:    titular,
		CPFCNPJConta:    documento,
		ConcordouTermos: concordou,
	}
	if err := novo.Validate(models.DateOf(a.clock.Now())); err != nil {
		fmt.Fprintf(a.out, "Dados inválidos: %v\n", err)
		return err
	}

	id, err := a.api.RequestResgate(ctx, novo)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao solicitar o resgate: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Resgate solicitado com sucesso! Protocolo %s\n", id)
	return nil
}

// prefilled prompts for a value, offering the profile's one as default.
func (a *App) prefilled(label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// GestaoResgates lists redemption requests and lets the admin decide or
// conclude them.
func (a *App) GestaoResgates(ctx context.Context) error {
	return a.visit(ctx, guard.ElevatedOnly, a.gestaoResgates)
}

func (a *App) gestaoResgates(ctx context.Context) error {
	resgates, err := a.api.ListAllResgates(ctx, nil)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao listar resgates: %v\n", err)
		return err
	}
	if len(resgates) == 0 {
		fmt.Fprintln(a.out, "Nenhum resgate registrado.")
		return nil
	}

	rows := make([][]string, 0, len(resgates))
	for _, r := range resgates {
		rows = append(rows, []string{
			r.ID, r.InvestidorEmail, r.SCP, render.BRL(r.Valor), render.Day(r.DataDesejada), string(r.Status),
		})
	}
	if err := render.Table(a.out, []string{"ID", "Investidor", "SCP", "Valor", "Data desejada", "Status"}, rows); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "ID do resgate a processar (vazio para voltar)", a.out)
	if err != nil || id == "" {
		return err
	}

	acao, err := getSimpleText(a.reader, "Ação (aprovar/negar/concluir)", a.out)
	if err != nil {
		return err
	}

	var proc models.ProcessamentoResgate
	switch acao {
	case "aprovar":
		valor, err := GetDecimal(a.reader, "Valor aprovado (R$)", a.out)
		if err != nil {
			return err
		}
		msg, err := getSimpleText(a.reader, "Mensagem para o cliente (opcional)", a.out)
		if err != nil {
			return err
		}
		proc = models.ProcessamentoResgate{Status: models.ResgateAprovado, ValorAprovado: valor, MensagemCliente: msg}
	case "negar":
		motivo, err := getSimpleText(a.reader, "Motivo da negação", a.out)
		if err != nil {
			return err
		}
		proc = models.ProcessamentoResgate{Status: models.ResgateNegado, MensagemCliente: motivo}
	case "concluir":
		data, err := GetDate(a.reader, "Data efetiva da transferência", a.out)
		if err != nil {
			return err
		}
		proc = models.ProcessamentoResgate{Status: models.ResgateConcluido, DataEfetiva: data}
	default:
		fmt.Fprintf(a.out, "Ação desconhecida: %s\n", acao)
		return fmt.Errorf("ação desconhecida: %s", acao)
	}

	if err := a.api.ProcessResgate(ctx, id, proc); err != nil {
		fmt.Fprintf(a.out, "Erro ao processar o resgate: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Resgate processado.")
	return nil
}
