package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/enokjanuario/primeholding/internal/client/guard"
	"github.com/enokjanuario/primeholding/internal/client/models"
	"github.com/enokjanuario/primeholding/internal/client/render"
)

// AdminDashboard shows the administrative headline figures.
func (a *App) AdminDashboard(ctx context.Context) error {
	return a.visit(ctx, guard.ElevatedOnly, a.adminDashboard)
}

func (a *App) adminDashboard(ctx context.Context) error {
	kpis, err := a.api.AdminDashboard(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao carregar o painel: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Painel administrativo")
	fmt.Fprintf(a.out, "  Investidores:       %d\n", kpis.TotalInvestidores)
	fmt.Fprintf(a.out, "  Patrimônio total:   %s\n", render.BRL(kpis.PatrimonioTotal))
	fmt.Fprintf(a.out, "  Aportes pendentes:  %d\n", kpis.AportesPendentes)
	fmt.Fprintf(a.out, "  Resgates pendentes: %d\n", kpis.ResgatesPendentes)

	if len(kpis.UltimosAportes) > 0 {
		fmt.Fprintln(a.out, "\nÚltimos aportes:")
		rows := make([][]string, 0, len(kpis.UltimosAportes))
		for _, ap := range kpis.UltimosAportes {
			rows = append(rows, []string{ap.InvestidorEmail, ap.SCP, render.BRL(ap.Valor), string(ap.Status)})
		}
		if err := render.Table(a.out, []string{"Investidor", "SCP", "Valor", "Status"}, rows); err != nil {
			return err
		}
	}
	if len(kpis.UltimosResgates) > 0 {
		fmt.Fprintln(a.out, "\nÚltimos resgates:")
		rows := make([][]string, 0, len(kpis.UltimosResgates))
		for _, r := range kpis.UltimosResgates {
			rows = append(rows, []string{r.InvestidorEmail, r.SCP, render.BRL(r.Valor), string(r.Status)})
		}
		if err := render.Table(a.out, []string{"Investidor", "SCP", "Valor", "Status"}, rows); err != nil {
			return err
		}
	}
	return nil
}

// Investidores lists investor accounts and lets the admin change their status.
func (a *App) Investidores(ctx context.Context) error {
	return a.visit(ctx, guard.ElevatedOnly, a.investidores)
}

func (a *App) investidores(ctx context.Context) error {
	status, err := getSimpleText(a.reader, "Filtrar por status (Ativo/Inativo/Pendente, vazio para todos)", a.out)
	if err != nil {
		return err
	}
	filtros := url.Values{}
	if status != "" {
		filtros.Set("status", status)
	}

	investidores, err := a.api.ListInvestidores(ctx, filtros)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao listar investidores: %v\n", err)
		return err
	}
	if len(investidores) == 0 {
		fmt.Fprintln(a.out, "Nenhum investidor encontrado.")
		return nil
	}

	rows := make([][]string, 0, len(investidores))
	for _, inv := range investidores {
		rows = append(rows, []string{
			inv.ID, inv.Nome, inv.Email, string(inv.Status), render.BRL(inv.PatrimonioAtual),
		})
	}
	if err := render.Table(a.out, []string{"ID", "Nome", "E-mail", "Status", "Patrimônio"}, rows); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "ID do investidor a atualizar ('novo' cadastra, vazio volta)", a.out)
	if err != nil || id == "" {
		return err
	}
	if id == "novo" {
		return a.criarInvestidor(ctx)
	}
	var alvo *models.Investidor
	for i := range investidores {
		if investidores[i].ID == id {
			alvo = &investidores[i]
			break
		}
	}
	if alvo == nil {
		fmt.Fprintf(a.out, "Investidor %s não encontrado na lista.\n", id)
		return nil
	}

	novoStatus, err := getSimpleText(a.reader, fmt.Sprintf("Novo status [%s]", alvo.Status), a.out)
	if err != nil {
		return err
	}
	if novoStatus != "" {
		alvo.Status = models.InvestidorStatus(novoStatus)
	}
	scps, err := getSimpleText(a.reader, "SCPs vinculadas (separadas por espaço, vazio mantém)", a.out)
	if err != nil {
		return err
	}
	if scps != "" {
		alvo.SCPsVinculadas = splitFields(scps)
	}

	if err := a.api.UpdateInvestidor(ctx, id, *alvo); err != nil {
		fmt.Fprintf(a.out, "Erro ao atualizar o investidor: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Investidor atualizado.")
	return nil
}

func (a *App) criarInvestidor(ctx context.Context) error {
	nome, err := getSimpleText(a.reader, "Nome", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "E-mail", a.out)
	if err != nil {
		return err
	}
	cpf, err := getSimpleText(a.reader, "CPF (vazio para omitir)", a.out)
	if err != nil {
		return err
	}
	telefone, err := getSimpleText(a.reader, "Telefone (vazio para omitir)", a.out)
	if err != nil {
		return err
	}
	scps, err := getSimpleText(a.reader, "SCPs vinculadas (separadas por espaço)", a.out)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status [Ativo]", a.out)
	if err != nil {
		return err
	}
	if status == "" {
		status = string(models.InvestidorAtivo)
	}

	novo := models.NovoInvestidor{
		Nome:           nome,
		Email:          email,
		CPF:            cpf,
		Telefone:       telefone,
		SCPsVinculadas: splitFields(scps),
		Status:         models.InvestidorStatus(status),
	}
	if err := novo.Validate(); err != nil {
		fmt.Fprintf(a.out, "Dados inválidos: %v\n", err)
		return err
	}

	novoID, err := a.api.CreateInvestidor(ctx, novo)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao cadastrar o investidor: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Investidor cadastrado. ID %s\n", novoID)
	return nil
}

// Rentabilidade books a monthly profitability entry and lists the recent ones.
func (a *App) Rentabilidade(ctx context.Context) error {
	return a.visit(ctx, guard.ElevatedOnly, a.rentabilidade)
}

func (a *App) rentabilidade(ctx context.Context) error {
	registros, err := a.api.ListRentabilidades(ctx, nil)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao listar rentabilidades: %v\n", err)
		return err
	}
	if len(registros) > 0 {
		rows := make([][]string, 0, len(registros))
		for _, r := range registros {
			rows = append(rows, []string{
				fmt.Sprintf("%02d/%d", r.Mes, r.Ano), r.SCP, render.Percent(r.RentabilidadePercent),
			})
		}
		if err := render.Table(a.out, []string{"Mês", "SCP", "Rentabilidade"}, rows); err != nil {
			return err
		}
	}

	registrar, err := GetYesNo(a.reader, "Registrar nova rentabilidade?", a.out)
	if err != nil || !registrar {
		return err
	}

	mesStr, err := getSimpleText(a.reader, "Mês (1-12)", a.out)
	if err != nil {
		return err
	}
	mes, err := strconv.Atoi(mesStr)
	if err != nil {
		fmt.Fprintf(a.out, "Mês inválido: %s\n", mesStr)
		return fmt.Errorf("mês inválido %q", mesStr)
	}
	anoStr, err := getSimpleText(a.reader, "Ano", a.out)
	if err != nil {
		return err
	}
	ano, err := strconv.Atoi(anoStr)
	if err != nil {
		fmt.Fprintf(a.out, "Ano inválido: %s\n", anoStr)
		return fmt.Errorf("ano inválido %q", anoStr)
	}
	scp, err := getSimpleText(a.reader, "SCP", a.out)
	if err != nil {
		return err
	}
	percent, err := GetDecimal(a.reader, "Rentabilidade (% no mês)", a.out)
	if err != nil {
		return err
	}
	todos, err := GetYesNo(a.reader, "Aplicar para todos os investidores da SCP?", a.out)
	if err != nil {
		return err
	}

	reg := models.RegistroRentabilidade{
		Mes:                  mes,
		Ano:                  ano,
		SCP:                  scp,
		RentabilidadePercent: percent,
		AplicarParaTodos:     todos,
	}
	if !todos {
		ids, err := getSimpleText(a.reader, "IDs dos investidores (separados por espaço)", a.out)
		if err != nil {
			return err
		}
		reg.InvestidoresIDs = splitFields(ids)
	}
	if err := reg.Validate(); err != nil {
		fmt.Fprintf(a.out, "Dados inválidos: %v\n", err)
		return err
	}

	if err := a.api.RegisterRentabilidade(ctx, reg); err != nil {
		fmt.Fprintf(a.out, "Erro ao registrar a rentabilidade: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Rentabilidade registrada.")
	return nil
}

// Auditoria shows the trail of administrative actions, newest first.
func (a *App) Auditoria(ctx context.Context) error {
	return a.visit(ctx, guard.ElevatedOnly, a.auditoria)
}

func (a *App) auditoria(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Filtrar por e-mail do usuário (vazio para todos)", a.out)
	if err != nil {
		return err
	}
	filtros := url.Values{}
	if email != "" {
		filtros.Set("usuarioEmail", email)
	}

	linhas, err := a.api.Auditoria(ctx, filtros)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao consultar a auditoria: %v\n", err)
		return err
	}
	if len(linhas) == 0 {
		fmt.Fprintln(a.out, "Nenhum registro de auditoria.")
		return nil
	}

	rows := make([][]string, 0, len(linhas))
	for _, l := range linhas {
		rows = append(rows, []string{l.Data, l.UsuarioEmail, l.Acao, l.Detalhes})
	}
	return render.Table(a.out, []string{"Data", "Usuário", "Ação", "Detalhes"}, rows)
}
