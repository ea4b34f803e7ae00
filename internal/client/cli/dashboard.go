package cli

import (
	"context"
	"fmt"

	"github.com/enokjanuario/primeholding/internal/client/guard"
	"github.com/enokjanuario/primeholding/internal/client/render"
)

// Dashboard shows the investor's headline figures and recent movements.
func (a *App) Dashboard(ctx context.Context) error {
	return a.visit(ctx, guard.AnyAuthenticated, a.dashboard)
}

func (a *App) dashboard(ctx context.Context) error {
	kpis, err := a.api.Dashboard(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao carregar o painel: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Patrimônio atual:      %s\n", render.BRL(kpis.PatrimonioAtual))
	fmt.Fprintf(a.out, "Aportes acumulados:    %s\n", render.BRL(kpis.AportesAcumulados))
	fmt.Fprintf(a.out, "Resgates acumulados:   %s\n", render.BRL(kpis.ResgatesAcumulados))
	fmt.Fprintf(a.out, "Rentabilidade total:   %s\n", render.Percent(kpis.RentabilidadeTotal))
	fmt.Fprintf(a.out, "Rentabilidade no ano:  %s\n", render.Percent(kpis.RentabilidadeAno))
	fmt.Fprintf(a.out, "Rentabilidade no mês:  %s\n", render.Percent(kpis.RentabilidadeMes))

	serie, err := a.api.RentabilidadeMensal(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao carregar a série de rentabilidade: %v\n", err)
		return err
	}
	if len(serie) > 0 {
		fmt.Fprintln(a.out, "\nRentabilidade mensal:")
		rows := make([][]string, 0, len(serie))
		for _, p := range serie {
			rows = append(rows, []string{p.MesAno, render.Percent(p.Rentabilidade)})
		}
		if err := render.Table(a.out, []string{"Mês", "Rentabilidade"}, rows); err != nil {
			return err
		}
	}

	movs, err := a.api.Movimentacoes(ctx, 5)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao carregar movimentações: %v\n", err)
		return err
	}
	if len(movs) == 0 {
		return nil
	}

	fmt.Fprintln(a.out, "\nMovimentações recentes:")
	rows := make([][]string, 0, len(movs))
	for _, m := range movs {
		rows = append(rows, []string{
			render.Day(m.Data), string(m.Tipo), m.SCP, render.SignedBRL(m.Valor), m.Status,
		})
	}
	return render.Table(a.out, []string{"Data", "Tipo", "SCP", "Valor", "Status"}, rows)
}

// Historico lists the investor's statement.
func (a *App) Historico(ctx context.Context) error {
	return a.visit(ctx, guard.AnyAuthenticated, a.historico)
}

func (a *App) historico(ctx context.Context) error {
	evolucao, err := a.api.EvolucaoPatrimonio(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao carregar a evolução do patrimônio: %v\n", err)
		return err
	}
	if len(evolucao) > 0 {
		fmt.Fprintln(a.out, "Evolução do patrimônio:")
		rows := make([][]string, 0, len(evolucao))
		for _, p := range evolucao {
			rows = append(rows, []string{p.MesAno, render.BRL(p.Patrimonio)})
		}
		if err := render.Table(a.out, []string{"Mês", "Patrimônio"}, rows); err != nil {
			return err
		}
		fmt.Fprintln(a.out)
	}

	movs, err := a.api.Movimentacoes(ctx, 50)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao carregar o histórico: %v\n", err)
		return err
	}
	if len(movs) == 0 {
		fmt.Fprintln(a.out, "Nenhuma movimentação registrada.")
		return nil
	}

	rows := make([][]string, 0, len(movs))
	for _, m := range movs {
		rows = append(rows, []string{
			render.Day(m.Data), string(m.Tipo), m.SCP, render.SignedBRL(m.Valor), m.Status, m.Descricao,
		})
	}
	return render.Table(a.out, []string{"Data", "Tipo", "SCP", "Valor", "Status", "Descrição"}, rows)
}
