package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/enokjanuario/primeholding/internal/client/guard"
	"github.com/enokjanuario/primeholding/internal/client/models"
	"github.com/enokjanuario/primeholding/internal/client/render"
)

// Relatorios lists the reports visible to the investor and registers the
// download of a chosen one.
func (a *App) Relatorios(ctx context.Context) error {
	return a.visit(ctx, guard.AnyAuthenticated, a.relatorios)
}

func (a *App) relatorios(ctx context.Context) error {
	tipo, err := getSimpleText(a.reader, "Filtrar por tipo (vazio para todos)", a.out)
	if err != nil {
		return err
	}
	filtros := url.Values{}
	if tipo != "" {
		filtros.Set("tipo", tipo)
	}

	relatorios, err := a.api.ListRelatorios(ctx, filtros)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao listar relatórios: %v\n", err)
		return err
	}
	if len(relatorios) == 0 {
		fmt.Fprintln(a.out, "Nenhum relatório disponível.")
		return nil
	}

	rows := make([][]string, 0, len(relatorios))
	for _, r := range relatorios {
		rows = append(rows, []string{
			r.ID, r.Titulo, string(r.Tipo), r.MesAnoReferencia, render.Day(r.PublicadoEm),
		})
	}
	if err := render.Table(a.out, []string{"ID", "Título", "Tipo", "Referência", "Publicado em"}, rows); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "ID do relatório para baixar (vazio para voltar)", a.out)
	if err != nil || id == "" {
		return err
	}
	for _, r := range relatorios {
		if r.ID == id {
			if err := a.api.RegisterDownload(ctx, id); err != nil {
				fmt.Fprintf(a.out, "Erro ao registrar o download: %v\n", err)
				return err
			}
			fmt.Fprintf(a.out, "Arquivo: %s\n", r.ArquivoPDF)
			return nil
		}
	}
	fmt.Fprintf(a.out, "Relatório %s não encontrado na lista.\n", id)
	return nil
}

// GestaoRelatorios lets the admin publish, update or remove reports.
func (a *App) GestaoRelatorios(ctx context.Context) error {
	return a.visit(ctx, guard.ElevatedOnly, a.gestaoRelatorios)
}

func (a *App) gestaoRelatorios(ctx context.Context) error {
	relatorios, err := a.api.ListAllRelatorios(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao listar relatórios: %v\n", err)
		return err
	}
	if len(relatorios) > 0 {
		rows := make([][]string, 0, len(relatorios))
		for _, r := range relatorios {
			rows = append(rows, []string{
				r.ID, r.Titulo, string(r.Tipo), r.Visibilidade, render.Day(r.PublicadoEm),
			})
		}
		if err := render.Table(a.out, []string{"ID", "Título", "Tipo", "Visibilidade", "Publicado em"}, rows); err != nil {
			return err
		}
	}

	acao, err := getSimpleText(a.reader, "Ação (publicar/atualizar/remover, vazio para voltar)", a.out)
	if err != nil || acao == "" {
		return err
	}

	switch acao {
	case "publicar":
		return a.publicarRelatorio(ctx)
	case "atualizar":
		id, err := getSimpleText(a.reader, "ID do relatório a atualizar", a.out)
		if err != nil {
			return err
		}
		return a.atualizarRelatorio(ctx, id)
	case "remover":
		id, err := getSimpleText(a.reader, "ID do relatório a remover", a.out)
		if err != nil {
			return err
		}
		if err := a.api.RemoveRelatorio(ctx, id); err != nil {
			fmt.Fprintf(a.out, "Erro ao remover o relatório: %v\n", err)
			return err
		}
		fmt.Fprintln(a.out, "Relatório removido.")
		return nil
	default:
		fmt.Fprintf(a.out, "Ação desconhecida: %s\n", acao)
		return fmt.Errorf("ação desconhecida: %s", acao)
	}
}

func (a *App) publicarRelatorio(ctx context.Context) error {
	novo, err := a.promptRelatorio()
	if err != nil {
		return err
	}

	id, err := a.api.PublishRelatorio(ctx, novo)
	if err != nil {
		fmt.Fprintf(a.out, "Erro ao publicar o relatório: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Relatório publicado: %s\n", id)
	return nil
}

func (a *App) atualizarRelatorio(ctx context.Context, id string) error {
	novo, err := a.promptRelatorio()
	if err != nil {
		return err
	}

	if err := a.api.UpdateRelatorio(ctx, id, novo); err != nil {
		fmt.Fprintf(a.out, "Erro ao atualizar o relatório: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Relatório atualizado.")
	return nil
}

func (a *App) promptRelatorio() (models.NovoRelatorio, error) {
	var zero models.NovoRelatorio

	titulo, err := getSimpleText(a.reader, "Título", a.out)
	if err != nil {
		return zero, err
	}
	tipo, err := getSimpleText(a.reader, "Tipo (ex: Relatório Mensal)", a.out)
	if err != nil {
		return zero, err
	}
	arquivo, err := getSimpleText(a.reader, "URL do arquivo PDF", a.out)
	if err != nil {
		return zero, err
	}
	referencia, err := getSimpleText(a.reader, "Mês/ano de referência (ex: 2026-08, opcional)", a.out)
	if err != nil {
		return zero, err
	}
	todos, err := GetYesNo(a.reader, "Visível para todos os investidores?", a.out)
	if err != nil {
		return zero, err
	}
	notificar, err := GetYesNo(a.reader, "Notificar investidores por e-mail?", a.out)
	if err != nil {
		return zero, err
	}

	novo := models.NovoRelatorio{
		Titulo:           titulo,
		Tipo:             models.RelatorioTipo(tipo),
		ArquivoPDF:       arquivo,
		MesAnoReferencia: referencia,
		Visibilidade:     "Todos",
		NotificarEmail:   notificar,
	}
	if !todos {
		novo.Visibilidade = "Selecionados"
		ids, err := getSimpleText(a.reader, "IDs dos investidores (separados por espaço)", a.out)
		if err != nil {
			return zero, err
		}
		novo.InvestidoresIDs = splitFields(ids)
	}
	return novo, nil
}

// splitFields splits a whitespace-separated answer; empty input gives nil.
func splitFields(s string) []string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return nil
	}
	return f
}
