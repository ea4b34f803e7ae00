package models

// RelatorioTipo classifies a published report.
type RelatorioTipo string

const (
	RelatorioMensal      RelatorioTipo = "Relatório Mensal"
	RelatorioTrimestral  RelatorioTipo = "Relatório Trimestral"
	RelatorioAnual       RelatorioTipo = "Relatório Anual"
	RelatorioRendimentos RelatorioTipo = "Declaração de Rendimentos"
	RelatorioContrato    RelatorioTipo = "Contrato de Adesão"
	RelatorioTermosDeUso RelatorioTipo = "Termos de Uso"
)

// Relatorio is a published report visible to an investor.
type Relatorio struct {
	ID               string        `json:"_id"`
	Titulo           string        `json:"titulo"`
	Tipo             RelatorioTipo `json:"tipo"`
	Descricao        string        `json:"descricao,omitempty"`
	ArquivoPDF       string        `json:"arquivoPdf"`
	MesAnoReferencia string        `json:"mesAnoReferencia,omitempty"`
	SCP              string        `json:"scp,omitempty"`
	Visibilidade     string        `json:"visibilidade,omitempty"`
	PublicadoEm      Date          `json:"publicadoEm,omitempty"`
}

// NovoRelatorio is the admin payload to publish a report. Visibilidade is
// "Todos" or "Selecionados"; InvestidoresIDs narrows the audience when set.
type NovoRelatorio struct {
	Titulo           string        `json:"titulo"`
	Tipo             RelatorioTipo `json:"tipo"`
	Descricao        string        `json:"descricao,omitempty"`
	ArquivoPDF       string        `json:"arquivoPdf"`
	MesAnoReferencia string        `json:"mesAnoReferencia,omitempty"`
	SCP              string        `json:"scp,omitempty"`
	InvestidoresIDs  []string      `json:"investidoresIds,omitempty"`
	Visibilidade     string        `json:"visibilidade"`
	NotificarEmail   bool          `json:"notificarEmail,omitempty"`
}
