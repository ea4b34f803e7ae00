package models

import "github.com/shopspring/decimal"

// MovimentacaoTipo classifies a portfolio movement.
type MovimentacaoTipo string

const (
	MovimentacaoAporte        MovimentacaoTipo = "Aporte"
	MovimentacaoResgate       MovimentacaoTipo = "Resgate"
	MovimentacaoLucro         MovimentacaoTipo = "Lucro"
	MovimentacaoTransferencia MovimentacaoTipo = "Transferência"
)

// Movimentacao is a single line of the investor's statement. Valor is
// negative for outgoing movements.
type Movimentacao struct {
	ID        string           `json:"_id"`
	Data      Date             `json:"data"`
	Tipo      MovimentacaoTipo `json:"tipo"`
	SCP       string           `json:"scp"`
	Valor     decimal.Decimal  `json:"valor"`
	Status    string           `json:"status,omitempty"`
	Descricao string           `json:"descricao,omitempty"`
}
