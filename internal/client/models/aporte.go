package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// AporteStatus is the approval state of a deposit notice.
type AporteStatus string

const (
	AporteEmAnalise            AporteStatus = "Em análise"
	AporteAprovado             AporteStatus = "Aprovado"
	AporteParcialmenteAprovado AporteStatus = "Parcialmente aprovado"
	AporteNegado               AporteStatus = "Negado"
)

// Aporte is a deposit notice as returned by the backend.
type Aporte struct {
	ID              string          `json:"_id"`
	InvestidorID    string          `json:"investidorId,omitempty"`
	InvestidorEmail string          `json:"investidorEmail,omitempty"`
	SCP             string          `json:"scp"`
	Valor           decimal.Decimal `json:"valor"`
	ValorAprovado   decimal.Decimal `json:"valorAprovado,omitempty"`
	DataDeposito    Date            `json:"dataDeposito"`
	Status          AporteStatus    `json:"status"`
	Descricao       string          `json:"descricao,omitempty"`
	Comprovante     string          `json:"comprovante,omitempty"`
	MensagemCliente string          `json:"mensagemCliente,omitempty"`
}

// NovoAporte is the payload to register a deposit notice. RequestID is a
// client-generated idempotency key so a retried submission is not booked
// twice.
type NovoAporte struct {
	RequestID    string          `json:"requestId"`
	SCP          string          `json:"scp"`
	Valor        decimal.Decimal `json:"valor"`
	DataDeposito Date            `json:"dataDeposito"`
	Descricao    string          `json:"descricao,omitempty"`
	Comprovante  string          `json:"comprovante,omitempty"`
}

var (
	ErrValorInvalido   = errors.New("valor deve ser maior que zero")
	ErrSCPObrigatoria  = errors.New("scp é obrigatória")
	ErrDataObrigatoria = errors.New("data é obrigatória")
)

// Validate checks the fields the backend would reject anyway, so the user
// gets immediate feedback without a round trip.
func (n NovoAporte) Validate() error {
	if n.SCP == "" {
		return ErrSCPObrigatoria
	}
	if !n.Valor.IsPositive() {
		return ErrValorInvalido
	}
	if n.DataDeposito.IsZero() {
		return ErrDataObrigatoria
	}
	return nil
}

// ProcessamentoAporte is the admin decision payload for an aporte.
type ProcessamentoAporte struct {
	Status            AporteStatus    `json:"status"`
	ValorAprovado     decimal.Decimal `json:"valorAprovado,omitempty"`
	ObservacaoInterna string          `json:"observacaoInterna,omitempty"`
	MensagemCliente   string          `json:"mensagemCliente,omitempty"`
}
