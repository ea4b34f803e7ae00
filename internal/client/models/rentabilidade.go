package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// RegistroRentabilidade is the admin payload to book a monthly profitability
// entry for an SCP. Either AplicarParaTodos is set or InvestidoresIDs names
// the affected investors.
type RegistroRentabilidade struct {
	Mes                  int             `json:"mes"`
	Ano                  int             `json:"ano"`
	SCP                  string          `json:"scp"`
	RentabilidadePercent decimal.Decimal `json:"rentabilidadePercent"`
	AplicarParaTodos     bool            `json:"aplicarParaTodos,omitempty"`
	InvestidoresIDs      []string        `json:"investidoresIds,omitempty"`
}

var (
	ErrMesInvalido      = errors.New("mês deve estar entre 1 e 12")
	ErrAnoInvalido      = errors.New("ano inválido")
	ErrDestinatarioVago = errors.New("informe aplicarParaTodos ou investidoresIds")
)

func (r RegistroRentabilidade) Validate() error {
	if r.Mes < 1 || r.Mes > 12 {
		return ErrMesInvalido
	}
	if r.Ano < 2000 {
		return ErrAnoInvalido
	}
	if r.SCP == "" {
		return ErrSCPObrigatoria
	}
	if !r.AplicarParaTodos && len(r.InvestidoresIDs) == 0 {
		return ErrDestinatarioVago
	}
	return nil
}

// Rentabilidade is a booked profitability entry as listed back to the admin.
type Rentabilidade struct {
	ID                   string          `json:"_id"`
	Mes                  int             `json:"mes"`
	Ano                  int             `json:"ano"`
	SCP                  string          `json:"scp"`
	RentabilidadePercent decimal.Decimal `json:"rentabilidadePercent"`
	RegistradaEm         Date            `json:"registradaEm,omitempty"`
}

// Auditoria is one audit-trail line of an administrative action.
type Auditoria struct {
	ID           string `json:"_id"`
	Data         string `json:"data"`
	UsuarioEmail string `json:"usuarioEmail"`
	Acao         string `json:"acao"`
	Detalhes     string `json:"detalhes,omitempty"`
}
