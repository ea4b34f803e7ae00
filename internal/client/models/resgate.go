package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ResgateStatus is the processing state of a redemption request.
type ResgateStatus string

const (
	ResgateEmAnalise ResgateStatus = "Em análise"
	ResgateAprovado  ResgateStatus = "Aprovado"
	ResgateNegado    ResgateStatus = "Negado"
	ResgateConcluido ResgateStatus = "Concluído"
)

// MinDiasResgate is the minimum notice for a redemption (D+7).
const MinDiasResgate = 7

// Resgate is a redemption request as returned by the backend.
type Resgate struct {
	ID              string          `json:"_id"`
	InvestidorID    string          `json:"investidorId,omitempty"`
	InvestidorEmail string          `json:"investidorEmail,omitempty"`
	SCP             string          `json:"scp"`
	Valor           decimal.Decimal `json:"valor"`
	ValorAprovado   decimal.Decimal `json:"valorAprovado,omitempty"`
	DataDesejada    Date            `json:"dataDesejada,omitempty"`
	DataEfetiva     Date            `json:"dataEfetiva,omitempty"`
	Status          ResgateStatus   `json:"status"`
	Banco           string          `json:"banco"`
	Agencia         string          `json:"agencia"`
	Conta           string          `json:"conta"`
	TipoConta       string          `json:"tipoConta"`
	TitularConta    string          `json:"titularConta"`
	Descricao       string          `json:"descricao,omitempty"`
	MensagemCliente string          `json:"mensagemCliente,omitempty"`
}

// NovoResgate is the payload to request a redemption. The funds are wired to
// the given bank account, so the holder document is validated locally before
// submission. RequestID is a client-generated idempotency key.
type NovoResgate struct {
	RequestID       string          `json:"requestId"`
	SCP             string          `json:"scp"`
	Valor           decimal.Decimal `json:"valor"`
	DataDesejada    Date            `json:"dataDesejada,omitempty"`
	Banco           string          `json:"banco"`
	Agencia         string          `json:"agencia"`
	Conta           string          `json:"conta"`
	TipoConta       string          `json:"tipoConta"`
	TitularConta    string          `json:"titularConta"`
	CPFCNPJConta    string          `json:"cpfCnpjConta"`
	ConcordouTermos bool            `json:"concordouTermos"`
	Descricao       string          `json:"descricao,omitempty"`
}

var (
	ErrContaIncompleta   = errors.New("dados bancários incompletos")
	ErrDocumentoInvalido = errors.New("cpf/cnpj do titular inválido")
	ErrTermosNaoAceitos  = errors.New("é necessário concordar com os termos")
	ErrDataMuitoProxima  = errors.New("data desejada deve respeitar o prazo mínimo de D+7")
)

// Validate checks the request against the rules the backend enforces, using
// today as the reference day for the D+7 window.
func (n NovoResgate) Validate(today Date) error {
	if n.SCP == "" {
		return ErrSCPObrigatoria
	}
	if !n.Valor.IsPositive() {
		return ErrValorInvalido
	}
	if n.Banco == "" || n.Agencia == "" || n.Conta == "" || n.TipoConta == "" || n.TitularConta == "" {
		return ErrContaIncompleta
	}
	if !ValidCPFOrCNPJ(n.CPFCNPJConta) {
		return ErrDocumentoInvalido
	}
	if !n.ConcordouTermos {
		return ErrTermosNaoAceitos
	}
	if !n.DataDesejada.IsZero() && n.DataDesejada.Before(today.AddDays(MinDiasResgate)) {
		return ErrDataMuitoProxima
	}
	return nil
}

// ProcessamentoResgate is the admin decision payload for a resgate.
// DataEfetiva is required when concluding an approved redemption.
type ProcessamentoResgate struct {
	Status            ResgateStatus   `json:"status"`
	ValorAprovado     decimal.Decimal `json:"valorAprovado,omitempty"`
	DataEfetiva       Date            `json:"dataEfetiva,omitempty"`
	ObservacaoInterna string          `json:"observacaoInterna,omitempty"`
	MensagemCliente   string          `json:"mensagemCliente,omitempty"`
}
