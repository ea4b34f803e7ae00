// Package models defines the portal's domain types as exchanged with the
// remote backend: investors, contributions (aportes), redemptions (resgates),
// reports, notifications and dashboard figures.
package models

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// Role classifies the authenticated principal. It is a closed set: the
// backend exposes a boolean flag, but internally every caller branches on
// exactly one of these two values.
type Role int

const (
	RoleStandard Role = iota
	RoleElevated
)

func (r Role) String() string {
	if r == RoleElevated {
		return "admin"
	}
	return "investidor"
}

// InvestidorStatus is the account status as kept by the backend.
type InvestidorStatus string

const (
	InvestidorAtivo    InvestidorStatus = "Ativo"
	InvestidorInativo  InvestidorStatus = "Inativo"
	InvestidorPendente InvestidorStatus = "Pendente"
)

// Investidor is the authenticated principal plus its portfolio profile.
// At most one Investidor is held as "the current session" at a time.
type Investidor struct {
	ID              string           `json:"id"`
	Nome            string           `json:"nome"`
	Email           string           `json:"email"`
	CPF             string           `json:"cpf,omitempty"`
	Telefone        string           `json:"telefone,omitempty"`
	SCPsVinculadas  []string         `json:"scpsVinculadas,omitempty"`
	Status          InvestidorStatus `json:"status,omitempty"`
	Role            Role             `json:"-"`
	PatrimonioAtual decimal.Decimal  `json:"patrimonioAtual"`

	// Bank details used to prefill redemption requests.
	Banco        string `json:"banco,omitempty"`
	Agencia      string `json:"agencia,omitempty"`
	Conta        string `json:"conta,omitempty"`
	TipoConta    string `json:"tipoConta,omitempty"`
	TitularConta string `json:"titularConta,omitempty"`
}

// NovoInvestidor is the admin payload to register an investor account. The
// backend generates the credentials and mails them to the new investor.
type NovoInvestidor struct {
	Nome           string           `json:"nome"`
	Email          string           `json:"email"`
	CPF            string           `json:"cpf,omitempty"`
	Telefone       string           `json:"telefone,omitempty"`
	SCPsVinculadas []string         `json:"scpsVinculadas,omitempty"`
	Status         InvestidorStatus `json:"status"`
}

var (
	ErrNomeObrigatorio  = errors.New("nome é obrigatório")
	ErrEmailObrigatorio = errors.New("email é obrigatório")
	ErrCPFInvalido      = errors.New("cpf inválido")
)

// Validate checks the fields the backend would reject anyway, so the admin
// gets immediate feedback without a round trip.
func (n NovoInvestidor) Validate() error {
	if n.Nome == "" {
		return ErrNomeObrigatorio
	}
	if n.Email == "" {
		return ErrEmailObrigatorio
	}
	if n.CPF != "" && !ValidCPF(n.CPF) {
		return ErrCPFInvalido
	}
	return nil
}

// investidorWire mirrors the backend payload, where the role travels as the
// boolean "isAdmin" field. Some records carry the id under "_id".
type investidorWire struct {
	ID              string           `json:"id"`
	AltID           string           `json:"_id"`
	Nome            string           `json:"nome"`
	Email           string           `json:"email"`
	CPF             string           `json:"cpf"`
	Telefone        string           `json:"telefone"`
	SCPsVinculadas  []string         `json:"scpsVinculadas"`
	Status          InvestidorStatus `json:"status"`
	IsAdmin         bool             `json:"isAdmin"`
	PatrimonioAtual decimal.Decimal  `json:"patrimonioAtual"`
	Banco           string           `json:"banco"`
	Agencia         string           `json:"agencia"`
	Conta           string           `json:"conta"`
	TipoConta       string           `json:"tipoConta"`
	TitularConta    string           `json:"titularConta"`
}

func (i *Investidor) UnmarshalJSON(data []byte) error {
	var w investidorWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	id := w.ID
	if id == "" {
		id = w.AltID
	}
	role := RoleStandard
	if w.IsAdmin {
		role = RoleElevated
	}
	*i = Investidor{
		ID:              id,
		Nome:            w.Nome,
		Email:           w.Email,
		CPF:             w.CPF,
		Telefone:        w.Telefone,
		SCPsVinculadas:  w.SCPsVinculadas,
		Status:          w.Status,
		Role:            role,
		PatrimonioAtual: w.PatrimonioAtual,
		Banco:           w.Banco,
		Agencia:         w.Agencia,
		Conta:           w.Conta,
		TipoConta:       w.TipoConta,
		TitularConta:    w.TitularConta,
	}
	return nil
}

func (i Investidor) MarshalJSON() ([]byte, error) {
	w := investidorWire{
		ID:              i.ID,
		Nome:            i.Nome,
		Email:           i.Email,
		CPF:             i.CPF,
		Telefone:        i.Telefone,
		SCPsVinculadas:  i.SCPsVinculadas,
		Status:          i.Status,
		IsAdmin:         i.Role == RoleElevated,
		PatrimonioAtual: i.PatrimonioAtual,
		Banco:           i.Banco,
		Agencia:         i.Agencia,
		Conta:           i.Conta,
		TipoConta:       i.TipoConta,
		TitularConta:    i.TitularConta,
	}
	return json.Marshal(w)
}
