package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validNovoResgate() NovoResgate {
	return NovoResgate{
		RequestID:       "req-1",
		SCP:             "SCP 1",
		Valor:           decimal.NewFromInt(1000),
		Banco:           "001",
		Agencia:         "1234",
		Conta:           "56789-0",
		TipoConta:       "Corrente",
		TitularConta:    "Ana Souza",
		CPFCNPJConta:    "529.982.247-25",
		ConcordouTermos: true,
	}
}

func TestNovoResgate_Valid(t *testing.T) {
	today := NewDate(2026, time.August, 29)
	require.NoError(t, validNovoResgate().Validate(today))
}

func TestNovoResgate_MissingBankFields(t *testing.T) {
	today := NewDate(2026, time.August, 29)
	mutations := []func(*NovoResgate){
		func(n *NovoResgate) { n.Banco = "" },
		func(n *NovoResgate) { n.Agencia = "" },
		func(n *NovoResgate) { n.Conta = "" },
		func(n *NovoResgate) { n.TipoConta = "" },
		func(n *NovoResgate) { n.TitularConta = "" },
	}
	for _, mutate := range mutations {
		n := validNovoResgate()
		mutate(&n)
		require.ErrorIs(t, n.Validate(today), ErrContaIncompleta)
	}
}

func TestNovoResgate_InvalidDocument(t *testing.T) {
	today := NewDate(2026, time.August, 29)
	n := validNovoResgate()
	n.CPFCNPJConta = "529.982.247-24"
	require.ErrorIs(t, n.Validate(today), ErrDocumentoInvalido)
}

func TestNovoResgate_TermsNotAccepted(t *testing.T) {
	today := NewDate(2026, time.August, 29)
	n := validNovoResgate()
	n.ConcordouTermos = false
	require.ErrorIs(t, n.Validate(today), ErrTermosNaoAceitos)
}

func TestNovoResgate_MinimumNotice(t *testing.T) {
	today := NewDate(2026, time.August, 29)

	n := validNovoResgate()
	n.DataDesejada = today.AddDays(MinDiasResgate - 1)
	require.ErrorIs(t, n.Validate(today), ErrDataMuitoProxima)

	// Exactly D+7 is the earliest allowed day.
	n.DataDesejada = today.AddDays(MinDiasResgate)
	require.NoError(t, n.Validate(today))

	// An unset date lets the backend pick the default deadline.
	n.DataDesejada = Date{}
	require.NoError(t, n.Validate(today))
}

func TestNovoResgate_ValueAndSCP(t *testing.T) {
	today := NewDate(2026, time.August, 29)

	n := validNovoResgate()
	n.Valor = decimal.Zero
	require.ErrorIs(t, n.Validate(today), ErrValorInvalido)

	n = validNovoResgate()
	n.SCP = ""
	require.ErrorIs(t, n.Validate(today), ErrSCPObrigatoria)
}

func TestNovoAporte_Validate(t *testing.T) {
	novo := NovoAporte{
		RequestID:    "req-1",
		SCP:          "SCP 1",
		Valor:        decimal.NewFromFloat(1500.50),
		DataDeposito: NewDate(2026, time.August, 20),
	}
	require.NoError(t, novo.Validate())

	missingSCP := novo
	missingSCP.SCP = ""
	require.ErrorIs(t, missingSCP.Validate(), ErrSCPObrigatoria)

	negative := novo
	negative.Valor = decimal.NewFromInt(-10)
	require.ErrorIs(t, negative.Validate(), ErrValorInvalido)

	noDate := novo
	noDate.DataDeposito = Date{}
	require.ErrorIs(t, noDate.Validate(), ErrDataObrigatoria)
}

func TestRegistroRentabilidade_Validate(t *testing.T) {
	reg := RegistroRentabilidade{
		Mes:                  8,
		Ano:                  2026,
		SCP:                  "SCP 1",
		RentabilidadePercent: decimal.NewFromFloat(2.8),
		AplicarParaTodos:     true,
	}
	require.NoError(t, reg.Validate())

	badMes := reg
	badMes.Mes = 13
	require.ErrorIs(t, badMes.Validate(), ErrMesInvalido)

	badAno := reg
	badAno.Ano = 1999
	require.ErrorIs(t, badAno.Validate(), ErrAnoInvalido)

	noTarget := reg
	noTarget.AplicarParaTodos = false
	require.ErrorIs(t, noTarget.Validate(), ErrDestinatarioVago)

	noTarget.InvestidoresIDs = []string{"inv-1"}
	require.NoError(t, noTarget.Validate())
}
