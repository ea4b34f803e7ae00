package models

import "github.com/shopspring/decimal"

// DashboardKPIs are the headline figures of the investor dashboard.
// Percentages are expressed in percent points (2.8 means 2.8%).
type DashboardKPIs struct {
	PatrimonioAtual    decimal.Decimal `json:"patrimonioAtual"`
	AportesAcumulados  decimal.Decimal `json:"aportesAcumulados"`
	ResgatesAcumulados decimal.Decimal `json:"resgatesAcumulados"`
	RentabilidadeTotal decimal.Decimal `json:"rentabilidadeTotal"`
	RentabilidadeAno   decimal.Decimal `json:"rentabilidadeAno"`
	RentabilidadeMes   decimal.Decimal `json:"rentabilidadeMes"`
}

// AdminKPIs are the headline figures of the administrative dashboard.
type AdminKPIs struct {
	TotalInvestidores int             `json:"totalInvestidores"`
	PatrimonioTotal   decimal.Decimal `json:"patrimonioTotal"`
	AportesPendentes  int             `json:"aportesPendentes"`
	ResgatesPendentes int             `json:"resgatesPendentes"`
	UltimosAportes    []Aporte        `json:"ultimosAportes,omitempty"`
	UltimosResgates   []Resgate       `json:"ultimosResgates,omitempty"`
}

// PontoPatrimonio is one sample of the equity evolution series.
type PontoPatrimonio struct {
	MesAno     string          `json:"mesAno"`
	Patrimonio decimal.Decimal `json:"patrimonio"`
}

// PontoRentabilidade is one sample of the monthly profitability series.
type PontoRentabilidade struct {
	MesAno        string          `json:"mesAno"`
	Rentabilidade decimal.Decimal `json:"rentabilidade"`
}
