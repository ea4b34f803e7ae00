package models

import "time"

// Notificacao is an in-portal notification for the logged-in investor.
type Notificacao struct {
	ID       string    `json:"_id"`
	Titulo   string    `json:"titulo"`
	Mensagem string    `json:"mensagem"`
	Lida     bool      `json:"lida"`
	CriadaEm time.Time `json:"criadaEm"`
	Link     string    `json:"link,omitempty"`
}
