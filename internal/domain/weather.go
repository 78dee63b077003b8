package domain

import "time"

// Weather é o retrato mais recente do clima da cidade configurada.
// É puramente decorativo para o dashboard: quando a consulta falha o
// snapshot anterior é mantido (ou simplesmente não existe).
type Weather struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	FetchedAt   time.Time `json:"fetched_at"`
}
