package domain

import "time"

// Sale representa um registro de venda lançado por um funcionário.
// O ID é atribuído pelo servidor na criação e é imutável, assim como
// CreatedAt e SaleDate — editar uma venda altera apenas ItemName e Price.
type Sale struct {
	ID        string    `json:"id"`
	ItemName  string    `json:"item_name"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	SaleDate  string    `json:"sale_date"`
}

type UpdateSaleRequest struct {
	ID       string `json:"id"`
	ItemName string `json:"item_name"`
	Price    int64  `json:"price"`
}

// WeeklySummary é o total de vendas de um dia dentro da janela de 7 dias.
// Date carrega o rótulo dia/mês sem zeros à esquerda (ex.: "9/6").
type WeeklySummary struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
}
