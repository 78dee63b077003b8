package tracking

import "errors"

// Erros de negócio do lançamento de vendas
var (
	ErrSaleNotFound        = errors.New("venda não encontrada")
	ErrMissingRequiredData = errors.New("nome do item e preço são obrigatórios")
	ErrInvalidPrice        = errors.New("preço deve ser um inteiro não negativo")
	ErrInvalidDate         = errors.New("data da venda inválida")
	ErrWriteFailed         = errors.New("escrita rejeitada pelo banco de dados")
)
