package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/tracking"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// SaleRequest carrega o preço como texto: o formulário aceita apenas
// dígitos e qualquer outro caractere é removido antes da conversão,
// como no campo de preço do dashboard.
type SaleRequest struct {
	ItemName string `json:"item_name"`
	Price    string `json:"price"`
	SaleDate string `json:"sale_date"`
}

type ListSalesResponse struct {
	Date  string         `json:"date"`
	Total int64          `json:"total"`
	Sales []*domain.Sale `json:"sales"`
}

func parsePrice(raw string) (int64, bool) {
	digits := utils.OnlyDigits(raw)
	if digits == "" {
		return 0, false
	}

	price, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}

	return price, true
}

// ListSales retorna o snapshot de vendas de uma data com o total do dia
func ListSales(service tracking.SalesTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro date é obrigatório", nil)
			return
		}

		sales, err := service.ListSalesByDate(date)
		if err != nil {
			if errors.Is(err, tracking.ErrInvalidDate) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		var total int64
		for _, sale := range sales {
			total += sale.Price
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(ListSalesResponse{
			Date:  date,
			Total: total,
			Sales: sales,
		})
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateSale registra uma nova venda na data informada
func CreateSale(service tracking.SalesTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaleRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		price, ok := parsePrice(req.Price)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Preço deve conter apenas dígitos", nil)
			return
		}

		sale, err := service.AddSale(req.ItemName, price, req.SaleDate)
		if err != nil {
			handleSaleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sale)
	}
}

// UpdateSale altera o nome do item e o preço de uma venda existente
func UpdateSale(service tracking.SalesTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda não fornecido", nil)
			return
		}

		var req SaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		price, ok := parsePrice(req.Price)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Preço deve conter apenas dígitos", nil)
			return
		}

		sale, err := service.UpdateSale(&domain.UpdateSaleRequest{
			ID:       id,
			ItemName: req.ItemName,
			Price:    price,
		})
		if err != nil {
			handleSaleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sale)
	}
}

// DeleteSale remove uma venda
func DeleteSale(service tracking.SalesTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da venda não fornecido", nil)
			return
		}

		if err := service.DeleteSale(id); err != nil {
			handleSaleError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleSaleError traduz erros do usecase de vendas para a resposta HTTP
func handleSaleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracking.ErrSaleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSaleNotFound, "Venda não encontrada", nil)

	case errors.Is(err, tracking.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do item e preço são obrigatórios", nil)

	case errors.Is(err, tracking.ErrInvalidPrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Preço deve ser um inteiro não negativo", nil)

	case errors.Is(err, tracking.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)

	case errors.Is(err, tracking.ErrWriteFailed):
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrWriteFailed, "Escrita rejeitada pelo banco de dados", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar venda", nil)
	}
}
