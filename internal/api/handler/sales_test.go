package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/tracking"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

// newSalesServer monta as rotas de vendas sobre o usecase real com o
// repositório mockado, sem a cadeia de autenticação.
func newSalesServer(t *testing.T) (*httptest.Server, *mocks.MockSaleRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	service := tracking.NewService(mockSaleRepo, tracking.NewHub())

	routes := []router.Route{}
	for _, route := range Sales(service) {
		routes = append(routes, router.Route{
			Path:    route.Path,
			Method:  route.Method,
			Handler: route.Handler,
		})
	}

	rt := router.New(router.WithRoutes(routes...))
	server := httptest.NewServer(rt)
	t.Cleanup(server.Close)

	return server, mockSaleRepo
}

func decodeAPIError(t *testing.T, resp *http.Response) apiErrors.APIError {
	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
	return apiErr
}

func TestListSalesHandler(t *testing.T) {
	server, mockSaleRepo := newSalesServer(t)

	t.Run("snapshot da data com total do dia", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			ListSalesByDate("2024-06-10").
			Return([]*domain.Sale{
				{ID: "s2", ItemName: "Pão", Price: 8000, SaleDate: "2024-06-10"},
				{ID: "s1", ItemName: "Café", Price: 20000, SaleDate: "2024-06-10"},
			}, nil)

		resp, err := http.Get(server.URL + "/v1/sales?date=2024-06-10")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body ListSalesResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "2024-06-10", body.Date)
		assert.Equal(t, int64(28000), body.Total)
		require.Len(t, body.Sales, 2)
		assert.Equal(t, "s2", body.Sales[0].ID)
	})

	t.Run("date ausente", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/v1/sales")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, resp).Code)
	})

	t.Run("date fora do formato", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/v1/sales?date=10-06-2024")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, resp).Code)
	})
}

func TestCreateSaleHandler(t *testing.T) {
	server, mockSaleRepo := newSalesServer(t)

	t.Run("preço com máscara é reduzido aos dígitos", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			CreateSale("Café", int64(20000), "2024-06-10").
			Return(&domain.Sale{
				ID:        "abc",
				ItemName:  "Café",
				Price:     20000,
				SaleDate:  "2024-06-10",
				CreatedAt: time.Now(),
			}, nil)

		resp, err := http.Post(
			server.URL+"/v1/sales",
			"application/json",
			strings.NewReader(`{"item_name":"Café","price":"Rp 20.000","sale_date":"2024-06-10"}`),
		)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var sale domain.Sale
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&sale))
		assert.Equal(t, "abc", sale.ID)
		assert.Equal(t, int64(20000), sale.Price)
	})

	t.Run("preço sem nenhum dígito", func(t *testing.T) {
		resp, err := http.Post(
			server.URL+"/v1/sales",
			"application/json",
			strings.NewReader(`{"item_name":"Café","price":"grátis","sale_date":"2024-06-10"}`),
		)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, resp).Code)
	})

	t.Run("nome do item obrigatório", func(t *testing.T) {
		resp, err := http.Post(
			server.URL+"/v1/sales",
			"application/json",
			strings.NewReader(`{"item_name":"","price":"100","sale_date":"2024-06-10"}`),
		)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, resp).Code)
	})
}

func TestUpdateSaleHandler(t *testing.T) {
	server, mockSaleRepo := newSalesServer(t)

	t.Run("atualização preserva a data original da venda", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			GetSaleByID("abc").
			Return(&domain.Sale{ID: "abc", ItemName: "Café", Price: 20000, SaleDate: "2024-06-10"}, nil)

		mockSaleRepo.EXPECT().
			UpdateSale("abc", "Café especial", int64(25000)).
			Return(nil)

		req, err := http.NewRequest(
			http.MethodPut,
			server.URL+"/v1/sales/abc",
			strings.NewReader(`{"item_name":"Café especial","price":"25000","sale_date":"2030-01-01"}`),
		)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var sale domain.Sale
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&sale))
		assert.Equal(t, "Café especial", sale.ItemName)
		assert.Equal(t, "2024-06-10", sale.SaleDate)
	})
}

func TestDeleteSaleHandler(t *testing.T) {
	server, mockSaleRepo := newSalesServer(t)

	t.Run("remoção bem sucedida", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			GetSaleByID("abc").
			Return(&domain.Sale{ID: "abc", SaleDate: "2024-06-10"}, nil)

		mockSaleRepo.EXPECT().
			DeleteSale("abc").
			Return(nil)

		req, err := http.NewRequest(http.MethodDelete, server.URL+"/v1/sales/abc", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("venda já removida", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			GetSaleByID("sumiu").
			Return(nil, repository.ErrSaleNotFound)

		req, err := http.NewRequest(http.MethodDelete, server.URL+"/v1/sales/sumiu", nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, apiErrors.ErrSaleNotFound, decodeAPIError(t, resp).Code)
	})
}
