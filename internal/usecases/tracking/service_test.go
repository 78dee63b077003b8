package tracking

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockSaleRepository, *Hub) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	hub := NewHub()

	service := &Service{
		saleRepo: mockSaleRepo,
		hub:      hub,
	}

	return service, mockSaleRepo, hub
}

func TestService_AddSale(t *testing.T) {
	t.Run("venda válida é persistida", func(t *testing.T) {
		service, mockSaleRepo, _ := newTestService(t)

		created := &domain.Sale{
			ID:        "abc123",
			ItemName:  "Café",
			Price:     20000,
			SaleDate:  "2024-06-10",
			CreatedAt: time.Now(),
		}

		mockSaleRepo.EXPECT().
			CreateSale("Café", int64(20000), "2024-06-10").
			Return(created, nil)

		sale, err := service.AddSale("Café", 20000, "2024-06-10")
		require.NoError(t, err)
		assert.Equal(t, created, sale)
	})

	t.Run("nome vazio é rejeitado antes de tocar o banco", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.AddSale("", 20000, "2024-06-10")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("preço negativo é rejeitado", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.AddSale("Café", -1, "2024-06-10")
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("preço zero é aceito", func(t *testing.T) {
		service, mockSaleRepo, _ := newTestService(t)

		mockSaleRepo.EXPECT().
			CreateSale("Brinde", int64(0), "2024-06-10").
			Return(&domain.Sale{ID: "abc", ItemName: "Brinde", SaleDate: "2024-06-10"}, nil)

		_, err := service.AddSale("Brinde", 0, "2024-06-10")
		assert.NoError(t, err)
	})

	t.Run("data fora do formato é rejeitada", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.AddSale("Café", 20000, "10/06/2024")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("falha de escrita vira ErrWriteFailed", func(t *testing.T) {
		service, mockSaleRepo, _ := newTestService(t)

		mockSaleRepo.EXPECT().
			CreateSale("Café", int64(20000), "2024-06-10").
			Return(nil, errors.New("connection refused"))

		_, err := service.AddSale("Café", 20000, "2024-06-10")
		assert.ErrorIs(t, err, ErrWriteFailed)
	})

	t.Run("escrita republica o snapshot para os assinantes da data", func(t *testing.T) {
		service, mockSaleRepo, hub := newTestService(t)

		sub := hub.Subscribe("2024-06-10")
		defer sub.Close()

		created := &domain.Sale{ID: "abc", ItemName: "Café", Price: 20000, SaleDate: "2024-06-10"}

		mockSaleRepo.EXPECT().
			CreateSale("Café", int64(20000), "2024-06-10").
			Return(created, nil)

		mockSaleRepo.EXPECT().
			ListSalesByDate("2024-06-10").
			Return([]*domain.Sale{created}, nil)

		_, err := service.AddSale("Café", 20000, "2024-06-10")
		require.NoError(t, err)

		snapshot := <-sub.C
		require.Len(t, snapshot, 1)
		assert.Equal(t, "abc", snapshot[0].ID)
	})

	t.Run("sem assinantes o snapshot não é recarregado", func(t *testing.T) {
		service, mockSaleRepo, _ := newTestService(t)

		mockSaleRepo.EXPECT().
			CreateSale("Café", int64(20000), "2024-06-10").
			Return(&domain.Sale{ID: "abc", SaleDate: "2024-06-10"}, nil)

		// Nenhuma expectativa de ListSalesByDate: chamada extra falharia o teste
		_, err := service.AddSale("Café", 20000, "2024-06-10")
		assert.NoError(t, err)
	})
}

func TestService_UpdateSale(t *testing.T) {
	t.Run("atualiza nome e preço preservando data e created_at", func(t *testing.T) {
		service, mockSaleRepo, _ := newTestService(t)

		createdAt := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

		mockSaleRepo.EXPECT().
			GetSaleByID("abc").
			Return(&domain.Sale{
				ID:        "abc",
				ItemName:  "Café",
				Price:     20000,
				SaleDate:  "2024-06-10",
				CreatedAt: createdAt,
			}, nil)

		mockSaleRepo.EXPECT().
			UpdateSale("abc", "Café especial", int64(25000)).
			Return(nil)

		sale, err := service.UpdateSale(&domain.UpdateSaleRequest{
			ID:       "abc",
			ItemName: "Café especial",
			Price:    25000,
		})
		require.NoError(t, err)

		assert.Equal(t, "Café especial", sale.ItemName)
		assert.Equal(t, int64(25000), sale.Price)
		assert.Equal(t, "2024-06-10", sale.SaleDate)
		assert.Equal(t, createdAt, sale.CreatedAt)
	})

	t.Run("venda inexistente", func(t *testing.T) {
		service, mockSaleRepo, _ := newTestService(t)

		mockSaleRepo.EXPECT().
			GetSaleByID("sumiu").
			Return(nil, repository.ErrSaleNotFound)

		_, err := service.UpdateSale(&domain.UpdateSaleRequest{
			ID:       "sumiu",
			ItemName: "Café",
			Price:    100,
		})
		assert.ErrorIs(t, err, ErrSaleNotFound)
	})

	t.Run("validações aplicam antes de carregar a venda", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.UpdateSale(&domain.UpdateSaleRequest{ID: "abc", ItemName: "", Price: 100})
		assert.ErrorIs(t, err, ErrMissingRequiredData)

		_, err = service.UpdateSale(&domain.UpdateSaleRequest{ID: "abc", ItemName: "Café", Price: -5})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestService_DeleteSale(t *testing.T) {
	t.Run("remove e republica o snapshot da data da venda", func(t *testing.T) {
		service, mockSaleRepo, hub := newTestService(t)

		sub := hub.Subscribe("2024-06-10")
		defer sub.Close()

		mockSaleRepo.EXPECT().
			GetSaleByID("abc").
			Return(&domain.Sale{ID: "abc", SaleDate: "2024-06-10"}, nil)

		mockSaleRepo.EXPECT().
			DeleteSale("abc").
			Return(nil)

		mockSaleRepo.EXPECT().
			ListSalesByDate("2024-06-10").
			Return([]*domain.Sale{}, nil)

		err := service.DeleteSale("abc")
		require.NoError(t, err)

		snapshot := <-sub.C
		assert.Empty(t, snapshot)
	})

	t.Run("excluir venda já removida responde como não encontrada", func(t *testing.T) {
		service, mockSaleRepo, _ := newTestService(t)

		mockSaleRepo.EXPECT().
			GetSaleByID("abc").
			Return(nil, repository.ErrSaleNotFound)

		err := service.DeleteSale("abc")
		assert.ErrorIs(t, err, ErrSaleNotFound)
	})
}

func TestService_SubscribeByDate(t *testing.T) {
	t.Run("entrega o snapshot inicial imediatamente", func(t *testing.T) {
		service, mockSaleRepo, _ := newTestService(t)

		mockSaleRepo.EXPECT().
			ListSalesByDate("2024-06-10").
			Return([]*domain.Sale{
				{ID: "s1", ItemName: "Café", Price: 20000, SaleDate: "2024-06-10"},
			}, nil)

		sub, err := service.SubscribeByDate("2024-06-10")
		require.NoError(t, err)
		defer sub.Close()

		snapshot := <-sub.C
		require.Len(t, snapshot, 1)
		assert.Equal(t, "s1", snapshot[0].ID)
	})

	t.Run("data inválida não abre assinatura", func(t *testing.T) {
		service, _, hub := newTestService(t)

		_, err := service.SubscribeByDate("ontem")
		assert.ErrorIs(t, err, ErrInvalidDate)
		assert.False(t, hub.HasSubscribers("ontem"))
	})

	t.Run("falha ao carregar snapshot desfaz a assinatura", func(t *testing.T) {
		service, mockSaleRepo, hub := newTestService(t)

		mockSaleRepo.EXPECT().
			ListSalesByDate("2024-06-10").
			Return(nil, errors.New("connection refused"))

		_, err := service.SubscribeByDate("2024-06-10")
		assert.Error(t, err)
		assert.False(t, hub.HasSubscribers("2024-06-10"))
	})
}
