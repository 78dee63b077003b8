package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_WeeklySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)

	service := &Service{
		saleRepo: mockSaleRepo,
	}

	t.Run("busca a janela inteira em uma única consulta e agrega por dia", func(t *testing.T) {
		expectedDates := []string{
			"2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07",
			"2024-06-08", "2024-06-09", "2024-06-10",
		}

		mockSaleRepo.EXPECT().
			ListSalesByDates(expectedDates).
			Return([]*domain.Sale{
				{ID: "s1", ItemName: "Café", Price: 20000, SaleDate: "2024-06-10"},
				{ID: "s2", ItemName: "Suco", Price: 12000, SaleDate: "2024-06-08"},
			}, nil)

		summary, err := service.WeeklySummary("2024-06-10")
		require.NoError(t, err)

		require.Len(t, summary, WindowDays)
		assert.Equal(t, int64(12000), summary[4].Total)
		assert.Equal(t, int64(20000), summary[6].Total)
	})

	t.Run("erro do banco é propagado", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			ListSalesByDates(gomock.Any()).
			Return(nil, repository.ErrTooManyDates)

		_, err := service.WeeklySummary("2024-06-10")
		assert.ErrorIs(t, err, repository.ErrTooManyDates)
	})

	t.Run("data inválida não consulta o banco", func(t *testing.T) {
		_, err := service.WeeklySummary("junho")
		assert.Error(t, err)
	})
}
