package reporting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Reporter produz o resumo semanal consumido pelo gráfico de barras
type Reporter interface {
	WeeklySummary(selectedDate string) ([]*domain.WeeklySummary, error)
}

type Service struct {
	saleRepo repository.SaleRepository
}

func NewService(saleRepo repository.SaleRepository) Reporter {
	return &Service{
		saleRepo: saleRepo,
	}
}

// WeeklySummary busca as vendas da janela de 7 dias em uma única consulta
// de pertinência e agrega com a mesma função usada pelo caminho vivo.
func (s *Service) WeeklySummary(selectedDate string) ([]*domain.WeeklySummary, error) {
	dates, err := WindowDates(selectedDate)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListSalesByDates(dates)
	if err != nil {
		logrus.WithError(err).WithField("selected_date", selectedDate).Error("Erro ao buscar vendas da janela semanal")
		return nil, err
	}

	return Aggregate(selectedDate, sales)
}
