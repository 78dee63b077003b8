package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

type WeeklySummaryResponse struct {
	SelectedDate string                  `json:"selected_date"`
	Summary      []*domain.WeeklySummary `json:"summary"`
}

// WeeklySummary retorna os totais diários da janela de 7 dias que termina
// na data selecionada, prontos para o gráfico de barras do dashboard.
func WeeklySummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro date é obrigatório", nil)
			return
		}

		summary, err := service.WeeklySummary(date)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrTooManyDates):
				apiErrors.WriteError(w, apiErrors.ErrQueryTooLarge, "Consulta excede o limite de datas por filtro", nil)

			case strings.Contains(err.Error(), "data selecionada inválida"):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)

			default:
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar resumo semanal", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(WeeklySummaryResponse{
			SelectedDate: date,
			Summary:      summary,
		})
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
