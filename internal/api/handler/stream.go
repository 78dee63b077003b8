package handler

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/tracking"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var streamJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// streamHeartbeat mantém proxies intermediários de olho na conexão
const streamHeartbeat = 25 * time.Second

// StreamSales publica snapshots de vendas de uma data via Server-Sent
// Events. Cada escrita na data assinada gera um evento com a lista
// completa daquela data; o primeiro evento chega logo após a conexão.
func StreamSales(service tracking.SalesTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro date é obrigatório", nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado pela conexão", nil)
			return
		}

		sub, err := service.SubscribeByDate(date)
		if err != nil {
			if errors.Is(err, tracking.ErrInvalidDate) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao assinar atualizações de vendas", nil)
			return
		}
		defer sub.Close()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		logrus.WithField("date", date).Info("Assinatura de vendas iniciada")

		heartbeat := time.NewTicker(streamHeartbeat)
		defer heartbeat.Stop()

		for {
			select {
			case <-r.Context().Done():
				logrus.WithField("date", date).Info("Assinatura de vendas encerrada pelo cliente")
				return

			case <-heartbeat.C:
				fmt.Fprint(w, ": ping\n\n")
				flusher.Flush()

			case sales, open := <-sub.C:
				if !open {
					return
				}

				if err := writeSalesEvent(w, date, sales); err != nil {
					logrus.WithError(err).Warn("Erro ao serializar snapshot de vendas")
					continue
				}
				flusher.Flush()
			}
		}
	}
}

func writeSalesEvent(w http.ResponseWriter, date string, sales []*domain.Sale) error {
	var total int64
	for _, sale := range sales {
		total += sale.Price
	}

	payload, err := streamJSON.Marshal(ListSalesResponse{
		Date:  date,
		Total: total,
		Sales: sales,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: sales\ndata: %s\n\n", payload)
	return err
}
