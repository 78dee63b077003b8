package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/openweather"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type WeatherResponse struct {
	City        string `json:"city"`
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	FetchedAt   string `json:"fetched_at"`
}

// GetWeather devolve o snapshot de clima em cache. O widget é decorativo:
// sem snapshot disponível a resposta é 204 e o dashboard apenas o omite.
func GetWeather(service openweather.WeatherIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weather, ok := service.CurrentWeather()
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(WeatherResponse{
			City:        weather.City,
			Temperature: utils.RoundTemperature(weather.Temperature),
			Description: weather.Description,
			Icon:        weather.Icon,
			FetchedAt:   weather.FetchedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetWeatherIcon faz proxy do ícone de clima do OpenWeatherMap, evitando
// expor a origem externa diretamente para o navegador.
func GetWeatherIcon(service openweather.WeatherIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := httprouter.ParamsFromContext(r.Context()).ByName("code")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código do ícone não fornecido", nil)
			return
		}

		icon, err := service.GetIcon(code)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao buscar ícone de clima")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Write(icon)
	}
}
