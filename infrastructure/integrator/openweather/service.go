package openweather

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/openweather/openweatherclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// WeatherIntegrator expõe o clima atual para o dashboard. O widget é
// decorativo: falha de consulta é registrada e engolida, mantendo o
// último snapshot válido (ou nenhum).
type WeatherIntegrator interface {
	CurrentWeather() (*domain.Weather, bool)
	Refresh() error
	GetIcon(code string) ([]byte, error)
}

type WeatherService struct {
	cfg    *config.Config
	Client openweatherclient.Client

	mu     sync.RWMutex
	cached *domain.Weather
}

func New(cfg *config.Config, client openweatherclient.Client) WeatherIntegrator {
	return &WeatherService{
		cfg:    cfg,
		Client: client,
	}
}

// CurrentWeather devolve o snapshot em cache. Se ainda não houver um,
// tenta uma consulta imediata; falha aqui apenas suprime o widget.
func (s *WeatherService) CurrentWeather() (*domain.Weather, bool) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()

	if cached != nil {
		return cached, true
	}

	if err := s.Refresh(); err != nil {
		logrus.WithError(err).Warn("Consulta de clima indisponível, widget suprimido")
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached, s.cached != nil
}

// Refresh consulta o OpenWeatherMap e atualiza o snapshot em cache
func (s *WeatherService) Refresh() error {
	resp, err := s.Client.GetCurrentWeather(s.cfg.Weather.City)
	if err != nil {
		return err
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Tracef("Resposta do OpenWeatherMap: %s", utils.PrettyJson(resp))
	}

	weather := &domain.Weather{
		City:        resp.Name,
		Temperature: resp.Main.Temp,
		FetchedAt:   time.Now(),
	}

	if len(resp.Weather) > 0 {
		weather.Description = resp.Weather[0].Description
		weather.Icon = resp.Weather[0].Icon
	}

	s.mu.Lock()
	s.cached = weather
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"city":        weather.City,
		"temperature": weather.Temperature,
	}).Debug("Snapshot de clima atualizado")

	return nil
}

func (s *WeatherService) GetIcon(code string) ([]byte, error) {
	return s.Client.GetIcon(code)
}
