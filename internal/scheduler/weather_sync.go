package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/openweather"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// WeatherSyncConfig representa a configuração do agendador de clima
type WeatherSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// WeatherSyncService mantém o snapshot de clima aquecido para o widget
// do dashboard, evitando consultar o OpenWeatherMap a cada requisição.
type WeatherSyncService struct {
	scheduler      *gocron.Scheduler
	config         WeatherSyncConfig
	weatherService openweather.WeatherIntegrator

	syncRunning     bool
	syncMutex       sync.Mutex
	lastSyncStarted time.Time
}

// NewWeatherSyncService cria uma nova instância do serviço de sincronização de clima
func NewWeatherSyncService(
	weatherService openweather.WeatherIntegrator,
	appConfig *config.Config,
) *WeatherSyncService {
	syncConfig := WeatherSyncConfig{
		CronSchedule: appConfig.WeatherSync.CronSchedule,
		SyncEnabled:  appConfig.WeatherSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de clima carregada")

	return &WeatherSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		weatherService: weatherService,
	}
}

// Start inicia o agendador
func (s *WeatherSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de clima desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de clima")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncWeather()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de clima: %w", err)
	}

	s.scheduler.StartAsync()

	// Aquecer o cache logo na subida, sem esperar o primeiro tick
	go s.syncWeather()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de clima")
		s.scheduler.Stop()
	}()

	return nil
}

// syncWeather atualiza o snapshot de clima em cache
func (s *WeatherSyncService) syncWeather() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de clima já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStarted = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	// Falha de clima nunca derruba nada: fica o snapshot anterior
	if err := s.weatherService.Refresh(); err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar snapshot de clima")
		return
	}

	logrus.Debug("Sincronização de clima concluída")
}
