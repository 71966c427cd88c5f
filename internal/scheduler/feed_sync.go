// Package scheduler contém o agendamento da recarga periódica do feed de transações
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/transaction-dashboard-api/internal/config"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/seeding"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

// FeedSyncer é a carga do feed com registro de status
type FeedSyncer interface {
	Initialize(ctx context.Context) (*domain.SeedResult, error)
	TriggerManualSync() bool
	GetStatus() domain.FeedSyncStatus
}

// FeedSyncService agenda a recarga do feed e registra o resultado de cada carga,
// seja ela agendada, manual ou disparada pela API
type FeedSyncService struct {
	scheduler *gocron.Scheduler
	config    config.FeedSync
	seeder    seeding.Seeder

	baseCtx             context.Context
	syncMutex           sync.Mutex
	syncRunning         int
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastInserted        int
	lastError           error
}

func NewFeedSyncService(seeder seeding.Seeder, cfg config.FeedSync) *FeedSyncService {
	scheduler := gocron.NewScheduler(time.UTC)

	log.L.WithFields(log.Fields{
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.Enabled,
	}).Info("Configuração do agendador de recarga do feed carregada")

	return &FeedSyncService{
		scheduler: scheduler,
		config:    cfg,
		seeder:    seeder,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *FeedSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Recarga agendada do feed desabilitada por configuração")
		return nil
	}

	s.baseCtx = ctx

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do feed")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Initialize(s.baseCtx); err != nil {
			log.L.WithError(err).Error("Erro na recarga agendada do feed")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do feed: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de recarga do feed")
		s.scheduler.Stop()
	}()

	return nil
}

// Initialize executa uma carga completa e registra o status
func (s *FeedSyncService) Initialize(ctx context.Context) (*domain.SeedResult, error) {
	s.syncMutex.Lock()
	s.markStarted()
	s.syncMutex.Unlock()

	return s.run(ctx)
}

// TriggerManualSync dispara uma carga em background, ignorando se já houver uma em andamento
func (s *FeedSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning > 0 {
		s.syncMutex.Unlock()
		log.L.Info("Recarga do feed já em andamento, ignorando solicitação manual")
		return false
	}
	s.markStarted()
	s.syncMutex.Unlock()

	log.L.Info("Iniciando recarga manual do feed")
	go func() {
		if _, err := s.run(s.baseCtx); err != nil {
			log.L.WithError(err).Error("Erro na recarga manual do feed")
		}
	}()

	return true
}

// markStarted exige syncMutex travado
func (s *FeedSyncService) markStarted() {
	s.syncRunning++
	s.lastSyncStartedAt = time.Now()
}

func (s *FeedSyncService) run(ctx context.Context) (*domain.SeedResult, error) {
	result, err := s.seeder.Initialize(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning--
	s.lastSyncCompletedAt = time.Now()
	s.lastError = err
	if err == nil {
		s.lastInserted = result.Inserted
	}

	return result, err
}

// GetStatus retorna o status atual do agendador
func (s *FeedSyncService) GetStatus() domain.FeedSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := domain.FeedSyncStatus{
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.syncRunning > 0,
		LastInserted: s.lastInserted,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}
	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}

	return status
}
