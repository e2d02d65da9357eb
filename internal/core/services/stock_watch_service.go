package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"palmtec-registry/internal/adapters/persistence/repositories"
	"palmtec-registry/internal/config"
	"palmtec-registry/internal/pkg/logger"
	"palmtec-registry/internal/pkg/metrics"
)

const stockCheckTimeout = 30 * time.Second

// StockWatchService periodically counts approved serial numbers that are
// still unallocated and warns when the pool runs low
type StockWatchService struct {
	serialRepo repositories.SerialRepository
	cfg        config.StockWatchConfig
	cron       *cron.Cron
}

// NewStockWatchService creates a new stock watch service
func NewStockWatchService(serialRepo repositories.SerialRepository, cfg config.StockWatchConfig) *StockWatchService {
	return &StockWatchService{
		serialRepo: serialRepo,
		cfg:        cfg,
		cron:       cron.New(),
	}
}

// Start schedules the check. It is a no-op when the watch is disabled.
func (s *StockWatchService) Start() error {
	if !s.cfg.Enabled {
		logger.Info("Stock watch disabled")
		return nil
	}

	// Standard five-field expression: minute hour dom month dow
	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.run); err != nil {
		return fmt.Errorf("invalid stock watch schedule %q: %w", s.cfg.Schedule, err)
	}

	s.cron.Start()
	logger.Info("Stock watch started",
		zap.String("schedule", s.cfg.Schedule),
		zap.Int64("threshold", s.cfg.Threshold),
	)
	return nil
}

// Stop halts the scheduler and waits for a running check to finish
func (s *StockWatchService) Stop() {
	<-s.cron.Stop().Done()
	logger.Info("Stock watch stopped")
}

// Check counts available serial numbers, publishes the gauge and reports
// whether the count is below the threshold
func (s *StockWatchService) Check(ctx context.Context) (int64, bool, error) {
	available, err := s.serialRepo.CountAvailable(ctx)
	if err != nil {
		return 0, false, err
	}

	metrics.AvailableSerials.Set(float64(available))

	low := available < s.cfg.Threshold
	if low {
		logger.Warn("Available serial numbers below threshold",
			zap.Int64("available", available),
			zap.Int64("threshold", s.cfg.Threshold),
		)
	}
	return available, low, nil
}

func (s *StockWatchService) run() {
	ctx, cancel := context.WithTimeout(context.Background(), stockCheckTimeout)
	defer cancel()

	if _, _, err := s.Check(ctx); err != nil {
		logger.Error("Stock watch check failed", zap.Error(err))
	}
}
