// Package scheduler keeps the Trakt OAuth token fresh while a long-lived
// stdio session runs.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/amaumene/trakt-mcp/internal/services/trakt"
)

// Scheduler manages scheduled tasks
type Scheduler struct {
	cron   *cron.Cron
	trakt  *trakt.Client
	logger *logrus.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(client *trakt.Client, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		trakt:  client,
		logger: logger,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.logger.Info("Starting scheduler")

	// Every hour: refresh the Trakt token if it is close to expiry
	_, err := s.cron.AddFunc("0 * * * *", func() {
		s.runTokenRefresh()
	})
	if err != nil {
		return fmt.Errorf("failed to add token refresh job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started")

	// Run an initial refresh immediately so a stale token from a previous
	// session does not fail the first tool call
	go s.runTokenRefresh()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	s.cron.Stop()
}

// runTokenRefresh executes the token refresh job
func (s *Scheduler) runTokenRefresh() {
	s.logger.Debug("Running scheduled token refresh")

	if err := s.trakt.RefreshIfNeeded(context.Background()); err != nil {
		s.logger.WithError(err).Error("Token refresh job failed")
	}
}
