// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// CleanupScheduler runs retention cleanup on a cron schedule. Cleanup only
// ever runs when scheduled or explicitly invoked; reads and writes never
// trigger it as a side effect.
type CleanupScheduler struct {
	logger   *slog.Logger
	store    *Store
	schedule string
	cron     *cron.Cron
}

// NewCleanupScheduler creates a new CleanupScheduler.
func NewCleanupScheduler(
	logger *slog.Logger,
	store *Store,
	schedule string,
) *CleanupScheduler {
	return &CleanupScheduler{
		logger:   logger,
		store:    store,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the cleanup job and starts the cron runner.
func (s *CleanupScheduler) Start(
	ctx context.Context,
) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		removed, err := s.store.CleanupExpired(ctx)
		if err != nil {
			s.logger.Error(
				"scheduled audit cleanup failed",
				slog.String("error", err.Error()),
			)

			return
		}

		s.logger.Info(
			"scheduled audit cleanup completed",
			slog.Int("removed", removed),
		)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup: %w", err)
	}

	s.logger.Info(
		"audit cleanup scheduler started",
		slog.String("schedule", s.schedule),
	)
	s.cron.Start()

	return nil
}

// Stop halts the cron runner and waits for an in-flight cleanup to finish.
func (s *CleanupScheduler) Stop(
	_ context.Context,
) error {
	<-s.cron.Stop().Done()

	return nil
}
