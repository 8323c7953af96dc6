// Copyright (c) Gabriel de Quadros Ligneul
// SPDX-License-Identifier: Apache-2.0 (see LICENSE)

// Package supervisor starts a set of workers and stops all of them when one
// fails or the context ends.
package supervisor

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Worker is a long running task. It must signal ready once it can serve and
// return when ctx is done.
type Worker interface {
	String() string
	Start(ctx context.Context, ready chan<- struct{}) error
}

// SupervisorWorker starts its workers in order, each one after the previous
// signalled ready.
type SupervisorWorker struct {
	Name    string
	Workers []Worker
}

func (w SupervisorWorker) String() string {
	return w.Name
}

func (w SupervisorWorker) Start(ctx context.Context, ready chan<- struct{}) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, worker := range w.Workers {
		worker := worker
		workerReady := make(chan struct{}, 1)
		group.Go(func() error {
			err := worker.Start(groupCtx, workerReady)
			if err != nil && groupCtx.Err() == nil {
				slog.Warn("supervisor: worker exited", "worker", worker, "error", err)
				return fmt.Errorf("%v: %w", worker, err)
			}
			slog.Debug("supervisor: worker stopped", "worker", worker)
			return nil
		})
		select {
		case <-workerReady:
			slog.Debug("supervisor: worker ready", "worker", worker)
		case <-groupCtx.Done():
			return group.Wait()
		}
	}
	slog.Debug("supervisor: all workers ready", "name", w.Name)
	ready <- struct{}{}
	return group.Wait()
}
