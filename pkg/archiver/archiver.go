package archiver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/nextbus/pkg/feed"
	"github.com/travigo/nextbus/pkg/nextbus"
)

type FeedClient interface {
	GetRouteConfig(ctx context.Context, agencyTag string, routeTag string) (*nextbus.RouteDetail, error)
	GetPredictions(ctx context.Context, agencyTag string, routeTag string, stopTag string) (*nextbus.PredictionSet, error)
}

type Archiver struct {
	Client      FeedClient
	Stores      []SnapshotStore
	Concurrency int

	NewBackOff func() backoff.BackOff
	Now        func() time.Time
}

func (a *Archiver) Run(ctx context.Context, targets []Target, interval time.Duration) error {
	for {
		if err := a.Perform(ctx, targets); err != nil {
			log.Error().Err(err).Msg("Archive run failed")
		}

		if interval <= 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}

// Perform archives every target once. A failing target is logged and does not stop the others.
func (a *Archiver) Perform(ctx context.Context, targets []Target) error {
	var targetErrors []error
	snapshotCount := 0

	for _, target := range targets {
		snapshots, err := a.archiveRoute(ctx, target)
		if err != nil {
			log.Error().Err(err).Str("agency", target.Agency).Str("route", target.Route).Msg("Failed to archive route")
			targetErrors = append(targetErrors, err)
		}

		if len(snapshots) == 0 {
			continue
		}

		for _, store := range a.Stores {
			if err := store.StoreSnapshots(ctx, snapshots); err != nil {
				targetErrors = append(targetErrors, err)
			}
		}

		snapshotCount += len(snapshots)
	}

	log.Info().Int("targets", len(targets)).Int("snapshots", snapshotCount).Msg("Archived predictions")

	return errors.Join(targetErrors...)
}

func (a *Archiver) archiveRoute(ctx context.Context, target Target) ([]*PredictionSnapshot, error) {
	route, err := feed.Retry(ctx, a.newBackOff(), func() (*nextbus.RouteDetail, error) {
		return a.Client.GetRouteConfig(ctx, target.Agency, target.Route)
	})
	if err != nil {
		return nil, fmt.Errorf("route config for %s/%s: %w", target.Agency, target.Route, err)
	}

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	recordedAt := a.now()
	predictionsPool := pool.NewWithResults[*PredictionSnapshot]().WithErrors().WithMaxGoroutines(concurrency)

	for _, stop := range route.Stops {
		stop := stop
		predictionsPool.Go(func() (*PredictionSnapshot, error) {
			predictions, err := feed.Retry(ctx, a.newBackOff(), func() (*nextbus.PredictionSet, error) {
				return a.Client.GetPredictions(ctx, target.Agency, target.Route, stop.Tag)
			})
			if err != nil {
				return nil, fmt.Errorf("predictions for stop %s: %w", stop.Tag, err)
			}

			return NewPredictionSnapshot(target, stop, predictions, recordedAt), nil
		})
	}

	return predictionsPool.Wait()
}

func (a *Archiver) newBackOff() backoff.BackOff {
	if a.NewBackOff != nil {
		return a.NewBackOff()
	}

	return feed.NewRetryBackOff()
}

func (a *Archiver) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}

	return time.Now()
}
