package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/velenyx/sporthub/internal/entity"
	kafkapc "github.com/velenyx/sporthub/internal/infrastructure/kafka"
	"github.com/velenyx/sporthub/internal/usecase"
	"github.com/velenyx/sporthub/pkg/logger"
	"github.com/velenyx/sporthub/pkg/types/errs"
)

// StatsProjector consumes hub events and folds them into hub-profile
// counters. Commits happen only after a successful apply; an unknown
// event kind is committed anyway so one bad message cannot wedge the
// partition.
type StatsProjector struct {
	stats  usecase.StatsUseCase
	ec     *kafkapc.EventConsumer
	logger logger.Interface

	commitTimeout  time.Duration
	processTimeout time.Duration

	workers int
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	started atomic.Bool
}

func New(
	stats usecase.StatsUseCase,
	ec *kafkapc.EventConsumer,
	l logger.Interface,
	commitTimeout time.Duration,
	processTimeout time.Duration,
	workers int,
) *StatsProjector {
	return &StatsProjector{
		stats:          stats,
		ec:             ec,
		logger:         l,
		commitTimeout:  commitTimeout,
		processTimeout: processTimeout,
		workers:        workers,
	}
}

func (c *StatsProjector) Start(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return fmt.Errorf("StatsProjector - Start - projector already started")
	}

	c.ctx, c.cancel = context.WithCancel(ctx)

	tasks := make(chan kafka.Message, c.workers*2)

	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker(tasks)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer close(tasks)

		for {
			select {
			case <-c.ctx.Done():
				return
			default:
				// 1. fetch without committing
				event, err := c.ec.ReadEvent(c.ctx)
				if err != nil {
					if !errors.Is(err, context.Canceled) {
						c.logger.Error(err, "StatsProjector - Start - c.ec.ReadEvent")
					}
					continue
				}

				// 2. hand off to a worker
				select {
				case tasks <- event:
				case <-c.ctx.Done():
					return
				}
			}
		}
	}()

	return nil
}

func (c *StatsProjector) project(ctx context.Context, event kafka.Message) error {
	kind, ok := eventKind(event)
	if !ok {
		return fmt.Errorf("StatsProjector - project: %w: missing event_kind header", errs.ErrUnknownEvent)
	}

	aggregateID, err := uuid.Parse(string(event.Key))
	if err != nil {
		return fmt.Errorf("StatsProjector - project - uuid.Parse: %w", err)
	}

	err = c.stats.Apply(ctx, kind, aggregateID, event.Value)
	if err != nil {
		return fmt.Errorf("StatsProjector - project - c.stats.Apply: %w", err)
	}

	return nil
}

func (c *StatsProjector) worker(tasks <-chan kafka.Message) {
	defer c.wg.Done()

	for event := range tasks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.logger.Error(fmt.Errorf("panic %v", r), "StatsProjector - worker - panic")
				}
			}()

			processCtx, processCancel := context.WithTimeout(c.ctx, c.processTimeout)
			err := c.project(processCtx, event)
			processCancel()
			if err != nil {
				c.logger.Error(err, "StatsProjector - worker - c.project")

				// Uninterpretable messages are committed so the
				// partition keeps moving; transient failures are
				// redelivered.
				if !errors.Is(err, errs.ErrUnknownEvent) {
					return
				}
			}

			commitCtx, commitCancel := context.WithTimeout(c.ctx, c.commitTimeout)
			err = c.ec.CommitEvent(commitCtx, event)
			commitCancel()
			if err != nil {
				c.logger.Error(err, "StatsProjector - worker - c.ec.CommitEvent")
			}
		}()
	}
}

func (c *StatsProjector) Shutdown(ctx context.Context) error {
	if !c.started.Load() {
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})

	go func() {
		c.wg.Wait()
		c.ec.Close()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return nil
	}
}

func eventKind(event kafka.Message) (entity.EventKind, bool) {
	for _, h := range event.Headers {
		if h.Key == "event_kind" {
			return entity.EventKind(h.Value), true
		}
	}

	return "", false
}
