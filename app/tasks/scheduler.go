package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

// Scheduler ticks at the poll interval and feeds tasks to a single
// worker over a depth-one queue. One worker plus one slot guarantees
// cycles never overlap: the cache writes are whole-collection and not
// transactional, so exactly one cycle may run at a time. A tick that
// lands while a cycle is still running is dropped, not queued up.
type Scheduler struct {
	runner    CycleRunner
	interval  time.Duration
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	taskQueue chan TaskInterface
}

func NewScheduler(runner CycleRunner, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		runner:    runner,
		interval:  interval,
		ctx:       ctx,
		cancel:    cancel,
		taskQueue: make(chan TaskInterface, 1),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.worker()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		// First poll happens at startup, not one interval in.
		s.enqueuePoll()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueuePoll()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("a cycle is already queued")
	}
}

// TriggerPoll enqueues an immediate poll, used by the forced-refresh
// API endpoint.
func (s *Scheduler) TriggerPoll() error {
	return s.EnqueueTask(NewPollFeedTask(s.runner))
}

func (s *Scheduler) enqueuePoll() {
	if err := s.EnqueueTask(NewPollFeedTask(s.runner)); err != nil {
		slog.Warn("Skipping poll tick", "reason", err)
	}
}

func (s *Scheduler) worker() {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	if err := task.Execute(taskCtx); err != nil {
		slog.Error("Task execution failed",
			"type", string(task.GetType()),
			"id", task.GetID(),
			"duration", task.GetDuration(),
			"error", err)
	}
}
