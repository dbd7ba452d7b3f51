package tasks

import (
	"context"
	"fmt"
	"log/slog"
)

// PollFeedTask runs one ingestion cycle. There is no retry: a failed
// cycle leaves the caches untouched and the next tick tries again.
type PollFeedTask struct {
	Task
	runner CycleRunner
}

func NewPollFeedTask(runner CycleRunner) *PollFeedTask {
	return &PollFeedTask{
		Task:   NewTask(TaskTypePollFeed),
		runner: runner,
	}
}

func (t *PollFeedTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	result, err := t.runner.RunCycle(ctx)
	if err != nil {
		return fmt.Errorf("poll cycle failed: %w", err)
	}

	slog.Info("Task completed",
		"type", "PollFeed",
		"duration", t.GetDuration(),
		"new_matches", len(result.NewMatches),
		"history", len(result.History))

	return nil
}
