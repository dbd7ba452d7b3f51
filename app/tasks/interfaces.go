package tasks

import (
	"context"

	"github.com/tfrwatch/tfrwatch/app/pipeline"
)

// CycleRunner is the pipeline side of the scheduler: one call runs one
// full ingestion cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) (*pipeline.Result, error)
}

var _ CycleRunner = (*pipeline.Pipeline)(nil)

type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
	TriggerPoll() error
}
