package worker

import (
	"context"
)

// Worker defines the interface for long-running background processors
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker.go -package=mocks -mock_names=Worker=MockWorker
type Worker interface {
	// Start begins the worker's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the worker
	// This should wait for any in-progress work to complete
	Stop(ctx context.Context) error

	// Name returns the worker's name for logging and identification
	Name() string
}
