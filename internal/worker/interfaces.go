package worker

import (
	"context"

	"academyhub.app/server/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// Processor handles one task. A nil error means the message can be acked,
// including tasks that were deliberately skipped.
type Processor interface {
	Process(ctx context.Context, msg queue.Message) error
}
