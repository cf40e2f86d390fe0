package contracts

import "context"

type AsyncWorker interface {
	// Run starts the consumer loop and blocks until ctx is done
	Run(ctx context.Context) error
	// ProcessMessage handles one stream entry, then acks and deletes it
	ProcessMessage(ctx context.Context, msgID string, rawData []byte) error
}
