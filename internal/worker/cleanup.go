package worker

import (
	"ClipHub/internal/mq"
	"ClipHub/internal/storage"
	"context"
	"encoding/json"
	"log"
)

// RunCleanupWorker consumes media cleanup messages and removes the
// referenced objects. Removal is idempotent, so redelivery after a
// crash is harmless; a failed removal is logged and the message acked,
// matching the best-effort contract of video deletion.
func RunCleanupWorker(ctx context.Context) error {
	client, err := mq.Dial()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.DeclareTopology(); err != nil {
		return err
	}
	if err := client.Channel.Qos(1, 0, false); err != nil {
		return err
	}

	deliveries, err := client.Channel.Consume(mq.QueueCleanup, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			var msg mq.CleanupMessage
			if err := json.Unmarshal(delivery.Body, &msg); err != nil {
				log.Printf("drop malformed cleanup message: %v", err)
				_ = delivery.Ack(false)
				continue
			}
			if err := storage.Default.Remove(ctx, msg.Locator); err != nil {
				log.Printf("cleanup of %s failed: %v", msg.Locator, err)
			}
			_ = delivery.Ack(false)
		}
	}
}
