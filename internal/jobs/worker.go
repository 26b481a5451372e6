package jobs

import (
	"personal-crm-backend/config"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RunWorker starts the asynq server that processes background tasks.
// Blocks until the server stops, so run it in its own goroutine.
func RunWorker(redisOpt asynq.RedisClientOpt, digest *ReminderDigestProcessor) {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
	})

	mux := asynq.NewServeMux()
	mux.Handle(TypeReminderDigest, digest)

	if err := srv.Run(mux); err != nil {
		config.Logger.Fatal("Asynq worker failed", zap.Error(err))
	}
}
