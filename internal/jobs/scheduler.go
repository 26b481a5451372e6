package jobs

import (
	"personal-crm-backend/config"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartReminderDigestScheduler enqueues the digest task every morning at 8.
// Returns the cron runner so callers can Stop it on shutdown.
func StartReminderDigestScheduler(asynqClient *asynq.Client) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 8 * * *", func() {
		if _, err := asynqClient.Enqueue(NewReminderDigestTask()); err != nil {
			config.Logger.Error("Failed to enqueue reminder digest", zap.Error(err))
			return
		}
		config.Logger.Info("Reminder digest enqueued")
	})
	if err != nil {
		config.Logger.Fatal("Failed to schedule reminder digest", zap.Error(err))
	}

	c.Start()
	return c
}
