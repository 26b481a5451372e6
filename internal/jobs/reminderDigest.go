package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-crm-backend/config"
	"personal-crm-backend/reminders/repositories"
	users_repositories "personal-crm-backend/users/repositories"
	"personal-crm-backend/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeReminderDigest is the asynq task type for the daily due-reminder email.
const TypeReminderDigest = "reminder:digest"

// digestWindow is how far ahead the digest looks for upcoming reminders.
const digestWindow = 24 * time.Hour

func NewReminderDigestTask() *asynq.Task {
	return asynq.NewTask(TypeReminderDigest, nil)
}

// ReminderDigestProcessor emails the owner a summary of overdue reminders
// and reminders due within the next day.
type ReminderDigestProcessor struct {
	ReminderRepo repositories.ReminderRepository
	UserRepo     users_repositories.UserRepository
}

func (p *ReminderDigestProcessor) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	owner, err := p.UserRepo.GetOwner()
	if err != nil {
		config.Logger.Warn("Reminder digest skipped: no owner account", zap.Error(err))
		return nil
	}

	now := time.Now()
	reminders, err := p.ReminderRepo.GetRemindersDueBefore(now.Add(digestWindow))
	if err != nil {
		config.Logger.Error("Reminder digest: failed to load reminders", zap.Error(err))
		return err
	}
	if len(reminders) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nYou have %d reminder(s) needing attention:\n\n", owner.FirstName, len(reminders))
	for _, reminder := range reminders {
		status := "due"
		if reminder.DueDate.Before(now) {
			status = "OVERDUE"
		}
		name := ""
		if reminder.Contact != nil {
			name = " (" + reminder.Contact.FullName() + ")"
		}
		fmt.Fprintf(&b, "- %s%s — %s %s\n", reminder.Title, name, status, reminder.DueDate.Format("Jan 2, 2006"))
	}
	b.WriteString("\n— Your CRM\n")

	subject := fmt.Sprintf("CRM digest: %d reminder(s) for %s", len(reminders), now.Format("Jan 2"))
	if err := utils.SendEmail(owner.Email, subject, b.String()); err != nil {
		return fmt.Errorf("reminder digest email: %w", err)
	}

	config.Logger.Info("Reminder digest sent",
		zap.Int("reminders", len(reminders)),
		zap.String("to_email", owner.Email),
	)
	return nil
}
