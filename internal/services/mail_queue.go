package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/metrics"
	"github.com/arcanosig/arcano/backend/internal/models"
)

// Sender delivers one rendered email.
type Sender interface {
	SendEmail(to, subject, htmlBody string) error
}

// Mailer accepts emails for asynchronous delivery.
type Mailer interface {
	Enqueue(msg Email)
}

type mailJob struct {
	logID uint
	msg   Email
}

// MailQueue is a bounded in-process outbox drained by a single worker.
// Never call Enqueue while holding a transaction on the same database.
type MailQueue struct {
	db     *gorm.DB
	sender Sender
	jobs   chan mailJob
	now    func() time.Time
	log    *logrus.Entry
}

// NewMailQueue creates a queue holding at most size pending messages.
func NewMailQueue(db *gorm.DB, sender Sender, size int) *MailQueue {
	if size <= 0 {
		size = 1
	}
	return &MailQueue{
		db:     db,
		sender: sender,
		jobs:   make(chan mailJob, size),
		now:    utcNow,
		log:    logger.Component("mail_queue"),
	}
}

// Enqueue records the message and hands it to the worker. It never blocks:
// when the queue is full the message is dropped and logged as failed.
func (q *MailQueue) Enqueue(msg Email) {
	entry := models.EmailLog{Recipient: msg.To, Subject: msg.Subject, Status: models.EmailQueued}
	if err := q.db.Create(&entry).Error; err != nil {
		q.log.WithError(err).Warn("failed to record queued email")
	}

	select {
	case q.jobs <- mailJob{logID: entry.ID, msg: msg}:
		metrics.IncEmail(string(models.EmailQueued))
	default:
		q.log.WithField("recipient", msg.To).Warn("mail queue full, dropping message")
		q.finish(entry.ID, models.EmailFailed, "mail queue full")
	}
}

// Start runs the worker until ctx is cancelled.
func (q *MailQueue) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case job := <-q.jobs:
				q.process(job)
			}
		}
	}()
}

// Drain delivers whatever is still queued until the queue is empty or ctx is done.
func (q *MailQueue) Drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-q.jobs:
			q.process(job)
		default:
			return
		}
	}
}

// Pending reports how many messages are waiting.
func (q *MailQueue) Pending() int { return len(q.jobs) }

func (q *MailQueue) process(job mailJob) {
	if err := q.sender.SendEmail(job.msg.To, job.msg.Subject, job.msg.Body); err != nil {
		q.log.WithError(err).WithField("recipient", job.msg.To).Error("failed to send email")
		q.finish(job.logID, models.EmailFailed, err.Error())
		return
	}
	q.finish(job.logID, models.EmailSent, "")
}

func (q *MailQueue) finish(logID uint, status models.EmailStatus, errMsg string) {
	metrics.IncEmail(string(status))
	if logID == 0 {
		return
	}
	updates := map[string]interface{}{"status": status, "error": errMsg}
	if status == models.EmailSent {
		updates["sent_at"] = q.now()
	}
	if err := q.db.Model(&models.EmailLog{}).Where("id = ?", logID).Updates(updates).Error; err != nil {
		q.log.WithError(err).Warn("failed to update email log")
	}
}
