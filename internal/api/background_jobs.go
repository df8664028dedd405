package api

import (
	"log"
	"time"
)

// MailJob is a queued outbound notification email.
type MailJob struct {
	To        string
	Subject   string
	Body      string
	Timestamp time.Time
}

// StartBackgroundWorkers launches the async workers owned by the API.
func (a *API) StartBackgroundWorkers() {
	go a.mailWorker()
	log.Printf("[BackgroundJobs] Workers started")
}

// QueueMail enqueues an email without blocking the request path. If the
// queue is full the job is dropped with a warning.
func (a *API) QueueMail(to, subject, body string) {
	job := MailJob{To: to, Subject: subject, Body: body, Timestamp: time.Now()}
	select {
	case a.mailQueue <- job:
	default:
		log.Printf("[MailWorker] Queue full, dropping mail to %s (subject: %s)", to, subject)
	}
}

func (a *API) mailWorker() {
	log.Printf("[MailWorker] Started")
	for job := range a.mailQueue {
		if err := a.mailer.Send(job.To, job.Subject, job.Body); err != nil {
			log.Printf("[MailWorker] Failed to send mail to %s: %v", job.To, err)
			continue
		}
		log.Printf("[MailWorker] Sent mail to %s (queued %s)", job.To, job.Timestamp.Format(time.RFC3339))
	}
}
