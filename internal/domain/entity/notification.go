package entity

import "fmt"

const (
	SuccessSubject = "✅ AWS Cost Report Generated"
	FailureSubject = "❌ AWS Cost Report Failed"
)

// Outcome identifica a variante da notificação.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Notification is the message published to the notification topic.
type Notification struct {
	Subject string
	Body    string
	Outcome Outcome
	RunID   string
}

// NewSuccessNotification monta a notificação de sucesso com o local do relatório.
func NewSuccessNotification(runID, location string, summary *RunSummary) Notification {
	body := fmt.Sprintf("Your weekly cost report has been uploaded to S3:\n\n%s", location)
	if summary != nil {
		body += "\n\n" + summary.String()
	}
	return Notification{
		Subject: SuccessSubject,
		Body:    body,
		Outcome: OutcomeSuccess,
		RunID:   runID,
	}
}

// NewFailureNotification carries the error message followed by the stack
// trace captured where the error was first wrapped.
func NewFailureNotification(runID string, err error) Notification {
	return Notification{
		Subject: FailureSubject,
		Body:    fmt.Sprintf("❌ Failed to generate cost report: %v\n\n%+v", err, err),
		Outcome: OutcomeFailure,
		RunID:   runID,
	}
}
