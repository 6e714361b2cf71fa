package entity

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewSuccessNotification(t *testing.T) {
	n := NewSuccessNotification("run-1", "s3://bucket/reports/weekly-report-2024-01-08.json", nil)

	assert.Equal(t, SuccessSubject, n.Subject)
	assert.Equal(t, "Your weekly cost report has been uploaded to S3:\n\ns3://bucket/reports/weekly-report-2024-01-08.json", n.Body)
	assert.Equal(t, OutcomeSuccess, n.Outcome)
	assert.Equal(t, "run-1", n.RunID)
}

func TestNewSuccessNotification_WithSummary(t *testing.T) {
	summary := Summarize(nil, testWindow())
	n := NewSuccessNotification("run-1", "s3://b/k", &summary)

	assert.Equal(t, "Your weekly cost report has been uploaded to S3:\n\ns3://b/k\n\n"+summary.String(), n.Body)
}

func TestNewFailureNotification(t *testing.T) {
	err := errors.WithStack(errors.New("AccessDeniedException: not authorized"))
	n := NewFailureNotification("run-2", err)

	assert.Equal(t, FailureSubject, n.Subject)
	assert.Equal(t, OutcomeFailure, n.Outcome)
	assert.Equal(t, "run-2", n.RunID)
	assert.Contains(t, n.Body, "❌ Failed to generate cost report: AccessDeniedException: not authorized\n\n")
	// %+v do pkg/errors inclui o stack trace
	assert.Contains(t, n.Body, "entity.TestNewFailureNotification")
}

func TestResponses(t *testing.T) {
	ok := SuccessResponse("bucket", "reports/weekly-report-2024-01-08.json")
	assert.Equal(t, http.StatusOK, ok.StatusCode)
	assert.Equal(t, "Report uploaded to bucket/reports/weekly-report-2024-01-08.json", ok.Body)

	fail := ErrorResponse()
	assert.Equal(t, http.StatusInternalServerError, fail.StatusCode)
	assert.Equal(t, GenericErrorBody, fail.Body)
}
