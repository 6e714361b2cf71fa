package console

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-cost-report-go/internal/domain/entity"
)

func TestNotifierPublish(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf)

	err := n.Publish(context.Background(), "arn:aws:sns:us-east-1:1:CostAlerts", entity.Notification{
		Subject: entity.SuccessSubject,
		Body:    "s3://bucket/reports/weekly-report-2024-01-08.json",
		Outcome: entity.OutcomeSuccess,
		RunID:   "run-42",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "AWS Cost Report Generated")
	assert.Contains(t, out, "s3://bucket/reports/weekly-report-2024-01-08.json")
	assert.Contains(t, out, "topic: arn:aws:sns:us-east-1:1:CostAlerts")
	assert.Contains(t, out, "run: run-42")
}

func TestNotifierPublish_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewNotifier(&buf).Publish(ctx, "topic", entity.Notification{Subject: "s"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
