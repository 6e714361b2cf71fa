package lambda

import (
	"context"
	"encoding/json"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/diillson/aws-cost-report-go/internal/domain/entity"
	"github.com/diillson/aws-cost-report-go/internal/shared/types"
)

// ReportRunner é o caso de uso executado a cada invocação.
type ReportRunner interface {
	Run(ctx context.Context, runID string) (entity.Response, error)
}

// Handler adapts the report use case to the Lambda runtime.
type Handler struct {
	runner  ReportRunner
	console types.ConsoleInterface
}

// NewHandler cria um novo Handler.
func NewHandler(runner ReportRunner, console types.ConsoleInterface) *Handler {
	return &Handler{runner: runner, console: console}
}

// Handle is the Lambda entrypoint. The event (usually an EventBridge
// schedule) is accepted but not used. The request id becomes the run id.
// A non-nil error is only returned when the failure notification could not
// be sent, which makes the runtime report the invocation as failed.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (entity.Response, error) {
	runID := ""
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		runID = lc.AwsRequestID
	}

	resp, err := h.runner.Run(ctx, runID)
	if err != nil {
		h.console.LogError("Invocation %s failed without notification: %+v", runID, err)
	}
	return resp, err
}

// Start entrega o Handler ao runtime do Lambda. Não retorna.
func Start(h *Handler) {
	awslambda.Start(h.Handle)
}
