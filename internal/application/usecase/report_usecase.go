package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/diillson/aws-cost-report-go/internal/domain/entity"
	"github.com/diillson/aws-cost-report-go/internal/domain/repository"
	"github.com/diillson/aws-cost-report-go/internal/shared/types"
)

// ReportUseCase runs the weekly cost report pipeline:
// window -> query -> store -> notify, with a failure notification fallback.
type ReportUseCase struct {
	costRepo   repository.CostRepository
	reportRepo repository.ReportRepository
	notifyRepo repository.NotificationRepository
	console    types.ConsoleInterface
	config     types.Config
	now        func() time.Time
}

// failureNotifyTimeout limita a publicação da notificação de falha, que roda
// desacoplada do cancelamento do contexto da invocação.
const failureNotifyTimeout = 10 * time.Second

// Option customiza o ReportUseCase (usado principalmente nos testes).
type Option func(*ReportUseCase)

// WithClock substitui o relógio usado para calcular a janela e a chave.
func WithClock(now func() time.Time) Option {
	return func(uc *ReportUseCase) {
		uc.now = now
	}
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	costRepo repository.CostRepository,
	reportRepo repository.ReportRepository,
	notifyRepo repository.NotificationRepository,
	console types.ConsoleInterface,
	config types.Config,
	opts ...Option,
) *ReportUseCase {
	uc := &ReportUseCase{
		costRepo:   costRepo,
		reportRepo: reportRepo,
		notifyRepo: notifyRepo,
		console:    console,
		config:     config,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run executa o relatório uma vez.
//
// Every failure in the query, storage or success-notification steps is turned
// into a failure notification and a 500 response with a nil error. The only
// error ever returned is a NotifyFailed ReportError, when the failure
// notification itself could not be published; it wraps both the publish error
// and the original cause so the invoker can fail the invocation.
func (uc *ReportUseCase) Run(ctx context.Context, runID string) (entity.Response, error) {
	if runID == "" {
		runID = uuid.NewString()
	}

	window := entity.NewTimeWindow(uc.now())
	key := entity.ReportKey(uc.config.KeyPrefix, window.End)

	uc.console.LogInfo("Starting cost report run %s for %s", runID, window)

	err := uc.generate(ctx, runID, window, key)
	if err == nil {
		uc.console.LogSuccess("Report uploaded to %s/%s", uc.config.Bucket, key)
		return entity.SuccessResponse(uc.config.Bucket, key), nil
	}

	uc.console.LogError("Cost report run %s failed: %v", runID, err)

	// O ctx pode ser justamente a causa da falha (deadline do Lambda, SIGTERM).
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failureNotifyTimeout)
	defer cancel()

	failure := entity.NewFailureNotification(runID, err)
	if pubErr := uc.notifyRepo.Publish(notifyCtx, uc.config.TopicARN, failure); pubErr != nil {
		uc.console.LogError("Failed to publish failure notification: %v", pubErr)
		cause := errors.WithMessage(err, "original failure")
		return entity.ErrorResponse(), types.NewReportError(types.KindNotifyFailed, stderrors.Join(pubErr, cause))
	}

	uc.console.LogWarning("Failure notification published to %s", uc.config.TopicARN)
	return entity.ErrorResponse(), nil
}

// generate é a região protegida do pipeline.
func (uc *ReportUseCase) generate(ctx context.Context, runID string, window entity.TimeWindow, key string) error {
	report, err := uc.costRepo.GetCostAndUsage(ctx, window)
	if err != nil {
		return types.NewReportError(types.KindQueryFailed, errors.WithStack(err))
	}
	uc.console.LogInfo("Fetched %d daily cost results", len(report))

	body, err := MarshalReport(report)
	if err != nil {
		return types.NewReportError(types.KindSerializeFailed, errors.WithStack(err))
	}

	if err := uc.reportRepo.PutReport(ctx, uc.config.Bucket, key, body); err != nil {
		return types.NewReportError(types.KindStorageWriteFailed, errors.WithStack(err))
	}

	summary := entity.Summarize(report, window)
	// O account ID só enriquece o resumo; falhar aqui não derruba o relatório.
	if accountID, err := uc.costRepo.GetAccountID(ctx); err != nil {
		uc.console.LogWarning("Could not resolve account ID: %v", err)
	} else {
		summary.AccountID = accountID
	}

	location := uc.reportRepo.Location(uc.config.Bucket, key)
	success := entity.NewSuccessNotification(runID, location, &summary)
	if err := uc.notifyRepo.Publish(ctx, uc.config.TopicARN, success); err != nil {
		return types.NewReportError(types.KindNotifyFailed, errors.WithStack(err))
	}
	return nil
}

// MarshalReport serializa o relatório como JSON indentado com dois espaços.
func MarshalReport(report entity.CostReport) ([]byte, error) {
	if report == nil {
		report = entity.CostReport{}
	}
	return json.MarshalIndent(report, "", "  ")
}
