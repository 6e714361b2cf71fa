package repository

import (
	"context"

	"github.com/diillson/aws-cost-report-go/internal/domain/entity"
)

// CostRepository defines the interface for the billing query.
type CostRepository interface {
	// GetCostAndUsage returns daily UnblendedCost grouped by service for the window.
	GetCostAndUsage(ctx context.Context, window entity.TimeWindow) (entity.CostReport, error)
	GetAccountID(ctx context.Context) (string, error)
}
