package adjustment

import (
	"context"
	"time"
)

type AdjustmentRepository interface {
	Create(ctx context.Context, a PayrollAdjustment) (PayrollAdjustment, error)
	GetByID(ctx context.Context, id string, companyID string) (PayrollAdjustment, error)
	List(ctx context.Context, companyID string, filter AdjustmentFilter) ([]PayrollAdjustment, int64, error)
	// ListApprovedEffectiveBefore returns approved adjustments whose
	// effective date falls on or before the pay period end.
	ListApprovedEffectiveBefore(ctx context.Context, companyID, employeeID string, cutoff time.Time) ([]PayrollAdjustment, error)
	UpdateStatus(ctx context.Context, id string, companyID string, status Status, decidedBy *string) error
	// RegisterInstallment counts one pay period against an approved loan and
	// moves it to processed once all installments are collected.
	RegisterInstallment(ctx context.Context, id string, companyID string) error
	Delete(ctx context.Context, id string, companyID string) error
}
