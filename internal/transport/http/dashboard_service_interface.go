package http

import (
	"context"

	"fundcli/pkg/contracts/domain"
)

// DashboardService defines the service operations the handlers depend on.
// Keeping the interface at the transport boundary lets tests substitute the
// service.
type DashboardService interface {
	// Dashboard assembles the filtered KPI and chart payload.
	Dashboard(ctx context.Context, spec domain.FilterSpec) (*domain.DashboardData, error)
	// FilterBounds returns the observed dataset extent for filter widgets.
	FilterBounds(ctx context.Context) (domain.FilterBounds, error)
}
