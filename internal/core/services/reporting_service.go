package services

import (
	"context"

	"github.com/bizbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
)

// monthlySeriesLength is how many calendar months the dashboard series spans.
const monthlySeriesLength = 12

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates the reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvc {
	return &reportingService{reportingRepo: reportingRepo}
}

func (s *reportingService) GetSummary(ctx context.Context, userID string, params dto.DashboardParams) (*domain.DashboardSummary, error) {
	from, err := parseDatePtr(params.From)
	if err != nil {
		return nil, err
	}
	to, err := parseDatePtr(params.To)
	if err != nil {
		return nil, err
	}
	return s.reportingRepo.GetSummary(ctx, userID, from, to)
}

func (s *reportingService) GetCategoryStats(ctx context.Context, userID string, params dto.StatsParams) ([]domain.CategoryStat, error) {
	from, err := parseDatePtr(params.From)
	if err != nil {
		return nil, err
	}
	to, err := parseDatePtr(params.To)
	if err != nil {
		return nil, err
	}
	recordType := params.Type
	if recordType == "" {
		recordType = "expense"
	}
	return s.reportingRepo.GetCategoryStats(ctx, userID, recordType, from, to)
}

func (s *reportingService) GetMonthlySeries(ctx context.Context, userID string) ([]domain.MonthlyStat, error) {
	return s.reportingRepo.GetMonthlySeries(ctx, userID, monthlySeriesLength)
}
