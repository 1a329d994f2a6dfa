package services

import (
	"context"
	"fmt"

	"nexustech/constants"
	"nexustech/dto"
	"nexustech/models"
	"nexustech/services/logger"

	"gorm.io/gorm"
)

type ReportService struct {
	db     *gorm.DB
	logger logger.Logger
	cache  *Cache
}

type ReportServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Cache  *Cache
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReportService{db: opts.DB, logger: opts.Logger, cache: opts.Cache}
}

// AdminStats returns the dashboard totals, served from cache when warm.
func (s *ReportService) AdminStats(ctx context.Context) (*dto.AdminStats, error) {
	var cached dto.AdminStats
	found, err := s.cache.Get(ctx, constants.AdminStatsCacheKey, &cached)
	if err != nil {
		s.logger.Error("stats cache read failed: %v", err)
	}
	if found {
		return &cached, nil
	}
	return s.RefreshAdminStats(ctx)
}

// RefreshAdminStats recomputes the totals and stores them in the cache.
func (s *ReportService) RefreshAdminStats(ctx context.Context) (*dto.AdminStats, error) {
	stats, err := s.computeAdminStats(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, constants.AdminStatsCacheKey, stats, constants.AdminStatsCacheTTL); err != nil {
		s.logger.Error("stats cache write failed: %v", err)
	}
	return stats, nil
}

func (s *ReportService) computeAdminStats(ctx context.Context) (*dto.AdminStats, error) {
	stats := &dto.AdminStats{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, dbError(err, "")
	}
	if err := db.Model(&models.PaymentHistory{}).
		Select("CAST(COALESCE(SUM(salary), 0) AS BIGINT)").
		Scan(&stats.TotalExpenses).Error; err != nil {
		return nil, dbError(err, "")
	}
	if err := db.Model(&models.WorkLog{}).
		Select("COALESCE(SUM(hours_worked), 0)").
		Scan(&stats.TotalWorkedHours).Error; err != nil {
		return nil, dbError(err, "")
	}
	return stats, nil
}

type salaryGroup struct {
	Month             string
	MonthNumber       int
	Year              int
	ReceivedSalary    int64
	NotReceivedSalary int64
}

// SalaryRequestSummary counts paid and unpaid requests per month, oldest first.
func (s *ReportService) SalaryRequestSummary(ctx context.Context) ([]dto.SalaryRequestSummary, error) {
	var groups []salaryGroup
	err := s.db.WithContext(ctx).Model(&models.PaymentRequest{}).
		Select(`month, month_number, year,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS received_salary,
			SUM(CASE WHEN status IN (?, ?) THEN 1 ELSE 0 END) AS not_received_salary`,
			models.PaymentStatusApproved, models.PaymentStatusPending, models.PaymentStatusRejected).
		Group("month, month_number, year").
		Order("year ASC, month_number ASC").
		Scan(&groups).Error
	if err != nil {
		return nil, dbError(err, "")
	}

	summary := make([]dto.SalaryRequestSummary, 0, len(groups))
	for _, g := range groups {
		summary = append(summary, dto.SalaryRequestSummary{
			Label:             fmt.Sprintf("%s %d", g.Month, g.Year),
			Month:             g.Month,
			Year:              g.Year,
			ReceivedSalary:    g.ReceivedSalary,
			NotReceivedSalary: g.NotReceivedSalary,
		})
	}
	return summary, nil
}

// WarmAdminStats refreshes the cached totals, for the scheduler.
func (s *ReportService) WarmAdminStats(ctx context.Context) error {
	_, err := s.RefreshAdminStats(ctx)
	return err
}
