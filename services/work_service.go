package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nexustech/constants"
	"nexustech/dto"
	apperrors "nexustech/errors"
	"nexustech/models"
	"nexustech/services/logger"
	"nexustech/validator"

	"gorm.io/gorm"
)

const duplicateWorkMsg = "Work for this date has already been submitted"

type WorkService struct {
	db     *gorm.DB
	logger logger.Logger
	cache  *Cache
}

type WorkServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Cache  *Cache
}

func NewWorkService(opts WorkServiceOptions) *WorkService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &WorkService{db: opts.DB, logger: opts.Logger, cache: opts.Cache}
}

// SubmitWork records a timesheet line. One line per employee and date.
func (s *WorkService) SubmitWork(ctx context.Context, entry *models.WorkLog) error {
	entry.ID = 0
	entry.EmployeeEmail = normalizeEmail(entry.EmployeeEmail)
	if err := validator.ValidateWorkLog(entry); err != nil {
		return err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.WorkLog{}).
		Where("employee_email = ? AND worked_date = ?", entry.EmployeeEmail, entry.WorkedDate).
		Count(&count).Error; err != nil {
		return dbError(err, "")
	}
	if count > 0 {
		return apperrors.Conflict(duplicateWorkMsg)
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return dbError(err, duplicateWorkMsg)
	}
	s.invalidateStats(ctx)
	return nil
}

func (s *WorkService) ListWork(ctx context.Context, employeeEmail string) ([]models.WorkLog, error) {
	var entries []models.WorkLog
	err := s.db.WithContext(ctx).
		Where("employee_email = ?", normalizeEmail(employeeEmail)).
		Order("worked_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, dbError(err, "")
	}
	return entries, nil
}

// UpdateWork replaces the entry with the given id, creating it when absent.
// An entry owned by someone else is Forbidden.
func (s *WorkService) UpdateWork(ctx context.Context, id uint, callerEmail string, fields *models.WorkLog) (*models.WorkLog, error) {
	callerEmail = normalizeEmail(callerEmail)
	if id == 0 {
		return nil, apperrors.Validation("Invalid work id")
	}

	fields.ID = id
	fields.EmployeeEmail = callerEmail
	if err := validator.ValidateWorkLog(fields); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.WorkLog
		err := tx.First(&existing, id).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			existing = models.WorkLog{}
		case err != nil:
			return dbError(err, "")
		case existing.EmployeeEmail != callerEmail:
			return apperrors.Forbidden("Forbidden access")
		}

		var clash int64
		if err := tx.Model(&models.WorkLog{}).
			Where("employee_email = ? AND worked_date = ? AND id <> ?", callerEmail, fields.WorkedDate, id).
			Count(&clash).Error; err != nil {
			return dbError(err, "")
		}
		if clash > 0 {
			return apperrors.Conflict(duplicateWorkMsg)
		}

		if existing.ID == 0 {
			return tx.Create(fields).Error
		}
		fields.CreatedAt = existing.CreatedAt
		if fields.EmployeeName == "" {
			fields.EmployeeName = existing.EmployeeName
		}
		return tx.Save(fields).Error
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, dbError(err, duplicateWorkMsg)
	}

	s.invalidateStats(ctx)
	return fields, nil
}

// DeleteWork removes an entry owned by the caller. Unknown ids delete nothing.
func (s *WorkService) DeleteWork(ctx context.Context, id uint, callerEmail string) (*dto.DeleteResult, error) {
	var existing models.WorkLog
	err := s.db.WithContext(ctx).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.DeleteResult{Deleted: 0}, nil
	}
	if err != nil {
		return nil, dbError(err, "")
	}
	if existing.EmployeeEmail != normalizeEmail(callerEmail) {
		return nil, apperrors.Forbidden("Forbidden access")
	}

	res := s.db.WithContext(ctx).Delete(&models.WorkLog{}, id)
	if res.Error != nil {
		return nil, dbError(res.Error, "")
	}
	s.invalidateStats(ctx)
	return &dto.DeleteResult{Deleted: res.RowsAffected}, nil
}

// Summary aggregates work entries, optionally restricted to a calendar month
// (number or name) and an employee name. The name must match exactly once
// case, accents and spacing are folded. It returns no element when nothing
// matches, otherwise exactly one.
func (s *WorkService) Summary(ctx context.Context, month, name string) ([]dto.WorkSummary, error) {
	query := s.db.WithContext(ctx).Model(&models.WorkLog{})
	if strings.TrimSpace(month) != "" {
		_, number, ok := models.ParseMonth(month)
		if !ok {
			return nil, apperrors.Validation("Invalid month")
		}
		query = query.Where("SUBSTR(worked_date, 6, 2) = ?", fmt.Sprintf("%02d", number))
	}

	var entries []models.WorkLog
	if err := query.Order("worked_date").Find(&entries).Error; err != nil {
		return nil, dbError(err, "")
	}

	if name = normalizeName(name); name != "" {
		entries = filterByName(entries, name)
	}

	if len(entries) == 0 {
		return []dto.WorkSummary{}, nil
	}

	summary := dto.WorkSummary{Entries: entries}
	for _, e := range entries {
		summary.TotalHours += e.HoursWorked
	}
	return []dto.WorkSummary{summary}, nil
}

// filterByName keeps the entries whose normalized owner name equals name.
func filterByName(entries []models.WorkLog, name string) []models.WorkLog {
	filtered := make([]models.WorkLog, 0, len(entries))
	for _, e := range entries {
		if normalizeName(e.EmployeeName) == name {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// SuggestName looks for a stored employee name close to name, for callers
// whose summary filter matched nothing. It returns "" when there is none.
func (s *WorkService) SuggestName(ctx context.Context, name string) (string, error) {
	query := normalizeName(name)
	if query == "" {
		return "", nil
	}

	var stored []string
	if err := s.db.WithContext(ctx).Model(&models.WorkLog{}).
		Distinct("employee_name").
		Pluck("employee_name", &stored).Error; err != nil {
		return "", dbError(err, "")
	}

	display := make(map[string]string, len(stored))
	candidates := make([]string, 0, len(stored))
	for _, n := range stored {
		key := normalizeName(n)
		if key == "" {
			continue
		}
		if _, ok := display[key]; !ok {
			display[key] = n
			candidates = append(candidates, key)
		}
	}

	best, ok := suggestName(query, candidates)
	if !ok {
		return "", nil
	}
	return display[best], nil
}

func (s *WorkService) invalidateStats(ctx context.Context) {
	if err := s.cache.Delete(ctx, constants.AdminStatsCacheKey); err != nil {
		s.logger.Error("could not drop stats cache: %v", err)
	}
}
