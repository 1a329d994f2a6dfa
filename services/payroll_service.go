package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nexustech/builders"
	"nexustech/commands"
	"nexustech/constants"
	"nexustech/dto"
	apperrors "nexustech/errors"
	"nexustech/models"
	"nexustech/services/logger"
	"nexustech/services/notification"
	"nexustech/validator"

	"gorm.io/gorm"
)

const (
	duplicatePaymentMsg = "Payment request for this employee and period already exists"
	historyOrder        = "year DESC, month_number DESC, id DESC"
)

type PayrollService struct {
	db       *gorm.DB
	logger   logger.Logger
	cache    *Cache
	charger  Charger
	locker   Locker
	dir      Directory
	notifier notification.Service
	now      func() time.Time
}

type PayrollServiceOptions struct {
	DB        *gorm.DB
	Logger    logger.Logger
	Cache     *Cache
	Charger   Charger
	Locker    Locker
	Directory Directory
	Notifier  notification.Service
}

func NewPayrollService(opts PayrollServiceOptions) *PayrollService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if opts.Locker == nil {
		opts.Locker = NewLocalLocker()
	}
	return &PayrollService{
		db:       opts.DB,
		logger:   opts.Logger,
		cache:    opts.Cache,
		charger:  opts.Charger,
		locker:   opts.Locker,
		dir:      opts.Directory,
		notifier: opts.Notifier,
		now:      time.Now,
	}
}

// CreatePaymentRequest files a pending pay request on behalf of hrEmail.
// Only one request may exist per employee, month and year.
func (s *PayrollService) CreatePaymentRequest(ctx context.Context, req *models.PaymentRequest, hrEmail string) (string, error) {
	req.ID = 0
	if err := validator.ValidatePaymentRequest(req); err != nil {
		return "", err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.PaymentRequest{}).
		Where("employee_id = ? AND month_number = ? AND year = ?", req.EmployeeID, req.MonthNumber, req.Year).
		Count(&count).Error; err != nil {
		return "", dbError(err, "")
	}
	if count > 0 {
		return "", apperrors.Conflict(duplicatePaymentMsg)
	}

	req.HREmail = normalizeEmail(hrEmail)
	req.Status = models.PaymentStatusPending
	req.RequestDate = s.now().Format(models.WorkedDateLayout)
	req.PaidAt = nil
	req.TransactionID = ""

	if err := s.db.WithContext(ctx).Create(req).Error; err != nil {
		return "", dbError(err, duplicatePaymentMsg)
	}

	s.notify(notification.NewMessageBuilder(notification.EventPaymentRequested).
		Employee(req.EmployeeID, req.EmployeeName).
		Period(req.Month, req.Year).
		Build())

	return fmt.Sprintf("Payment request for %s (%s %d) submitted", req.EmployeeName, req.Month, req.Year), nil
}

// ApprovePaymentRequest charges the requested salary and marks the request
// approved with exactly one history record. A request that is already
// approved, or being approved by another caller, is a Conflict. A failed
// charge leaves the request pending.
func (s *PayrollService) ApprovePaymentRequest(ctx context.Context, id uint) (*dto.ApproveResponse, error) {
	if id == 0 {
		return nil, apperrors.Validation("Invalid payment request id")
	}

	release, err := s.locker.TryLock(ctx, fmt.Sprintf("%s%d", constants.ApprovalLockPrefix, id), constants.ApprovalLockTTL)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeUnavailable, "Approval lock unavailable", err)
	}
	if release == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "Payment request is being approved", apperrors.ErrApprovalInProgress)
	}
	defer release()

	req, err := s.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	// dry run on a copy so a terminal state fails before any charge
	probe := *req
	if err := models.GetPaymentState(req.Status).Approve(&probe, "", s.now()); err != nil {
		return nil, err
	}

	transactionID, err := s.charger.Charge(ctx, req.Salary*constants.MinorUnitsPerMajor, constants.PaymentCurrency, fmt.Sprintf("pay-request-%d", req.ID))
	if err != nil {
		s.logger.Error("charge for payment request %d failed: %v", req.ID, err)
		return nil, apperrors.NewAppError(apperrors.ErrCodePayment, "Payment failed", errors.Join(apperrors.ErrPaymentFailed, err))
	}

	paidAt := s.now().UTC()
	if err := models.GetPaymentState(req.Status).Approve(req, transactionID, paidAt); err != nil {
		return nil, err
	}
	history := builders.NewPaymentHistoryBuilder().
		FromRequest(req).
		WithTransaction(transactionID).
		WithPaidAt(paidAt).
		Build()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return commands.Run(
			commands.NewMarkApprovedCommand(req, tx),
			commands.NewAppendHistoryCommand(history, tx),
		)
	})
	if err != nil {
		s.logger.Error("payment request %d charged as %s but not recorded: %v", req.ID, transactionID, err)
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, dbError(err, "Payment request is already approved")
	}

	s.invalidateStats(ctx)
	s.notify(notification.NewMessageBuilder(notification.EventPaymentApproved).
		Employee(req.EmployeeID, req.EmployeeName).
		Period(req.Month, req.Year).
		Build())
	s.logger.Info("payment request %d approved, transaction %s", req.ID, transactionID)

	return &dto.ApproveResponse{Request: *req, History: *history}, nil
}

func (s *PayrollService) findRequest(ctx context.Context, id uint) (*models.PaymentRequest, error) {
	var req models.PaymentRequest
	err := s.db.WithContext(ctx).First(&req, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Payment request not found", apperrors.ErrPaymentNotFound)
	}
	if err != nil {
		return nil, dbError(err, "")
	}
	return &req, nil
}

func (s *PayrollService) ListPaymentRequests(ctx context.Context) ([]models.PaymentRequest, error) {
	var requests []models.PaymentRequest
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&requests).Error; err != nil {
		return nil, dbError(err, "")
	}
	return requests, nil
}

// PaymentHistory returns every history record of the employee named by slug
// together with one page of it. Both lists are ordered by year, then month,
// newest first.
func (s *PayrollService) PaymentHistory(ctx context.Context, slug string, page, limit int) (*dto.PaymentHistoryResponse, error) {
	ref, err := ParseEmployeeRef(slug)
	if err != nil {
		return nil, err
	}
	employeeID, err := ref.Resolve(ctx, s.dir)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeUserNotFound) {
			return nil, apperrors.NotFound("Employee not found")
		}
		return nil, err
	}

	page, limit = normalizePage(page, limit)

	base := func() *gorm.DB {
		return s.db.WithContext(ctx).Model(&models.PaymentHistory{}).Where("employee_id = ?", employeeID)
	}

	all := []models.PaymentHistory{}
	if err := base().Order(historyOrder).Find(&all).Error; err != nil {
		return nil, dbError(err, "")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, dbError(err, "")
	}

	paginated := []models.PaymentHistory{}
	if err := base().Order(historyOrder).Offset((page - 1) * limit).Limit(limit).Find(&paginated).Error; err != nil {
		return nil, dbError(err, "")
	}

	return &dto.PaymentHistoryResponse{
		AllHistory:       all,
		PaginatedHistory: paginated,
		Total:            total,
		TotalPages:       totalPages(total, limit),
		Page:             page,
		Limit:            limit,
	}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = constants.DefaultHistoryLimit
	}
	if limit > constants.MaxHistoryLimit {
		limit = constants.MaxHistoryLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func (s *PayrollService) notify(message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("could not broadcast notification: %v", err)
	}
}

func (s *PayrollService) invalidateStats(ctx context.Context) {
	if err := s.cache.Delete(ctx, constants.AdminStatsCacheKey); err != nil {
		s.logger.Error("could not drop stats cache: %v", err)
	}
}
