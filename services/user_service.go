package services

import (
	"context"
	"errors"
	"strings"

	"nexustech/constants"
	"nexustech/dto"
	apperrors "nexustech/errors"
	"nexustech/models"
	"nexustech/services/logger"
	"nexustech/validator"

	"gorm.io/gorm"
)

type UserService struct {
	db     *gorm.DB
	logger logger.Logger
	cache  *Cache
}

type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Cache  *Cache
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &UserService{
		db:     opts.DB,
		logger: opts.Logger,
		cache:  opts.Cache,
	}
}

// dbError turns a gorm failure into an AppError. Unique index violations
// become Conflict so they read the same as the explicit checks.
func dbError(err error, conflictMsg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.Conflict(conflictMsg)
	}
	return apperrors.NewAppError(apperrors.ErrCodeDBError, "Database error", err)
}

func notFoundUser() error {
	return apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "User not found", apperrors.ErrUserNotFound)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser stores a new profile. A second registration with the same
// email is a Conflict.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	if user.Role == "" {
		user.Role = models.RoleEmployee
	}
	if err := validator.ValidateUser(user); err != nil {
		return err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return dbError(err, "")
	}
	if count > 0 {
		return apperrors.NewAppError(apperrors.ErrCodeUserExists, "User info conflict", apperrors.ErrUserAlreadyExists)
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return dbError(err, "User info conflict")
	}

	s.invalidateStats(ctx)
	s.logger.Info("user %s registered as %s", user.Email, user.Role)
	return nil
}

// FindByEmail implements Directory.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundUser()
	}
	if err != nil {
		return nil, dbError(err, "")
	}
	return &user, nil
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFoundUser()
	}
	if err != nil {
		return nil, dbError(err, "")
	}
	return &user, nil
}

func (s *UserService) GetRole(ctx context.Context, email string) (models.Role, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// GetProfile returns the full profile; callers may only read their own.
func (s *UserService) GetProfile(ctx context.Context, callerEmail, email string) (*models.User, error) {
	if normalizeEmail(callerEmail) != normalizeEmail(email) {
		return nil, apperrors.Forbidden("Forbidden access")
	}
	return s.FindByEmail(ctx, email)
}

func (s *UserService) IsFired(ctx context.Context, email string) (bool, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.Fired, nil
}

// ListEmployees returns every employee and how many hold each designation.
func (s *UserService) ListEmployees(ctx context.Context) (*dto.EmployeeListResponse, error) {
	var employees []models.User
	if err := s.db.WithContext(ctx).Where("role = ?", models.RoleEmployee).Order("id").Find(&employees).Error; err != nil {
		return nil, dbError(err, "")
	}

	var counts []dto.DesignationCount
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Select("designation, COUNT(*) AS count").
		Where("role = ?", models.RoleEmployee).
		Group("designation").
		Order("designation").
		Scan(&counts).Error; err != nil {
		return nil, dbError(err, "")
	}

	return &dto.EmployeeListResponse{
		Employees:         employees,
		DesignationCounts: counts,
	}, nil
}

// ListStaff returns verified employees and every hr user.
func (s *UserService) ListStaff(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("(role = ? AND is_verified = ?) OR role = ?", models.RoleEmployee, true, models.RoleHR).
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, dbError(err, "")
	}
	return users, nil
}

func (s *UserService) SetVerified(ctx context.Context, id uint, verified bool) (*dto.UpdateResult, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("is_verified", verified)
	if res.Error != nil {
		return nil, dbError(res.Error, "")
	}

	result := &dto.UpdateResult{Matched: 1}
	if user.IsVerified != verified {
		result.Modified = 1
	}
	return result, nil
}

// MakeHR promotes an employee. A user who is already hr is a Conflict, and
// admins are never demoted.
func (s *UserService) MakeHR(ctx context.Context, id uint) (*dto.UpdateResult, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch user.Role {
	case models.RoleHR:
		return nil, apperrors.Conflict("User is already hr")
	case models.RoleAdmin:
		return nil, apperrors.Conflict("Admin cannot be made hr")
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND role = ?", id, models.RoleEmployee).
		Update("role", models.RoleHR)
	if res.Error != nil {
		return nil, dbError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.Conflict("User is no longer an employee")
	}

	s.logger.Info("user %d promoted to hr", id)
	return &dto.UpdateResult{Matched: 1, Modified: res.RowsAffected}, nil
}

func (s *UserService) Fire(ctx context.Context, id uint) (*dto.UpdateResult, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("fired", true)
	if res.Error != nil {
		return nil, dbError(res.Error, "")
	}

	result := &dto.UpdateResult{Matched: 1}
	if !user.Fired {
		result.Modified = 1
		s.logger.Info("user %d fired", id)
	}
	return result, nil
}

// UpdateSalary raises an employee's salary. The new value must be strictly
// greater than the stored one.
func (s *UserService) UpdateSalary(ctx context.Context, id uint, salary int64) (*dto.UpdateResult, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateSalaryRaise(user.Salary, salary); err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND salary < ?", id, salary).
		Update("salary", salary)
	if res.Error != nil {
		return nil, dbError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.Validation("New salary must be greater than the current salary")
	}

	s.logger.Info("salary of user %d raised from %d to %d", id, user.Salary, salary)
	return &dto.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (s *UserService) SetPhoto(ctx context.Context, email, url string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", normalizeEmail(email)).Update("photo", url)
	if res.Error != nil {
		return dbError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return notFoundUser()
	}
	return nil
}

func (s *UserService) invalidateStats(ctx context.Context) {
	if err := s.cache.Delete(ctx, constants.AdminStatsCacheKey); err != nil {
		s.logger.Error("could not drop stats cache: %v", err)
	}
}
