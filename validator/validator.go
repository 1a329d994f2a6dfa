package validator

import (
	"regexp"
	"strings"
	"time"

	apperrors "nexustech/errors"
	"nexustech/models"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterBindings adds the "month" and "workdate" tags to gin's validator.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("month", func(fl playground.FieldLevel) bool {
		_, _, ok := models.ParseMonth(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}
	return v.RegisterValidation("workdate", func(fl playground.FieldLevel) bool {
		return isValidWorkDate(fl.Field().String())
	})
}

func isValidWorkDate(s string) bool {
	_, err := time.Parse(models.WorkedDateLayout, s)
	return err == nil
}

// ValidateEmail checks the address shape
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidEmail, "Invalid email", nil)
	}
	return nil
}

// ValidateUser checks a profile before it is stored
func ValidateUser(user *models.User) error {
	if strings.TrimSpace(user.Email) == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Email is required", nil)
	}
	if err := ValidateEmail(user.Email); err != nil {
		return err
	}
	if user.Role != "" && !user.Role.Valid() {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Invalid role", nil)
	}
	if user.Salary < 0 {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, "Salary cannot be negative", nil)
	}
	return nil
}

// ValidateWorkLog checks a timesheet line
func ValidateWorkLog(w *models.WorkLog) error {
	if strings.TrimSpace(w.EmployeeEmail) == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Employee email is required", nil)
	}
	if strings.TrimSpace(w.Task) == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Task is required", nil)
	}
	if w.HoursWorked <= 0 || w.HoursWorked > 24 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Hours worked must be between 0 and 24", nil)
	}
	if !isValidWorkDate(w.WorkedDate) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Worked date must be YYYY-MM-DD", apperrors.ErrInvalidFormat)
	}
	return nil
}

// ValidatePaymentRequest checks and normalizes the period of a pay request
func ValidatePaymentRequest(req *models.PaymentRequest) error {
	if req.EmployeeID == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Employee id is required", nil)
	}
	if req.Salary <= 0 {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, "Salary must be positive", nil)
	}
	name, number, ok := models.ParseMonth(req.Month)
	if !ok {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Invalid month", apperrors.ErrInvalidFormat)
	}
	if req.Year < 2000 || req.Year > 2100 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Invalid year", nil)
	}
	req.Month = name
	req.MonthNumber = number
	return nil
}

// ValidateSalaryRaise only allows increases
func ValidateSalaryRaise(current, next int64) error {
	if next <= current {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "New salary must be greater than the current salary", nil)
	}
	return nil
}
