package commands

import (
	"fmt"
	"testing"
	"time"

	"nexustech/config"
	apperrors "nexustech/errors"
	"nexustech/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, config.Migrate(db))
	return db
}

func TestMarkApprovedOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	req := &models.PaymentRequest{EmployeeID: 1, Salary: 10, Month: "May", MonthNumber: 5, Year: 2024, Status: models.PaymentStatusPending}
	require.NoError(t, db.Create(req).Error)

	paidAt := time.Now().UTC()
	req.PaidAt = &paidAt
	req.TransactionID = "pi_1"

	require.NoError(t, NewMarkApprovedCommand(req, db).Execute())

	var stored models.PaymentRequest
	require.NoError(t, db.First(&stored, req.ID).Error)
	assert.Equal(t, models.PaymentStatusApproved, stored.Status)
	assert.Equal(t, "pi_1", stored.TransactionID)

	err := NewMarkApprovedCommand(req, db).Execute()
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeAlreadyApproved))
}

func TestRunRollsBackInTransaction(t *testing.T) {
	db := newTestDB(t)
	req := &models.PaymentRequest{EmployeeID: 1, Salary: 10, Month: "May", MonthNumber: 5, Year: 2024, Status: models.PaymentStatusPending}
	require.NoError(t, db.Create(req).Error)
	require.NoError(t, db.Create(&models.PaymentHistory{
		PaymentRequestID: req.ID, EmployeeID: 1, Salary: 10, Month: "May", MonthNumber: 5, Year: 2024,
		TransactionID: "pi_old", Status: models.PaymentStatusApproved, PaidAt: time.Now(),
	}).Error)

	paidAt := time.Now().UTC()
	req.PaidAt = &paidAt
	req.TransactionID = "pi_new"
	duplicate := &models.PaymentHistory{
		PaymentRequestID: req.ID, EmployeeID: 1, Salary: 10, Month: "May", MonthNumber: 5, Year: 2024,
		TransactionID: "pi_new", Status: models.PaymentStatusApproved, PaidAt: paidAt,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return Run(NewMarkApprovedCommand(req, tx), NewAppendHistoryCommand(duplicate, tx))
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var stored models.PaymentRequest
	require.NoError(t, db.First(&stored, req.ID).Error)
	assert.Equal(t, models.PaymentStatusPending, stored.Status)
}
