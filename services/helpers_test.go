package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"nexustech/config"
	"nexustech/models"
	"nexustech/services/logger"

	"github.com/google/uuid"
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

func newTestUserService(db *gorm.DB) *UserService {
	return NewUserService(UserServiceOptions{DB: db, Logger: logger.Nop{}})
}

func mustCreateUser(t *testing.T, users *UserService, email string, role models.Role, salary int64) *models.User {
	t.Helper()
	u := &models.User{Name: email, Email: email, Role: role, Salary: salary, Designation: "engineer"}
	require.NoError(t, users.CreateUser(context.Background(), u))
	return u
}

type fakeCharger struct {
	mu      sync.Mutex
	calls   int
	amounts []int64
	keys    []string
	err     error
}

func (f *fakeCharger) Charge(_ context.Context, amount int64, currency, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.err != nil {
		return "", f.err
	}
	f.amounts = append(f.amounts, amount)
	f.keys = append(f.keys, key)
	return fmt.Sprintf("pi_test_%d", f.calls), nil
}

func (f *fakeCharger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) SendMessage(message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

// mapDirectory is an in-memory Directory
type mapDirectory map[string]*models.User

func (d mapDirectory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := d[normalizeEmail(email)]; ok {
		return u, nil
	}
	return nil, notFoundUser()
}

var errBoom = errors.New("boom")
