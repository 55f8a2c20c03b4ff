package database

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/config"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing against a private in-memory sqlite database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects and migrates a fresh database that lives until the test ends.
// A nil timeProvider means the real clock.
func NewTestDBManager(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	if timeProvider == nil {
		timeProvider = timeprovider.NewRealTimeProvider()
	}

	// each test gets its own named shared-cache database
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := &Config{
		Driver:          config.DriverSQLite,
		Database:        fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", name, uuid.NewString()),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   0,
	}

	manager := NewManager(cfg, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       cfg,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the GORM handle of the test database
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// TruncateAllTables removes every row, expenses first
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	for _, table := range []string{"expenses", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}

// CreateTestUser inserts a user row directly and returns its id
func (m *TestDBManager) CreateTestUser(t *testing.T, name, email string) uint64 {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderplacehold",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}

// CreateTestExpense inserts an expense row directly and returns its id
func (m *TestDBManager) CreateTestExpense(t *testing.T, userID uint64, title, amount string, category entity.Category, date string) uint64 {
	t.Helper()

	value, err := entity.ParseAmount(amount)
	if err != nil {
		t.Fatalf("Invalid test amount %q: %v", amount, err)
	}
	day, err := entity.ParseDate(date)
	if err != nil {
		t.Fatalf("Invalid test date %q: %v", date, err)
	}

	e, err := entity.NewExpense(userID, entity.ExpenseDraft{
		Title:    title,
		Amount:   value,
		Category: category,
		Date:     day,
	}, m.TimeProvider)
	if err != nil {
		t.Fatalf("Failed to build test expense: %v", err)
	}

	row := model.FromExpenseEntity(e)
	if err := m.Manager.DB().Create(row).Error; err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}
	return row.ID
}
