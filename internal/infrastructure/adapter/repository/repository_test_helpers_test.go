package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/logger"
)

// steppingClock advances one second per Now call so creation order is observable
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newSteppingClock() *steppingClock {
	return &steppingClock{now: time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *steppingClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c *steppingClock) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

var _ coreport.TimeProvider = (*steppingClock)(nil)

func setupRepositories(t *testing.T) (*database.TestDBManager, *UserRepository, *ExpenseRepository) {
	t.Helper()

	clock := newSteppingClock()
	log := logger.NewNoopLogger()
	tdb := database.NewTestDBManager(t, log, clock)

	users := NewUserRepository(tdb.DB(), clock, log, tdb.Config.QueryTimeout)
	expenses := NewExpenseRepository(tdb.DB(), clock, log, tdb.Config.QueryTimeout)
	return tdb, users, expenses
}
