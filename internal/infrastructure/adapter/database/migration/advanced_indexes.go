package migration

import (
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager creates the secondary indexes that struct tags cannot express
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

type indexDefinition struct {
	name         string
	statement    string
	postgresOnly bool
}

var expenseIndexes = []indexDefinition{
	{
		// category filter within one owner's expenses
		name:      "idx_expenses_user_category",
		statement: `CREATE INDEX IF NOT EXISTS idx_expenses_user_category ON expenses (user_id, category)`,
	},
	{
		// list ordering: date DESC, created_at DESC
		name:      "idx_expenses_user_date_created",
		statement: `CREATE INDEX IF NOT EXISTS idx_expenses_user_date_created ON expenses (user_id, date DESC, created_at DESC)`,
	},
	{
		name:         "idx_expenses_date_brin",
		statement:    `CREATE INDEX IF NOT EXISTS idx_expenses_date_brin ON expenses USING BRIN (date) WITH (pages_per_range = 32)`,
		postgresOnly: true,
	},
}

// CreateIndexes creates every index supported by the current dialect
func (m *IndexManager) CreateIndexes() error {
	dialect := m.db.Dialector.Name()

	for _, idx := range expenseIndexes {
		if idx.postgresOnly && dialect != "postgres" {
			continue
		}
		if err := m.db.Exec(idx.statement).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Expense indexes created", map[string]any{
		"dialect": dialect,
	})
	return nil
}

// ApplyPerformanceTweaks applies optional PostgreSQL storage settings; failures are only logged
func (m *IndexManager) ApplyPerformanceTweaks() {
	if m.db.Dialector.Name() != "postgres" {
		return
	}

	if err := m.db.Exec(`ALTER TABLE expenses ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for expenses.user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
