package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Migration is one schema step. Each migration carries its own table struct so
// the schema it creates does not drift with the live models.
type Migration struct {
	ID    string
	Table string
	Up    func(tx *gorm.DB) error
	Down  func(tx *gorm.DB) error
}

type usersTable struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:255"`
	Email     string `gorm:"size:255;index"`
	Password  string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (usersTable) TableName() string { return "users" }

// tasksTable: user_id is an integer column and carries no foreign key.
type tasksTable struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint   `gorm:"index"`
	Title       string `gorm:"size:255"`
	Description string `gorm:"type:text"`
}

func (tasksTable) TableName() string { return "tasks" }

// Migrations in apply order.
func Migrations() []Migration {
	return []Migration{
		{
			ID:    "1509056000000_users",
			Table: "users",
			Up:    func(tx *gorm.DB) error { return tx.Migrator().CreateTable(&usersTable{}) },
			Down:  func(tx *gorm.DB) error { return tx.Migrator().DropTable(&usersTable{}) },
		},
		{
			ID:    "1509056291034_tasks",
			Table: "tasks",
			Up:    func(tx *gorm.DB) error { return tx.Migrator().CreateTable(&tasksTable{}) },
			Down:  func(tx *gorm.DB) error { return tx.Migrator().DropTable(&tasksTable{}) },
		},
	}
}

// MigrationStatus reports whether a migration's table exists.
type MigrationStatus struct {
	ID      string
	Table   string
	Applied bool
}

// Migrate runs every migration whose table does not exist yet.
func Migrate(db *gorm.DB) error {
	return migrateUp(db, Migrations())
}

func migrateUp(db *gorm.DB, migrations []Migration) error {
	for _, m := range migrations {
		if db.Migrator().HasTable(m.Table) {
			continue
		}
		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration %s up: %w", m.ID, err)
		}
	}
	return nil
}

// Rollback drops every migrated table in reverse order.
func Rollback(db *gorm.DB) error {
	return migrateDown(db, Migrations())
}

func migrateDown(db *gorm.DB, migrations []Migration) error {
	for i := len(migrations) - 1; i >= 0; i-- {
		m := migrations[i]
		if !db.Migrator().HasTable(m.Table) {
			continue
		}
		if err := m.Down(db); err != nil {
			return fmt.Errorf("migration %s down: %w", m.ID, err)
		}
	}
	return nil
}

func Status(db *gorm.DB) []MigrationStatus {
	migrations := Migrations()
	statuses := make([]MigrationStatus, len(migrations))
	for i, m := range migrations {
		statuses[i] = MigrationStatus{
			ID:      m.ID,
			Table:   m.Table,
			Applied: db.Migrator().HasTable(m.Table),
		}
	}
	return statuses
}
