// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/mdterp/internal/dbx"
	"github.com/dmitrijs2005/mdterp/internal/server/migrations"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/chatmessages"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/clients"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/comments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/contracts"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/items"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/measurements"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/tasks"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Profiles(db dbx.DBTX) profiles.Repository {
	return profiles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Clients(db dbx.DBTX) clients.Repository {
	return clients.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Contracts(db dbx.DBTX) contracts.Repository {
	return contracts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Items(db dbx.DBTX) items.Repository {
	return items.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Measurements(db dbx.DBTX) measurements.Repository {
	return measurements.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tasks(db dbx.DBTX) tasks.Repository {
	return tasks.NewPostgresRepository(db)
}

// Comments returns the comment repository for the given owner table.
func (m *PostgresRepositoryManager) Comments(db dbx.DBTX, target comments.Target) comments.Repository {
	return comments.NewPostgresRepository(db, target)
}

// Attachments returns the attachment repository for the given owner table.
func (m *PostgresRepositoryManager) Attachments(db dbx.DBTX, target attachments.Target) attachments.Repository {
	return attachments.NewPostgresRepository(db, target)
}

func (m *PostgresRepositoryManager) ChatMessages(db dbx.DBTX) chatmessages.Repository {
	return chatmessages.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &PostgresRepositoryManager{}, nil
}
