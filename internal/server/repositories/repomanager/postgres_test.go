package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewPostgresRepositoryManager_ReturnsInterface(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m, err := NewPostgresRepositoryManager(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var _ RepositoryManager = m
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := &PostgresRepositoryManager{}

	if p := m.Profiles(db); p == nil {
		t.Fatal("Profiles() nil")
	}
	if rt := m.RefreshTokens(db); rt == nil {
		t.Fatal("RefreshTokens() nil")
	}

	var _ profiles.Repository = m.Profiles(db)
	var _ refreshtokens.Repository = m.RefreshTokens(db)
	var _ clients.Repository = m.Clients(db)
	var _ contracts.Repository = m.Contracts(db)
	var _ items.Repository = m.Items(db)
	var _ measurements.Repository = m.Measurements(db)
	var _ tasks.Repository = m.Tasks(db)
	var _ comments.Repository = m.Comments(db, comments.ItemComments)
	var _ attachments.Repository = m.Attachments(db, attachments.ContractAttachments)
	var _ chatmessages.Repository = m.ChatMessages(db)
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
