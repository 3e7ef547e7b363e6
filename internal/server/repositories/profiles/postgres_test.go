package profiles

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestCreate_ReturnsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`^INSERT INTO profiles \(email, name, role, password_hash\)`).
		WithArgs("ana@mdt.eng.br", "Ana", "user", []byte("hash")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("p1", now))

	p, err := repo.Create(context.Background(), &models.Profile{
		Email: "ana@mdt.eng.br", Name: "Ana", Role: models.RoleUser, PasswordHash: []byte("hash"),
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, now, p.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^INSERT INTO profiles`).WillReturnError(errors.New("duplicate"))

	_, err := repo.Create(context.Background(), &models.Profile{Email: "a", Role: models.RoleUser})
	require.ErrorContains(t, err, "db error: duplicate")
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "email", "name", "role", "password_hash", "created_at"}).
		AddRow("p1", "ana@mdt.eng.br", "Ana", "admin", []byte("h"), time.Now())
	mock.ExpectQuery(`FROM profiles WHERE email = \$1`).WithArgs("ana@mdt.eng.br").WillReturnRows(rows)

	p, err := repo.GetByEmail(context.Background(), "ana@mdt.eng.br")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.True(t, p.IsAdmin())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM profiles WHERE id = \$1`).WithArgs("x").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "x")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "email", "name", "role", "created_at"}).
		AddRow("p1", "ana@mdt.eng.br", "Ana", "admin", time.Now()).
		AddRow("p2", "bruno@mdt.eng.br", "Bruno", "user", time.Now())
	mock.ExpectQuery(`^SELECT id, email, name, role, created_at FROM profiles ORDER BY name$`).WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.RoleUser, list[1].Role)
	assert.Nil(t, list[0].PasswordHash)
}
