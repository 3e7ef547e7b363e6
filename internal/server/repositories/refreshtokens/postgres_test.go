package refreshtokens

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	engineerID   = "6f1c2a9e-3b7d-4c55-9a10-2e8f4d7b1c03"
	refreshToken = "c8d4f0b2-71a5-4e3e-8f6b-5d2a9c1e7f40"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock, db
}

// expiresWithin matches an expires_at argument that lies in [from, to].
type expiresWithin struct {
	from, to time.Time
}

func (e expiresWithin) Match(v driver.Value) bool {
	ts, ok := v.(time.Time)
	return ok && !ts.Before(e.from) && !ts.After(e.to)
}

func TestCreate_StoresSessionExpiry(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	validity := 7 * 24 * time.Hour
	before := time.Now().Add(validity)
	mock.ExpectExec(`INSERT INTO refresh_tokens \(user_id, token, expires_at\) VALUES \(\$1, \$2, \$3\)$`).
		WithArgs(engineerID, refreshToken, expiresWithin{from: before, to: before.Add(time.Minute)}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), engineerID, refreshToken, validity))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(engineerID, refreshToken, sqlmock.AnyArg()).
		WillReturnError(errors.New("unique violation"))

	err := repo.Create(context.Background(), engineerID, refreshToken, time.Hour)
	require.ErrorContains(t, err, "error performing sql request: unique violation")
}

func TestFind_ReturnsOwnerAndExpiry(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	expires := time.Date(2025, 3, 21, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT user_id, expires_at FROM refresh_tokens WHERE token = \$1$`).
		WithArgs(refreshToken).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at"}).AddRow(engineerID, expires))

	got, err := repo.Find(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.Equal(t, engineerID, got.UserID)
	assert.Equal(t, refreshToken, got.Token)
	assert.True(t, got.Expires.Equal(expires))
}

func TestFind_ExpiredRowIsStillReturned(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	// expiry is judged by the user service, not by the query
	expired := time.Now().Add(-time.Hour)
	mock.ExpectQuery(`FROM refresh_tokens WHERE token = \$1$`).
		WithArgs(refreshToken).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at"}).AddRow(engineerID, expired))

	got, err := repo.Find(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.True(t, got.Expires.Before(time.Now()))
}

func TestFind_UnknownToken(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`FROM refresh_tokens WHERE token = \$1$`).
		WithArgs("revogado").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), "revogado")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFind_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(`FROM refresh_tokens WHERE token = \$1$`).
		WithArgs(refreshToken).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Find(context.Background(), refreshToken)
	require.ErrorContains(t, err, "db error: connection reset")
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete_RevokesToken(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM refresh_tokens WHERE token = \$1$`).
		WithArgs(refreshToken).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), refreshToken))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM refresh_tokens`).
		WithArgs(refreshToken).
		WillReturnError(errors.New("connection reset"))

	require.ErrorContains(t, repo.Delete(context.Background(), refreshToken), "db error: connection reset")
}
