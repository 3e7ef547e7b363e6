package clients

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "name", "address", "neighborhood", "city", "whatsapp", "email",
	"responsible", "registration_number", "minutes_number", "registration_date", "deadline", "user_created"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	city := "Recife"
	mock.ExpectQuery(`^INSERT INTO clients`).
		WithArgs("Prefeitura", nil, nil, &city, nil, nil, nil, nil, nil, nil, nil, "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c1"))

	c, err := repo.Create(context.Background(), &models.Client{Name: "Prefeitura", City: &city, UserCreated: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^UPDATE clients SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Client{ID: "missing", Name: "x"})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM clients WHERE id = \$1`).WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("c1", "Prefeitura", nil, nil, "Recife", nil, nil, nil, nil, nil, nil, nil, nil))

	c, err := repo.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Prefeitura", c.Name)
	require.NotNil(t, c.City)
	assert.Equal(t, "Recife", *c.City)
	assert.Nil(t, c.Address)
	assert.Empty(t, c.UserCreated)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM clients WHERE id`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "c1")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList_Search(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`WHERE name ILIKE \$1 OR city ILIKE \$1 ORDER BY name$`).WithArgs("%rec%").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("c1", "Prefeitura", nil, nil, "Recife", nil, nil, nil, nil, nil, nil, nil, "u1"))

	list, err := repo.List(context.Background(), "rec")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "u1", list[0].UserCreated)
}

func TestList_All(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM clients ORDER BY name$`).WillReturnRows(sqlmock.NewRows(columns))

	list, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCount_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM clients`).WillReturnError(errors.New("db down"))

	_, err := repo.Count(context.Background())
	require.ErrorContains(t, err, "db down")
}
