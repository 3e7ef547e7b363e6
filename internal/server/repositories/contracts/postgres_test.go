package contracts

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

var columns = []string{"id", "client_id", "contract_number", "process_number", "description",
	"contract_description", "start_date", "end_date", "total_value"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^INSERT INTO contracts`).
		WithArgs("c1", nil, nil, models.DefaultContractDescription, nil, nil, nil, 1500.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("k1"))

	c, err := repo.Create(context.Background(), &models.Contract{
		ClientID: "c1", Description: models.DefaultContractDescription, TotalValue: 1500,
	})
	require.NoError(t, err)
	assert.Equal(t, "k1", c.ID)
}

func TestUpdate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^UPDATE contracts SET`).WillReturnError(errors.New("db down"))

	err := repo.Update(context.Background(), &models.Contract{ID: "k1"})
	require.ErrorContains(t, err, "db error: db down")
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM contracts WHERE id = \$1`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "k1")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListByClient(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM contracts WHERE client_id = \$1`).WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("k1", "c1", "001/2024", nil, "Novo Contrato", nil, start, nil, 1500.0))

	list, err := repo.ListByClient(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].StartDate)
	assert.True(t, start.Equal(*list[0].StartDate))
	assert.Nil(t, list[0].EndDate)
	assert.Equal(t, 1500.0, list[0].TotalValue)
}

func TestAggregates(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM contracts WHERE start_date IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SUM\(total_value\)`).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(9000.5))

	n, err := repo.CountActive(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	total, err := repo.SumTotalValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9000.5, total)
}
