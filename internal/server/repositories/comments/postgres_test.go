package comments

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T, target Target) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db, target), mock, db
}

func TestCreate_ItemComment(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, ItemComments)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`^INSERT INTO service_item_comments \(item_id, text, author, date\)`).
		WithArgs("i1", "medição conferida", "Ana", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("cm1"))

	c, err := repo.Create(context.Background(), &models.Comment{OwnerID: "i1", Text: "medição conferida", Author: "Ana", Date: now})
	require.NoError(t, err)
	assert.Equal(t, "cm1", c.ID)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, TaskComments)
	defer db.Close()

	mock.ExpectQuery(`^INSERT INTO task_comments \(task_id`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Comment{OwnerID: "t1"})
	require.ErrorContains(t, err, "db error: db down")
}

func TestList_TaskComments(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, TaskComments)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "task_id", "text", "author", "date"}).
		AddRow("c1", "t1", "primeiro", "Ana", time.Now().Add(-time.Minute)).
		AddRow("c2", "t1", "segundo", "Bruno", time.Now())
	mock.ExpectQuery(`^SELECT id, task_id, text, author, date FROM task_comments WHERE task_id = \$1 ORDER BY date ASC$`).
		WithArgs("t1").WillReturnRows(rows)

	list, err := repo.List(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "primeiro", list[0].Text)
	assert.Equal(t, "t1", list[1].OwnerID)
}
