package attachments

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

func TestCreate_MeasurementProof(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, MeasurementAttachments)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`^INSERT INTO measurement_attachments \(measurement_id, name, url, type, uploaded_by, date\)`).
		WithArgs("m1", "Comprovante", "http://s3/b/k.pdf", "pdf", "Ana", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a1"))

	a, err := repo.Create(context.Background(), &models.Attachment{
		OwnerID: "m1", Name: "Comprovante", URL: "http://s3/b/k.pdf", Type: "pdf", UploadedBy: "Ana", Date: now,
	})
	require.NoError(t, err)
	assert.Equal(t, "a1", a.ID)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, ItemAttachments)
	defer db.Close()

	mock.ExpectQuery(`^INSERT INTO service_item_attachments`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Attachment{OwnerID: "i1"})
	require.ErrorContains(t, err, "db down")
}

func TestList_ContractDocuments(t *testing.T) {
	repo, mock, db := newRepoWithMock(t, ContractAttachments)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "contract_id", "name", "url", "type", "uploaded_by", "date"}).
		AddRow("a1", "k1", "Contrato assinado", "http://s3/b/1.pdf", "pdf", nil, time.Now())
	mock.ExpectQuery(`FROM contract_attachments WHERE contract_id = \$1 ORDER BY date DESC$`).
		WithArgs("k1").WillReturnRows(rows)

	list, err := repo.List(context.Background(), "k1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "pdf", list[0].Type)
	assert.Empty(t, list[0].UploadedBy)
}
