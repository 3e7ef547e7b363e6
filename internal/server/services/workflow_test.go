package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/logging"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/attachments"
	"github.com/dmitrijs2005/mdterp/internal/server/repositories/comments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var supervisor = auth.Actor{ID: "u1", Name: "Carla", Role: models.RoleUser}

func newWorkflowFixture(t *testing.T) (*WorkflowService, *fakeRepoManager, *fakeStore) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.items = newFakeItemsRepo(
		&models.ServiceItem{ID: "os-1", ContractID: "k1", Quantity: 10, Workflow: models.Workflow{Status: models.StatusPending}},
		&models.ServiceItem{ID: "os-2", ContractID: "k1", Quantity: 3},
	)
	store := &fakeStore{}
	s := NewWorkflowService(db, rm, store, logging.Nop{})
	s.attacher.now = fixedClock
	return s, rm, store
}

func TestWorkflowSave_StatusOnly(t *testing.T) {
	s, _, store := newWorkflowFixture(t)

	res, err := s.Save(context.Background(), supervisor, "os-1", models.Workflow{Status: models.StatusReview}, "  ", nil)
	require.NoError(t, err)

	assert.Equal(t, models.StatusReview, res.Item.Status)
	assert.False(t, res.Comment.Attempted)
	assert.False(t, res.Attachment.Attempted)
	assert.True(t, res.Refresh.OK())
	assert.Empty(t, res.Comments)
	assert.Empty(t, res.Attachments)
	assert.Len(t, res.Items, 2)
	assert.Empty(t, store.keys)
}

func TestWorkflowSave_AnyStatusAfterAny(t *testing.T) {
	s, rm, _ := newWorkflowFixture(t)
	ctx := context.Background()

	for _, st := range []models.Status{models.StatusDelivered, models.StatusPending, models.StatusConference} {
		_, err := s.Save(ctx, supervisor, "os-1", models.Workflow{Status: st}, "", nil)
		require.NoError(t, err)
	}
	require.Len(t, rm.items.workflows, 3)
	assert.Equal(t, models.StatusConference, rm.items.byID["os-1"].Status)
}

func TestWorkflowSave_BlankFieldsBecomeNil(t *testing.T) {
	s, rm, _ := newWorkflowFixture(t)
	blank := "   "
	zero := time.Time{}
	deadline := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.Save(context.Background(), supervisor, "os-1", models.Workflow{
		Status:                models.StatusInProgress,
		ExecutorID:            &blank,
		SupervisorObservation: &blank,
		ReceptionDate:         &zero,
		ClientDeadline:        &deadline,
	}, "", nil)
	require.NoError(t, err)

	wf := rm.items.workflows[0]
	assert.Nil(t, wf.ExecutorID)
	assert.Nil(t, wf.SupervisorObservation)
	assert.Nil(t, wf.ReceptionDate)
	require.NotNil(t, wf.ClientDeadline)
	assert.True(t, wf.ClientDeadline.Equal(deadline))
}

func TestWorkflowSave_InvalidStatusWritesNothing(t *testing.T) {
	s, rm, _ := newWorkflowFixture(t)

	_, err := s.Save(context.Background(), supervisor, "os-1", models.Workflow{Status: "archived"}, "note", nil)
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Empty(t, rm.items.workflows)
	assert.Empty(t, rm.commentsFor(comments.ItemComments).list)
}

func TestWorkflowSave_UpdateFailureStopsEverything(t *testing.T) {
	s, rm, store := newWorkflowFixture(t)

	res, err := s.Save(context.Background(), supervisor, "missing", models.Workflow{Status: models.StatusApproved},
		"approved by phone", &models.Upload{Name: "art.pdf", Data: []byte("%PDF")})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.True(t, strings.HasPrefix(err.Error(), "error saving workflow"))
	assert.Nil(t, res)

	assert.Empty(t, rm.commentsFor(comments.ItemComments).list)
	assert.Empty(t, rm.attachmentsFor(attachments.ItemAttachments).list)
	assert.Empty(t, store.keys)
}

func TestWorkflowSave_UploadFailureKeepsStatusAndComment(t *testing.T) {
	s, rm, store := newWorkflowFixture(t)
	store.uploadErr = errBoom{}

	res, err := s.Save(context.Background(), supervisor, "os-1", models.Workflow{Status: models.StatusConference},
		" medições conferidas ", &models.Upload{Name: "planta.dwg", Data: []byte{1, 2, 3}})
	require.NoError(t, err)

	assert.Equal(t, models.StatusConference, rm.items.byID["os-1"].Status)
	assert.True(t, res.Comment.OK())
	assert.True(t, res.Attachment.Attempted)
	assert.ErrorIs(t, res.Attachment.Err, errBoom{})
	assert.True(t, res.Refresh.OK())

	require.Len(t, res.Comments, 1)
	assert.Equal(t, "medições conferidas", res.Comments[0].Text)
	assert.Equal(t, "Carla", res.Comments[0].Author)
	assert.Equal(t, fixedNow, res.Comments[0].Date)
	assert.Empty(t, res.Attachments)
}

func TestWorkflowSave_WithFile(t *testing.T) {
	s, _, store := newWorkflowFixture(t)

	res, err := s.Save(context.Background(), supervisor, "os-1", models.Workflow{Status: models.StatusDelivered},
		"", &models.Upload{Name: "Foto.JPG", Data: []byte{0xff, 0xd8}})
	require.NoError(t, err)
	require.True(t, res.Attachment.OK())

	require.Len(t, store.keys, 1)
	assert.True(t, strings.HasSuffix(store.keys[0], ".jpg"))

	require.Len(t, res.Attachments, 1)
	a := res.Attachments[0]
	assert.Equal(t, "Foto.JPG", a.Name)
	assert.Equal(t, "image", a.Type)
	assert.Equal(t, "Carla", a.UploadedBy)
	assert.Equal(t, "http://s3.local/documents/"+store.keys[0], a.URL)
}

func TestWorkflowSave_CommentFailureReported(t *testing.T) {
	s, rm, _ := newWorkflowFixture(t)
	rm.commentsFor(comments.ItemComments).createErr = errBoom{}

	res, err := s.Save(context.Background(), supervisor, "os-1", models.Workflow{Status: models.StatusReview}, "hello", nil)
	require.NoError(t, err)
	assert.True(t, res.Comment.Attempted)
	assert.Error(t, res.Comment.Err)
	assert.Equal(t, models.StatusReview, rm.items.byID["os-1"].Status)
}

func TestWorkflowSave_RefreshFailureReported(t *testing.T) {
	s, rm, _ := newWorkflowFixture(t)
	rm.items.listErr = errBoom{}
	rm.commentsFor(comments.ItemComments).listErr = errBoom{}

	res, err := s.Save(context.Background(), supervisor, "os-1", models.Workflow{Status: models.StatusReview}, "", nil)
	require.NoError(t, err)
	assert.True(t, res.Refresh.Attempted)
	require.Error(t, res.Refresh.Err)
	assert.Contains(t, res.Refresh.Err.Error(), "items: boom")
	assert.Contains(t, res.Refresh.Err.Error(), "comments: boom")
	assert.Equal(t, models.StatusReview, rm.items.byID["os-1"].Status)
}

func TestWorkflow_StandaloneCommentAndAttachment(t *testing.T) {
	s, _, _ := newWorkflowFixture(t)
	ctx := context.Background()

	_, err := s.AddComment(ctx, auth.Actor{ID: "u9"}, "os-1", "first")
	require.NoError(t, err)
	_, err = s.AddComment(ctx, supervisor, "os-1", "")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.AddAttachment(ctx, supervisor, "os-1", &models.Upload{Name: "memorial.docx", Data: []byte("x")})
	require.NoError(t, err)
	_, err = s.AddAttachment(ctx, supervisor, "os-1", nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	in, err := s.Get(ctx, "os-1")
	require.NoError(t, err)
	require.Len(t, in.Comments, 1)
	assert.Equal(t, common.DefaultAuthorName, in.Comments[0].Author)
	require.Len(t, in.Attachments, 1)
	assert.Equal(t, "doc", in.Attachments[0].Type)
}
