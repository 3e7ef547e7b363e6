package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/dbx"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
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
	"github.com/dmitrijs2005/mdterp/internal/server/storage"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// --- repository fakes; unimplemented methods panic through the nil embedded interface ---

type fakeProfilesRepo struct {
	profiles.Repository
	byEmail   map[string]*models.Profile
	byID      map[string]*models.Profile
	list      []*models.Profile
	created   []*models.Profile
	createErr error
	getErr    error
	listErr   error
}

func (f *fakeProfilesRepo) Create(_ context.Context, p *models.Profile) (*models.Profile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *p
	out.ID = fmt.Sprintf("p%d", len(f.created)+1)
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeProfilesRepo) GetByEmail(_ context.Context, email string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if p, ok := f.byEmail[email]; ok {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeProfilesRepo) GetByID(_ context.Context, id string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeProfilesRepo) List(context.Context) ([]*models.Profile, error) {
	return f.list, f.listErr
}

type fakeRefreshRepo struct {
	refreshtokens.Repository
	findOut   *models.RefreshToken
	findErr   error
	delErr    error
	createErr error
	deleted   []string
	created   []string
}

func (f *fakeRefreshRepo) Create(_ context.Context, _ string, token string, _ time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, token)
	return nil
}

func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

type fakeClientsRepo struct {
	clients.Repository
	created   []*models.Client
	updated   []*models.Client
	count     int64
	createErr error
}

func (f *fakeClientsRepo) Create(_ context.Context, c *models.Client) (*models.Client, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *c
	out.ID = "c1"
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeClientsRepo) Update(_ context.Context, c *models.Client) error {
	f.updated = append(f.updated, c)
	return nil
}

func (f *fakeClientsRepo) Count(context.Context) (int64, error) { return f.count, nil }

type fakeContractsRepo struct {
	contracts.Repository
	created     []*models.Contract
	updated     []*models.Contract
	countActive int64
	sum         float64
}

func (f *fakeContractsRepo) Create(_ context.Context, c *models.Contract) (*models.Contract, error) {
	out := *c
	out.ID = "k1"
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeContractsRepo) Update(_ context.Context, c *models.Contract) error {
	f.updated = append(f.updated, c)
	return nil
}

func (f *fakeContractsRepo) CountActive(context.Context) (int64, error) { return f.countActive, nil }
func (f *fakeContractsRepo) SumTotalValue(context.Context) (float64, error) {
	return f.sum, nil
}

type fakeItemsRepo struct {
	items.Repository
	byID      map[string]*models.ServiceItem
	created   []*models.ServiceItem
	updated   []*models.ServiceItem
	workflows []models.Workflow
	sum       float64

	wfErr   error
	getErr  error
	listErr error
}

func newFakeItemsRepo(list ...*models.ServiceItem) *fakeItemsRepo {
	f := &fakeItemsRepo{byID: make(map[string]*models.ServiceItem)}
	for _, it := range list {
		f.byID[it.ID] = it
	}
	return f
}

func (f *fakeItemsRepo) Create(_ context.Context, it *models.ServiceItem) (*models.ServiceItem, error) {
	out := *it
	out.ID = fmt.Sprintf("i%d", len(f.created)+1)
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeItemsRepo) Update(_ context.Context, it *models.ServiceItem) error {
	f.updated = append(f.updated, it)
	return nil
}

func (f *fakeItemsRepo) UpdateWorkflow(_ context.Context, itemID string, wf models.Workflow) error {
	if f.wfErr != nil {
		return f.wfErr
	}
	it, ok := f.byID[itemID]
	if !ok {
		return common.ErrorNotFound
	}
	f.workflows = append(f.workflows, wf)
	it.Workflow = wf
	return nil
}

func (f *fakeItemsRepo) Get(_ context.Context, id string) (*models.ServiceItem, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	it, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *it
	return &out, nil
}

func (f *fakeItemsRepo) ListByContract(_ context.Context, contractID string) ([]*models.ServiceItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.ServiceItem
	for _, it := range f.byID {
		if it.ContractID == contractID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemsRepo) SumTotalPrice(context.Context) (float64, error) { return f.sum, nil }

type fakeMeasurementsRepo struct {
	measurements.Repository
	created []*models.Measurement
	list    []*models.Measurement
	sum     float64
}

func (f *fakeMeasurementsRepo) Create(_ context.Context, m *models.Measurement) (*models.Measurement, error) {
	out := *m
	out.ID = fmt.Sprintf("m%d", len(f.created)+1)
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeMeasurementsRepo) ListByItem(context.Context, string) ([]*models.Measurement, error) {
	return f.list, nil
}

func (f *fakeMeasurementsRepo) SumTotalPrice(context.Context) (float64, error) { return f.sum, nil }

type fakeTasksRepo struct {
	tasks.Repository
	created   []*models.Task
	statuses  map[string]models.TaskStatus
	open      []*models.Task
	openLimit int
}

func (f *fakeTasksRepo) Create(_ context.Context, t *models.Task) (*models.Task, error) {
	out := *t
	out.ID = fmt.Sprintf("t%d", len(f.created)+1)
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeTasksRepo) UpdateStatus(_ context.Context, id string, st models.TaskStatus) error {
	if f.statuses == nil {
		f.statuses = make(map[string]models.TaskStatus)
	}
	f.statuses[id] = st
	return nil
}

func (f *fakeTasksRepo) ListOpen(_ context.Context, limit int) ([]*models.Task, error) {
	f.openLimit = limit
	return f.open, nil
}

type fakeCommentsRepo struct {
	comments.Repository
	list      []*models.Comment
	createErr error
	listErr   error
}

func (f *fakeCommentsRepo) Create(_ context.Context, c *models.Comment) (*models.Comment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *c
	out.ID = fmt.Sprintf("cm%d", len(f.list)+1)
	f.list = append(f.list, &out)
	return &out, nil
}

func (f *fakeCommentsRepo) List(_ context.Context, ownerID string) ([]*models.Comment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Comment
	for _, c := range f.list {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeAttachmentsRepo struct {
	attachments.Repository
	list      []*models.Attachment
	createErr error
}

func (f *fakeAttachmentsRepo) Create(_ context.Context, a *models.Attachment) (*models.Attachment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *a
	out.ID = fmt.Sprintf("a%d", len(f.list)+1)
	f.list = append(f.list, &out)
	return &out, nil
}

func (f *fakeAttachmentsRepo) List(_ context.Context, ownerID string) ([]*models.Attachment, error) {
	var out []*models.Attachment
	for _, a := range f.list {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeChatRepo struct {
	chatmessages.Repository
	mu        sync.Mutex
	stored    []*models.ChatMessage
	createErr error
}

func (f *fakeChatRepo) Create(_ context.Context, m *models.ChatMessage) (*models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *m
	out.ID = fmt.Sprintf("msg%d", len(f.stored)+1)
	f.stored = append(f.stored, &out)
	return &out, nil
}

func (f *fakeChatRepo) RecentVisibleTo(_ context.Context, viewerID string, limit int) ([]*models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var visible []*models.ChatMessage
	for _, m := range f.stored {
		if m.VisibleTo(viewerID) {
			visible = append(visible, m)
		}
	}
	if len(visible) > limit {
		return visible[len(visible)-limit:], nil
	}
	return visible, nil
}

func (f *fakeChatRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.stored)
}

// fakeRepoManager hands out the same fake regardless of the DBTX, so
// transactional calls land in the same place.
type fakeRepoManager struct {
	profiles     *fakeProfilesRepo
	refresh      *fakeRefreshRepo
	clients      *fakeClientsRepo
	contracts    *fakeContractsRepo
	items        *fakeItemsRepo
	measurements *fakeMeasurementsRepo
	tasks        *fakeTasksRepo
	comments     map[comments.Target]*fakeCommentsRepo
	attachments  map[attachments.Target]*fakeAttachmentsRepo
	chat         *fakeChatRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		profiles:     &fakeProfilesRepo{},
		refresh:      &fakeRefreshRepo{},
		clients:      &fakeClientsRepo{},
		contracts:    &fakeContractsRepo{},
		items:        newFakeItemsRepo(),
		measurements: &fakeMeasurementsRepo{},
		tasks:        &fakeTasksRepo{},
		comments:     make(map[comments.Target]*fakeCommentsRepo),
		attachments:  make(map[attachments.Target]*fakeAttachmentsRepo),
		chat:         &fakeChatRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository           { return m.profiles }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refresh }
func (m *fakeRepoManager) Clients(dbx.DBTX) clients.Repository             { return m.clients }
func (m *fakeRepoManager) Contracts(dbx.DBTX) contracts.Repository         { return m.contracts }
func (m *fakeRepoManager) Items(dbx.DBTX) items.Repository                 { return m.items }
func (m *fakeRepoManager) Measurements(dbx.DBTX) measurements.Repository   { return m.measurements }
func (m *fakeRepoManager) Tasks(dbx.DBTX) tasks.Repository                 { return m.tasks }
func (m *fakeRepoManager) ChatMessages(dbx.DBTX) chatmessages.Repository   { return m.chat }

func (m *fakeRepoManager) Comments(_ dbx.DBTX, target comments.Target) comments.Repository {
	return m.commentsFor(target)
}

func (m *fakeRepoManager) commentsFor(target comments.Target) *fakeCommentsRepo {
	r, ok := m.comments[target]
	if !ok {
		r = &fakeCommentsRepo{}
		m.comments[target] = r
	}
	return r
}

func (m *fakeRepoManager) Attachments(_ dbx.DBTX, target attachments.Target) attachments.Repository {
	return m.attachmentsFor(target)
}

func (m *fakeRepoManager) attachmentsFor(target attachments.Target) *fakeAttachmentsRepo {
	r, ok := m.attachments[target]
	if !ok {
		r = &fakeAttachmentsRepo{}
		m.attachments[target] = r
	}
	return r
}

type fakeStore struct {
	storage.Store
	keys      []string
	uploadErr error
}

func (f *fakeStore) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.keys = append(f.keys, key)
	return storage.PublicURL("http://s3.local", "documents", key), nil
}

func (f *fakeStore) PresignGet(_ context.Context, key string) (string, error) {
	return "http://s3.local/documents/" + key + "?sig=1", nil
}
