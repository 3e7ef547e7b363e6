package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
	"github.com/dmitrijs2005/mdterp/internal/server/config"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	return NewUserService(db, rm, cfg)
}

func profileWithPassword(t *testing.T, id, email, password string, role models.Role) *models.Profile {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.Profile{ID: id, Email: email, Name: "Ana", Role: role, PasswordHash: hash}
}

func TestRefreshToken_RotatesInsideTransaction(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	rm.refresh.findOut = &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(10 * time.Minute)}
	rm.profiles.byID = map[string]*models.Profile{"u1": {ID: "u1", Name: "Ana", Role: models.RoleAdmin}}
	s := newUserService(t, db, rm)

	pair, err := s.RefreshToken(context.Background(), "refresh-xyz")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, []string{"refresh-xyz"}, rm.refresh.deleted)
	assert.Equal(t, []string{pair.RefreshToken}, rm.refresh.created)

	actor, err := auth.ParseToken(pair.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u1", actor.ID)
	assert.True(t, actor.IsAdmin())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_Expired(t *testing.T) {
	db, _ := newSQLMockDB(t)

	rm := newFakeRepoManager()
	rm.refresh.findOut = &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(-time.Minute)}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefreshToken_Unknown(t *testing.T) {
	db, _ := newSQLMockDB(t)

	rm := newFakeRepoManager()
	rm.refresh.findErr = common.ErrorNotFound
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestRefreshToken_FindErr(t *testing.T) {
	db, _ := newSQLMockDB(t)

	rm := newFakeRepoManager()
	rm.refresh.findErr = errBoom{}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error searching refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped find error, got %v", err)
	}
}

func TestRefreshToken_DeleteErrRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	rm.refresh.findOut = &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(10 * time.Minute)}
	rm.refresh.delErr = errBoom{}
	rm.profiles.byID = map[string]*models.Profile{"u1": {ID: "u1"}}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error deleting refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped delete error, got %v", err)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_CreateErrRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := newFakeRepoManager()
	rm.refresh.findOut = &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(10 * time.Minute)}
	rm.refresh.createErr = errBoom{}
	rm.profiles.byID = map[string]*models.Profile{"u1": {ID: "u1"}}
	s := newUserService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	assert.ErrorIs(t, err, common.ErrorInternal)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_FirstProfileIsAdmin(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	s := newUserService(t, db, rm)

	p, err := s.Register(context.Background(), " Ana@Example.com ", "", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", p.Email)
	assert.Equal(t, "ana", p.Name)
	assert.Equal(t, models.RoleAdmin, p.Role)
	require.NoError(t, auth.CheckPassword(p.PasswordHash, "secret1"))

	rm.profiles.list = []*models.Profile{p}
	p2, err := s.Register(context.Background(), "bob@example.com", "Bob", "secret2")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, p2.Role)
	assert.Equal(t, "Bob", p2.Name)
}

func TestRegister_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := newUserService(t, db, newFakeRepoManager())

	_, err := s.Register(context.Background(), "not-an-email", "", "secret1")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Register(context.Background(), "a@b.com", "", "123")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestRegister_CreateError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.profiles.createErr = errBoom{}
	s := newUserService(t, db, rm)

	_, err := s.Register(context.Background(), "bob@example.com", "Bob", "secret1")
	if err == nil || !regexp.MustCompile(`error creating user: .*boom`).MatchString(err.Error()) {
		t.Fatalf("Register expected wrapped error, got %v", err)
	}
}

func TestLogin_Flows(t *testing.T) {
	db, _ := newSQLMockDB(t)
	ctx := context.Background()

	// not found → unauthorized
	rmNF := newFakeRepoManager()
	if _, err := newUserService(t, db, rmNF).Login(ctx, "ghost@x.com", "x"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("notfound → unauthorized, got %v", err)
	}

	// internal error
	rmIE := newFakeRepoManager()
	rmIE.profiles.getErr = errBoom{}
	if _, err := newUserService(t, db, rmIE).Login(ctx, "u@x.com", "x"); !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("internal → ErrorInternal, got %v", err)
	}

	p := profileWithPassword(t, "u1", "u@x.com", "right-pass", models.RoleUser)

	// wrong password → unauthorized
	rmWP := newFakeRepoManager()
	rmWP.profiles.byEmail = map[string]*models.Profile{"u@x.com": p}
	if _, err := newUserService(t, db, rmWP).Login(ctx, "u@x.com", "wrong"); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("wrong password → unauthorized, got %v", err)
	}

	rmOK := newFakeRepoManager()
	rmOK.profiles.byEmail = map[string]*models.Profile{"u@x.com": p}
	pair, err := newUserService(t, db, rmOK).Login(ctx, "U@x.com", "right-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "u1", pair.Profile.ID)
	assert.Len(t, rmOK.refresh.created, 1)
}
