package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosyll/cosyll-web/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestEnsureSchema(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS audit_logs").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAuditLog(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	userID := "u1"
	resourceID := "s1"
	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(sqlmock.AnyArg(), "u1", models.AuditActionUpdate, "syllabus", "s1", "/api/v1/syllabi/s1", 200, "127.0.0.1", "go-test", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	entry := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionUpdate,
		Resource:   "syllabus",
		ResourceID: &resourceID,
		Path:       "/api/v1/syllabi/s1",
		Status:     200,
		IPAddress:  "127.0.0.1",
		UserAgent:  "go-test",
	}
	require.NoError(t, repo.CreateAuditLog(context.Background(), entry))
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAuditLogError(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	mock.ExpectExec("INSERT INTO audit_logs").WillReturnError(errors.New("db down"))

	err := repo.CreateAuditLog(context.Background(), &models.AuditLog{Action: models.AuditActionDelete, Resource: "collection"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create audit log")
}

func TestListByUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAuditRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "action", "resource", "resource_id", "path", "status", "ip_address", "user_agent", "created_at"}).
		AddRow("a1", "u1", models.AuditActionCreate, "collection", "c1", "/api/v1/collections", 201, "::1", "ua", now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, action, resource, resource_id, path, status, ip_address, user_agent, created_at FROM audit_logs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2")).
		WithArgs("u1", 20).
		WillReturnRows(rows)

	logs, err := repo.ListByUser(context.Background(), "u1", 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "collection", logs[0].Resource)
	require.NotNil(t, logs[0].ResourceID)
	assert.Equal(t, "c1", *logs[0].ResourceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
