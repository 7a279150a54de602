package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cosyll/cosyll-web/internal/models"
	appErrors "github.com/cosyll/cosyll-web/pkg/errors"
)

type auditRepository interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.AuditLog, error)
}

// AuditService records mutations forwarded to the API. Failures never fail the request.
type AuditService struct {
	repo    auditRepository
	metrics *MetricsService
	logger  *zap.Logger
	timeout time.Duration
}

// NewAuditService constructs an AuditService. A nil repo disables auditing.
func NewAuditService(repo auditRepository, metrics *MetricsService, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{repo: repo, metrics: metrics, logger: logger, timeout: 3 * time.Second}
}

// Enabled reports whether entries are stored.
func (s *AuditService) Enabled() bool {
	return s != nil && s.repo != nil
}

// Record stores one entry. The write outlives the request context so a client hanging up
// right after a successful mutation still leaves a trail.
func (s *AuditService) Record(ctx context.Context, entry *models.AuditLog) {
	if !s.Enabled() {
		return
	}
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.repo.CreateAuditLog(writeCtx, entry); err != nil {
		s.metrics.RecordAuditFailure()
		s.logger.Warn("failed to record audit log",
			zap.String("action", entry.Action),
			zap.String("resource", entry.Resource),
			zap.Error(err),
		)
	}
}

// Activity returns the viewer's most recent recorded mutations, newest first.
func (s *AuditService) Activity(ctx context.Context, viewer *models.Viewer, limit int) ([]models.AuditLog, error) {
	if err := requireViewer(viewer); err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "activity log is disabled")
	}
	entries, err := s.repo.ListByUser(ctx, viewer.UserID, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load activity")
	}
	return entries, nil
}
