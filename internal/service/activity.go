package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"todo_backend/internal/logger"
	"todo_backend/internal/models"
	"todo_backend/internal/repository"
)

// ActivityRecorder appends audit events on a best-effort basis.
type ActivityRecorder interface {
	Record(ctx context.Context, typ, description string, meta any)
}

type ActivityService struct {
	repo repository.ActivityRepo
	log  *logger.Logger
	now  func() time.Time
}

func NewActivityService(repo repository.ActivityRepo, log *logger.Logger) *ActivityService {
	return &ActivityService{repo: repo, log: log, now: time.Now}
}

var _ ActivityRecorder = (*ActivityService)(nil)

var (
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
)

// Record appends an event. Failures are logged and swallowed so that an
// audit write never fails the operation being audited.
func (s *ActivityService) Record(ctx context.Context, typ, description string, meta any) {
	err := s.repo.Append(ctx, models.ActivityEvent{
		OccurredAt:  s.now().UTC(),
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
	if err != nil && s.log != nil {
		s.log.Warnw("activity_append_failed", "type", typ, "err", err)
	}
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f ActivityFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}
	return from, to, strings.ToUpper(strings.TrimSpace(f.Type)), nil
}

func (s *ActivityService) List(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, from, to, typ)
}
