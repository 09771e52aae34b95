package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo_backend/internal/logger"
	"todo_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActivityRepo struct {
	events    []models.ActivityEvent
	appendErr error

	gotFrom, gotTo time.Time
	gotType        string
}

func (f *fakeActivityRepo) Append(ctx context.Context, e models.ActivityEvent) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeActivityRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	return f.events, nil
}

func TestActivityService_Record(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewActivityService(repo, logger.Nop())
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3*3600))
	svc.now = func() time.Time { return fixed }

	svc.Record(context.Background(), models.EventLogin, "login succeeded", map[string]any{"username": "demo"})

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.Equal(t, models.EventLogin, e.Type)
	assert.Equal(t, "login succeeded", e.Description)
	assert.Equal(t, time.UTC, e.OccurredAt.Location())
	assert.True(t, e.OccurredAt.Equal(fixed))
}

func TestActivityService_RecordSwallowsErrors(t *testing.T) {
	repo := &fakeActivityRepo{appendErr: errors.New("disk full")}
	svc := NewActivityService(repo, logger.Nop())

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), models.EventTodoCreate, "todo created", nil)
	})

	// a nil logger is tolerated too
	svc = NewActivityService(repo, nil)
	assert.NotPanics(t, func() {
		svc.Record(context.Background(), models.EventTodoCreate, "todo created", nil)
	})
}

func TestActivityService_ListNormalizesFilter(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewActivityService(repo, logger.Nop())
	zone := time.FixedZone("X", 2*3600)
	from := time.Date(2025, 1, 1, 10, 0, 0, 0, zone)
	to := time.Date(2025, 1, 1, 12, 0, 0, 0, zone)

	_, err := svc.List(context.Background(), ActivityFilter{From: from, To: to, Type: " login "})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, repo.gotFrom.Location())
	assert.True(t, repo.gotFrom.Equal(from))
	assert.True(t, repo.gotTo.Equal(to))
	assert.Equal(t, "LOGIN", repo.gotType)

	_, err = svc.List(context.Background(), ActivityFilter{})
	require.NoError(t, err)
	assert.True(t, repo.gotFrom.IsZero())
	assert.True(t, repo.gotTo.IsZero())
	assert.Equal(t, "", repo.gotType)
}

func TestActivityService_ListInvalidRange(t *testing.T) {
	svc := NewActivityService(&fakeActivityRepo{}, logger.Nop())
	now := time.Now()
	_, err := svc.List(context.Background(), ActivityFilter{From: now, To: now.Add(-time.Minute)})
	assert.ErrorIs(t, err, errInvalidTimeRange)
}
