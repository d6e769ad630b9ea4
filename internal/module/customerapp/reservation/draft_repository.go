package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	appErrors "github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// DraftRepository is the session-scoped transient store for the in-progress
// reservation. Save overwrites, Load reports DRAFT_NOT_FOUND when absent so
// the client redirects back to the selection entry point, Clear removes.
type DraftRepository interface {
	Save(ctx context.Context, sessionID string, draft Draft) error
	Load(ctx context.Context, tenantID, sessionID string) (Draft, error)
	Clear(ctx context.Context, tenantID, sessionID string) error
}

type draftRepository struct {
	logger *logrus.Logger
	client redis.Cmdable
	ttl    time.Duration
}

func NewDraftRepository(logger *logrus.Logger, client redis.Cmdable, ttl time.Duration) DraftRepository {
	return &draftRepository{
		logger: logger,
		client: client,
		ttl:    ttl,
	}
}

func draftKey(tenantID, sessionID string) string {
	return fmt.Sprintf("reservation:draft:%s:%s", tenantID, sessionID)
}

// Save implements DraftRepository.
func (r *draftRepository) Save(ctx context.Context, sessionID string, draft Draft) error {
	buff, _ := json.Marshal(draft)

	if err := r.client.Set(ctx, draftKey(draft.TenantID, sessionID), buff, r.ttl).Err(); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return appErrors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while saving the reservation draft")
	}

	return nil
}

// Load implements DraftRepository.
func (r *draftRepository) Load(ctx context.Context, tenantID, sessionID string) (Draft, error) {
	buff, err := r.client.Get(ctx, draftKey(tenantID, sessionID)).Bytes()
	if err == redis.Nil {
		return Draft{}, appErrors.New(http.StatusNotFound, status.DRAFT_NOT_FOUND, "there is no reservation in progress for this session")
	}
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Draft{}, appErrors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while loading the reservation draft")
	}

	var draft Draft
	if err := json.Unmarshal(buff, &draft); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return Draft{}, appErrors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while loading the reservation draft")
	}

	return draft, nil
}

// Clear implements DraftRepository.
func (r *draftRepository) Clear(ctx context.Context, tenantID, sessionID string) error {
	if err := r.client.Del(ctx, draftKey(tenantID, sessionID)).Err(); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return appErrors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while clearing the reservation draft")
	}

	return nil
}
