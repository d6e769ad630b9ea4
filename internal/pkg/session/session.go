package session

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

type contextKey string

const accountContextKey contextKey = "session.account"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Account is the session record stored in Redis per signed-in account.
type Account struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
}

type Store interface {
	Set(ctx context.Context, account Account, ttl time.Duration) error
	Get(ctx context.Context, accountID int64) (Account, error)
	Delete(ctx context.Context, accountID int64) error
}

type redisSessionStore struct {
	logger *logrus.Logger
	client redis.Cmdable
}

func NewRedisSessionStore(logger *logrus.Logger, client redis.Cmdable) Store {
	return &redisSessionStore{
		logger: logger,
		client: client,
	}
}

func sessionKey(accountID int64) string {
	return fmt.Sprintf("session:account:%d", accountID)
}

func (s *redisSessionStore) Set(ctx context.Context, account Account, ttl time.Duration) error {
	buff, _ := json.Marshal(account)

	if err := s.client.Set(ctx, sessionKey(account.ID), buff, ttl).Err(); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error()
		return appErrors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while storing the session")
	}

	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, accountID int64) (Account, error) {
	buff, err := s.client.Get(ctx, sessionKey(accountID)).Bytes()
	if err == redis.Nil {
		return Account{}, appErrors.New(http.StatusUnauthorized, status.UNAUTHORIZED, "session is not found or has expired")
	}
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Error()
		return Account{}, appErrors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting the session")
	}

	var account Account
	if err := json.Unmarshal(buff, &account); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error()
		return Account{}, appErrors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting the session")
	}

	return account, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, accountID int64) error {
	if err := s.client.Del(ctx, sessionKey(accountID)).Err(); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error()
		return appErrors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while removing the session")
	}

	return nil
}

func SetAccountToCtx(ctx context.Context, account Account) context.Context {
	return context.WithValue(ctx, accountContextKey, account)
}

func GetAccountFromCtx(ctx context.Context) (Account, error) {
	account, ok := ctx.Value(accountContextKey).(Account)
	if !ok {
		return Account{}, appErrors.New(http.StatusUnauthorized, status.UNAUTHORIZED, "account is not found in the session")
	}

	return account, nil
}
