package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/feature/contact/domain/entity"
)

func sampleRequest() *entity.ContactRequest {
	return &entity.ContactRequest{
		ID:        "r1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Message:   "Hello",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// TestInboxRedis_Notify checks the request is appended to the inbox list as JSON.
func TestInboxRedis_Notify(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	payload, err := json.Marshal(newInboxMessage(sampleRequest()))
	require.NoError(t, err)
	mock.ExpectRPush(DefaultInboxKey, payload).SetVal(1)

	err = NewInboxRedis(rdb, DefaultInboxKey).Notify(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.JSONEq(t, `{"request_id":"r1","name":"Ada","email":"ada@example.com","message":"Hello","created_at":"2025-01-02T03:04:05Z"}`, string(payload))
}

func TestInboxRedis_NotifyError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	payload, _ := json.Marshal(newInboxMessage(sampleRequest()))
	mock.ExpectRPush("custom:inbox", payload).SetErr(errors.New("connection refused"))

	err := NewInboxRedis(rdb, "custom:inbox").Notify(context.Background(), sampleRequest())

	assert.ErrorContains(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInboxLog_Notify(t *testing.T) {
	t.Parallel()

	assert.NoError(t, InboxLog{}.Notify(context.Background(), sampleRequest()))
}
