package di

import (
	"github.com/redis/go-redis/v9"

	contactadapters "portfolio_backend/internal/feature/contact/adapters"
	contactusecase "portfolio_backend/internal/feature/contact/usecase"
)

// NewContactNotifier creates the contact request notifier.
// If Redis is available, requests are pushed onto the contact inbox list.
// Otherwise, they are only written to the application log.
func NewContactNotifier(rdb *redis.Client) contactusecase.Notifier {
	if rdb != nil {
		return contactadapters.NewInboxRedis(rdb, contactadapters.DefaultInboxKey)
	}
	return contactadapters.InboxLog{}
}
