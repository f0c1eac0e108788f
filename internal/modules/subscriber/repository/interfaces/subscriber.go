package interfaces

import (
	"context"

	"github.com/golangid/subscriber-service/internal/modules/subscriber/domain"
)

// SubscriberRepository abstract interface, failure returned as *shared.NotFoundError or *shared.StoreError
type SubscriberRepository interface {
	FetchAll(ctx context.Context) ([]domain.Subscriber, error)
	FetchAllSummary(ctx context.Context) ([]domain.SubscriberSummary, error)
	FindByID(ctx context.Context, id string) (*domain.Subscriber, error)
	// Save insert new subscriber, identifier generated when empty
	Save(ctx context.Context, data *domain.Subscriber) error
	DeleteAll(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, data []domain.Subscriber) error
	CollectionExists(ctx context.Context) (bool, error)
}
