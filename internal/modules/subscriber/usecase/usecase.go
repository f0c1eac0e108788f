package usecase

import (
	"context"

	"github.com/golangid/subscriber-service/internal/modules/subscriber/domain"
)

// SubscriberUsecase abstraction
type SubscriberUsecase interface {
	GetAllSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	GetAllSubscriberSummaries(ctx context.Context) ([]domain.SubscriberSummary, error)
	GetSubscriberByID(ctx context.Context, id string) (*domain.Subscriber, error)
	CreateSubscriber(ctx context.Context, req domain.CreateSubscriberRequest) (*domain.Subscriber, error)
	// ReplaceAllSubscribers remove all existing subscribers and insert the given data
	ReplaceAllSubscribers(ctx context.Context, reqs []domain.CreateSubscriberRequest) (int, error)
}
