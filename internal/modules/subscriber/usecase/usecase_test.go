package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golangid/subscriber-service/internal/modules/subscriber/domain"
	"github.com/golangid/subscriber-service/mocks"
	"github.com/golangid/subscriber-service/pkg/shared"
	"github.com/golangid/subscriber-service/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestUsecase(t *testing.T) (*subscriberUsecaseImpl, *mocks.SubscriberRepository) {
	repo := mocks.NewSubscriberRepository(t)
	uc := NewSubscriberUsecase(repo, validator.NewValidator(nil, "")).(*subscriberUsecaseImpl)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo
}

func TestSubscriberUsecase_GetAllSubscribers(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("FetchAll", mock.Anything).Return([]domain.Subscriber{{ID: "abc123", Name: "Test User", SubscribedChannel: "Test Channel"}}, nil)

		data, err := uc.GetAllSubscribers(ctx)
		assert.NoError(t, err)
		assert.Len(t, data, 1)
	})

	t.Run("Testcase #2: Positive, empty store return empty slice", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("FetchAll", mock.Anything).Return(nil, nil)

		data, err := uc.GetAllSubscribers(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, data)
		assert.Empty(t, data)
	})

	t.Run("Testcase #3: Negative, untyped repository error wrapped as store error", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("FetchAll", mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := uc.GetAllSubscribers(ctx)
		assert.True(t, shared.IsStoreError(err))
		assert.EqualError(t, err, "connection refused")
	})
}

func TestSubscriberUsecase_GetAllSubscriberSummaries(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("FetchAllSummary", mock.Anything).Return([]domain.SubscriberSummary{
			{Name: "Test User", SubscribedChannel: "Test Channel"},
			{Name: "Jane", SubscribedChannel: "Go"},
		}, nil)

		data, err := uc.GetAllSubscriberSummaries(ctx)
		assert.NoError(t, err)
		assert.Len(t, data, 2)
	})

	t.Run("Testcase #2: Negative, store error", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("FetchAllSummary", mock.Anything).Return(nil, shared.NewStoreError(errors.New("timeout")))

		_, err := uc.GetAllSubscriberSummaries(ctx)
		assert.True(t, shared.IsStoreError(err))
	})
}

func TestSubscriberUsecase_GetSubscriberByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("FindByID", mock.Anything, "abc123").Return(&domain.Subscriber{ID: "abc123", Name: "Test User"}, nil)

		data, err := uc.GetSubscriberByID(ctx, "abc123")
		assert.NoError(t, err)
		assert.Equal(t, "abc123", data.ID)
	})

	t.Run("Testcase #2: Negative, not found", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("FindByID", mock.Anything, "invalid-id").Return(nil, shared.NewNotFoundError("Subscriber not found"))

		_, err := uc.GetSubscriberByID(ctx, "invalid-id")
		assert.True(t, shared.IsNotFoundError(err))
	})

	t.Run("Testcase #3: Negative, store error", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("FindByID", mock.Anything, "abc123").Return(nil, errors.New("server selection timeout"))

		_, err := uc.GetSubscriberByID(ctx, "abc123")
		assert.True(t, shared.IsStoreError(err))
	})
}

func TestSubscriberUsecase_CreateSubscriber(t *testing.T) {
	ctx := context.Background()

	t.Run("Testcase #1: Positive, store assign identifier", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Subscriber")).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.Subscriber).ID = "64501c3f1f4e2b7a9c0d1e2f" }).
			Return(nil)

		data, err := uc.CreateSubscriber(ctx, domain.CreateSubscriberRequest{Name: "Test User", SubscribedChannel: "Test Channel"})
		require.NoError(t, err)
		assert.Equal(t, "64501c3f1f4e2b7a9c0d1e2f", data.ID)
		assert.Equal(t, "Test User", data.Name)
		assert.Equal(t, "Test Channel", data.SubscribedChannel)
		assert.Equal(t, fixedNow, *data.SubscribedDate)
	})

	t.Run("Testcase #2: Positive, client specified identifier", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(s *domain.Subscriber) bool { return s.ID == "abc123" })).Return(nil)

		data, err := uc.CreateSubscriber(ctx, domain.CreateSubscriberRequest{ID: "abc123", Name: "Test User", SubscribedChannel: "Test Channel"})
		require.NoError(t, err)
		assert.Equal(t, "abc123", data.ID)
	})

	tests := []struct {
		name string
		req  domain.CreateSubscriberRequest
	}{
		{name: "Testcase #3: Negative, missing name", req: domain.CreateSubscriberRequest{SubscribedChannel: "Test Channel"}},
		{name: "Testcase #4: Negative, missing subscribedChannel", req: domain.CreateSubscriberRequest{Name: "Test User"}},
		{name: "Testcase #5: Negative, empty payload", req: domain.CreateSubscriberRequest{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestUsecase(t)

			_, err := uc.CreateSubscriber(ctx, tt.req)
			assert.True(t, shared.IsValidationError(err))
			assert.EqualError(t, err, RequiredFieldMessage)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}

	t.Run("Testcase #6: Negative, duplicate identifier rejected by store", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("Save", mock.Anything, mock.Anything).Return(shared.NewStoreError(errors.New("E11000 duplicate key error")))

		_, err := uc.CreateSubscriber(ctx, domain.CreateSubscriberRequest{ID: "abc123", Name: "Test User", SubscribedChannel: "Test Channel"})
		assert.True(t, shared.IsStoreError(err))
		assert.EqualError(t, err, "E11000 duplicate key error")
	})
}

func TestSubscriberUsecase_ReplaceAllSubscribers(t *testing.T) {
	ctx := context.Background()
	reqs := []domain.CreateSubscriberRequest{
		{Name: "Jeread Krus", SubscribedChannel: "CNET"},
		{Name: "John Doe", SubscribedChannel: "freeCodeCamp.org"},
	}

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("DeleteAll", mock.Anything).Return(int64(5), nil)
		repo.On("InsertMany", mock.Anything, mock.MatchedBy(func(data []domain.Subscriber) bool {
			return len(data) == 2 && data[0].Name == "Jeread Krus" && data[1].SubscribedDate != nil
		})).Return(nil)

		total, err := uc.ReplaceAllSubscribers(ctx, reqs)
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("Testcase #2: Negative, invalid data does not touch store", func(t *testing.T) {
		uc, repo := newTestUsecase(t)

		_, err := uc.ReplaceAllSubscribers(ctx, append(reqs, domain.CreateSubscriberRequest{Name: "No Channel"}))
		assert.True(t, shared.IsValidationError(err))
		assert.EqualError(t, err, "data #3: "+RequiredFieldMessage)
		repo.AssertNotCalled(t, "DeleteAll", mock.Anything)
	})

	t.Run("Testcase #3: Negative, delete failed", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("DeleteAll", mock.Anything).Return(int64(0), errors.New("unauthorized"))

		_, err := uc.ReplaceAllSubscribers(ctx, reqs)
		assert.True(t, shared.IsStoreError(err))
		repo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	})

	t.Run("Testcase #4: Negative, insert failed", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.On("DeleteAll", mock.Anything).Return(int64(0), nil)
		repo.On("InsertMany", mock.Anything, mock.Anything).Return(shared.NewStoreError(errors.New("bulk write error")))

		_, err := uc.ReplaceAllSubscribers(ctx, reqs)
		assert.True(t, shared.IsStoreError(err))
	})
}
