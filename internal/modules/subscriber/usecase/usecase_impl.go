package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/golangid/subscriber-service/internal/modules/subscriber/domain"
	"github.com/golangid/subscriber-service/internal/modules/subscriber/repository/interfaces"
	codebaseinterfaces "github.com/golangid/subscriber-service/pkg/codebase/interfaces"
	"github.com/golangid/subscriber-service/pkg/shared"
	"github.com/golangid/subscriber-service/pkg/tracer"
)

// RequiredFieldMessage returned when name or subscribedChannel missing on create
const RequiredFieldMessage = "Name and subscribedChannel are required."

type subscriberUsecaseImpl struct {
	repo      interfaces.SubscriberRepository
	validator codebaseinterfaces.Validator
	now       func() time.Time
}

// NewSubscriberUsecase usecase impl constructor
func NewSubscriberUsecase(repo interfaces.SubscriberRepository, validator codebaseinterfaces.Validator) SubscriberUsecase {
	return &subscriberUsecaseImpl{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

func (uc *subscriberUsecaseImpl) GetAllSubscribers(ctx context.Context) (data []domain.Subscriber, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "SubscriberUsecase:GetAllSubscribers")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err = uc.repo.FetchAll(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	if data == nil {
		data = []domain.Subscriber{}
	}
	return data, nil
}

func (uc *subscriberUsecaseImpl) GetAllSubscriberSummaries(ctx context.Context) (data []domain.SubscriberSummary, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "SubscriberUsecase:GetAllSubscriberSummaries")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err = uc.repo.FetchAllSummary(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	if data == nil {
		data = []domain.SubscriberSummary{}
	}
	return data, nil
}

func (uc *subscriberUsecaseImpl) GetSubscriberByID(ctx context.Context, id string) (data *domain.Subscriber, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "SubscriberUsecase:GetSubscriberByID")
	defer func() { trace.SetError(err); trace.Finish() }()

	data, err = uc.repo.FindByID(ctx, id)
	if err != nil {
		if shared.IsNotFoundError(err) {
			return nil, err
		}
		return nil, storeError(err)
	}
	return data, nil
}

func (uc *subscriberUsecaseImpl) CreateSubscriber(ctx context.Context, req domain.CreateSubscriberRequest) (data *domain.Subscriber, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "SubscriberUsecase:CreateSubscriber")
	defer func() { trace.SetError(err); trace.Finish() }()

	if err = uc.validate(req); err != nil {
		return nil, err
	}

	data = uc.newSubscriber(req)
	if err = uc.repo.Save(ctx, data); err != nil {
		return nil, storeError(err)
	}
	return data, nil
}

func (uc *subscriberUsecaseImpl) ReplaceAllSubscribers(ctx context.Context, reqs []domain.CreateSubscriberRequest) (total int, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "SubscriberUsecase:ReplaceAllSubscribers")
	defer func() { trace.SetError(err); trace.Finish() }()

	data := make([]domain.Subscriber, 0, len(reqs))
	for i, req := range reqs {
		if err = uc.validate(req); err != nil {
			return 0, shared.NewValidationError(fmt.Sprintf("data #%d: %s", i+1, err.Error()))
		}
		data = append(data, *uc.newSubscriber(req))
	}

	deleted, err := uc.repo.DeleteAll(ctx)
	if err != nil {
		return 0, storeError(err)
	}
	trace.SetTag("deleted", deleted)

	if err = uc.repo.InsertMany(ctx, data); err != nil {
		return 0, storeError(err)
	}
	return len(data), nil
}

func (uc *subscriberUsecaseImpl) validate(req domain.CreateSubscriberRequest) error {
	if err := uc.validator.ValidateStruct(req); err != nil {
		return shared.NewValidationError(RequiredFieldMessage)
	}
	return nil
}

func (uc *subscriberUsecaseImpl) newSubscriber(req domain.CreateSubscriberRequest) *domain.Subscriber {
	subscribedDate := uc.now().UTC()
	return &domain.Subscriber{
		ID:                req.ID,
		Name:              req.Name,
		SubscribedChannel: req.SubscribedChannel,
		SubscribedDate:    &subscribedDate,
	}
}

// storeError keep typed error from repository, wrap any other error as store error
func storeError(err error) error {
	if shared.IsStoreError(err) {
		return err
	}
	return shared.NewStoreError(err)
}
