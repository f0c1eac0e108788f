package domain

import "time"

// Subscriber model
type Subscriber struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	SubscribedChannel string     `json:"subscribedChannel"`
	SubscribedDate    *time.Time `json:"subscribedDate,omitempty"`
}

// SubscriberSummary projection of subscriber without identifier
type SubscriberSummary struct {
	Name              string `json:"name" bson:"name"`
	SubscribedChannel string `json:"subscribedChannel" bson:"subscribedChannel"`
}

// CreateSubscriberRequest payload, ID filled from path on client specified identifier route
type CreateSubscriberRequest struct {
	ID                string `json:"-"`
	Name              string `json:"name" validate:"required"`
	SubscribedChannel string `json:"subscribedChannel" validate:"required"`
}
