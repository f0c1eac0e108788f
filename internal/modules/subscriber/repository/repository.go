package repository

import (
	"github.com/golangid/subscriber-service/internal/modules/subscriber/repository/interfaces"
	subscribermongo "github.com/golangid/subscriber-service/internal/modules/subscriber/repository/mongo"
	"go.mongodb.org/mongo-driver/mongo"
)

// RepoMongo abstraction
type RepoMongo struct {
	Subscriber interfaces.SubscriberRepository
}

// NewRepoMongo constructor
func NewRepoMongo(readDB, writeDB *mongo.Database) *RepoMongo {
	return &RepoMongo{
		Subscriber: subscribermongo.NewSubscriberRepoMongo(readDB, writeDB),
	}
}
