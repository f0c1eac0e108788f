package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golangid/subscriber-service/internal/modules/subscriber/domain"
	"github.com/golangid/subscriber-service/pkg/shared"
	"github.com/golangid/subscriber-service/pkg/tracer"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName subscriber collection
const CollectionName = "subscribers"

// SubscriberRepoMongo repo
type SubscriberRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewSubscriberRepoMongo create new subscriber repository
func NewSubscriberRepoMongo(readDB, writeDB *mongo.Database) *SubscriberRepoMongo {
	return &SubscriberRepoMongo{
		readDB:     readDB,
		writeDB:    writeDB,
		collection: CollectionName,
	}
}

// subscriberDocument stored form, _id is ObjectID when generated or 24-hex, string for any other client identifier
type subscriberDocument struct {
	ID                interface{} `bson:"_id,omitempty"`
	Name              string      `bson:"name"`
	SubscribedChannel string      `bson:"subscribedChannel"`
	SubscribedDate    *time.Time  `bson:"subscribedDate,omitempty"`
}

func (d subscriberDocument) toDomain() domain.Subscriber {
	return domain.Subscriber{
		ID:                idToString(d.ID),
		Name:              d.Name,
		SubscribedChannel: d.SubscribedChannel,
		SubscribedDate:    d.SubscribedDate,
	}
}

func newSubscriberDocument(data *domain.Subscriber) subscriberDocument {
	doc := subscriberDocument{
		Name:              data.Name,
		SubscribedChannel: data.SubscribedChannel,
		SubscribedDate:    data.SubscribedDate,
	}
	if data.ID == "" {
		oid := primitive.NewObjectID()
		doc.ID = oid
		data.ID = oid.Hex()
	} else if oid, err := primitive.ObjectIDFromHex(data.ID); err == nil {
		doc.ID = oid
		data.ID = oid.Hex()
	} else {
		doc.ID = data.ID
	}
	return doc
}

func idToString(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// idFilter match both generated ObjectID and client supplied string identifier
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{"_id": id}
}

// FetchAll subscribers, empty collection return empty slice
func (r *SubscriberRepoMongo) FetchAll(ctx context.Context) (data []domain.Subscriber, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "SubscriberRepoMongo:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	cursor, err := r.readDB.Collection(r.collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, shared.NewStoreError(err)
	}

	var docs []subscriberDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, shared.NewStoreError(err)
	}

	data = make([]domain.Subscriber, 0, len(docs))
	for _, doc := range docs {
		data = append(data, doc.toDomain())
	}
	trace.SetTag("total", len(data))
	return data, nil
}

// FetchAllSummary subscribers with name and subscribedChannel field only
func (r *SubscriberRepoMongo) FetchAllSummary(ctx context.Context) (data []domain.SubscriberSummary, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "SubscriberRepoMongo:FetchAllSummary")
	defer func() { trace.SetError(err); trace.Finish() }()

	findOptions := options.Find().SetProjection(bson.M{"_id": 0, "name": 1, "subscribedChannel": 1})
	cursor, err := r.readDB.Collection(r.collection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, shared.NewStoreError(err)
	}

	data = make([]domain.SubscriberSummary, 0)
	if err = cursor.All(ctx, &data); err != nil {
		return nil, shared.NewStoreError(err)
	}
	trace.SetTag("total", len(data))
	return data, nil
}

// FindByID subscriber, return *shared.NotFoundError when no document matched
func (r *SubscriberRepoMongo) FindByID(ctx context.Context, id string) (data *domain.Subscriber, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "SubscriberRepoMongo:FindByID")
	defer func() { trace.SetError(err); trace.Finish() }()
	trace.SetTag("id", id)

	var doc subscriberDocument
	err = r.readDB.Collection(r.collection).FindOne(ctx, idFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, shared.NewNotFoundError("Subscriber not found")
	}
	if err != nil {
		return nil, shared.NewStoreError(err)
	}

	subscriber := doc.toDomain()
	return &subscriber, nil
}

// Save insert subscriber, existing identifier rejected by store with duplicate key error
func (r *SubscriberRepoMongo) Save(ctx context.Context, data *domain.Subscriber) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "SubscriberRepoMongo:Save")
	defer func() { trace.SetError(err); trace.Finish() }()

	clientID := data.ID
	doc := newSubscriberDocument(data)
	if _, err = r.writeDB.Collection(r.collection).InsertOne(ctx, doc); err != nil {
		data.ID = clientID
		return shared.NewStoreError(err)
	}
	trace.SetTag("id", data.ID)
	return nil
}

// DeleteAll subscribers, return deleted count
func (r *SubscriberRepoMongo) DeleteAll(ctx context.Context) (deleted int64, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "SubscriberRepoMongo:DeleteAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	res, err := r.writeDB.Collection(r.collection).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, shared.NewStoreError(err)
	}
	return res.DeletedCount, nil
}

// InsertMany subscribers, identifier of each data generated when empty
func (r *SubscriberRepoMongo) InsertMany(ctx context.Context, data []domain.Subscriber) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "SubscriberRepoMongo:InsertMany")
	defer func() { trace.SetError(err); trace.Finish() }()

	if len(data) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(data))
	for i := range data {
		docs = append(docs, newSubscriberDocument(&data[i]))
	}
	if _, err = r.writeDB.Collection(r.collection).InsertMany(ctx, docs); err != nil {
		return shared.NewStoreError(err)
	}
	trace.SetTag("total", len(docs))
	return nil
}

// CollectionExists check subscriber collection in database
func (r *SubscriberRepoMongo) CollectionExists(ctx context.Context) (bool, error) {
	names, err := r.readDB.ListCollectionNames(ctx, bson.M{"name": r.collection})
	if err != nil {
		return false, shared.NewStoreError(err)
	}
	return len(names) > 0, nil
}
