package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/golangid/subscriber-service/config/env"
	"github.com/golangid/subscriber-service/pkg/helper"
	"github.com/golangid/subscriber-service/pkg/logger"
)

// MongoInstance hold read and write database, both point to the same database when read host is empty
type MongoInstance struct {
	DBRead, DBWrite *mongo.Database
}

// ReadDB method
func (m *MongoInstance) ReadDB() *mongo.Database {
	return m.DBRead
}

// WriteDB method
func (m *MongoInstance) WriteDB() *mongo.Database {
	return m.DBWrite
}

// Health ping read and write connection
func (m *MongoInstance) Health(ctx context.Context) error {
	mErr := helper.NewMultiError()
	if m.DBRead != nil {
		mErr.Append("mongo_read", m.DBRead.Client().Ping(ctx, readpref.PrimaryPreferred()))
	}
	if m.DBWrite != nil {
		mErr.Append("mongo_write", m.DBWrite.Client().Ping(ctx, readpref.Primary()))
	}
	if mErr.HasError() {
		return mErr
	}
	return nil
}

// Disconnect release read and write connection
func (m *MongoInstance) Disconnect(ctx context.Context) (err error) {
	defer logger.LogWithDefer("\x1b[33;5mmongodb\x1b[0m: disconnect...")()

	if m.DBWrite != nil {
		if err := m.DBWrite.Client().Disconnect(ctx); err != nil {
			return err
		}
	}
	if m.DBRead != nil && m.DBRead != m.DBWrite {
		err = m.DBRead.Client().Disconnect(ctx)
	}
	return
}

// InitMongoDB return mongo db read & write instance from environment:
// MONGODB_HOST_WRITE (or MONGODB_URL), MONGODB_HOST_READ
// if want to create single connection, use MONGODB_HOST_WRITE and set empty for MONGODB_HOST_READ
func InitMongoDB(ctx context.Context, opts ...*options.ClientOptions) *MongoInstance {
	defer logger.LogWithDefer("Load MongoDB connection...")()

	connReadDSN, connWriteDSN := env.BaseEnv().DbMongoReadHost, env.BaseEnv().DbMongoWriteHost
	if connReadDSN == "" {
		db := ConnectMongoDB(ctx, connWriteDSN, opts...)
		return &MongoInstance{DBRead: db, DBWrite: db}
	}

	return &MongoInstance{
		DBRead:  ConnectMongoDB(ctx, connReadDSN, opts...),
		DBWrite: ConnectMongoDB(ctx, connWriteDSN, opts...),
	}
}

// ConnectMongoDB connect to mongodb with dsn, panic when connection cannot be established
func ConnectMongoDB(ctx context.Context, dsn string, opts ...*options.ClientOptions) *mongo.Database {
	db, err := connect(ctx, dsn, opts...)
	if err != nil {
		log.Panic(err)
	}
	return db
}

func connect(ctx context.Context, dsn string, opts ...*options.ClientOptions) (*mongo.Database, error) {
	connDSN, err := connstring.ParseAndValidate(dsn)
	if err != nil {
		return nil, fmt.Errorf("mongodb: %w", err)
	}

	clientOpts := []*options.ClientOptions{
		options.Client().ApplyURI(connDSN.String()),
		options.Client().SetConnectTimeout(10 * time.Second),
		options.Client().SetServerSelectionTimeout(10 * time.Second),
	}
	clientOpts = append(clientOpts, opts...)

	client, err := mongo.Connect(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("mongodb: %w, conn: %s", err, helper.MaskingPasswordURL(connDSN.String()))
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongodb ping: %w, conn: %s", err, helper.MaskingPasswordURL(connDSN.String()))
	}

	return client.Database(env.BaseEnv().MongoDatabaseName(connDSN.Database)), nil
}
