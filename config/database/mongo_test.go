package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect_InvalidDSN(t *testing.T) {
	_, err := connect(context.Background(), "postgres://localhost/subscribers")
	assert.Error(t, err)
	assert.Panics(t, func() { ConnectMongoDB(context.Background(), "://invalid") })
}

func TestMongoInstance_Nil(t *testing.T) {
	m := &MongoInstance{}
	assert.Nil(t, m.ReadDB())
	assert.Nil(t, m.WriteDB())
	assert.NoError(t, m.Health(context.Background()))
	assert.NoError(t, m.Disconnect(context.Background()))
}
