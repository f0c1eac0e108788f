package dependency

import (
	"github.com/golangid/subscriber-service/pkg/codebase/interfaces"
)

// Dependency base
type Dependency interface {
	GetMongoDatabase() interfaces.MongoDatabase
	GetValidator() interfaces.Validator
}

// Option func type
type Option func(*deps)

type deps struct {
	mongoDB   interfaces.MongoDatabase
	validator interfaces.Validator
}

// SetMongoDatabase option func
func SetMongoDatabase(db interfaces.MongoDatabase) Option {
	return func(d *deps) {
		d.mongoDB = db
	}
}

// SetValidator option func
func SetValidator(validator interfaces.Validator) Option {
	return func(d *deps) {
		d.validator = validator
	}
}

// InitDependency constructor
func InitDependency(opts ...Option) Dependency {
	opt := new(deps)
	for _, o := range opts {
		o(opt)
	}
	return opt
}

func (d *deps) GetMongoDatabase() interfaces.MongoDatabase {
	return d.mongoDB
}
func (d *deps) GetValidator() interfaces.Validator {
	return d.validator
}
