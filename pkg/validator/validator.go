package validator

import (
	"io/fs"

	"github.com/golangid/subscriber-service/pkg/logger"
)

// Validator instance, combine json schema validator for raw document and struct validator for decoded payload
type Validator struct {
	*JSONSchemaValidator
	*StructValidator
}

// NewValidator constructor, json schema loaded from given filesystem (rooted at schemaRoot)
func NewValidator(schemaFS fs.FS, schemaRoot string) *Validator {
	jsonSchemaValidator, err := NewJSONSchemaValidator(schemaFS, schemaRoot)
	if err != nil {
		logger.LogYellow("Validator: warning, failed load json schema in path " + schemaRoot + ": " + err.Error())
	}
	return &Validator{
		JSONSchemaValidator: jsonSchemaValidator,
		StructValidator:     NewStructValidator(),
	}
}
