package api

import (
	"embed"
)

// JSONSchema embedded json schema files, rooted at "jsonschema"
//
//go:embed jsonschema
var JSONSchema embed.FS

// JSONSchemaRoot root directory of embedded json schema
const JSONSchemaRoot = "jsonschema"

// SeedSubscribers default seed data for seeder
//
//go:embed seed/subscribers.json
var SeedSubscribers []byte
