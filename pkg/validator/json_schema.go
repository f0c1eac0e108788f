package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/golangid/gojsonschema"
	"github.com/golangid/subscriber-service/pkg/helper"
)

var notShowErrorListType = map[string]bool{
	"condition_else": true, "condition_then": true,
}

// JSONSchemaValidator validator
type JSONSchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewJSONSchemaValidator constructor, load all json schema file from given root path,
// schema id taken from "$id" or file path (relative to root, without extension)
func NewJSONSchemaValidator(fsys fs.FS, root string) (*JSONSchemaValidator, error) {
	v := &JSONSchemaValidator{schemas: make(map[string]*gojsonschema.Schema)}
	if fsys == nil {
		return v, nil
	}

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(d.Name()) != ".json" {
			return nil
		}

		s, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("%s: %v", d.Name(), err)
		}

		var data map[string]interface{}
		if err := json.Unmarshal(s, &data); err != nil {
			return fmt.Errorf("%s: %v", d.Name(), err)
		}
		id, ok := data["$id"].(string)
		if !ok {
			id = strings.Trim(strings.TrimSuffix(strings.TrimPrefix(p, root), ".json"), "/")
		}
		v.schemas[id], err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(s))
		if err != nil {
			return fmt.Errorf("%s: %v", d.Name(), err)
		}
		return nil
	})
	return v, err
}

func (v *JSONSchemaValidator) getSchema(schemaID string) (*gojsonschema.Schema, error) {
	s, ok := v.schemas[schemaID]
	if !ok {
		return nil, fmt.Errorf("schema '%s' not found", schemaID)
	}
	return s, nil
}

// ValidateDocument based on schema id
func (v *JSONSchemaValidator) ValidateDocument(schemaID string, documentSource []byte) error {
	schema, err := v.getSchema(schemaID)
	if err != nil {
		return err
	}

	multiError := helper.NewMultiError()
	result, err := schema.Validate(gojsonschema.NewBytesLoader(documentSource))
	if err != nil {
		multiError.Append("document", errors.New("Failed to load input data"))
		return multiError
	}

	if !result.Valid() {
		for _, desc := range result.Errors() {
			if notShowErrorListType[desc.Type()] {
				continue
			}
			field := desc.Field()
			if desc.Type() == "required" || desc.Type() == "additional_property_not_allowed" {
				field = fmt.Sprintf("%s.%s", field, desc.Details()["property"])
				field = strings.TrimPrefix(field, "(root).")
			}
			multiError.Append(field, errors.New(desc.Description()))
		}
	}

	if multiError.HasError() {
		return multiError
	}
	return nil
}
