package interfaces

// Validator abstract interface
type Validator interface {
	// ValidateDocument validate raw json document against registered json schema
	ValidateDocument(schemaID string, documentSource []byte) error
	// ValidateStruct validate struct using tag rules
	ValidateStruct(data interface{}) error
}
