package dependency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type noopValidator struct{}

func (noopValidator) ValidateDocument(string, []byte) error { return nil }
func (noopValidator) ValidateStruct(interface{}) error      { return nil }

func TestInitDependency(t *testing.T) {
	deps := InitDependency()
	assert.Nil(t, deps.GetMongoDatabase())
	assert.Nil(t, deps.GetValidator())

	deps = InitDependency(SetValidator(noopValidator{}))
	assert.NotNil(t, deps.GetValidator())
}
