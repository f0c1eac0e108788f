package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validatorengine "github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/golangid/subscriber-service/pkg/helper"
)

// StructValidatorOptionFunc type
type StructValidatorOptionFunc func(*StructValidator)

// SetCoreStructValidatorOption option func
func SetCoreStructValidatorOption(additionalConfigFunc ...func(*validatorengine.Validate)) StructValidatorOptionFunc {
	return func(v *StructValidator) {
		ve := validatorengine.New()
		for _, additionalFunc := range additionalConfigFunc {
			additionalFunc(ve)
		}
		v.Validator = ve
	}
}

// StructValidator struct
type StructValidator struct {
	Validator  *validatorengine.Validate
	translator ut.Translator
}

// NewStructValidator using go library
// https://github.com/go-playground/validator (all struct tags will be here),
// field name in error taken from json tag and message translated to english
func NewStructValidator(opts ...StructValidatorOptionFunc) *StructValidator {
	sv := &StructValidator{}
	for _, opt := range opts {
		opt(sv)
	}

	if sv.Validator == nil {
		sv.Validator = validatorengine.New()
	}
	sv.Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	sv.translator, _ = ut.New(enLocale, enLocale).GetTranslator("en")
	entranslations.RegisterDefaultTranslations(sv.Validator, sv.translator)
	return sv
}

// ValidateStruct function
func (v *StructValidator) ValidateStruct(data interface{}) error {
	err := v.Validator.Struct(data)
	if err == nil {
		return nil
	}

	var errs validatorengine.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	multiError := helper.NewMultiError()
	for _, e := range errs {
		multiError.Append(e.Field(), errors.New(e.Translate(v.translator)))
	}
	return multiError
}
