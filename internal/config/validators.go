package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator wraps go-playground's validator with English messages
// and flag names from the "label" tag.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator returns a validator with the default English translations,
// label-based field names and the "exclusive" tag registered.
func NewValidator() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	locale := en.New()

	translator, _ := ut.New(locale, locale).GetTranslator(locale.Locale())

	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, fmt.Errorf("registering translations: %w", err)
	}

	validate.RegisterTagNameFunc(label)

	v := &Validator{validate: validate, translator: translator}

	if err := v.registerExclusive(); err != nil {
		return nil, err
	}

	return v, nil
}

// Struct validates s and returns one joined error holding a readable message per violation.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err //nolint:wrapcheck // returned as-is for non-struct input
	}

	messages := make([]error, 0, len(violations))

	for _, fe := range violations {
		messages = append(messages, errors.New(fe.Translate(v.translator))) //nolint:err113
	}

	return errors.Join(messages...)
}

// registerExclusive adds the "exclusive" tag, which fails when both the tagged field and
// the named sibling field hold non-empty strings.
func (v *Validator) registerExclusive() error {
	const tag = "exclusive"

	if err := v.validate.RegisterValidation(tag, validateExclusive); err != nil {
		return fmt.Errorf("registering %s validation: %w", tag, err)
	}

	register := func(trans ut.Translator) error {
		return trans.Add(tag, "{0} is mutually exclusive with {1}", true) //nolint:wrapcheck
	}

	translate := func(trans ut.Translator, fe validator.FieldError) string {
		other := fe.Param()

		if field, ok := reflect.TypeOf(Config{}).FieldByName(other); ok {
			other = label(field)
		}

		msg, err := trans.T(tag, fe.Field(), other)
		if err != nil {
			return fe.Error()
		}

		return msg
	}

	if err := v.validate.RegisterTranslation(tag, v.translator, register, translate); err != nil {
		return fmt.Errorf("registering %s translation: %w", tag, err)
	}

	return nil
}

// label names a field by its "label" tag, falling back to the Go field name.
func label(fld reflect.StructField) string {
	const splitSize = 2

	name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
	if name == "" || name == "-" {
		return fld.Name
	}

	return name
}

// validateExclusive returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	other := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !other.IsValid() {
		return true
	}

	if field.Kind() != reflect.String || other.Kind() != reflect.String {
		return true
	}

	return field.String() == "" || other.String() == ""
}
