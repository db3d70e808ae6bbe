package core

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	sliderTag  = "slider"
	sliderText = "{0} must be between {1} and {2} in steps of {3}"
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	InitValidators(Validate, Translator)
}

// InitValidators registers the default translations and our custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(sliderTag, sliderValidation)
	_ = validate.RegisterTranslation(
		sliderTag, translator,
		func(t ut.Translator) error { return t.Add(sliderTag, sliderText, false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := LookupSlider(fe.Param())
			msg, _ := t.T(sliderTag, fe.Field(), FormatNumber(s.Min), FormatNumber(s.Max), FormatNumber(s.Step))
			return msg
		},
	)
}

// TranslateErrors maps validator errors to field errors keyed by JSON name.
func TranslateErrors(errs validator.ValidationErrors) []FieldError {
	flds := make([]FieldError, 0, len(errs))
	for _, vErr := range errs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(Translator)})
	}
	return flds
}

// Custom Global Validators

// sliderValidation checks a numeric field against the domain of the slider
// named by the tag param, e.g. `validate:"slider=cables.length"`.
func sliderValidation(fl validator.FieldLevel) bool {
	s, ok := LookupSlider(fl.Param())
	if !ok {
		return false
	}
	var v float64
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		v = fl.Field().Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v = float64(fl.Field().Int())
	default:
		return false
	}
	return s.Contains(v)
}
