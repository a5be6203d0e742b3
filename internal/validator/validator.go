package validator

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/tridenda/talentlytica/internal/model"
)

// TagGradeChoice accepts an empty string or a whole number within the
// form's score range.
const TagGradeChoice = "grade_choice"

var (
	// trans is the singleton English translator for validation errors.
	trans ut.Translator
	once  sync.Once
)

// Setup registers the validator with English translations and the form's
// custom tags on Gin's binding engine. Repeated calls are no-ops.
func Setup() {
	once.Do(setup)
}

func setup() {
	v, ok := binding.Validator.Engine().(*govalidator.Validate)
	if !ok {
		return
	}

	// Use JSON tag name for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	_ = v.RegisterValidation(TagGradeChoice, validateGradeChoice)
	_ = v.RegisterTranslation(TagGradeChoice, trans,
		func(ut ut.Translator) error {
			return ut.Add(TagGradeChoice, "{0} must be empty or a whole number from {1} to {2}", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			msg, _ := ut.T(TagGradeChoice, fe.Field(), strconv.Itoa(model.MinScore), strconv.Itoa(model.MaxScore))
			return msg
		},
	)
}

func validateGradeChoice(fl govalidator.FieldLevel) bool {
	return IsGradeChoice(fl.Field().String())
}

// IsGradeChoice reports whether raw is one of the selector's values.
func IsGradeChoice(raw string) bool {
	if raw == "" {
		return true
	}
	n, err := strconv.Atoi(raw)
	return err == nil && n >= model.MinScore && n <= model.MaxScore
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) && trans != nil {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields["detail"] = err.Error()
	return fields
}

// Bind binds and validates the request body into dst.
// Returns nil on success or a translated field error map on failure.
func Bind(c *gin.Context, dst interface{}) map[string]string {
	if err := c.ShouldBindJSON(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
