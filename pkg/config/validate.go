package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/cardsheets/pkg/errors"
	"github.com/matzehuels/cardsheets/pkg/layout"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(tomlName)
	must(v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
		_, err := layout.ParseColor(fl.Field().String())
		return err == nil
	}))
	must(v.RegisterValidation("marker", func(fl validator.FieldLevel) bool {
		return errors.ValidateMarker(fl.Field().String()) == nil
	}))
	must(v.RegisterValidation("outpath", func(fl validator.FieldLevel) bool {
		return errors.ValidateOutputPath(fl.Field().String()) == nil
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func tomlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// Validate checks every field of the job. The first failure is reported as
// an [errors.ErrCodeInvalidConfig] error naming the run-file key.
func (j Job) Validate() error {
	err := validate.Struct(j)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "validate job %q", j.Name)
	}
	return errors.New(errors.ErrCodeInvalidConfig, "job %q: %s", j.Name, describe(verrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", field, fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, fieldKey(fe.Param()))
	case "color":
		return fmt.Sprintf("%s: invalid color %q (want #rrggbb, #rgb or r,g,b)", field, fe.Value())
	case "marker":
		return fmt.Sprintf("%s: %v", field, errors.UserMessage(errors.ValidateMarker(fmt.Sprint(fe.Value()))))
	case "outpath":
		return fmt.Sprintf("%s: %v", field, errors.UserMessage(errors.ValidateOutputPath(fmt.Sprint(fe.Value()))))
	default:
		return fmt.Sprintf("%s failed %q", field, fe.Tag())
	}
}

func fieldKey(goName string) string {
	if f, ok := reflect.TypeOf(Job{}).FieldByName(goName); ok {
		return tomlName(f)
	}
	return goName
}
