package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/irfansharif/huewheel/internal/colormodel"
	"github.com/irfansharif/huewheel/internal/palette"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			_, err := colormodel.HexToRGB(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("palettetype", func(fl validator.FieldLevel) bool {
			_, err := palette.ParseType(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks every setting, returning the first failure as a
// *ValidationError.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return c.validateGeometry()
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &ValidationError{Message: err.Error(), Err: err}
	}
	fe := ves[0]
	field := fieldPath(fe)
	return &ValidationError{Field: field, Message: describe(fe), Err: err}
}

// validateGeometry catches combinations the per-field tags can't, such as a
// margin that leaves no room for the ring.
func (c Config) validateGeometry() error {
	if _, err := c.Geometry(); err != nil {
		return &ValidationError{Field: "wheel", Message: err.Error(), Err: err}
	}
	return nil
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, rest, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Field()
	}
	return rest
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "hexcolor6":
		return fmt.Sprintf("%q is not a #RGB or #RRGGBB color", fe.Value())
	case "palettetype":
		return fmt.Sprintf("%q is not one of %s", fe.Value(), typeNames())
	case "oneof":
		return fmt.Sprintf("%q is not one of [%s]", fe.Value(), fe.Param())
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%v must be %s %s", fe.Value(), comparators[fe.Tag()], fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag %q", fe.Tag())
	}
}

var comparators = map[string]string{"gt": ">", "gte": ">=", "lt": "<", "lte": "<="}

func typeNames() string {
	var names []string
	for _, t := range palette.Types() {
		names = append(names, string(t))
	}
	return "[" + strings.Join(names, " ") + "]"
}
