package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/field_ops_app/internal/apperrors"
	"github.com/SscSPs/field_ops_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report json names so problems line up with the submitted payload.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		// Decimals reach the rules as their exact string form. Zero becomes ""
		// so required reports an absent amount as missing.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				if d.IsZero() {
					return ""
				}
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		mustRegister(v, "dgt", decimalRule(func(cmp int) bool { return cmp > 0 }))
		mustRegister(v, "dgte", decimalRule(func(cmp int) bool { return cmp >= 0 }))

		v.RegisterStructValidation(materialVocabulary, MaterialEntryFields{})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// decimalRule compares a decimal field against the tag parameter with full
// precision and passes the comparison result to accept.
func decimalRule(accept func(cmp int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := decimal.Zero
		if s := fl.Field().String(); s != "" {
			d, err := decimal.NewFromString(s)
			if err != nil {
				return false
			}
			value = d
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return accept(value.Cmp(bound))
	}
}

func materialVocabulary(sl validator.StructLevel) {
	f := sl.Current().Interface().(MaterialEntryFields)
	if f.Category == "" {
		return
	}
	if !domain.IsKnownCategory(f.Category) {
		sl.ReportError(f.Category, "category", "Category", "category", "")
		return
	}
	if f.Subcategory != "" && !domain.IsValidSubcategory(f.Category, f.Subcategory) {
		sl.ReportError(f.Subcategory, "subcategory", "Subcategory", "subcategory_of", f.Category)
	}
}

// Validate checks fields against the rules of their kind. A failed check is
// returned as *apperrors.ValidationError listing every problem found.
func Validate(fields LogFields) error {
	if fields == nil {
		return fmt.Errorf("%w: no fields supplied", apperrors.ErrValidation)
	}

	err := validatorInstance().Struct(fields)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	verr := &apperrors.ValidationError{Kind: fields.Kind().Label()}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			verr.Missing = append(verr.Missing, fe.Field())
			continue
		}
		verr.Invalid = append(verr.Invalid, apperrors.InvalidField{
			Field:  fe.Field(),
			Reason: reasonFor(fe),
		})
	}
	return verr
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "dgte":
		return "must not be negative"
	case "dgt":
		return "must be greater than zero"
	case "datetime":
		return "must be a date in YYYY-MM-DD form"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "category":
		return fmt.Sprintf("unknown category %q", fe.Value())
	case "subcategory_of":
		return fmt.Sprintf("%q is not a %s subcategory", fe.Value(), fe.Param())
	default:
		return fe.Error()
	}
}
