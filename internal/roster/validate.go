package roster

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"accredash/internal/domain"
)

// FieldErrors maps form field keys to a human-readable message. A non-empty
// FieldErrors blocks submission.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e[k]
	}
	return "invalid member: " + strings.Join(parts, "; ")
}

var contactPattern = regexp.MustCompile(`^\+?[0-9][0-9 -]{6,19}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("form")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "studentid", func(fl validator.FieldLevel) bool {
		return ValidStudentID(fl.Field().String())
	})
	mustRegister(v, "department", func(fl validator.FieldLevel) bool {
		return domain.HasDepartment(fl.Field().String())
	})
	mustRegister(v, "contact", func(fl validator.FieldLevel) bool {
		return contactPattern.MatchString(fl.Field().String())
	})
	v.RegisterStructValidation(memberFormRules, MemberForm{})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// memberFormRules holds the cross-field rules: officers need a title and the
// course must be offered by the chosen department.
func memberFormRules(sl validator.StructLevel) {
	f := sl.Current().Interface().(MemberForm)
	if f.BasePosition == domain.BasePositionOfficer && f.Position == "" {
		sl.ReportError(f.Position, "position", "Position", "officertitle", "")
	}
	if f.Course != "" && domain.HasDepartment(f.Department) && !domain.HasCourse(f.Department, f.Course) {
		sl.ReportError(f.Course, "course", "Course", "coursedept", f.Department)
	}
}

// Validate checks a normalized form. It returns nil when the form is valid.
func (f *MemberForm) Validate() FieldErrors {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a date like 2004-01-31"
	case "studentid":
		return "must look like 20-1234"
	case "department":
		return "must be one of " + strings.Join(domain.Departments(), ", ")
	case "contact":
		return "must be a phone number"
	case "officertitle":
		return "is required for officers"
	case "coursedept":
		return fmt.Sprintf("is not offered by %s", fe.Param())
	default:
		return "is invalid"
	}
}
