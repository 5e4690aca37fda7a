// Package roster implements the add-member form, its validation, and
// client-side search over a fetched roster.
package roster

import (
	"net/url"
	"reflect"
	"strings"

	"accredash/internal/api"
	"accredash/internal/domain"
)

// MemberForm is the add-member form as typed by the user.
type MemberForm struct {
	StudentID     string `form:"student_id" validate:"required,studentid"`
	FirstName     string `form:"first_name" validate:"required,max=64"`
	MiddleName    string `form:"middle_name" validate:"max=64"`
	LastName      string `form:"last_name" validate:"required,max=64"`
	BasePosition  string `form:"base_position" validate:"required,oneof=Officer Member"`
	Position      string `form:"position" validate:"max=64"`
	Email         string `form:"email" validate:"required,email"`
	ContactNumber string `form:"contact_number" validate:"required,contact"`
	Address       string `form:"address" validate:"required,max=255"`
	BirthDate     string `form:"birth_date" validate:"required,datetime=2006-01-02"`
	Department    string `form:"department" validate:"required,department"`
	Course        string `form:"course" validate:"required"`
	YearLevel     string `form:"year_level" validate:"required,oneof=1 2 3 4 5"`

	// PictureName is the local path of the optional profile image.
	PictureName string `form:"-"`
	Picture     []byte `form:"-"`
}

// Normalize trims every field, normalizes the student ID and forces the
// position of plain members to "Member".
func (f *MemberForm) Normalize() {
	f.StudentID = NormalizeStudentID(f.StudentID)
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.MiddleName = strings.TrimSpace(f.MiddleName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.BasePosition = canonicalBasePosition(f.BasePosition)
	f.Position = strings.TrimSpace(f.Position)
	f.Email = strings.TrimSpace(f.Email)
	f.ContactNumber = strings.TrimSpace(f.ContactNumber)
	f.Address = strings.TrimSpace(f.Address)
	f.BirthDate = strings.TrimSpace(f.BirthDate)
	f.Department = strings.ToUpper(strings.TrimSpace(f.Department))
	f.Course = strings.TrimSpace(f.Course)
	f.YearLevel = strings.TrimSpace(f.YearLevel)
	f.PictureName = strings.TrimSpace(f.PictureName)

	if f.BasePosition == domain.BasePositionMember {
		f.Position = domain.BasePositionMember
	}
}

func canonicalBasePosition(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, domain.BasePositionOfficer):
		return domain.BasePositionOfficer
	case strings.EqualFold(s, domain.BasePositionMember):
		return domain.BasePositionMember
	default:
		return s
	}
}

// Ok normalizes and validates the form. It returns the per-field errors and
// whether the form may be submitted.
func (f *MemberForm) Ok() (FieldErrors, bool) {
	f.Normalize()
	errs := f.Validate()
	return errs, len(errs) == 0
}

// Upload converts a validated form into the multipart payload.
func (f *MemberForm) Upload() api.MemberUpload {
	fields := url.Values{}
	v := reflect.ValueOf(*f)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("form")
		if name == "" || name == "-" {
			continue
		}
		if s := v.Field(i).String(); s != "" {
			fields.Set(name, s)
		}
	}
	return api.MemberUpload{
		Fields:      fields,
		PictureName: f.PictureName,
		Picture:     f.Picture,
	}
}
