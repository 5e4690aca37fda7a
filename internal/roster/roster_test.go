package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accredash/internal/domain"
)

func validForm() MemberForm {
	return MemberForm{
		StudentID:     "2012345",
		FirstName:     " Ana ",
		LastName:      "Reyes",
		BasePosition:  "member",
		Email:         "ana@example.edu",
		ContactNumber: "+63 912 345 6789",
		Address:       "Cebu City",
		BirthDate:     "2004-01-31",
		Department:    "ccs",
		Course:        "BSIT",
		YearLevel:     "2",
	}
}

func TestNormalizeStudentID(t *testing.T) {
	cases := map[string]string{
		"2012345":    "20-1234",
		"2a0b1":      "20-1",
		"20-1234":    "20-1234",
		"2":          "2",
		"20":         "20",
		"abc":        "",
		"":           "",
		"12 34 56 7": "12-3456",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeStudentID(in), "input %q", in)
	}
}

func TestNormalizeStudentID_AlwaysMatchesShapeWhenSixDigits(t *testing.T) {
	for _, in := range []string{"123456", "12x34y56", "1-2-3-4-5-6-7-8"} {
		assert.True(t, ValidStudentID(NormalizeStudentID(in)), "input %q", in)
	}
}

func TestOk_MemberForcesPosition(t *testing.T) {
	f := validForm()
	f.Position = "Treasurer"

	errs, ok := f.Ok()
	require.True(t, ok, "unexpected errors: %v", errs)
	assert.Equal(t, domain.BasePositionMember, f.BasePosition)
	assert.Equal(t, "Member", f.Position)
	assert.Equal(t, "20-1234", f.StudentID)
	assert.Equal(t, "Ana", f.FirstName)
	assert.Equal(t, "CCS", f.Department)
}

func TestOk_OfficerRequiresPosition(t *testing.T) {
	f := validForm()
	f.BasePosition = "Officer"

	errs, ok := f.Ok()
	require.False(t, ok)
	assert.Equal(t, "is required for officers", errs["position"])

	f.Position = "President"
	errs, ok = f.Ok()
	assert.True(t, ok, "unexpected errors: %v", errs)
}

func TestOk_ReportsEachInvalidField(t *testing.T) {
	f := validForm()
	f.StudentID = "20-12"
	f.Email = "not-an-email"
	f.Course = "BSBA"
	f.BirthDate = "31/01/2004"
	f.FirstName = ""

	errs, ok := f.Ok()
	require.False(t, ok)
	assert.Contains(t, errs, "student_id")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "birth_date")
	assert.Contains(t, errs, "first_name")
	assert.Equal(t, "is not offered by CCS", errs["course"])
	assert.NotContains(t, errs, "last_name")
	assert.Contains(t, errs.Error(), "invalid member: birth_date:")
}

func TestOk_UnknownDepartment(t *testing.T) {
	f := validForm()
	f.Department = "XYZ"
	errs, ok := f.Ok()
	require.False(t, ok)
	assert.Contains(t, errs["department"], "must be one of")
	assert.NotContains(t, errs, "course")
}

func TestUpload_CarriesFormFields(t *testing.T) {
	f := validForm()
	f.PictureName = "/tmp/me.png"
	f.Picture = []byte("img")
	_, ok := f.Ok()
	require.True(t, ok)

	up := f.Upload()
	assert.Equal(t, "20-1234", up.Fields.Get("student_id"))
	assert.Equal(t, "Member", up.Fields.Get("position"))
	assert.Equal(t, "BSIT", up.Fields.Get("course"))
	assert.False(t, up.Fields.Has("middle_name"))
	assert.Equal(t, "/tmp/me.png", up.PictureName)
	assert.Equal(t, []byte("img"), up.Picture)
}

func members() []domain.RosterMember {
	return []domain.RosterMember{
		{ID: "1", FirstName: "Ana", LastName: "Reyes", StudentID: "20-1234", Position: "President", Email: "ana@example.edu"},
		{ID: "2", FirstName: "José", LastName: "Rizal", StudentID: "19-0001", Position: "Member", Email: "jrizal@example.edu"},
		{ID: "3", FirstName: "Bea", LastName: "Santos", StudentID: "21-5555", Position: "Member", Email: "bea@example.edu"},
	}
}

func ids(ms []domain.RosterMember) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestSearchMembers(t *testing.T) {
	all := members()

	assert.Equal(t, []string{"1", "2", "3"}, ids(SearchMembers(all, "  ")))
	assert.Equal(t, []string{"2"}, ids(SearchMembers(all, "jose")), "accent-insensitive")
	assert.Equal(t, []string{"3"}, ids(SearchMembers(all, "21-55")))
	assert.Equal(t, []string{"1"}, ids(SearchMembers(all, "PRESIDENT")))
	assert.Empty(t, SearchMembers(all, "zzzz"))
}

func TestCanSubmit(t *testing.T) {
	assert.ErrorIs(t, CanSubmit(nil), ErrNoMembers)
	assert.ErrorIs(t, CanSubmit(&domain.RosterRecord{}), ErrNoMembers)
	assert.ErrorIs(t, CanSubmit(&domain.RosterRecord{IsComplete: true, Members: members()}), ErrAlreadySubmitted)
	assert.ErrorIs(t, CanSubmit(&domain.RosterRecord{Status: domain.RosterStatusForReview, Members: members()}), ErrAlreadySubmitted)
	assert.NoError(t, CanSubmit(&domain.RosterRecord{Status: domain.RosterStatusIncomplete, Members: members()}))
	assert.Equal(t, 0, Officers(members()))
}
