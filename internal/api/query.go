package api

import (
	"net/url"
	"strings"
)

// OrganizationQuery holds the filters sent to GET /organizations.
type OrganizationQuery struct {
	Query          string
	Scope          string
	Department     string
	Program        string
	Specialization string
}

// Values encodes the non-empty filters as query parameters.
func (q OrganizationQuery) Values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val = strings.TrimSpace(val); val != "" {
			v.Set(key, val)
		}
	}
	set("q", q.Query)
	set("scope", q.Scope)
	set("department", q.Department)
	set("program", q.Program)
	set("specialization", q.Specialization)
	return v
}

// MemberUpload is the multipart payload for adding a roster member.
type MemberUpload struct {
	// Fields are written in key order as plain form fields.
	Fields url.Values
	// PictureName and Picture describe the optional profile image.
	PictureName string
	Picture     []byte
}
