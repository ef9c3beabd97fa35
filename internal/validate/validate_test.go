package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSchema = Schema{
	{Field: "name", Label: "Name", Required: true, MinLength: 2},
	{Field: "email", Label: "Email", Required: true, Kind: KindEmail},
	{Field: "payload", Label: "Payload", Kind: KindJSON},
	{Field: "phone", Label: "Phone"},
}

func TestApplyValid(t *testing.T) {
	errs := testSchema.Apply(map[string]string{
		"name":    "Jo",
		"email":   "jo@example.com",
		"payload": `{"a":1}`,
	})
	assert.Nil(t, errs)
}

func TestApplyReportsEveryViolation(t *testing.T) {
	errs := testSchema.Apply(map[string]string{
		"name":    "",
		"email":   "not-an-email",
		"payload": "{broken",
	})

	assert.Len(t, errs, 3)
	assert.Equal(t, []string{"Name is required"}, errs["name"])
	assert.Equal(t, []string{"Email must be a valid email address"}, errs["email"])
	assert.Equal(t, []string{"Payload must be valid JSON"}, errs["payload"])
}

func TestApplyMultipleMessagesPerField(t *testing.T) {
	s := Schema{{Field: "email", Label: "Email", Required: true, MinLength: 6, Kind: KindEmail}}
	errs := s.Apply(map[string]string{"email": "a@b"})

	assert.Equal(t, []string{
		"Email must be at least 6 characters",
		"Email must be a valid email address",
	}, errs["email"])
}

func TestApplyOptionalFields(t *testing.T) {
	// Absent optional fields pass; present ones are shape-checked.
	s := Schema{{Field: "notes", Label: "Notes", MinLength: 5}}

	assert.Nil(t, s.Apply(map[string]string{}))
	assert.NotNil(t, s.Apply(map[string]string{"notes": "hi"}))
}

func TestApplyIgnoresUnknownFields(t *testing.T) {
	errs := testSchema.Apply(map[string]string{
		"name":       "Jo",
		"email":      "jo@example.com",
		"unexpected": "whatever",
	})
	assert.Nil(t, errs)
}

func TestEmailShapes(t *testing.T) {
	s := Schema{{Field: "email", Label: "Email", Required: true, Kind: KindEmail}}

	for _, good := range []string{"a@b.co", "first.last@sub.example.org", "x+tag@example.io"} {
		assert.Nil(t, s.Apply(map[string]string{"email": good}), good)
	}
	for _, bad := range []string{"plain", "a@b", "a b@c.com", "@example.com"} {
		assert.NotNil(t, s.Apply(map[string]string{"email": bad}), bad)
	}
}

func TestMinLengthCountsRunes(t *testing.T) {
	s := Schema{{Field: "name", Label: "Name", Required: true, MinLength: 2}}
	assert.Nil(t, s.Apply(map[string]string{"name": "Ță"}))
}
