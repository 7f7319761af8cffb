package types

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "#C7A4FF", NormalizeColor("#c7a4ff", DefaultColor))
	assert.Equal(t, "#80CBC4", NormalizeColor(" #80CBC4 ", DefaultColor))
	assert.Equal(t, DefaultColor, NormalizeColor("", DefaultColor))
	assert.Equal(t, "#A5D6A7", NormalizeColor("#000000", "#A5D6A7"))
}

func TestNormalizeTag_Enumerated(t *testing.T) {
	cases := map[string]string{
		"work":     "work",
		" Idea ":   "idea",
		"none":     "",
		"":         "",
		"shopping": "",
		"todo":     "todo",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeTag(in, false), "input %q", in)
	}
}

func TestNormalizeTag_FreeText(t *testing.T) {
	assert.Equal(t, "home,errands", NormalizeTag(" home , ,errands,", true))
	assert.Equal(t, "", NormalizeTag("  ", true))

	n := Note{Tag: NormalizeTag("a, b", true)}
	assert.Equal(t, []string{"a", "b"}, n.Tags())
	assert.Nil(t, Note{}.Tags())
}

func TestTagLabel(t *testing.T) {
	assert.Equal(t, "To Do", TagLabel("todo"))
	assert.Equal(t, "No tag", TagLabel(""))
	assert.Equal(t, "custom", TagLabel("custom"))
}

func TestFormData_WithValidationError(t *testing.T) {
	f := NewFormData().WithValidationError(errors.Wrap(NewValidationError("username", "taken"), "signing up"))
	require.Contains(t, f.Errors, "username")
	assert.Equal(t, "taken", f.Errors["username"])

	f = NewFormData().WithValidationError(errors.New("boom"))
	assert.Contains(t, f.Errors, "general")
}
