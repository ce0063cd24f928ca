package macros

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macosusesdk/automationd/internal/apierr"
)

func TestParseSelector(t *testing.T) {
	sel, err := ParseSelector("role:AXButton")
	require.NoError(t, err)
	assert.Equal(t, "AXButton", sel.Role)

	sel, err = ParseSelector("text:Save")
	require.NoError(t, err)
	assert.Equal(t, "Save", sel.Text)

	sel, err = ParseSelector("textContains:Unti")
	require.NoError(t, err)
	assert.Equal(t, "Unti", sel.TextContains)

	sel, err = ParseSelector("textRegex:^Save( As)?$")
	require.NoError(t, err)
	require.NotNil(t, sel.TextRegex)
	assert.Equal(t, "^Save( As)?$", sel.RegexSource())
	assert.True(t, sel.TextRegex.MatchString("Save As"))
}

func TestBareSelectorIsRole(t *testing.T) {
	sel, err := ParseSelector("AXCheckBox")
	require.NoError(t, err)
	assert.Equal(t, "AXCheckBox", sel.Role)
	assert.Empty(t, sel.Text)
}

func TestInvalidRegexSelector(t *testing.T) {
	_, err := ParseSelector("textRegex:[unclosed")
	require.Error(t, err)
	assert.Equal(t, apierr.ReasonInvalidSelector, apierr.Reason(err))
}
