//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeForm_SetFieldAndField(t *testing.T) {
	var f ResumeForm
	assert.Zero(t, f)

	for _, name := range ResumeFields {
		require.NoError(t, f.SetField(name, "value of "+name))
	}
	assert.NotZero(t, f)

	for _, name := range ResumeFields {
		got, ok := f.Field(name)
		require.True(t, ok, name)
		assert.Equal(t, "value of "+name, got)
	}
	assert.Equal(t, "value of education", f.Education)
}

func TestResumeForm_UnknownField(t *testing.T) {
	var f ResumeForm

	err := f.SetField("address", "somewhere")
	assert.Error(t, err)
	assert.Zero(t, f)

	_, ok := f.Field("address")
	assert.False(t, ok)
}

func TestFieldLabel(t *testing.T) {
	for _, name := range ResumeFields {
		assert.NotEmpty(t, FieldLabel(name), name)
	}
	assert.Equal(t, "Experience", FieldLabel(FieldExperience))
	assert.Empty(t, FieldLabel("address"))
}
