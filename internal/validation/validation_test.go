package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorAggregatesViolations(t *testing.T) {
	var rules Collector
	rules.Required("email", "")
	rules.MaxLen("person_name", strings.Repeat("x", 41), 40)
	rules.OneOf("gender", "Unknown", "Male", "Female", "Other")

	err := rules.Err()
	require.Error(t, err)

	var vErr *Errors
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Errors, 3)
	assert.Equal(t, "email", vErr.Errors[0].Field)
	assert.Equal(t, "required", vErr.Errors[0].Code)
	assert.Equal(t, "too_long", vErr.Errors[1].Code)
	assert.Equal(t, "invalid_option", vErr.Errors[2].Code)
}

func TestCollectorPasses(t *testing.T) {
	var rules Collector
	rules.Required("email", "mary@example.com")
	rules.Email("email", "mary@example.com")
	rules.MaxLen("email", "mary@example.com", 40)
	rules.OneOf("gender", "Female", "Male", "Female", "Other")
	assert.NoError(t, rules.Err())
}

func TestRequiredRejectsWhitespace(t *testing.T) {
	var rules Collector
	rules.Required("country_name", "   ")
	assert.Error(t, rules.Err())
}

func TestEmailSkipsEmpty(t *testing.T) {
	var rules Collector
	rules.Email("email", "")
	assert.NoError(t, rules.Err())

	rules.Email("email", "not-an-address")
	assert.Error(t, rules.Err())
}

func TestOneOfSkipsEmpty(t *testing.T) {
	var rules Collector
	rules.OneOf("gender", "", "Male", "Female", "Other")
	assert.NoError(t, rules.Err())
}

func TestMaxLenCountsRunes(t *testing.T) {
	var rules Collector
	rules.MaxLen("person_name", strings.Repeat("é", 40), 40)
	assert.NoError(t, rules.Err())
}
