package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAppendsInOrder(t *testing.T) {
	c := New().Add("Go").Add("Rust").Add("Python")
	assert.Equal(t, []string{"Go", "Rust", "Python"}, c.Values())
}

func TestAddIsIdempotent(t *testing.T) {
	c := New("Go")
	assert.Equal(t, c.Values(), c.Add("Go").Values())
	assert.Equal(t, c.Values(), c.Add("Go").Add("Go").Values())
}

func TestAddTrimsInput(t *testing.T) {
	c := New()
	assert.Equal(t, c.Add("Go").Values(), c.Add("  Go  ").Values())
	assert.Equal(t, []string{"Go"}, c.Add("\tGo\n").Values())
}

func TestAddEmptyIsNoop(t *testing.T) {
	c := New("Go")
	assert.Equal(t, []string{"Go"}, c.Add("").Values())
	assert.Equal(t, []string{"Go"}, c.Add("   ").Values())
}

func TestAddIsCaseSensitive(t *testing.T) {
	c := New("Go").Add("go")
	assert.Equal(t, []string{"Go", "go"}, c.Values())
}

func TestRemoveInvertsAdd(t *testing.T) {
	c := New("Go", "Python")
	require.False(t, c.Contains("Rust"))
	assert.Equal(t, c.Values(), c.Add("Rust").Remove("Rust").Values())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := New("Go")
	assert.Equal(t, []string{"Go"}, c.Remove("Rust").Values())
	assert.Equal(t, []string{"Go"}, c.Remove("Rust").Remove("Rust").Values())
}

func TestRemovePreservesOrder(t *testing.T) {
	c := New("Go", "Rust", "Python").Remove("Rust")
	assert.Equal(t, []string{"Go", "Python"}, c.Values())
}

func TestNewDeduplicates(t *testing.T) {
	c := New("Go", " Go", "Rust", "")
	assert.Equal(t, []string{"Go", "Rust"}, c.Values())
}

func TestValuesIsACopy(t *testing.T) {
	c := New("Go", "Rust")
	vals := c.Values()
	vals[0] = "mutated"
	assert.Equal(t, []string{"Go", "Rust"}, c.Values())
}

func TestValuesNeverNil(t *testing.T) {
	assert.NotNil(t, New().Values())
	assert.Equal(t, 0, New().Len())
}
