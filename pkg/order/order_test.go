package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignsID(t *testing.T) {
	items := []string{"pizza"}
	o := New("calle la mentira", items...)

	_, err := uuid.Parse(o.ID)
	require.NoError(t, err)
	assert.Equal(t, "calle la mentira", o.Address)

	items[0] = "sushi"
	assert.Equal(t, []string{"pizza"}, o.Items)
}

func TestCloneOwnsItems(t *testing.T) {
	original := New("calle la mentira", "pizza", "empanada")
	cloned := original.Clone()

	assert.Equal(t, original, cloned)
	assert.NotSame(t, original, cloned)

	cloned.Items = append(cloned.Items, "sushi")
	cloned.Items[0] = "lasagna"
	cloned.Address = "elsewhere"

	assert.Equal(t, []string{"pizza", "empanada"}, original.Items)
	assert.Equal(t, "calle la mentira", original.Address)
	assert.Equal(t, []string{"lasagna", "empanada", "sushi"}, cloned.Items)
}

func TestCloneEmptyItems(t *testing.T) {
	o := &Order{ID: "1"}
	c := o.Clone()
	c.Items = append(c.Items, "pizza")
	assert.Empty(t, o.Items)
}
