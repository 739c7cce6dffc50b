package supports_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkit/supports"
)

func TestEmbedded(t *testing.T) {
	assert.Equal(t, []string{
		supports.DateFormats, supports.Environments, supports.Genders, supports.Industries,
		supports.Salutations, supports.Statuses, supports.UserGroups,
	}, supports.Lists())

	for _, name := range supports.Lists() {
		items, err := supports.List(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, items, name)
		for _, it := range items {
			assert.NotEmpty(t, it.Label, "%s.%s", name, it.Key)
		}
	}
}

func TestLookups(t *testing.T) {
	assert.Equal(t, []string{"local", "development", "testing", "staging", "production"},
		supports.Keys(supports.Environments))
	assert.Nil(t, supports.Keys("nope"))

	label, err := supports.Label(supports.Salutations, "dr")
	require.NoError(t, err)
	assert.Equal(t, "Dr", label)

	label, err = supports.Label(supports.DateFormats, "Y-m-d")
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02", label)

	_, err = supports.Label(supports.Salutations, "captain")
	assert.ErrorIs(t, err, supports.ErrUnknownKey)
	_, err = supports.Label("planets", "earth")
	assert.ErrorIs(t, err, supports.ErrUnknownList)
	_, err = supports.List("planets")
	assert.ErrorIs(t, err, supports.ErrUnknownList)

	assert.True(t, supports.Has(supports.Industries, "it"))
	assert.False(t, supports.Has(supports.Industries, "piracy"))
	assert.False(t, supports.Has("planets", "earth"))
}

func TestListIsCopy(t *testing.T) {
	items, err := supports.List(supports.Genders)
	require.NoError(t, err)
	items[0].Label = "changed"
	again, _ := supports.List(supports.Genders)
	assert.NotEqual(t, "changed", again[0].Label)
}

func TestParse(t *testing.T) {
	c, err := supports.Parse(strings.NewReader("tiers:\n  - {key: gold, label: Gold}\n  - {key: silver, label: Silver}\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"tiers"}, c.Lists())
	assert.Equal(t, []string{"gold", "silver"}, c.Keys("tiers"))

	_, err = supports.Parse(strings.NewReader("tiers:\n  - {key: a, label: A}\n  - {key: a, label: B}\n"))
	assert.ErrorIs(t, err, supports.ErrCatalogue)

	_, err = supports.Parse(strings.NewReader("tiers:\n  - {label: nameless}\n"))
	assert.ErrorIs(t, err, supports.ErrCatalogue)

	_, err = supports.Parse(bytes.NewReader([]byte("tiers: [unclosed")))
	assert.ErrorIs(t, err, supports.ErrCatalogue)
}
