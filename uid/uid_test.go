package uid_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvkit/uid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewVersions stamps the requested version and RFC variant.
func TestNewVersions(t *testing.T) {
	for _, v := range []int{1, 4, 6, 7} {
		u, err := uid.New(v)
		require.NoError(t, err, "v%d", v)
		assert.Equal(t, uuid.Version(v), u.Version())
		assert.Equal(t, uuid.RFC4122, u.Variant())
	}

	_, err := uid.New(2)
	assert.ErrorIs(t, err, uid.ErrInvalidVersion)
	_, err = uid.New(8)
	assert.ErrorIs(t, err, uid.ErrInvalidVersion)
}

// TestNameBased matches the reference vectors for python.org.
func TestNameBased(t *testing.T) {
	v3, err := uid.NewString(3, uid.WithNamespace(uuid.NameSpaceDNS), uid.WithName("python.org"))
	require.NoError(t, err)
	assert.Equal(t, "6fa459ea-ee8a-3ca4-894e-db77e160355e", v3)

	v5, err := uid.NewString(5, uid.WithNamespace(uid.Namespaces["dns"]), uid.WithName("python.org"))
	require.NoError(t, err)
	assert.Equal(t, "886313e1-3b8a-5372-9b90-0c9aee199e5d", v5)

	def, err := uid.NewString(5, uid.WithName("https://example.com"))
	require.NoError(t, err)
	assert.Equal(t, "4fd35a71-71ef-5a55-a9d9-aa75c889a6d0", def)

	_, err = uid.New(5)
	assert.ErrorIs(t, err, uid.ErrNameRequired)
	assert.Panics(t, func() { uid.WithNamespace(uuid.Nil) })
}

// TestV7Ordering keeps v7 values sortable by creation time.
func TestV7Ordering(t *testing.T) {
	a, err := uid.NewString(7)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	b, err := uid.NewString(7)
	require.NoError(t, err)
	assert.Less(t, a, b)
}

// TestValidate accepts the usual textual forms.
func TestValidate(t *testing.T) {
	good := []string{
		"886313e1-3b8a-5372-9b90-0c9aee199e5d",
		"{886313e1-3b8a-5372-9b90-0c9aee199e5d}",
		"urn:uuid:886313e1-3b8a-5372-9b90-0c9aee199e5d",
		"886313e13b8a53729b900c9aee199e5d",
		"00000000-0000-0000-0000-000000000000",
		"ffffffff-ffff-ffff-ffff-ffffffffffff",
	}
	for _, s := range good {
		assert.True(t, uid.IsValid(s), s)
	}
	for _, s := range []string{"", "886313e1", "886313e1-3b8a-5372-1b90-0c9aee199e5d", "zzzzzzzz-3b8a-5372-9b90-0c9aee199e5d"} {
		assert.ErrorIs(t, uid.Validate(s), uid.ErrInvalid, s)
	}

	v, err := uid.Version("886313e1-3b8a-5372-9b90-0c9aee199e5d")
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	_, err = uid.Version("nope")
	assert.ErrorIs(t, err, uid.ErrInvalid)
}

// TestShort round-trips the base-36 form.
func TestShort(t *testing.T) {
	u := uuid.MustParse("886313e1-3b8a-5372-9b90-0c9aee199e5d")
	s := uid.Short(u)
	assert.Equal(t, "82oh5molnwrmslc3919bvlftp", s)

	back, err := uid.FromShort(s)
	require.NoError(t, err)
	assert.Equal(t, u, back)

	assert.Equal(t, "0", uid.Short(uuid.Nil))
	back, err = uid.FromShort("0")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, back)

	_, err = uid.FromShort("not*base36")
	assert.ErrorIs(t, err, uid.ErrInvalid)
	_, err = uid.FromShort("zzzzzzzzzzzzzzzzzzzzzzzzzz")
	assert.ErrorIs(t, err, uid.ErrInvalid)
}
