package jsonx_test

import (
	"testing"

	"github.com/katalvlaran/lvkit/jsonx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPretty indents structure and copies strings verbatim.
func TestPretty(t *testing.T) {
	src := []byte(`{"a":1.50,"b":[true,null,{ }],"c":"x\"y,:{","d":[ ]}`)
	got, err := jsonx.Pretty(src, "  ")
	require.NoError(t, err)
	want := `{
  "a": 1.50,
  "b": [
    true,
    null,
    {}
  ],
  "c": "x\"y,:{",
  "d": []
}`
	assert.Equal(t, want, string(got))

	again, err := jsonx.Pretty(got, "  ")
	require.NoError(t, err)
	assert.Equal(t, want, string(again))

	scalar, err := jsonx.Pretty([]byte(` "\\" `), jsonx.DefaultIndent)
	require.NoError(t, err)
	assert.Equal(t, `"\\"`, string(scalar))

	_, err = jsonx.Pretty([]byte(`{"a":}`), "  ")
	assert.ErrorIs(t, err, jsonx.ErrInvalid)
}

// TestMinifyAndSort covers the tidwall/pretty helpers.
func TestMinifyAndSort(t *testing.T) {
	got, err := jsonx.Minify([]byte("{ \"a\" : [1, 2],\n \"b\": \"s p\" }"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2],"b":"s p"}`, string(got))

	sorted, err := jsonx.SortKeys([]byte(`{"b":1,"a":{"d":2,"c":3}}`), "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"c\": 3,\n    \"d\": 2\n  },\n  \"b\": 1\n}", string(sorted))

	_, err = jsonx.Minify([]byte(`[1,`))
	assert.ErrorIs(t, err, jsonx.ErrInvalid)
	_, err = jsonx.SortKeys([]byte(`nope`), "  ")
	assert.ErrorIs(t, err, jsonx.ErrInvalid)

	assert.True(t, jsonx.Valid([]byte(`{"ok":true}`)))
	assert.False(t, jsonx.Valid([]byte(`{"ok":true}{}`)))
}

// TestGet reads values with GJSON paths.
func TestGet(t *testing.T) {
	doc := []byte(`{"users":[{"name":"ann","age":31},{"name":"bob","age":27}]}`)

	raw, ok := jsonx.Get(doc, "users.#.name")
	assert.True(t, ok)
	assert.Equal(t, `["ann","bob"]`, raw)

	raw, ok = jsonx.Get(doc, "users.1")
	assert.True(t, ok)
	assert.JSONEq(t, `{"name":"bob","age":27}`, raw)

	_, ok = jsonx.Get(doc, "users.5.name")
	assert.False(t, ok)

	assert.Equal(t, "bob", jsonx.GetString(doc, "users.1.name"))
	assert.Equal(t, []string{"31", `"bob"`, ""}, jsonx.GetMany(doc, "users.0.age", "users.1.name", "missing"))
}

// TestPatches covers RFC 7396 and RFC 6902.
func TestPatches(t *testing.T) {
	doc := []byte(`{"a":1,"b":{"c":2},"list":[1,2]}`)

	merged, err := jsonx.MergePatch(doc, []byte(`{"b":{"c":null,"d":3},"e":"x"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":{"d":3},"e":"x","list":[1,2]}`, string(merged))

	patch, err := jsonx.CreateMergePatch([]byte(`{"a":1,"b":2}`), []byte(`{"a":1,"b":3,"c":4}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":3,"c":4}`, string(patch))

	applied, err := jsonx.ApplyPatch(doc, []byte(`[
		{"op":"replace","path":"/a","value":2},
		{"op":"add","path":"/list/-","value":3},
		{"op":"remove","path":"/b"}
	]`))
	require.NoError(t, err)
	assert.True(t, jsonx.Equal([]byte(`{"a":2,"list":[1,2,3]}`), applied))

	_, err = jsonx.ApplyPatch(doc, []byte(`[{"op":"remove","path":"/missing"}]`))
	assert.ErrorIs(t, err, jsonx.ErrPatch)
	_, err = jsonx.ApplyPatch(doc, []byte(`{"not":"a list"}`))
	assert.ErrorIs(t, err, jsonx.ErrPatch)
	_, err = jsonx.MergePatch([]byte(`{`), []byte(`{}`))
	assert.ErrorIs(t, err, jsonx.ErrPatch)
}

// TestMarshal keeps HTML characters readable.
func TestMarshal(t *testing.T) {
	got, err := jsonx.Marshal(map[string]any{"html": "<b>&</b>", "n": []int{1}}, "\t")
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"html\": \"<b>&</b>\",\n\t\"n\": [\n\t\t1\n\t]\n}", string(got))
}
