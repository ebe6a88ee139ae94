package flatten_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metric-descriptor-generator/internal/flatten"
	"metric-descriptor-generator/internal/nested"
)

func sample() *nested.Map {
	m := nested.New()
	m.Child("a").Set("b", nested.Scalar("1")).Set("bytes_c", nested.Scalar("2"))

	return m
}

func TestPaths_PreOrder(t *testing.T) {
	m := nested.New()
	m.Set("x", nested.Scalar("0"))
	a := m.Child("a")
	a.Set("b", nested.Scalar("1"))
	a.Child("c").Set("d", nested.Scalar("2"))
	a.Set("e", nested.Scalar("3"))
	m.Set("f", nested.Scalar("4"))

	got := flatten.Paths(m, "")

	want := []flatten.KeyPath{".x", ".a", ".a.b", ".a.c", ".a.c.d", ".a.e", ".f"}
	assert.Equal(t, want, got, spew.Sdump(got))
}

func TestPaths_EndToEnd(t *testing.T) {
	got := flatten.Paths(sample(), "")
	assert.Equal(t, []flatten.KeyPath{".a", ".a.b", ".a.bytes_c"}, got)
}

func TestPaths_EmptyMaps(t *testing.T) {
	assert.Empty(t, flatten.Paths(nested.New(), ""))
	assert.Empty(t, flatten.Paths(nil, ""))

	m := nested.New()
	m.Child("empty")
	m.Child("outer").Child("inner")

	assert.Equal(t, []flatten.KeyPath{".empty", ".outer", ".outer.inner"}, flatten.Paths(m, ""))
}

func TestPaths_Prefix(t *testing.T) {
	got := flatten.Paths(sample(), ".root")
	assert.Equal(t, []flatten.KeyPath{".root.a", ".root.a.b", ".root.a.bytes_c"}, got)
}

func TestWalk_Restartable(t *testing.T) {
	m, err := nested.LoadFile(filepath.Join("..", "nested", "testdata", "memory_flow.json"))
	require.NoError(t, err)

	seq := flatten.Walk(m, "")

	var first, second []flatten.KeyPath
	for p := range seq {
		first = append(first, p)
	}

	for p := range seq {
		second = append(second, p)
	}

	assert.Equal(t, first, second)
	assert.Len(t, first, nested.CountKeys(m))
	assert.Equal(t, flatten.KeyPath(".memory_flow"), first[0])
	assert.Equal(t, flatten.KeyPath(".memory_flow.general"), first[1])
	assert.Equal(t, flatten.KeyPath(".memory_flow.general.l2_cache_hit_perc"), first[2])
	assert.Equal(t, flatten.KeyPath(".memory_flow.texture.loads_to_l1_bytes"), first[len(first)-1])
}

func TestWalk_EarlyStop(t *testing.T) {
	var got []flatten.KeyPath

	for p := range flatten.Walk(sample(), "") {
		got = append(got, p)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []flatten.KeyPath{".a", ".a.b"}, got)
}

func TestWalkNodes(t *testing.T) {
	var interior []flatten.KeyPath

	for v := range flatten.WalkNodes(sample(), "") {
		if v.IsInterior() {
			interior = append(interior, v.Path)
		}
	}

	assert.Equal(t, []flatten.KeyPath{".a"}, interior)
}

func TestPaths_CountMatchesKeys(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"flat", `{"a": 1, "b": 2, "c": 3}`},
		{"deep", `{"a": {"b": {"c": {"d": 1}}}}`},
		{"mixed", `{"a": {}, "b": {"c": 1, "d": {"e": 2}}, "f": 3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := nested.Parse([]byte(tt.doc))
			require.NoError(t, err)
			assert.Len(t, flatten.Paths(m, ""), nested.CountKeys(m))
		})
	}
}

func TestKeyPath(t *testing.T) {
	p := flatten.KeyPath("").Join("general").Join("l2_queries")

	assert.Equal(t, ".general.l2_queries", p.String())
	assert.Equal(t, "general.l2_queries", p.Trimmed())
	assert.Equal(t, []string{"general", "l2_queries"}, p.Segments())
	assert.Nil(t, flatten.KeyPath("").Segments())
}

func ExampleWalk() {
	m, _ := nested.Parse([]byte(`{"a": {"b": 1, "bytes_c": 2}}`))

	for p := range flatten.Walk(m, "") {
		fmt.Println(p)
	}
	// Output:
	// .a
	// .a.b
	// .a.bytes_c
}
