// SPDX-License-Identifier: MIT
// Package: gravix/codec
//
// codec_test.go — round trips and malformed-input handling for all
// three formats.

package codec_test

import (
	"bytes"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gravix/codec"
	"github.com/katalvlaran/gravix/core"
)

// buildSample returns a store with two weighted components.
func buildSample(t *testing.T, directed bool) *core.Graph[int] {
	t.Helper()
	g := core.NewGraph[int](core.WithDirected(directed))
	ids := make([]core.NodeID, 5)
	for i := range ids {
		ids[i] = g.AddNode(i * 10)
	}
	for _, spec := range []struct {
		u, v int
		w    float64
	}{
		{0, 1, 1.5},
		{1, 2, -2},
		{0, 2, 0.25},
		{3, 4, 7},
	} {
		_, err := g.AddEdge(ids[spec.u], ids[spec.v], spec.w)
		require.NoError(t, err)
	}
	return g
}

// assertSameShape checks the round-trip contract: counts, directedness,
// attribute multiset and sorted degree sequence.
func assertSameShape(t *testing.T, want, got *core.Graph[int]) {
	t.Helper()
	assert.Equal(t, want.NodeCount(), got.NodeCount())
	assert.Equal(t, want.EdgeCount(), got.EdgeCount())
	assert.Equal(t, want.IsDirected(), got.IsDirected())

	attrsOf := func(g *core.Graph[int]) []int {
		var out []int
		for _, n := range g.Nodes() {
			out = append(out, n.Attr)
		}
		sort.Ints(out)
		return out
	}
	assert.Equal(t, attrsOf(want), attrsOf(got))

	degreesOf := func(g *core.Graph[int]) []int {
		var out []int
		for _, id := range g.NodeIDs() {
			d, err := g.Degree(id)
			require.NoError(t, err)
			out = append(out, d)
		}
		sort.Ints(out)
		return out
	}
	assert.Equal(t, degreesOf(want), degreesOf(got))

	weightsOf := func(g *core.Graph[int]) []float64 {
		var out []float64
		for _, e := range g.Edges() {
			out = append(out, e.Weight)
		}
		sort.Float64s(out)
		return out
	}
	assert.Equal(t, weightsOf(want), weightsOf(got))
}

func parseInt(s string) (int, error) { return strconv.Atoi(s) }

func TestEdgeList_RoundTrip(t *testing.T) {
	g := buildSample(t, false)

	var buf bytes.Buffer
	require.NoError(t, codec.WriteEdgeList(&buf, g, " "))

	back, err := codec.ReadEdgeList(&buf, parseInt)
	require.NoError(t, err)

	// The isolated-node-free sample round-trips shape-for-shape.
	assertSameShape(t, g, back)
}

func TestEdgeList_CustomSeparatorAndDirected(t *testing.T) {
	g := buildSample(t, true)

	var buf bytes.Buffer
	require.NoError(t, codec.WriteEdgeList(&buf, g, ","))

	back, err := codec.ReadEdgeList(&buf, parseInt,
		codec.WithSeparator(","), codec.WithDirectedResult(true))
	require.NoError(t, err)
	assertSameShape(t, g, back)
}

func TestEdgeList_CommentsBlanksAndDefaultWeight(t *testing.T) {
	input := strings.Join([]string{
		"# a comment",
		"",
		"1 2 0.5",
		"2 3",
		"# trailing note",
	}, "\n")

	g, err := codec.ReadEdgeList(strings.NewReader(input), parseInt)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	weights := map[float64]bool{}
	for _, e := range g.Edges() {
		weights[e.Weight] = true
	}
	assert.True(t, weights[0.5])
	assert.True(t, weights[1.0], "missing column defaults to 1.0")
}

func TestEdgeList_MalformedLines(t *testing.T) {
	_, err := codec.ReadEdgeList(strings.NewReader("lonely"), parseInt)
	assert.ErrorIs(t, err, codec.ErrMalformedLine)

	_, err = codec.ReadEdgeList(strings.NewReader("1 2 not-a-number"), parseInt)
	assert.ErrorIs(t, err, codec.ErrMalformedLine)

	_, err = codec.ReadEdgeList(strings.NewReader("1 oops 3"), parseInt)
	assert.Error(t, err, "the attribute parser's failure propagates")
}

func TestEdgeList_RepeatedAttributesShareANode(t *testing.T) {
	input := "7 8\n8 9\n7 9"
	g, err := codec.ReadEdgeList(strings.NewReader(input), parseInt)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestJSON_RoundTrip(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := buildSample(t, directed)

		var buf bytes.Buffer
		require.NoError(t, codec.WriteJSON(&buf, g))

		back, err := codec.ReadJSON[int](&buf)
		require.NoError(t, err)
		assertSameShape(t, g, back)
	}
}

func TestJSON_PreservesIsolatedNodes(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddNode(1)
	g.AddNode(2)

	var buf bytes.Buffer
	require.NoError(t, codec.WriteJSON(&buf, g))

	back, err := codec.ReadJSON[int](&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, back.NodeCount())
	assert.Equal(t, 0, back.EdgeCount())
}

func TestJSON_RejectsOutOfRangeEdgeIndex(t *testing.T) {
	payload := `{"directed":false,"nodes":[{"id":0,"attr":1}],"edges":[{"source":0,"target":5,"weight":1}]}`

	_, err := codec.ReadJSON[int](strings.NewReader(payload))
	assert.ErrorIs(t, err, codec.ErrCorruptPayload)
}

func TestBinary_RoundTrip(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := buildSample(t, directed)

		var buf bytes.Buffer
		require.NoError(t, codec.WriteBinary(&buf, g, codec.JSONAttrs[int]{}))

		back, err := codec.ReadBinary[int](&buf, codec.JSONAttrs[int]{})
		require.NoError(t, err)
		assertSameShape(t, g, back)
	}
}

func TestBinary_CompressedRoundTrip(t *testing.T) {
	g := buildSample(t, false)

	var plain, packed bytes.Buffer
	require.NoError(t, codec.WriteBinary(&plain, g, codec.JSONAttrs[int]{}))
	require.NoError(t, codec.WriteBinary(&packed, g, codec.JSONAttrs[int]{},
		codec.WithCompression(true)))

	back, err := codec.ReadBinary[int](&packed, codec.JSONAttrs[int]{})
	require.NoError(t, err)
	assertSameShape(t, g, back)
}

func TestBinary_Int64AttrCodec(t *testing.T) {
	g := core.NewGraph[int64]()
	a := g.AddNode(-5)
	b := g.AddNode(1 << 40)
	_, err := g.AddEdge(a, b, 3.25)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codec.WriteBinary(&buf, g, codec.Int64Attrs{}))

	back, err := codec.ReadBinary[int64](&buf, codec.Int64Attrs{})
	require.NoError(t, err)
	require.Equal(t, 2, back.NodeCount())

	attrs := map[int64]bool{}
	for _, n := range back.Nodes() {
		attrs[n.Attr] = true
	}
	assert.True(t, attrs[-5])
	assert.True(t, attrs[1<<40])
}

func TestBinary_RejectsGarbage(t *testing.T) {
	_, err := codec.ReadBinary[int](strings.NewReader("not a graph at all"), codec.JSONAttrs[int]{})
	assert.ErrorIs(t, err, codec.ErrCorruptPayload)

	_, err = codec.ReadBinary[int](strings.NewReader(""), codec.JSONAttrs[int]{})
	assert.ErrorIs(t, err, codec.ErrCorruptPayload)
}

func TestBinary_RejectsUnknownVersion(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddNode(1)

	var buf bytes.Buffer
	require.NoError(t, codec.WriteBinary(&buf, g, codec.JSONAttrs[int]{}))

	raw := buf.Bytes()
	raw[4] = 99 // version byte sits right after the 4-byte magic

	_, err := codec.ReadBinary[int](bytes.NewReader(raw), codec.JSONAttrs[int]{})
	assert.ErrorIs(t, err, codec.ErrUnsupportedVersion)
}

func TestBinary_RejectsTruncatedPayload(t *testing.T) {
	g := buildSample(t, false)

	var buf bytes.Buffer
	require.NoError(t, codec.WriteBinary(&buf, g, codec.JSONAttrs[int]{}))

	raw := buf.Bytes()
	_, err := codec.ReadBinary[int](bytes.NewReader(raw[:len(raw)-6]), codec.JSONAttrs[int]{})
	assert.ErrorIs(t, err, codec.ErrCorruptPayload)
}
