// SPDX-License-Identifier: MIT
// Package: gravix/codec
//
// edgelist.go — plain-text edge lists.
//
// Line grammar (sep configurable, default single space):
//
//	# anything after a comment marker is skipped
//	<src><sep><dst>[<sep><weight>]
//
// A missing weight column reads as 1.0. Node columns hold the rendered
// attribute, so the attribute parser on the read side is the inverse of
// fmt.Sprint on the write side.

package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/gravix/core"
)

// Sentinel errors of the codec package.
var (
	// ErrMalformedLine is returned when an edge-list line has too few
	// columns or an unparsable weight.
	ErrMalformedLine = errors.New("gravix: malformed edge-list line")

	// ErrCorruptPayload is returned when a JSON or binary payload fails
	// structural validation (bad magic, truncated records, out-of-range
	// edge indices).
	ErrCorruptPayload = errors.New("gravix: corrupt graph payload")

	// ErrUnsupportedVersion is returned when a binary payload declares
	// a format version this build does not understand.
	ErrUnsupportedVersion = errors.New("gravix: unsupported format version")
)

const (
	defaultSeparator = " "
	defaultComment   = "#"
	defaultWeight    = 1.0
)

// EdgeListOptions configures ReadEdgeList.
type EdgeListOptions struct {
	// Separator splits the columns. Default: single space.
	Separator string
	// Comment marks skipped lines when it prefixes them. Default: "#".
	Comment string
	// Directed selects the orientation of the rebuilt store.
	Directed bool
}

// EdgeListOption mutates EdgeListOptions.
type EdgeListOption func(*EdgeListOptions)

// WithSeparator overrides the column separator. Empty strings are
// ignored.
func WithSeparator(sep string) EdgeListOption {
	return func(o *EdgeListOptions) {
		if sep != "" {
			o.Separator = sep
		}
	}
}

// WithComment overrides the comment marker. Empty strings are ignored.
func WithComment(marker string) EdgeListOption {
	return func(o *EdgeListOptions) {
		if marker != "" {
			o.Comment = marker
		}
	}
}

// WithDirectedResult makes ReadEdgeList build a directed store.
func WithDirectedResult(directed bool) EdgeListOption {
	return func(o *EdgeListOptions) { o.Directed = directed }
}

// WriteEdgeList writes every edge of g as one text line, endpoints
// rendered from their attributes with fmt.Sprint. Isolated nodes do not
// appear; attributes must render uniquely for a faithful round trip.
func WriteEdgeList[A comparable](w io.Writer, g *core.Graph[A], sep string) error {
	if sep == "" {
		sep = defaultSeparator
	}

	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		src, err := g.NodeAttr(e.Src)
		if err != nil {
			return fmt.Errorf("edge list write: %w", err)
		}
		dst, err := g.NodeAttr(e.Dst)
		if err != nil {
			return fmt.Errorf("edge list write: %w", err)
		}
		if _, err := fmt.Fprintf(bw, "%v%s%v%s%s\n", src, sep, dst, sep, formatWeight(e.Weight)); err != nil {
			return fmt.Errorf("edge list write: %w", err)
		}
	}
	return bw.Flush()
}

// ReadEdgeList rebuilds a store from edge-list text. parse converts a
// node column back into an attribute; equal attributes collapse into
// one node. Blank lines and comment lines are skipped; a missing third
// column defaults the weight to 1.0.
func ReadEdgeList[A comparable](r io.Reader, parse func(string) (A, error), opts ...EdgeListOption) (*core.Graph[A], error) {
	o := EdgeListOptions{Separator: defaultSeparator, Comment: defaultComment}
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewGraph[A](core.WithDirected(o.Directed))
	known := make(map[A]core.NodeID)
	intern := func(attr A) core.NodeID {
		if id, ok := known[attr]; ok {
			return id
		}
		id := g.AddNode(attr)
		known[attr] = id
		return id
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, o.Comment) {
			continue
		}

		columns := strings.Split(line, o.Separator)
		fields := columns[:0]
		for _, c := range columns {
			if c = strings.TrimSpace(c); c != "" {
				fields = append(fields, c)
			}
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMalformedLine)
		}

		weight := defaultWeight
		if len(fields) >= 3 {
			parsed, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: weight %q: %w", lineNo, fields[2], ErrMalformedLine)
			}
			weight = parsed
		}

		srcAttr, err := parse(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: source %q: %w", lineNo, fields[0], err)
		}
		dstAttr, err := parse(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: target %q: %w", lineNo, fields[1], err)
		}

		if _, err := g.AddEdge(intern(srcAttr), intern(dstAttr), weight); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edge list read: %w", err)
	}
	return g, nil
}

// formatWeight renders weights with the shortest exact decimal form.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
