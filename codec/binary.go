// SPDX-License-Identifier: MIT
// Package: gravix/codec
//
// binary.go — compact binary interchange.
//
// Layout (little-endian):
//
//	magic   [4]byte  "GVXB"
//	version uint8    1
//	flags   uint8    bit0 directed, bit1 zstd-compressed payload
//	nodes   uint64
//	edges   uint64
//	payload …        (zstd frame when bit1 is set)
//
// Payload, in order: per node an attribute record (uint32 length +
// bytes, produced by the AttrCodec), then per edge two uint64 node
// positions and the weight's IEEE-754 bit pattern. Positions index the
// node records, so identifiers never appear on the wire.

package codec

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/gravix/core"
)

var binaryMagic = [4]byte{'G', 'V', 'X', 'B'}

const (
	binaryVersion = 1

	flagDirected   = 1 << 0
	flagCompressed = 1 << 1
)

// AttrCodec converts node attributes to and from bytes for the binary
// format.
type AttrCodec[A comparable] interface {
	Encode(A) ([]byte, error)
	Decode([]byte) (A, error)
}

// Int64Attrs is a fixed-width codec for int64 attributes.
type Int64Attrs struct{}

// Encode renders v as 8 little-endian bytes.
func (Int64Attrs) Encode(v int64) ([]byte, error) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b, nil
}

// Decode reverses Encode.
func (Int64Attrs) Decode(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("int64 attr of %d bytes: %w", len(b), ErrCorruptPayload)
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// JSONAttrs marshals attributes with encoding/json; it works for any
// attribute type encoding/json can handle.
type JSONAttrs[A comparable] struct{}

// Encode marshals a.
func (JSONAttrs[A]) Encode(a A) ([]byte, error) { return json.Marshal(a) }

// Decode unmarshals b.
func (JSONAttrs[A]) Decode(b []byte) (A, error) {
	var a A
	if err := json.Unmarshal(b, &a); err != nil {
		return a, fmt.Errorf("json attr: %w", err)
	}
	return a, nil
}

// BinaryOptions configures WriteBinary.
type BinaryOptions struct {
	// Compress wraps the payload in a zstd frame.
	Compress bool
}

// BinaryOption mutates BinaryOptions.
type BinaryOption func(*BinaryOptions)

// WithCompression toggles zstd compression of the payload.
func WithCompression(on bool) BinaryOption {
	return func(o *BinaryOptions) { o.Compress = on }
}

// WriteBinary writes g in the binary format, encoding attributes with
// attrs.
func WriteBinary[A comparable](w io.Writer, g *core.Graph[A], attrs AttrCodec[A], opts ...BinaryOption) error {
	var o BinaryOptions
	for _, opt := range opts {
		opt(&o)
	}

	nodes := g.Nodes()
	edges := g.Edges()
	position := make(map[core.NodeID]uint64, len(nodes))

	var payload bytes.Buffer
	for i, n := range nodes {
		position[n.ID] = uint64(i)
		encoded, err := attrs.Encode(n.Attr)
		if err != nil {
			return fmt.Errorf("binary write node %d: %w", n.ID, err)
		}
		if err := binary.Write(&payload, binary.LittleEndian, uint32(len(encoded))); err != nil {
			return fmt.Errorf("binary write: %w", err)
		}
		payload.Write(encoded)
	}
	for _, e := range edges {
		record := [3]uint64{position[e.Src], position[e.Dst], math.Float64bits(e.Weight)}
		if err := binary.Write(&payload, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("binary write: %w", err)
		}
	}

	data := payload.Bytes()
	flags := uint8(0)
	if g.IsDirected() {
		flags |= flagDirected
	}
	if o.Compress {
		compressed, err := compressPayload(data)
		if err != nil {
			return fmt.Errorf("binary write: %w", err)
		}
		data = compressed
		flags |= flagCompressed
	}

	header := struct {
		Magic   [4]byte
		Version uint8
		Flags   uint8
		Nodes   uint64
		Edges   uint64
	}{binaryMagic, binaryVersion, flags, uint64(len(nodes)), uint64(len(edges))}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("binary write: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("binary write: %w", err)
	}
	return nil
}

// ReadBinary rebuilds a store from a payload written by WriteBinary,
// decoding attributes with attrs.
func ReadBinary[A comparable](r io.Reader, attrs AttrCodec[A]) (*core.Graph[A], error) {
	var header struct {
		Magic   [4]byte
		Version uint8
		Flags   uint8
		Nodes   uint64
		Edges   uint64
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("binary header: %w", ErrCorruptPayload)
	}
	if header.Magic != binaryMagic {
		return nil, fmt.Errorf("binary magic %q: %w", header.Magic[:], ErrCorruptPayload)
	}
	if header.Version != binaryVersion {
		return nil, fmt.Errorf("binary version %d: %w", header.Version, ErrUnsupportedVersion)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("binary read: %w", err)
	}
	if header.Flags&flagCompressed != 0 {
		if data, err = decompressPayload(data); err != nil {
			return nil, fmt.Errorf("binary read: %w", err)
		}
	}

	g := core.NewGraph[A](core.WithDirected(header.Flags&flagDirected != 0))
	payload := bytes.NewReader(data)

	ids := make([]core.NodeID, header.Nodes)
	for i := range ids {
		var length uint32
		if err := binary.Read(payload, binary.LittleEndian, &length); err != nil {
			return nil, fmt.Errorf("binary node %d: %w", i, ErrCorruptPayload)
		}
		raw := make([]byte, length)
		if _, err := io.ReadFull(payload, raw); err != nil {
			return nil, fmt.Errorf("binary node %d: %w", i, ErrCorruptPayload)
		}
		attr, err := attrs.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("binary node %d: %w", i, err)
		}
		ids[i] = g.AddNode(attr)
	}

	for i := uint64(0); i < header.Edges; i++ {
		var record [3]uint64
		if err := binary.Read(payload, binary.LittleEndian, &record); err != nil {
			return nil, fmt.Errorf("binary edge %d: %w", i, ErrCorruptPayload)
		}
		src, dst := record[0], record[1]
		if src >= header.Nodes || dst >= header.Nodes {
			return nil, fmt.Errorf("binary edge %d references node %d/%d: %w",
				i, src, dst, ErrCorruptPayload)
		}
		weight := math.Float64frombits(record[2])
		if _, err := g.AddEdge(ids[src], ids[dst], weight); err != nil {
			return nil, fmt.Errorf("binary edge %d: %w", i, err)
		}
	}
	return g, nil
}

func compressPayload(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	out := enc.EncodeAll(data, nil)
	return out, enc.Close()
}

func decompressPayload(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd payload: %w", ErrCorruptPayload)
	}
	return out, nil
}
