package mesh

import (
	"encoding/binary"
	"fmt"
	"io"
)

// dumpMagic identifies the binary mesh dump format.
const dumpMagic = 0x564d4801 // "VMH" + version 1

// WriteTo serializes the mesh in little-endian binary form: a magic/version
// word, vertex and index counts, then the raw arrays in declaration order.
func (m *Mesh) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	header := [3]uint32{dumpMagic, uint32(len(m.Vertices)), uint32(len(m.Indices))}
	if err := binary.Write(cw, binary.LittleEndian, header); err != nil {
		return cw.n, fmt.Errorf("writing mesh header: %w", err)
	}
	for i := range m.Vertices {
		if err := binary.Write(cw, binary.LittleEndian, &m.Vertices[i]); err != nil {
			return cw.n, fmt.Errorf("writing vertex %d: %w", i, err)
		}
	}
	if err := binary.Write(cw, binary.LittleEndian, m.Indices); err != nil {
		return cw.n, fmt.Errorf("writing indices: %w", err)
	}
	return cw.n, nil
}

// ReadMesh deserializes a mesh written by WriteTo.
func ReadMesh(r io.Reader) (*Mesh, error) {
	var header [3]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("reading mesh header: %w", err)
	}
	if header[0] != dumpMagic {
		return nil, fmt.Errorf("bad mesh dump magic %#x", header[0])
	}

	m := &Mesh{
		Vertices: make([]ExtendedVertex, header[1]),
		Indices:  make([]uint32, header[2]),
	}
	for i := range m.Vertices {
		if err := binary.Read(r, binary.LittleEndian, &m.Vertices[i]); err != nil {
			return nil, fmt.Errorf("reading vertex %d: %w", i, err)
		}
	}
	if err := binary.Read(r, binary.LittleEndian, m.Indices); err != nil {
		return nil, fmt.Errorf("reading indices: %w", err)
	}
	return m, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
