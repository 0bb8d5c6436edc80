// Package formats encodes and decodes STL triangle mesh files.
package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/lithophane/pkg/encoding"
)

// STL format errors.
var (
	ErrTruncatedSTL = errors.New("truncated STL data")
	ErrInvalidSTL   = errors.New("invalid STL data")
)

// Binary STL layout.
const (
	STLHeaderSize = 80
	stlCountSize  = 4
	stlFacetSize  = 50 // normal + 3 vertices as float32, uint16 attribute
)

// STLFormat selects the STL flavour.
type STLFormat int

const (
	STLBinary STLFormat = iota
	STLASCII
)

// String returns "binary" or "ascii".
func (f STLFormat) String() string {
	switch f {
	case STLBinary:
		return "binary"
	case STLASCII:
		return "ascii"
	}
	return fmt.Sprintf("STLFormat(%d)", int(f))
}

// ParseSTLFormat parses "binary" or "ascii".
func ParseSTLFormat(s string) (STLFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "":
		return STLBinary, nil
	case "ascii":
		return STLASCII, nil
	}
	return 0, fmt.Errorf("unknown STL format %q (want binary or ascii)", s)
}

// STLFacet is one triangle. Its in-memory layout matches the 50-byte
// binary record, so slices of facets are read and written directly.
type STLFacet struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// STL represents a parsed or to-be-written STL file.
type STL struct {
	Name   string
	Format STLFormat
	Facets []STLFacet
}

// Bounds returns the axis-aligned box of every facet vertex.
// Returns zero vectors for an empty file.
func (s *STL) Bounds() (min, max [3]float32) {
	if len(s.Facets) == 0 {
		return min, max
	}
	min = s.Facets[0].Vertices[0]
	max = min
	for _, f := range s.Facets {
		for _, v := range f.Vertices {
			for c := 0; c < 3; c++ {
				if v[c] < min[c] {
					min[c] = v[c]
				}
				if v[c] > max[c] {
					max[c] = v[c]
				}
			}
		}
	}
	return min, max
}

// WriteBinary writes the binary STL encoding.
func (s *STL) WriteBinary(w io.Writer) error {
	var header struct {
		H     [STLHeaderSize]byte
		Count uint32
	}
	copy(header.H[:], encoding.StringToFixed(s.Name, STLHeaderSize))
	header.Count = uint32(len(s.Facets))

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("writing STL header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, s.Facets); err != nil {
		return fmt.Errorf("writing STL facets: %w", err)
	}
	return bw.Flush()
}

// WriteASCII writes the ASCII STL encoding.
func (s *STL) WriteASCII(w io.Writer) error {
	name := encoding.SolidName(s.Name)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, f := range s.Facets {
		fmt.Fprintf(bw, "  facet normal %s\n", formatTriple(f.Normal))
		bw.WriteString("    outer loop\n")
		for _, v := range f.Vertices {
			fmt.Fprintf(bw, "      vertex %s\n", formatTriple(v))
		}
		bw.WriteString("    endloop\n")
		bw.WriteString("  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	return bw.Flush()
}

// Write writes s in the given format.
func (s *STL) Write(w io.Writer, format STLFormat) error {
	if format == STLASCII {
		return s.WriteASCII(w)
	}
	return s.WriteBinary(w)
}

// Encode returns s encoded in the given format.
func (s *STL) Encode(format STLFormat) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Write(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveSTL writes s to path in the given format.
func SaveSTL(s *STL, path string, format STLFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Write(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatTriple(v [3]float32) string {
	return formatFloat(v[0]) + " " + formatFloat(v[1]) + " " + formatFloat(v[2])
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'e', -1, 32)
}

// LoadSTL reads and parses an STL file from disk.
func LoadSTL(path string) (*STL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSTL(data)
}

// ParseSTL parses an STL file from raw bytes, detecting the flavour.
// A file whose size matches its binary facet count is binary even when
// the header starts with "solid".
func ParseSTL(data []byte) (*STL, error) {
	if isBinarySTL(data) {
		return parseBinarySTL(data)
	}
	if text := bytes.TrimLeft(data, " \t\r\n"); len(text) >= 5 && bytes.EqualFold(text[:5], []byte("solid")) {
		return parseASCIISTL(data)
	}
	return parseBinarySTL(data)
}

func isBinarySTL(data []byte) bool {
	if len(data) < STLHeaderSize+stlCountSize {
		return false
	}
	count := binary.LittleEndian.Uint32(data[STLHeaderSize:])
	return uint64(len(data)) == STLHeaderSize+stlCountSize+uint64(count)*stlFacetSize
}

func parseBinarySTL(data []byte) (*STL, error) {
	if len(data) < STLHeaderSize+stlCountSize {
		return nil, fmt.Errorf("%w: %d bytes, need %d for header", ErrTruncatedSTL, len(data), STLHeaderSize+stlCountSize)
	}

	s := &STL{
		Name:   encoding.FixedStringToString(data[:STLHeaderSize]),
		Format: STLBinary,
	}

	count := binary.LittleEndian.Uint32(data[STLHeaderSize:])
	need := STLHeaderSize + stlCountSize + uint64(count)*stlFacetSize
	if uint64(len(data)) < need {
		return nil, fmt.Errorf("%w: %d facets need %d bytes, have %d", ErrTruncatedSTL, count, need, len(data))
	}

	s.Facets = make([]STLFacet, count)
	r := bytes.NewReader(data[STLHeaderSize+stlCountSize:])
	if err := binary.Read(r, binary.LittleEndian, s.Facets); err != nil {
		return nil, fmt.Errorf("%w: reading facets: %v", ErrTruncatedSTL, err)
	}

	return s, nil
}

// asciiParser walks the whitespace separated tokens of an ASCII STL body.
type asciiParser struct {
	tokens []string
	pos    int
}

func (p *asciiParser) next() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *asciiParser) expect(words ...string) error {
	for _, want := range words {
		tok, ok := p.next()
		if !ok {
			return fmt.Errorf("%w: expected %q", ErrTruncatedSTL, want)
		}
		if !strings.EqualFold(tok, want) {
			return fmt.Errorf("%w: expected %q, got %q", ErrInvalidSTL, want, tok)
		}
	}
	return nil
}

func (p *asciiParser) triple() ([3]float32, error) {
	var v [3]float32
	for c := range v {
		tok, ok := p.next()
		if !ok {
			return v, fmt.Errorf("%w: expected number", ErrTruncatedSTL)
		}
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return v, fmt.Errorf("%w: bad number %q", ErrInvalidSTL, tok)
		}
		v[c] = float32(f)
	}
	return v, nil
}

func parseASCIISTL(data []byte) (*STL, error) {
	text := strings.TrimLeft(string(data), " \t\r\n")

	// The solid name is the remainder of the first line.
	first, body, _ := strings.Cut(text, "\n")
	fields := strings.Fields(first)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "solid") {
		return nil, fmt.Errorf("%w: missing solid keyword", ErrInvalidSTL)
	}

	s := &STL{
		Name:   strings.Join(fields[1:], " "),
		Format: STLASCII,
	}

	p := &asciiParser{tokens: strings.Fields(body)}
	for {
		tok, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("%w: missing endsolid", ErrTruncatedSTL)
		}
		switch strings.ToLower(tok) {
		case "endsolid":
			return s, nil
		case "facet":
			facet, err := p.facet()
			if err != nil {
				return nil, fmt.Errorf("facet %d: %w", len(s.Facets), err)
			}
			s.Facets = append(s.Facets, facet)
		default:
			return nil, fmt.Errorf("%w: unexpected token %q", ErrInvalidSTL, tok)
		}
	}
}

func (p *asciiParser) facet() (STLFacet, error) {
	var f STLFacet
	var err error

	if err = p.expect("normal"); err != nil {
		return f, err
	}
	if f.Normal, err = p.triple(); err != nil {
		return f, err
	}
	if err = p.expect("outer", "loop"); err != nil {
		return f, err
	}
	for i := range f.Vertices {
		if err = p.expect("vertex"); err != nil {
			return f, err
		}
		if f.Vertices[i], err = p.triple(); err != nil {
			return f, err
		}
	}
	if err = p.expect("endloop", "endfacet"); err != nil {
		return f, err
	}
	return f, nil
}
