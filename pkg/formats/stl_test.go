package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// createTestSTL creates a binary STL file with the given facets.
func createTestSTL(name string, facets []STLFacet) []byte {
	buf := new(bytes.Buffer)

	header := make([]byte, STLHeaderSize)
	copy(header, name)
	buf.Write(header)

	binary.Write(buf, binary.LittleEndian, uint32(len(facets)))
	for _, f := range facets {
		for _, c := range f.Normal {
			binary.Write(buf, binary.LittleEndian, c)
		}
		for _, v := range f.Vertices {
			for _, c := range v {
				binary.Write(buf, binary.LittleEndian, c)
			}
		}
		binary.Write(buf, binary.LittleEndian, f.Attribute)
	}

	return buf.Bytes()
}

var testFacets = []STLFacet{
	{
		Normal:   [3]float32{0, 0, 1},
		Vertices: [3][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	},
	{
		Normal:    [3]float32{0, 0, 1},
		Vertices:  [3][3]float32{{1, 0, 0}, {1, 1, 0}, {0, 1, 0.5}},
		Attribute: 7,
	},
}

func TestParseSTL_Binary(t *testing.T) {
	data := createTestSTL("lithophane_flat", testFacets)
	if len(data) != 84+2*50 {
		t.Fatalf("fixture size %d", len(data))
	}

	s, err := ParseSTL(data)
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}
	if s.Format != STLBinary {
		t.Errorf("expected binary, got %v", s.Format)
	}
	if s.Name != "lithophane_flat" {
		t.Errorf("expected name lithophane_flat, got %q", s.Name)
	}
	if len(s.Facets) != 2 {
		t.Fatalf("expected 2 facets, got %d", len(s.Facets))
	}
	if s.Facets[1] != testFacets[1] {
		t.Errorf("facet 1 = %+v, want %+v", s.Facets[1], testFacets[1])
	}
}

func TestParseSTL_BinaryWithSolidHeader(t *testing.T) {
	// Some exporters start binary headers with "solid"; the size decides.
	data := createTestSTL("solid exported by cad", testFacets)

	s, err := ParseSTL(data)
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}
	if s.Format != STLBinary || len(s.Facets) != 2 {
		t.Errorf("expected binary with 2 facets, got %v with %d", s.Format, len(s.Facets))
	}
}

func TestParseSTL_Truncated(t *testing.T) {
	data := createTestSTL("x", testFacets)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", data[:40]},
		{"missing facet", data[:84+50]},
		{"partial facet", data[:len(data)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSTL(tt.data)
			if !errors.Is(err, ErrTruncatedSTL) {
				t.Errorf("expected ErrTruncatedSTL, got %v", err)
			}
		})
	}
}

func TestWriteBinary(t *testing.T) {
	s := &STL{Name: "lithophane_prism", Facets: testFacets}

	var buf bytes.Buffer
	if err := s.WriteBinary(&buf); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}

	want := createTestSTL("lithophane_prism", testFacets)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("binary output differs from reference layout (%d vs %d bytes)", buf.Len(), len(want))
	}
}

func TestWriteBinaryEmpty(t *testing.T) {
	data, err := (&STL{Name: "empty"}).Encode(STLBinary)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 84 {
		t.Fatalf("expected 84 bytes, got %d", len(data))
	}
	s, err := ParseSTL(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Facets) != 0 || s.Name != "empty" {
		t.Errorf("unexpected %+v", s)
	}
}

func TestWriteASCII(t *testing.T) {
	s := &STL{Name: "my lamp", Facets: testFacets[:1]}

	data, err := s.Encode(STLASCII)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "solid my_lamp\n") {
		t.Errorf("unexpected first line in %q", text)
	}
	if !strings.HasSuffix(text, "endsolid my_lamp\n") {
		t.Errorf("unexpected last line in %q", text)
	}
	if got := strings.Count(text, "vertex "); got != 3 {
		t.Errorf("expected 3 vertex lines, got %d", got)
	}
	if !strings.Contains(text, "facet normal 0e+00 0e+00 1e+00\n") {
		t.Errorf("missing facet normal line in %q", text)
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	in := &STL{Name: "round_trip", Facets: []STLFacet{
		{
			Normal:   [3]float32{0.6, 0.8, 0},
			Vertices: [3][3]float32{{1.25, -3.5, 0.1}, {40.4, 0, 1e-7}, {-0.3, 100, 2.75}},
		},
	}}

	data, err := in.Encode(STLASCII)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ParseSTL(data)
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}
	if out.Format != STLASCII || out.Name != "round_trip" {
		t.Errorf("unexpected header %v %q", out.Format, out.Name)
	}
	if len(out.Facets) != 1 || out.Facets[0] != in.Facets[0] {
		t.Errorf("facets = %+v, want %+v", out.Facets, in.Facets)
	}
}

func TestParseSTL_ASCIIErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{
			name: "missing endsolid",
			text: "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nvertex 0 1 0\nendloop\nendfacet\n",
			want: ErrTruncatedSTL,
		},
		{
			name: "bad number",
			text: "solid x\nfacet normal 0 zero 1\n",
			want: ErrInvalidSTL,
		},
		{
			name: "unexpected keyword",
			text: "solid x\nvertex 0 0 0\nendsolid x\n",
			want: ErrInvalidSTL,
		},
		{
			name: "two vertices",
			text: "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\nendsolid x\n",
			want: ErrInvalidSTL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSTL([]byte(tt.text))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseSTL_ASCIICaseAndWhitespace(t *testing.T) {
	text := "  SOLID Part\r\n FACET NORMAL 0 0 1\r\n  OUTER LOOP\r\n" +
		"   VERTEX 0 0 0\r\n   VERTEX 1 0 0\r\n   VERTEX 0 1 0\r\n  ENDLOOP\r\n ENDFACET\r\nENDSOLID Part\r\n"

	s, err := ParseSTL([]byte(text))
	if err != nil {
		t.Fatalf("ParseSTL failed: %v", err)
	}
	if s.Name != "Part" || len(s.Facets) != 1 {
		t.Errorf("unexpected %q with %d facets", s.Name, len(s.Facets))
	}
}

func TestSTLBounds(t *testing.T) {
	s := &STL{Facets: testFacets}
	min, max := s.Bounds()
	if min != [3]float32{0, 0, 0} || max != [3]float32{1, 1, 0.5} {
		t.Errorf("bounds = %v..%v", min, max)
	}

	min, max = (&STL{}).Bounds()
	if min != [3]float32{} || max != [3]float32{} {
		t.Errorf("empty bounds = %v..%v", min, max)
	}
}

func TestParseSTLFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    STLFormat
		wantErr bool
	}{
		{"binary", STLBinary, false},
		{"ASCII", STLASCII, false},
		{"", STLBinary, false},
		{"obj", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSTLFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSTLFormat(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSTLFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSaveAndLoadSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.stl")
	in := &STL{Name: "disk", Facets: testFacets}

	if err := SaveSTL(in, path, STLBinary); err != nil {
		t.Fatalf("SaveSTL failed: %v", err)
	}
	out, err := LoadSTL(path)
	if err != nil {
		t.Fatalf("LoadSTL failed: %v", err)
	}
	if len(out.Facets) != 2 || out.Name != "disk" {
		t.Errorf("unexpected %q with %d facets", out.Name, len(out.Facets))
	}
}
