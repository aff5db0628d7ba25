package bmp

import (
	"bytes"
	"testing"
)

func TestRowStride(t *testing.T) {
	tests := []struct {
		width, bitCount int
		want            int
	}{
		{1, 24, 4},
		{2, 24, 8},
		{3, 24, 12},
		{4, 24, 12},
		{5, 24, 16},
		{1, 8, 4},
		{3, 8, 4},
		{4, 8, 4},
		{5, 8, 8},
	}
	for _, tt := range tests {
		if got := RowStride(tt.width, tt.bitCount); got != tt.want {
			t.Errorf("RowStride(%d, %d) = %d, want %d", tt.width, tt.bitCount, got, tt.want)
		}
	}
}

func TestReadRowsFlipsVertically(t *testing.T) {
	tests := []struct {
		name     string
		file     []byte
		width    int
		height   int
		bitCount int
		want     []byte
	}{
		{
			name:     "8 bit, padding dropped",
			file:     []byte{0, 0, 0, 9, 0xFF, 0xFF, 0xFF, 9},
			width:    3,
			height:   2,
			bitCount: 8,
			want:     []byte{0xFF, 0xFF, 0xFF, 0, 0, 0},
		},
		{
			name: "24 bit, three rows",
			file: []byte{
				1, 2, 3, 0,
				4, 5, 6, 0,
				7, 8, 9, 0,
			},
			width:    1,
			height:   3,
			bitCount: 24,
			want:     []byte{7, 8, 9, 4, 5, 6, 1, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readRows(bytes.NewReader(tt.file), tt.width, tt.height, tt.bitCount)
			if err != nil {
				t.Fatalf("readRows: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("readRows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadRowsTruncated(t *testing.T) {
	if _, err := readRows(bytes.NewReader(make([]byte, 5)), 3, 2, 8); err == nil {
		t.Error("readRows on truncated input: expected error")
	}
}

func TestWriteRowsPadsAndFlips(t *testing.T) {
	data := []byte{
		1, 2, 3, 4, 5, 6, // верхняя строка
		7, 8, 9, 10, 11, 12,
	}
	var buf bytes.Buffer
	if err := writeRows(&buf, data, 2, 2, 24); err != nil {
		t.Fatalf("writeRows: %v", err)
	}
	want := []byte{
		7, 8, 9, 10, 11, 12, 0, 0,
		1, 2, 3, 4, 5, 6, 0, 0,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("writeRows() = %v, want %v", buf.Bytes(), want)
	}
}

func TestWritePalette(t *testing.T) {
	var buf bytes.Buffer
	if err := writePalette(&buf); err != nil {
		t.Fatalf("writePalette: %v", err)
	}
	pal := buf.Bytes()
	if len(pal) != 1024 {
		t.Fatalf("palette length = %d, want 1024", len(pal))
	}
	for i := 0; i < PaletteEntries; i++ {
		entry := pal[i*4 : i*4+4]
		want := []byte{byte(i), byte(i), byte(i), 0}
		if !bytes.Equal(entry, want) {
			t.Fatalf("palette[%d] = %v, want %v", i, entry, want)
		}
	}
}
