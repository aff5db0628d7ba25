package bmp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"reflect"
	"testing"
)

var (
	sampleFileHeader = FileHeader{Type: Signature, Size: 70, OffBits: 54}
	sampleInfoHeader = InfoHeader{
		Size:          InfoHeaderSize,
		Width:         3,
		Height:        2,
		Planes:        1,
		BitCount:      24,
		SizeImage:     24,
		XPelsPerMeter: 2835,
		YPelsPerMeter: -2835,
		ClrUsed:       0x01020304,
		ClrImportant:  7,
	}
)

func TestHostByteOrder(t *testing.T) {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	want := BigEndian
	if b[0] == 1 {
		want = LittleEndian
	}
	if got := hostByteOrder(); got != want {
		t.Errorf("hostByteOrder() = %v, want %v", got, want)
	}
	if native != want {
		t.Errorf("native = %v, want %v", native, want)
	}
}

func TestSwap(t *testing.T) {
	if got := swap16(0x1234); got != 0x3412 {
		t.Errorf("swap16(0x1234) = %#x", got)
	}
	if got := swap32(0x11223344); got != 0x44332211 {
		t.Errorf("swap32(0x11223344) = %#x", got)
	}
}

func TestFileHeaderLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := writeFileHeader(&buf, sampleFileHeader, native); err != nil {
		t.Fatalf("writeFileHeader: %v", err)
	}
	want := []byte{
		'B', 'M',
		70, 0, 0, 0,
		0, 0, 0, 0,
		54, 0, 0, 0,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("file header = %v, want %v", buf.Bytes(), want)
	}
}

func TestInfoHeaderLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := writeInfoHeader(&buf, sampleInfoHeader, native); err != nil {
		t.Fatalf("writeInfoHeader: %v", err)
	}
	b := buf.Bytes()
	if len(b) != InfoHeaderSize {
		t.Fatalf("len = %d, want %d", len(b), InfoHeaderSize)
	}

	checks := []struct {
		name string
		off  int
		size int
		want uint32
	}{
		{"size", 0, 4, 40},
		{"width", 4, 4, 3},
		{"height", 8, 4, 2},
		{"planes", 12, 2, 1},
		{"bit_count", 14, 2, 24},
		{"compression", 16, 4, 0},
		{"size_image", 20, 4, 24},
		{"x_pels_per_meter", 24, 4, 2835},
		{"y_pels_per_meter", 28, 4, uint32(0xFFFFF4ED)},
		{"clr_used", 32, 4, 0x01020304},
		{"clr_important", 36, 4, 7},
	}
	for _, c := range checks {
		var got uint32
		if c.size == 2 {
			got = uint32(binary.LittleEndian.Uint16(b[c.off:]))
		} else {
			got = binary.LittleEndian.Uint32(b[c.off:])
		}
		if got != c.want {
			t.Errorf("%s at %d = %#x, want %#x", c.name, c.off, got, c.want)
		}
	}
}

// Запись на имитированном big-endian хосте должна давать те же байты.
func TestHeadersEndiannessNeutral(t *testing.T) {
	encode := func(host ByteOrder) []byte {
		var buf bytes.Buffer
		if err := writeFileHeader(&buf, sampleFileHeader, host); err != nil {
			t.Fatalf("writeFileHeader(%v): %v", host, err)
		}
		if err := writeInfoHeader(&buf, sampleInfoHeader, host); err != nil {
			t.Fatalf("writeInfoHeader(%v): %v", host, err)
		}
		return buf.Bytes()
	}

	little := encode(LittleEndian)
	big := encode(BigEndian)
	if !bytes.Equal(little, big) {
		t.Fatalf("encoded headers differ:\nlittle: %v\nbig:    %v", little, big)
	}

	for _, host := range []ByteOrder{LittleEndian, BigEndian} {
		t.Run(host.String(), func(t *testing.T) {
			r := bytes.NewReader(little)
			fh, err := readFileHeader(r, host)
			if err != nil {
				t.Fatalf("readFileHeader: %v", err)
			}
			ih, err := readInfoHeader(r, host)
			if err != nil {
				t.Fatalf("readInfoHeader: %v", err)
			}
			if !reflect.DeepEqual(fh, sampleFileHeader) {
				t.Errorf("file header = %+v, want %+v", fh, sampleFileHeader)
			}
			if !reflect.DeepEqual(ih, sampleInfoHeader) {
				t.Errorf("info header = %+v, want %+v", ih, sampleInfoHeader)
			}
		})
	}
}

func TestReadHeaderShort(t *testing.T) {
	_, err := readFileHeader(bytes.NewReader([]byte{'B', 'M', 1}), native)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("readFileHeader err = %v, want io.ErrUnexpectedEOF", err)
	}
	_, err = readInfoHeader(bytes.NewReader(make([]byte, 39)), native)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("readInfoHeader err = %v, want io.ErrUnexpectedEOF", err)
	}
}
