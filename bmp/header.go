package bmp

import (
	"fmt"
	"io"
)

const (
	Signature      = 0x4D42 // "BM" в little-endian, 19778
	FileHeaderSize = 14
	InfoHeaderSize = 40
	PaletteEntries = 256
	PaletteSize    = PaletteEntries * 4
	BiRGB          = 0
)

// FileHeader соответствует BITMAPFILEHEADER, на диске ровно 14 байт.
type FileHeader struct {
	Type      uint16 // сигнатура, должна быть Signature
	Size      uint32 // полный размер файла в байтах
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // смещение пиксельных данных от начала файла
}

// InfoHeader соответствует BITMAPINFOHEADER, на диске ровно 40 байт.
type InfoHeader struct {
	Size          uint32 // размер структуры, для этого кодека всегда 40
	Width         int32
	Height        int32 // только положительная, строки хранятся снизу вверх
	Planes        uint16
	BitCount      uint16 // 8 или 24
	Compression   uint32 // только BiRGB
	SizeImage     uint32 // RowStride(Width, BitCount) * Height
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

func readFileHeader(r io.Reader, host ByteOrder) (FileHeader, error) {
	var buf [FileHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return FileHeader{}, fmt.Errorf("чтение заголовка файла: %w", err)
	}

	d := fieldDecoder{buf: buf[:], host: host}
	var h FileHeader
	h.Type = d.uint16()
	h.Size = d.uint32()
	h.Reserved1 = d.uint16()
	h.Reserved2 = d.uint16()
	h.OffBits = d.uint32()
	return h, nil
}

func writeFileHeader(w io.Writer, h FileHeader, host ByteOrder) error {
	var buf [FileHeaderSize]byte
	e := fieldEncoder{buf: buf[:], host: host}
	e.putUint16(h.Type)
	e.putUint32(h.Size)
	e.putUint16(h.Reserved1)
	e.putUint16(h.Reserved2)
	e.putUint32(h.OffBits)

	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("запись заголовка файла: %w", err)
	}
	return nil
}

func readInfoHeader(r io.Reader, host ByteOrder) (InfoHeader, error) {
	var buf [InfoHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return InfoHeader{}, fmt.Errorf("чтение информационного заголовка: %w", err)
	}

	d := fieldDecoder{buf: buf[:], host: host}
	var h InfoHeader
	h.Size = d.uint32()
	h.Width = int32(d.uint32())
	h.Height = int32(d.uint32())
	h.Planes = d.uint16()
	h.BitCount = d.uint16()
	h.Compression = d.uint32()
	h.SizeImage = d.uint32()
	h.XPelsPerMeter = int32(d.uint32())
	h.YPelsPerMeter = int32(d.uint32())
	h.ClrUsed = d.uint32()
	h.ClrImportant = d.uint32()
	return h, nil
}

func writeInfoHeader(w io.Writer, h InfoHeader, host ByteOrder) error {
	var buf [InfoHeaderSize]byte
	e := fieldEncoder{buf: buf[:], host: host}
	e.putUint32(h.Size)
	e.putUint32(uint32(h.Width))
	e.putUint32(uint32(h.Height))
	e.putUint16(h.Planes)
	e.putUint16(h.BitCount)
	e.putUint32(h.Compression)
	e.putUint32(h.SizeImage)
	e.putUint32(uint32(h.XPelsPerMeter))
	e.putUint32(uint32(h.YPelsPerMeter))
	e.putUint32(h.ClrUsed)
	e.putUint32(h.ClrImportant)

	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("запись информационного заголовка: %w", err)
	}
	return nil
}

// dataOffset возвращает смещение пикселей: заголовки плюс палитра для 8 бит.
func dataOffset(bitCount int) int {
	off := FileHeaderSize + InfoHeaderSize
	if bitCount == 8 {
		off += PaletteSize
	}
	return off
}

// logicalSize возвращает размер файла, который должен получиться при данных размерах.
func logicalSize(width, height, bitCount int) int64 {
	return int64(dataOffset(bitCount)) + int64(RowStride(width, bitCount))*int64(height)
}

// ReadHeaders читает оба заголовка без проверки их содержимого.
func ReadHeaders(r io.Reader) (FileHeader, InfoHeader, error) {
	fh, err := readFileHeader(r, native)
	if err != nil {
		return FileHeader{}, InfoHeader{}, err
	}
	ih, err := readInfoHeader(r, native)
	if err != nil {
		return FileHeader{}, InfoHeader{}, err
	}
	return fh, ih, nil
}
