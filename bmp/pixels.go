package bmp

import (
	"fmt"
	"io"
)

// RowStride возвращает длину строки на диске в байтах: ширина строки
// в битах округляется вверх до кратного 32, то есть до 4 байт.
func RowStride(width, bitCount int) int {
	return ((width*bitCount + 31) &^ 31) >> 3
}

// readRows читает height строк по stride байт. Первая строка файла
// становится последней строкой буфера, выравнивание отбрасывается.
func readRows(r io.Reader, width, height, bitCount int) ([]byte, error) {
	rowBytes := width * bitCount / 8
	stride := RowStride(width, bitCount)

	data := make([]byte, rowBytes*height)
	line := make([]byte, stride)
	for i := 0; i < height; i++ {
		if _, err := io.ReadFull(r, line); err != nil {
			return nil, fmt.Errorf("чтение строки %d: %w", i, err)
		}
		dst := (height - 1 - i) * rowBytes
		copy(data[dst:dst+rowBytes], line[:rowBytes])
	}
	return data, nil
}

// writeRows делает обратное к readRows: строки пишутся снизу вверх,
// каждая дополняется нулями до stride.
func writeRows(w io.Writer, data []byte, width, height, bitCount int) error {
	rowBytes := width * bitCount / 8
	stride := RowStride(width, bitCount)

	line := make([]byte, stride)
	for i := 0; i < height; i++ {
		src := (height - 1 - i) * rowBytes
		copy(line, data[src:src+rowBytes])
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("запись строки %d: %w", i, err)
		}
	}
	return nil
}

// grayPalette строит палитру из 256 оттенков серого: индекс i -> (i, i, i).
// Каждая запись хранится как B, G, R, 0.
func grayPalette() []byte {
	pal := make([]byte, PaletteSize)
	for i := 0; i < PaletteEntries; i++ {
		pal[i*4+0] = byte(i)
		pal[i*4+1] = byte(i)
		pal[i*4+2] = byte(i)
	}
	return pal
}

func writePalette(w io.Writer) error {
	if _, err := w.Write(grayPalette()); err != nil {
		return fmt.Errorf("запись палитры: %w", err)
	}
	return nil
}

// skipPalette пропускает палитру исходного файла, её содержимое не сохраняется.
func skipPalette(s io.Seeker) error {
	if _, err := s.Seek(PaletteSize, io.SeekCurrent); err != nil {
		return fmt.Errorf("пропуск палитры: %w", err)
	}
	return nil
}
