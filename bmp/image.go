// Package bmp читает и пишет несжатые BMP-файлы с глубиной 8 бит
// (оттенки серого с фиксированной палитрой) и 24 бита (BGR).
package bmp

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
)

type ColorRGB struct {
	R, G, B byte
}

// Image владеет пиксельным буфером. Строки лежат сверху вниз без
// выравнивания, 24-битные пиксели хранятся в порядке B, G, R.
// Длина буфера всегда равна width*height*bitCount/8.
type Image struct {
	width    int
	height   int
	bitCount int
	data     []byte
}

// New создаёт пустое изображение, заполненное нулями.
func New(width, height, bitCount int) (*Image, error) {
	if err := validateGeometry(width, height, bitCount); err != nil {
		return nil, err
	}
	return &Image{
		width:    width,
		height:   height,
		bitCount: bitCount,
		data:     make([]byte, width*height*bitCount/8),
	}, nil
}

func validateGeometry(width, height, bitCount int) error {
	if bitCount != 8 && bitCount != 24 {
		return &FieldError{Field: "bit_count", Expected: "8 или 24", Actual: int64(bitCount)}
	}
	if width <= 0 {
		return &FieldError{Field: "width", Expected: "> 0", Actual: int64(width)}
	}
	if height <= 0 {
		return &FieldError{Field: "height", Expected: "> 0", Actual: int64(height)}
	}
	// В заголовке ширина и высота хранятся как int32.
	if width > math.MaxInt32 {
		return &FieldError{Field: "width", Expected: "<= " + strconv.Itoa(math.MaxInt32), Actual: int64(width)}
	}
	if height > math.MaxInt32 {
		return &FieldError{Field: "height", Expected: "<= " + strconv.Itoa(math.MaxInt32), Actual: int64(height)}
	}
	// Размер файла записывается в 32-битное поле.
	if size := logicalSize(width, height, bitCount); size > math.MaxUint32 {
		return &FieldError{Field: "size", Expected: "<= " + strconv.FormatUint(math.MaxUint32, 10), Actual: size}
	}
	return nil
}

// Open читает BMP-файл. Файл закрывается на любом пути выхода.
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Load работает как Open, но не возвращает ошибку: диагностика пишется
// в stderr, а вызывающий получает пустое изображение.
func Load(path string) *Image {
	img, err := Open(path)
	if err != nil {
		log.Printf("bmp: %v", err)
		return &Image{}
	}
	return img
}

// Decode читает изображение из потока. Физический размер определяется
// переходом в конец потока, чтение начинается с его начала.
func Decode(r io.ReadSeeker) (*Image, error) {
	physical, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return decode(r, physical, native)
}

func decode(r io.ReadSeeker, physical int64, host ByteOrder) (*Image, error) {
	fh, err := readFileHeader(r, host)
	if err != nil {
		return nil, err
	}
	ih, err := readInfoHeader(r, host)
	if err != nil {
		return nil, err
	}

	if fh.Type != Signature {
		return nil, &FieldError{Field: "signature", Expected: strconv.Itoa(Signature), Actual: int64(fh.Type)}
	}
	if ih.BitCount != 8 && ih.BitCount != 24 {
		return nil, &FieldError{Field: "bit_count", Expected: "8 или 24", Actual: int64(ih.BitCount)}
	}
	if ih.Size != InfoHeaderSize {
		return nil, &FieldError{Field: "header_size", Expected: strconv.Itoa(InfoHeaderSize), Actual: int64(ih.Size)}
	}
	if ih.Compression != BiRGB {
		return nil, &FieldError{Field: "compression", Expected: strconv.Itoa(BiRGB), Actual: int64(ih.Compression)}
	}

	width, height, bitCount := int(ih.Width), int(ih.Height), int(ih.BitCount)
	if err := validateGeometry(width, height, bitCount); err != nil {
		return nil, err
	}
	if logical := logicalSize(width, height, bitCount); logical != physical {
		return nil, &SizeError{Logical: logical, Physical: physical}
	}

	if bitCount == 8 {
		if err := skipPalette(r); err != nil {
			return nil, err
		}
	}
	data, err := readRows(bufio.NewReader(r), width, height, bitCount)
	if err != nil {
		return nil, err
	}

	return &Image{width: width, height: height, bitCount: bitCount, data: data}, nil
}

// Save записывает изображение в файл. Несогласованный буфер отклоняется
// до открытия файла.
func (img *Image) Save(path string) error {
	if err := img.check(); err != nil {
		return err
	}
	return writeFile(path, img.Encode)
}

// writeFile создаёт path и заполняет его через write. Если запись
// не удалась, недописанный файл удаляется.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bmp: не удалось открыть файл для записи: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Encode пишет заголовки, палитру (для 8 бит) и строки пикселей.
func (img *Image) Encode(w io.Writer) error {
	if err := img.check(); err != nil {
		return err
	}
	fh, ih := img.Headers()

	bw := bufio.NewWriter(w)
	if err := writeFileHeader(bw, fh, native); err != nil {
		return err
	}
	if err := writeInfoHeader(bw, ih, native); err != nil {
		return err
	}
	if img.bitCount == 8 {
		if err := writePalette(bw); err != nil {
			return err
		}
	}
	if err := writeRows(bw, img.data, img.width, img.height, img.bitCount); err != nil {
		return err
	}
	return bw.Flush()
}

func (img *Image) check() error {
	if err := validateGeometry(img.width, img.height, img.bitCount); err != nil {
		return fmt.Errorf("%w: %v", ErrBufferMismatch, err)
	}
	if want := img.width * img.height * img.BytesPerPixel(); len(img.data) != want {
		return fmt.Errorf("%w: длина %d, ожидалось %d", ErrBufferMismatch, len(img.data), want)
	}
	return nil
}

// Headers вычисляет оба заголовка по текущим размерам изображения.
func (img *Image) Headers() (FileHeader, InfoHeader) {
	stride := RowStride(img.width, img.bitCount)
	sizeImage := stride * img.height
	offset := dataOffset(img.bitCount)

	fh := FileHeader{
		Type:    Signature,
		Size:    uint32(offset + sizeImage),
		OffBits: uint32(offset),
	}
	ih := InfoHeader{
		Size:      InfoHeaderSize,
		Width:     int32(img.width),
		Height:    int32(img.height),
		Planes:    1,
		BitCount:  uint16(img.bitCount),
		SizeImage: uint32(sizeImage),
	}
	return fh, ih
}

func (img *Image) Width() int    { return img.width }
func (img *Image) Height() int   { return img.height }
func (img *Image) BitCount() int { return img.bitCount }

func (img *Image) BytesPerPixel() int { return img.bitCount / 8 }

// Empty сообщает, что изображение не загружено.
func (img *Image) Empty() bool { return len(img.data) == 0 }

// Data возвращает копию пиксельного буфера.
func (img *Image) Data() []byte {
	out := make([]byte, len(img.data))
	copy(out, img.data)
	return out
}

func (img *Image) rowBytes() int { return img.width * img.BytesPerPixel() }

// Row возвращает копию строки y (0 означает верхнюю строку).
func (img *Image) Row(y int) []byte {
	if y < 0 || y >= img.height {
		return nil
	}
	n := img.rowBytes()
	out := make([]byte, n)
	copy(out, img.data[y*n:(y+1)*n])
	return out
}

// SetRow заменяет строку y. Длина row должна быть ровно width*bytesPerPixel.
func (img *Image) SetRow(y int, row []byte) error {
	if y < 0 || y >= img.height {
		return fmt.Errorf("bmp: строка %d вне диапазона [0, %d)", y, img.height)
	}
	n := img.rowBytes()
	if len(row) != n {
		return fmt.Errorf("%w: строка длиной %d, ожидалось %d", ErrBufferMismatch, len(row), n)
	}
	copy(img.data[y*n:], row)
	return nil
}

// At возвращает цвет пикселя. Для 8-битного изображения все каналы
// равны яркости. За пределами изображения возвращается нулевой цвет.
func (img *Image) At(x, y int) ColorRGB {
	if x < 0 || y < 0 || x >= img.width || y >= img.height {
		return ColorRGB{}
	}
	i := (y*img.width + x) * img.BytesPerPixel()
	if img.bitCount == 8 {
		v := img.data[i]
		return ColorRGB{R: v, G: v, B: v}
	}
	return ColorRGB{R: img.data[i+2], G: img.data[i+1], B: img.data[i+0]}
}

// Set записывает цвет пикселя. Для 8-битного изображения сохраняется
// канал R как индекс палитры. Запись за пределами изображения игнорируется.
func (img *Image) Set(x, y int, c ColorRGB) {
	if x < 0 || y < 0 || x >= img.width || y >= img.height {
		return
	}
	i := (y*img.width + x) * img.BytesPerPixel()
	if img.bitCount == 8 {
		img.data[i] = c.R
		return
	}
	img.data[i+0] = c.B
	img.data[i+1] = c.G
	img.data[i+2] = c.R
}

// Exists сообщает, существует ли обычный файл по пути path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
