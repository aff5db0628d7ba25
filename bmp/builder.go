package bmp

import "fmt"

// FromPlanes собирает 24-битное изображение из трёх отдельных цветовых
// плоскостей по width*height байт, строки сверху вниз.
func FromPlanes(width, height int, red, green, blue []byte) (*Image, error) {
	img, err := New(width, height, 24)
	if err != nil {
		return nil, err
	}
	n := width * height
	planes := []struct {
		name string
		pix  []byte
	}{{"red", red}, {"green", green}, {"blue", blue}}
	for _, p := range planes {
		if len(p.pix) != n {
			return nil, fmt.Errorf("%w: плоскость %s длиной %d, ожидалось %d", ErrBufferMismatch, p.name, len(p.pix), n)
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			img.Set(x, y, ColorRGB{R: red[i], G: green[i], B: blue[i]})
		}
	}
	return img, nil
}

// FromBGR собирает 24-битное изображение из плоского буфера B, G, R без выравнивания.
func FromBGR(width, height int, bgr []byte) (*Image, error) {
	return fromRows(width, height, 24, bgr)
}

// FromGray собирает 8-битное изображение из буфера яркостей.
func FromGray(width, height int, gray []byte) (*Image, error) {
	return fromRows(width, height, 8, gray)
}

func fromRows(width, height, bitCount int, buf []byte) (*Image, error) {
	img, err := New(width, height, bitCount)
	if err != nil {
		return nil, err
	}
	n := img.rowBytes()
	if len(buf) != n*height {
		return nil, fmt.Errorf("%w: буфер длиной %d, ожидалось %d", ErrBufferMismatch, len(buf), n*height)
	}
	for y := 0; y < height; y++ {
		if err := img.SetRow(y, buf[y*n:(y+1)*n]); err != nil {
			return nil, err
		}
	}
	return img, nil
}
