package bmp

import (
	"encoding/binary"
	"unsafe"
)

// ByteOrder описывает порядок байт платформы, на которой работает кодек.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// native вычисляется один раз при старте и дальше передаётся явно.
var native = hostByteOrder()

// hostByteOrder определяет порядок байт по раскладке числа 1 в памяти.
func hostByteOrder() ByteOrder {
	one := uint16(1)
	if *(*byte)(unsafe.Pointer(&one)) == 1 {
		return LittleEndian
	}
	return BigEndian
}

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// layout возвращает раскладку, в которой значения лежат в памяти хоста.
func (o ByteOrder) layout() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

func swap32(v uint32) uint32 {
	return v>>24 | (v>>8)&0xFF00 | (v<<8)&0xFF0000 | v<<24
}

// fieldDecoder последовательно разбирает поля заголовка из сырого буфера.
// На big-endian хосте каждое многобайтовое поле переворачивается,
// потому что на диске всегда little-endian.
type fieldDecoder struct {
	buf  []byte
	off  int
	host ByteOrder
}

func (d *fieldDecoder) uint16() uint16 {
	v := d.host.layout().Uint16(d.buf[d.off:])
	d.off += 2
	if d.host == BigEndian {
		v = swap16(v)
	}
	return v
}

func (d *fieldDecoder) uint32() uint32 {
	v := d.host.layout().Uint32(d.buf[d.off:])
	d.off += 4
	if d.host == BigEndian {
		v = swap32(v)
	}
	return v
}

type fieldEncoder struct {
	buf  []byte
	off  int
	host ByteOrder
}

func (e *fieldEncoder) putUint16(v uint16) {
	if e.host == BigEndian {
		v = swap16(v)
	}
	e.host.layout().PutUint16(e.buf[e.off:], v)
	e.off += 2
}

func (e *fieldEncoder) putUint32(v uint32) {
	if e.host == BigEndian {
		v = swap32(v)
	}
	e.host.layout().PutUint32(e.buf[e.off:], v)
	e.off += 4
}
