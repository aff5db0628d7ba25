package bmp

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat оборачивается всеми ошибками проверки заголовков.
	ErrFormat = errors.New("bmp: неверный формат")

	// ErrBufferMismatch возвращается при попытке сохранить изображение,
	// у которого длина буфера не совпадает с width*height*bytesPerPixel.
	ErrBufferMismatch = errors.New("bmp: размер буфера не соответствует размерам изображения")
)

// FieldError сообщает, какое поле заголовка не прошло проверку.
type FieldError struct {
	Field    string
	Expected string
	Actual   int64
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("bmp: поле %s: ожидалось %s, получено %d", e.Field, e.Expected, e.Actual)
}

func (e *FieldError) Unwrap() error { return ErrFormat }

// SizeError возникает, когда размер файла на диске не совпадает
// с размером, вычисленным по заголовкам.
type SizeError struct {
	Logical  int64
	Physical int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("bmp: несовпадение логического и физического размера: логический %d, физический %d",
		e.Logical, e.Physical)
}

func (e *SizeError) Unwrap() error { return ErrFormat }
