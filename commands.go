package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/Raimguzhinov/bmpcodec/bmp"
)

type fileArg struct {
	File string `positional-arg-name:"FILE"`
}

// headerInfo хранит заголовки в плоском виде для вывода и выражений.
type headerInfo struct {
	File        string `yaml:"file"`
	Signature   uint16 `yaml:"signature"`
	FileSize    uint32 `yaml:"file_size"`
	OffBits     uint32 `yaml:"off_bits"`
	HeaderSize  uint32 `yaml:"header_size"`
	Width       int32  `yaml:"width"`
	Height      int32  `yaml:"height"`
	Planes      uint16 `yaml:"planes"`
	BitCount    uint16 `yaml:"bit_count"`
	Compression uint32 `yaml:"compression"`
	SizeImage   uint32 `yaml:"size_image"`
	Stride      int    `yaml:"stride"`
	Padding     int    `yaml:"padding"`
	Valid       bool   `yaml:"valid"`
}

// inspectFile читает заголовки как есть и отдельно проверяет, загружается ли файл.
func inspectFile(path string) (headerInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return headerInfo{}, err
	}
	defer f.Close()

	fh, ih, err := bmp.ReadHeaders(f)
	if err != nil {
		return headerInfo{}, fmt.Errorf("%s: %w", path, err)
	}

	stride := bmp.RowStride(int(ih.Width), int(ih.BitCount))
	_, openErr := bmp.Open(path)
	return headerInfo{
		File:        path,
		Signature:   fh.Type,
		FileSize:    fh.Size,
		OffBits:     fh.OffBits,
		HeaderSize:  ih.Size,
		Width:       ih.Width,
		Height:      ih.Height,
		Planes:      ih.Planes,
		BitCount:    ih.BitCount,
		Compression: ih.Compression,
		SizeImage:   ih.SizeImage,
		Stride:      stride,
		Padding:     stride - int(ih.Width)*int(ih.BitCount)/8,
		Valid:       openErr == nil,
	}, nil
}

type InfoCommand struct {
	YAML bool    `long:"yaml" description:"Вывести заголовки в формате YAML"`
	Args fileArg `positional-args:"yes" required:"yes"`
}

func (c *InfoCommand) Execute(args []string) error {
	return c.run(os.Stdout)
}

func (c *InfoCommand) run(w io.Writer) error {
	info, err := inspectFile(c.Args.File)
	if err != nil {
		return err
	}

	if c.YAML {
		out, err := yaml.Marshal(&info)
		if err != nil {
			return fmt.Errorf("не удалось сформировать YAML: %w", err)
		}
		_, err = w.Write(out)
		return err
	}

	fmt.Fprintf(w, "Filename: \t%v\n", info.File)
	fmt.Fprintf(w, "Filesize: \t%v bytes\n", info.FileSize)
	fmt.Fprintf(w, "Width: \t\t%v px\n", info.Width)
	fmt.Fprintf(w, "Height: \t%v px\n", info.Height)
	fmt.Fprintf(w, "BitCount: \t%v bits\n", info.BitCount)
	fmt.Fprintf(w, "PixelOffset: \t%v bytes\n", info.OffBits)
	fmt.Fprintf(w, "Stride: \t%v bytes\n", info.Stride)
	fmt.Fprintf(w, "Padding: \t%v bytes\n", info.Padding)
	fmt.Fprintf(w, "Valid: \t\t%v\n", info.Valid)
	return nil
}

type NewCommand struct {
	Width  int    `short:"W" long:"width" required:"yes" description:"Ширина в пикселях"`
	Height int    `short:"H" long:"height" required:"yes" description:"Высота в пикселях"`
	Depth  int    `short:"d" long:"depth" default:"24" choice:"8" choice:"24" description:"Глубина цвета"`
	Output string `short:"o" long:"output" required:"yes" description:"Имя выходного BMP-файла"`
}

func (c *NewCommand) Execute(args []string) error {
	img, err := bmp.New(c.Width, c.Height, c.Depth)
	if err != nil {
		return err
	}
	if err := img.Save(c.Output); err != nil {
		return err
	}
	log.Println("Файл успешно записан:", c.Output)
	return nil
}

type CheckCommand struct {
	Expr string  `short:"e" long:"expr" required:"yes" description:"Логическое выражение над полями заголовка"`
	Args fileArg `positional-args:"yes" required:"yes"`
}

func (c *CheckCommand) Execute(args []string) error {
	info, err := inspectFile(c.Args.File)
	if err != nil {
		return err
	}
	ok, err := evaluate(c.Expr, info)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: условие %q не выполнено", c.Args.File, c.Expr)
	}
	return nil
}

type ShowCommand struct {
	Args fileArg `positional-args:"yes" required:"yes"`
}

func (c *ShowCommand) Execute(args []string) error {
	img, err := bmp.Open(c.Args.File)
	if err != nil {
		return err
	}
	printPreview(os.Stdout, img)
	return nil
}
