package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Raimguzhinov/bmpcodec/bmp"
)

type CopyCommand struct {
	OutDir string `short:"o" long:"output-dir" description:"Каталог для результатов (по умолчанию рядом с исходным файлом)"`
	Args   struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *CopyCommand) Execute(args []string) error {
	return convertAll(c.Args.Files, c.OutDir)
}

type copyJob struct {
	in, out string
	img     *bmp.Image
}

// outputPath возвращает <имя>.copy.bmp в каталоге dir или рядом с исходным файлом.
func outputPath(in, dir string) string {
	name := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ".copy.bmp"
	if dir == "" {
		return filepath.Join(filepath.Dir(in), name)
	}
	return filepath.Join(dir, name)
}

// convertAll читает и заново записывает файлы конвейером из двух стадий.
// Ошибка одного файла не останавливает остальные.
func convertAll(files []string, outDir string) error {
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("не удалось создать каталог %s: %w", outDir, err)
		}
	}

	loadedCh := make(chan copyJob)
	doneCh := make(chan string)
	errCh := make(chan error, len(files))

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		defer close(loadedCh)
		for _, in := range files {
			img, err := bmp.Open(in)
			if err != nil {
				errCh <- err
				continue
			}
			loadedCh <- copyJob{in: in, out: outputPath(in, outDir), img: img}
		}
	}()

	go func() {
		defer wg.Done()
		defer close(doneCh)
		for job := range loadedCh {
			if err := job.img.Save(job.out); err != nil {
				errCh <- err
				continue
			}
			doneCh <- job.out
		}
	}()

	for out := range doneCh {
		log.Println("Файл успешно записан:", out)
	}
	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		log.Printf("Ошибка в конвейере: %v", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
