package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Version bool `short:"v" long:"version" description:"Показать версию и выйти"`
}

func newParser(opts *Options) *flags.Parser {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true

	commands := []struct {
		name, short string
		data        interface{}
	}{
		{"info", "Показать заголовки BMP-файла", &InfoCommand{}},
		{"new", "Создать пустое изображение", &NewCommand{}},
		{"copy", "Прочитать и заново записать BMP-файлы", &CopyCommand{}},
		{"check", "Проверить выражение над полями заголовка", &CheckCommand{}},
		{"show", "Вывести изображение в терминал (только для маленьких изображений)", &ShowCommand{}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, "", c.data); err != nil {
			log.Fatalf("Ошибка регистрации команды %s: %v", c.name, err)
		}
	}
	return parser
}

func main() {
	var opts Options

	parser := newParser(&opts)
	_, err := parser.Parse()
	if opts.Version {
		fmt.Println(version)
		return
	}
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			if parser.Active == nil {
				fmt.Print(detailedHelp)
				fmt.Println()
			}
			fmt.Println(flagsErr.Message)
			return
		}
		log.Fatalf("Ошибка: %v", err)
	}
	if parser.Active == nil {
		fmt.Print(detailedHelp)
		os.Exit(1)
	}
}
