package main

const version = "bmpcodec 1.0.0"

const detailedHelp = `bmpcodec: чтение и запись несжатых BMP (8 бит оттенки серого, 24 бита BGR)

Использование:
    bmpcodec [-v] <команда> [параметры]

Команды:
    info  [--yaml] FILE              заголовки файла, длина строки и выравнивание
    new   -W N -H N [-d 8|24] -o OUT создать пустое изображение, заполненное нулями
    copy  [-o DIR] FILE...           прочитать и заново записать файлы
    check -e EXPR FILE               проверить выражение над полями заголовка
    show  FILE                       вывести изображение в терминал

Формат:
    Файл начинается с заголовка (14 байт, сигнатура "BM") и информационного
    заголовка (40 байт). Для 8 бит далее идёт палитра 256 x 4 байта; при записи
    она всегда заменяется шкалой серого i -> (i, i, i). Строки пикселей хранятся
    снизу вверх, каждая дополняется нулями до границы 4 байт:
        stride = ((width*bitCount + 31) &^ 31) >> 3
    Файл отклоняется, если его размер на диске не равен
    14 + 40 [+ 1024] + stride*height.

Выражения check:
    Доступны поля Signature, FileSize, OffBits, HeaderSize, Width, Height, Planes,
    BitCount, Compression, SizeImage, Stride, Padding, Valid и функция
    RowStride(width, bitCount). Пример:
        bmpcodec check -e "Valid && BitCount == 24 && Width <= 1024" photo.bmp
`
