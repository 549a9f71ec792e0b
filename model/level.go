package model

import (
	"encoding/csv"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// ParseMap reads a CSV map description. Each entry is either empty or "0" for an
// open cell, or a texture id with an optional orientation suffix: "7", "7h", "12c".
func ParseMap(r io.Reader) (*GridMap, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}

	rows := make([][]Cell, 0, len(records))
	for y, record := range records {
		row := make([]Cell, len(record))
		for x, field := range record {
			cell, err := parseCell(field)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d) %q: %w", x, y, field, err)
			}
			row[x] = cell
		}
		rows = append(rows, row)
	}

	return NewGridMap(rows)
}

func parseCell(field string) (Cell, error) {
	field = strings.TrimSpace(field)
	if field == "" || field == "0" {
		return Cell{}, nil
	}

	orientation := Vertical
	switch last := field[len(field)-1]; last {
	case 'v', 'h', 'c':
		orientation = Orientation(last)
		field = field[:len(field)-1]
	}

	id, err := strconv.Atoi(field)
	if err != nil || id < 0 {
		return Cell{}, ErrBadCell
	}
	if id == 0 {
		return Cell{}, nil
	}

	return Cell{Solid: true, TextureID: id, Orientation: orientation}, nil
}

// LoadMap loads a map file. CSV and text files are parsed with ParseMap, image
// files with MapFromImage.
func LoadMap(path string) (*GridMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".bmp":
		img, _, err := image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("decoding map image %s: %w", path, err)
		}
		return MapFromImage(img)
	default:
		return ParseMap(file)
	}
}

var openColor = color.RGBA{255, 255, 255, 255}

// MapFromImage builds a map from an image, one pixel per cell. White or
// transparent pixels are open; any other pixel is a solid cell whose texture id
// is its red channel (0 maps to 1).
func MapFromImage(img image.Image) (*GridMap, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	rows := make([][]Cell, height)
	for y := 0; y < height; y++ {
		rows[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			if c == openColor || c.A == 0 {
				continue
			}

			id := int(c.R)
			if id == 0 {
				id = 1
			}
			rows[y][x] = Cell{Solid: true, TextureID: id, Orientation: Vertical}
		}
	}

	return NewGridMap(rows)
}
