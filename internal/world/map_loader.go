package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// MapData contains the loaded map information
type MapData struct {
	Grid     *Grid
	StartX   int // Start tile, -1 when the map has no '+' marker
	StartY   int
	HasStart bool
}

// LoadMap loads a map from the specified file path
func LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	data, err := ParseMap(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mapPath, err)
	}
	return data, nil
}

// ParseMap reads map rows from r. Blank lines and lines starting with '#'
// are skipped; a single '+' marks the start tile and is stored as empty.
func ParseMap(r io.Reader) (*MapData, error) {
	var rows []string
	data := &MapData{StartX: -1, StartY: -1}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if x := strings.IndexByte(line, byte(TagStart)); x >= 0 {
			if data.HasStart || strings.Count(line, string(TagStart)) > 1 {
				return nil, fmt.Errorf("line %d: more than one start marker", lineNumber)
			}
			data.StartX, data.StartY, data.HasStart = x, len(rows), true
			line = strings.Replace(line, string(TagStart), string(TagEmpty), 1)
		}

		if len(rows) > 0 && len(line) != len(rows[0]) {
			return nil, fmt.Errorf("line %d has inconsistent width: expected %d, got %d", lineNumber, len(rows[0]), len(line))
		}
		rows = append(rows, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("map contains no valid map data")
	}

	grid, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}
	data.Grid = grid
	return data, nil
}
