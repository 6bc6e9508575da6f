package board

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/sweeper/knowledge"
)

func parseHeader(line string) (height, width int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[1] != "board" {
		return 0, 0, fmt.Errorf("invalid syntax %q in header", line)
	}
	height, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("height not an int: %q", fields[2])
	}
	width, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, fmt.Errorf("width not an int: %q", fields[3])
	}
	return height, width, nil
}

// Parse parses a board description and returns the corresponding Board.
func Parse(r io.Reader) (*Board, error) {
	scanner := bufio.NewScanner(r)
	var (
		height, width int
		header        bool
		row           int
		mines         []knowledge.Cell
	)
	lineNb := 0
	for scanner.Scan() {
		lineNb++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}
		if line[0] == 'p' {
			if header {
				return nil, fmt.Errorf("line %d: duplicate header", lineNb)
			}
			var err error
			if height, width, err = parseHeader(line); err != nil {
				return nil, fmt.Errorf("line %d: %v", lineNb, err)
			}
			header = true
			continue
		}
		if !header {
			return nil, fmt.Errorf("line %d: row found before header", lineNb)
		}
		if row == height {
			return nil, fmt.Errorf("line %d: too many rows, expected %d", lineNb, height)
		}
		if len(line) != width {
			return nil, fmt.Errorf("line %d: expected %d cells, got %d", lineNb, width, len(line))
		}
		for col, b := range []byte(line) {
			switch b {
			case '.':
			case '*':
				mines = append(mines, knowledge.Cell{Row: row, Col: col})
			default:
				return nil, fmt.Errorf("line %d: invalid cell %q", lineNb, b)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read board: %v", err)
	}
	if !header {
		return nil, fmt.Errorf("missing header")
	}
	if row != height {
		return nil, fmt.Errorf("expected %d rows, got %d", height, row)
	}
	return New(height, width, mines)
}
