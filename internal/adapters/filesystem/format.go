package filesystem

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"aacboard/internal/domain"
)

// itemPrefix marks a line that adds an item to the last declared category
const itemPrefix = ">"

// maxLineSize bounds a single line of a board file
const maxLineSize = 1024 * 1024

// Decode reads a board in the line format:
//
//	img/food/plate.png food
//	>img/food/fries.png french fries
//	img/clothing/hanger.png clothing
//	>img/clothing/shirt.png collared shirt
//
// A line without a leading ">" declares a category and makes it the target
// of the following ">" lines. The first space separates the identifier from
// the rest of the line. Lines with nothing after the identifier are skipped,
// as are ">" lines that come before any category.
func Decode(r io.Reader) (*domain.Board, error) {
	board := domain.NewBoard()
	var target *domain.Category

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		id, rest, ok := splitLine(scanner.Text())
		if !ok {
			continue
		}

		if itemID, isItem := strings.CutPrefix(id, itemPrefix); isItem {
			if target != nil {
				target.AddItem(itemID, rest)
			}
			continue
		}

		board.AddItem(id, rest)
		target, _ = board.Category(id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read board: %w", err)
	}

	board.Reset()
	return board, nil
}

// splitLine cuts a line at its first space. It reports false when the line
// has no second word, trailing spaces not counting.
func splitLine(line string) (id, rest string, ok bool) {
	if !strings.Contains(strings.TrimRight(line, " "), " ") {
		return "", "", false
	}
	id, rest, _ = strings.Cut(line, " ")
	return id, rest, true
}

// Encode writes every category of the board followed by its items, in
// insertion order. The current category of the board does not matter.
func Encode(w io.Writer, board *domain.Board) error {
	bw := bufio.NewWriter(w)

	for _, id := range board.CategoryIDs() {
		cat, _ := board.Category(id)
		if _, err := fmt.Fprintf(bw, "%s %s\n", id, cat.Name()); err != nil {
			return err
		}
		for _, item := range cat.Items() {
			if _, err := fmt.Fprintf(bw, "%s%s %s\n", itemPrefix, item.ID, item.Text); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
