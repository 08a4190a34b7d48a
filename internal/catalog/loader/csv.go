package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strings"

	"restaurant-bot/internal/catalog"
)

var (
	delimiters  = []rune{',', ';', '|', '\t'}
	reLooseCell = regexp.MustCompile(`[;,|\t]`)
)

// sniffLines bounds how much of a file the delimiter detection looks at.
const sniffLines = 20

// DetectDelimiter picks the candidate delimiter that occurs on the most of
// the first lines, then by total count. Comma wins when nothing is found.
func DetectDelimiter(lines []string) rune {
	best, bestLines, bestTotal := ',', 0, 0
	for _, d := range delimiters {
		nLines, total := 0, 0
		for i, l := range lines {
			if i >= sniffLines {
				break
			}
			if c := strings.Count(l, string(d)); c > 0 {
				nLines++
				total += c
			}
		}
		if nLines > bestLines || (nLines == bestLines && total > bestTotal) {
			best, bestLines, bestTotal = d, nLines, total
		}
	}
	return best
}

// SplitRows splits text into rows of trimmed cells. A line the csv reader
// rejects, or reads as one cell although it holds the delimiter (an
// unterminated quote swallowed the rest of the line), is split loosely on any
// candidate delimiter instead.
func SplitRows(text string) [][]string {
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	delim := DetectDelimiter(lines)

	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		r := csv.NewReader(strings.NewReader(l))
		r.Comma = delim
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		cells, err := r.Read()
		if err != nil || (len(cells) == 1 && strings.ContainsRune(l, delim)) {
			cells = splitLoose(l)
		}
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, cells)
	}
	return rows
}

func splitLoose(line string) []string {
	cells := reLooseCell.Split(line, -1)
	for i, c := range cells {
		cells[i] = unquote(strings.TrimSpace(c))
	}
	return cells
}

// unquote drops an opening quote and an unpaired closing quote, then folds
// doubled quotes: `"Kopi ""O""` is `Kopi "O"`.
func unquote(c string) string {
	if !strings.HasPrefix(c, `"`) {
		return c
	}
	c = c[1:]
	trailing := len(c) - len(strings.TrimRight(c, `"`))
	if trailing%2 == 1 {
		c = c[:len(c)-1]
	}
	return strings.ReplaceAll(c, `""`, `"`)
}

func readRows(path string) ([][]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadCSV, err)
	}
	return SplitRows(string(b)), nil
}

// ReadPriceRows returns the raw rows of an auxiliary price source.
func ReadPriceRows(path string) ([][]string, error) {
	return readRows(path)
}

// ReadSupplementary reads a header-mapped catalog CSV. The name column is the
// first of name, item or dish; price and tags columns are optional.
func ReadSupplementary(path string) ([]catalog.Record, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	recs, err := ParseSupplementary(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// ParseSupplementary maps header-labelled rows to records. Rows too short to
// hold a name are skipped.
func ParseSupplementary(rows [][]string) ([]catalog.Record, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		h = strings.ToLower(strings.TrimSpace(h))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	nameCol := -1
	for _, k := range []string{"name", "item", "dish"} {
		if i, ok := cols[k]; ok {
			nameCol = i
			break
		}
	}
	if nameCol < 0 {
		return nil, ErrNoNameCol
	}
	priceCol, hasPrice := cols["price"]
	tagsCol, hasTags := cols["tags"]

	var out []catalog.Record
	for _, row := range rows[1:] {
		if nameCol >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameCol])
		if name == "" || strings.EqualFold(name, "nan") {
			continue
		}
		rec := catalog.Record{Name: name}
		if hasPrice && priceCol < len(row) {
			rec.Price = parsePrice(row[priceCol])
		}
		if hasTags && tagsCol < len(row) {
			if t := strings.TrimSpace(row[tagsCol]); t != "" && !strings.EqualFold(t, "nan") {
				rec.Tags = []string{t}
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
