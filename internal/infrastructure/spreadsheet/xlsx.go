// Package spreadsheet reads uploaded workbooks into loosely-typed import rows.
package spreadsheet

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/importer"
	"github.com/manicuristapro/salon-system/internal/core/ports"
)

// ReadRows parses the first sheet of an xlsx workbook. The first row holds the
// column names; each following non-empty row becomes one ImportRow.
//
// Cells are read raw. A date cell whose number format is a date becomes a
// time.Time; a plain number in the date column stays a spreadsheet serial
// (float64). A time cell holding a day fraction is rendered as HH:MM. Every
// other cell is passed through as its text.
func ReadRows(r io.Reader) ([]ports.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: not a readable xlsx workbook: %v", domain.ErrImportFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrImportFormat)
	}

	grid, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", domain.ErrImportFormat, sheets[0], err)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", domain.ErrImportFormat, sheets[0])
	}

	var date1904 bool
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	formats := newDateFormats(f)

	header := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]ports.ImportRow, 0, len(grid)-1)
	for n, cells := range grid[1:] {
		row := make(ports.ImportRow)
		for i, cell := range cells {
			if i >= len(header) || header[i] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v := cellValue(header[i], cell)
			if serial, ok := v.(float64); ok && header[i] == importer.ColumnDate {
				ref, err := excelize.CoordinatesToCellName(i+1, n+2)
				if err == nil && formats.isDate(sheets[0], ref) {
					if t, err := excelize.ExcelDateToTime(serial, date1904); err == nil {
						v = t
					}
				}
			}
			row[header[i]] = v
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cellValue(column, raw string) any {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	switch column {
	case importer.ColumnDate:
		return n
	case importer.ColumnTime:
		if n >= 0 && n < 1 {
			return fractionToClock(n)
		}
	}
	return raw
}

// builtinDateFormats are the built-in number format ids that display a date.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 34: true, 35: true, 36: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 57: true, 58: true,
}

// dateFormats caches, per style index, whether the style displays a date.
type dateFormats struct {
	f     *excelize.File
	cache map[int]bool
}

func newDateFormats(f *excelize.File) *dateFormats {
	return &dateFormats{f: f, cache: make(map[int]bool)}
}

func (d *dateFormats) isDate(sheet, ref string) bool {
	idx, err := d.f.GetCellStyle(sheet, ref)
	if err != nil || idx == 0 {
		return false
	}
	if known, ok := d.cache[idx]; ok {
		return known
	}
	style, err := d.f.GetStyle(idx)
	isDate := err == nil && style != nil && styleIsDate(style)
	d.cache[idx] = isDate
	return isDate
}

func styleIsDate(style *excelize.Style) bool {
	if style.CustomNumFmt != nil {
		return customFormatIsDate(*style.CustomNumFmt)
	}
	return builtinDateFormats[style.NumFmt]
}

// customFormatIsDate looks for day or year tokens outside quoted text and
// bracketed sections. Month alone is ambiguous with minutes and is ignored.
func customFormatIsDate(format string) bool {
	quoted, bracket := false, false
	for i := 0; i < len(format); i++ {
		c := format[i]
		switch {
		case c == '"':
			quoted = !quoted
		case quoted:
		case c == '\\':
			i++
		case c == '[':
			bracket = true
		case c == ']':
			bracket = false
		case bracket:
		case c == 'd', c == 'D', c == 'y', c == 'Y':
			return true
		}
	}
	return false
}

// fractionToClock converts a fraction of a day into HH:MM, rounded to the minute.
func fractionToClock(f float64) string {
	minutes := int(math.Round(f*24*60)) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
