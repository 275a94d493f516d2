package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
)

// ColumnType declares how raw cell text converts into a typed value.
type ColumnType int

const (
	// TypeString keeps the trimmed cell text.
	TypeString ColumnType = iota
	// TypeInt parses the cell as an integer. A numeric cell formatted with
	// a fractional part still converts when the value is whole.
	TypeInt
	// TypeFloat parses the cell as a floating point number.
	TypeFloat
)

// Column is one declared column: its header name and cell type.
type Column struct {
	Name string
	Type ColumnType
}

// SheetSpec declares how one worksheet maps into a Table.
type SheetSpec struct {
	// Name is the worksheet name.
	Name string
	// HeaderRow is the zero-based row index holding the column names.
	// Rows above it are ignored.
	HeaderRow int
	// IndexCol discards the leading index column before header matching,
	// for sheets whose first column is a row label rather than data.
	IndexCol bool
	// Columns are the declared columns in output order. Each must appear
	// in the header row; extra header columns are ignored.
	Columns []Column
}

// Opener hands over the raw byte stream of a workbook source.
type Opener func() (io.ReadCloser, error)

// Workbook lazily opens an xlsx source and serves declared sheets as
// tables. The source is opened and parsed at most once; each sheet loads
// once and is cached, so repeated loads never re-read the source. Safe for
// concurrent use.
type Workbook struct {
	source string
	open   Opener

	mu     sync.Mutex
	file   *excelize.File
	tables map[string]*Table
}

// NewWorkbook creates a workbook over an arbitrary source. The source name
// is used in error messages only.
func NewWorkbook(source string, open Opener) *Workbook {
	return &Workbook{
		source: source,
		open:   open,
		tables: make(map[string]*Table),
	}
}

// FileWorkbook creates a workbook backed by an xlsx file on disk.
func FileWorkbook(path string) *Workbook {
	return NewWorkbook(path, func() (io.ReadCloser, error) {
		return os.Open(path)
	})
}

// LoadSheet parses the declared worksheet into a table. The first call
// opens the source; later calls for the same sheet return the cached
// table. Failures are reported as *LoadError.
func (w *Workbook) LoadSheet(spec SheetSpec) (*Table, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if table, ok := w.tables[spec.Name]; ok {
		return table, nil
	}

	if w.file == nil {
		rc, err := w.open()
		if err != nil {
			return nil, &LoadError{Source: w.source, Err: err}
		}
		file, err := excelize.OpenReader(rc)
		rc.Close()
		if err != nil {
			return nil, &LoadError{Source: w.source, Err: err}
		}
		w.file = file
	}

	table, err := parseSheet(w.file, spec)
	if err != nil {
		return nil, &LoadError{Source: w.source, Sheet: spec.Name, Err: err}
	}
	w.tables[spec.Name] = table
	return table, nil
}

// Close releases the parsed workbook. Cached tables stay valid.
func (w *Workbook) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

func parseSheet(file *excelize.File, spec SheetSpec) (*Table, error) {
	rows, err := file.GetRows(spec.Name)
	if err != nil {
		var notExist excelize.ErrSheetNotExist
		if errors.As(err, &notExist) {
			return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, spec.Name)
		}
		return nil, err
	}
	if spec.HeaderRow >= len(rows) {
		return nil, fmt.Errorf("header row %d beyond sheet end (%d rows)", spec.HeaderRow, len(rows))
	}

	skip := 0
	if spec.IndexCol {
		skip = 1
	}

	positions, err := headerPositions(rows[spec.HeaderRow], skip, spec.Columns)
	if err != nil {
		return nil, err
	}

	columns := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		columns[i] = col.Name
	}
	table := NewTable(columns...)

	for _, raw := range rows[spec.HeaderRow+1:] {
		if len(raw) > skip {
			raw = raw[skip:]
		} else {
			raw = nil
		}
		row := make(Row, len(spec.Columns))
		blank := true
		for i, col := range spec.Columns {
			var text string
			if positions[i] < len(raw) {
				text = strings.TrimSpace(raw[positions[i]])
			}
			if text == "" {
				row[col.Name] = nil
				continue
			}
			value, err := convertCell(col.Type, text)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", col.Name, err)
			}
			row[col.Name] = value
			blank = false
		}
		// Rows without a value in any declared column carry nothing.
		if blank {
			continue
		}
		table.Append(row)
	}
	return table, nil
}

// headerPositions resolves each declared column to its cell index within
// the header row, after the index column is skipped.
func headerPositions(header []string, skip int, columns []Column) ([]int, error) {
	if len(header) > skip {
		header = header[skip:]
	} else {
		header = nil
	}
	positions := make([]int, len(columns))
	for i, col := range columns {
		pos := -1
		for j, cell := range header {
			if strings.TrimSpace(cell) == col.Name {
				pos = j
				break
			}
		}
		if pos < 0 {
			return nil, fmt.Errorf("%w: %q", ErrColumnMissing, col.Name)
		}
		positions[i] = pos
	}
	return positions, nil
}

func convertCell(kind ColumnType, text string) (any, error) {
	switch kind {
	case TypeInt:
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || f != math.Trunc(f) {
			return nil, fmt.Errorf("cell %q is not an integer", text)
		}
		return int64(f), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("cell %q is not a number", text)
		}
		return f, nil
	default:
		return text, nil
	}
}
