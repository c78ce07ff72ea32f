package table

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

var magic = [4]byte{'R', 'C', 'S', 'T'}

const formatVersion = 1

// Read decodes a table from its binary columnar form.
func Read(r io.Reader) (*Table, error) {
	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if m != magic {
		return nil, fmt.Errorf("not a raw response table (bad magic %q)", m)
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	if version != formatVersion {
		return nil, fmt.Errorf("unsupported table version %d", version)
	}

	var ncols uint16
	if err := binary.Read(r, binary.LittleEndian, &ncols); err != nil {
		return nil, fmt.Errorf("read column count: %w", err)
	}
	if ncols == 0 {
		return nil, fmt.Errorf("table declares no columns")
	}

	columns := make([]string, ncols)
	for i := range columns {
		s, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("read column name %d: %w", i, err)
		}
		columns[i] = s
	}

	var nrows uint32
	if err := binary.Read(r, binary.LittleEndian, &nrows); err != nil {
		return nil, fmt.Errorf("read row count: %w", err)
	}

	rows := make([]Row, 0, nrows)
	for i := uint32(0); i < nrows; i++ {
		freq, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("read row %d frequency label: %w", i, err)
		}
		level, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("read row %d level label: %w", i, err)
		}

		values := make([]complex128, ncols)
		for c := range values {
			var re, im float64
			if err := binary.Read(r, binary.LittleEndian, &re); err != nil {
				return nil, fmt.Errorf("read row %d column %d: %w", i, c, err)
			}
			if err := binary.Read(r, binary.LittleEndian, &im); err != nil {
				return nil, fmt.Errorf("read row %d column %d: %w", i, c, err)
			}
			values[c] = complex(re, im)
		}

		rows = append(rows, Row{Key: Key{Freq: freq, Level: level}, Values: values})
	}

	return New(columns, rows)
}

// Write encodes columns and rows in the binary columnar form.
func Write(w io.Writer, columns []string, rows []Row) error {
	if len(columns) == 0 {
		return fmt.Errorf("table declares no columns")
	}
	if len(columns) > math.MaxUint16 {
		return fmt.Errorf("too many columns: %d", len(columns))
	}

	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(formatVersion)); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(columns))); err != nil {
		return fmt.Errorf("write column count: %w", err)
	}
	for _, name := range columns {
		if err := writeString(w, name); err != nil {
			return fmt.Errorf("write column name: %w", err)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(rows))); err != nil {
		return fmt.Errorf("write row count: %w", err)
	}
	for _, row := range rows {
		if len(row.Values) != len(columns) {
			return fmt.Errorf("row %q/%q has %d values, table declares %d columns",
				row.Key.Freq, row.Key.Level, len(row.Values), len(columns))
		}
		if err := writeString(w, row.Key.Freq); err != nil {
			return fmt.Errorf("write frequency label: %w", err)
		}
		if err := writeString(w, row.Key.Level); err != nil {
			return fmt.Errorf("write level label: %w", err)
		}
		for _, v := range row.Values {
			if err := binary.Write(w, binary.LittleEndian, real(v)); err != nil {
				return fmt.Errorf("write value: %w", err)
			}
			if err := binary.Write(w, binary.LittleEndian, imag(v)); err != nil {
				return fmt.Errorf("write value: %w", err)
			}
		}
	}

	return nil
}

func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeString(w io.Writer, s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("string too long: %d bytes", len(s))
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}
