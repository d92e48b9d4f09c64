package devices

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Record is one provisioned device.
type Record struct {
	DeviceID         string
	ConnectionString string
}

// TableWriter writes device records as headerless CSV rows, flushing
// after every row so completed devices survive a later failure.
type TableWriter struct {
	file *os.File
	w    *csv.Writer
	rows int
}

// CreateTable truncates (or creates) the table at path.
func CreateTable(path string) (*TableWriter, error) {
	// #nosec G304 - path comes from configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to create device table %s: %w", path, err)
	}
	return &TableWriter{file: f, w: csv.NewWriter(f)}, nil
}

// Append writes a record and flushes it to disk.
func (t *TableWriter) Append(rec Record) error {
	if err := t.w.Write([]string{rec.DeviceID, rec.ConnectionString}); err != nil {
		return fmt.Errorf("failed to write device %s: %w", rec.DeviceID, err)
	}
	t.w.Flush()
	if err := t.w.Error(); err != nil {
		return fmt.Errorf("failed to flush device %s: %w", rec.DeviceID, err)
	}
	t.rows++
	return nil
}

// Rows returns the number of records appended.
func (t *TableWriter) Rows() int {
	return t.rows
}

// Close flushes and closes the underlying file.
func (t *TableWriter) Close() error {
	t.w.Flush()
	werr := t.w.Error()
	cerr := t.file.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// ReadTable reads every record from the table at path.
func ReadTable(path string) ([]Record, error) {
	// #nosec G304 - path comes from configuration
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("device table %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("failed to open device table %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var records []Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse device table %s: %w", path, err)
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}
		rec := Record{DeviceID: row[0]}
		if len(row) > 1 {
			rec.ConnectionString = row[1]
		}
		records = append(records, rec)
	}
	return records, nil
}

// IDs returns the device IDs of records in order.
func IDs(records []Record) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.DeviceID
	}
	return ids
}
