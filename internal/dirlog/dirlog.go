// Package dirlog maintains the append-only CSV log of directory creations.
// Each successful creation is one row; rows are never rewritten.
package dirlog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// FileName is the log file name inside the configured log directory.
const FileName = "smartdirs.log"

// header is written only when the log file is new or empty.
const header = "Date,Directory,Path\n"

// TimestampLayout renders the civil creation time the way Finder does,
// day and hour unpadded: "May 17, 2025 at 8:08 PM".
const TimestampLayout = "Jan 2, 2006 at 3:04 PM"

// ErrLogWrite wraps any failure to open or write the log file. Callers
// report it as a warning; it never undoes the directory creation.
var ErrLogWrite = errors.New("log write failed")

// Record is one row of the creation log.
type Record struct {
	Timestamp string `json:"date"`
	Directory string `json:"directory"`
	Path      string `json:"path"`
}

// NewRecord stamps a record for a created directory at the given civil time.
func NewRecord(now time.Time, dirPath string) Record {
	return Record{
		Timestamp: now.Format(TimestampLayout),
		Directory: filepath.Base(dirPath),
		Path:      dirPath,
	}
}

// Append writes rec as a single CSV row, creating the log directory, the
// file, and the header as needed. The header and row go out in one Write on
// a descriptor opened with O_APPEND, so concurrent appenders interleave at
// row granularity rather than corrupting each other mid-row.
func Append(fs afero.Fs, logPath string, rec Record) error {
	if err := fs.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrLogWrite, err)
	}

	f, err := fs.OpenFile(logPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLogWrite, err)
	}
	defer f.Close()

	fresh := false
	if info, err := f.Stat(); err == nil && info.Size() == 0 {
		fresh = true
	}

	var buf bytes.Buffer
	if fresh {
		buf.WriteString(header)
	}
	writeRow(&buf, rec)

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrLogWrite, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: %v", ErrLogWrite, err)
	}
	return nil
}

// writeRow emits one row with every field double-quoted and embedded quotes
// doubled. encoding/csv quotes minimally and writes field-by-field, so the
// quoting and the single-buffer assembly are done here instead.
func writeRow(buf *bytes.Buffer, rec Record) {
	for i, v := range []string{rec.Timestamp, rec.Directory, rec.Path} {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(v, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

// ReadAll parses the log back into records, skipping the header row. A
// missing file yields no records.
func ReadAll(fs afero.Fs, logPath string) ([]Record, error) {
	f, err := fs.Open(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	var records []Record
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", logPath, err)
		}
		if first {
			first = false
			if row[0] == "Date" {
				continue
			}
		}
		records = append(records, Record{Timestamp: row[0], Directory: row[1], Path: row[2]})
	}
	return records, nil
}
