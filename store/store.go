// Package store reads and initializes the comma separated file that backs
// the student records.
//
// The file is a single-writer, single-reader resource: no locking is done and
// concurrent writers to the same file are undefined behavior.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fulldump/studentdb/record"
)

// Policy decides what happens to a line whose numeric fields do not parse.
type Policy string

const (
	// PolicyStrict skips malformed shapes but aborts the load on the first
	// numeric parse error.
	PolicyStrict Policy = "strict"
	// PolicyLenient skips and reports every malformed line.
	PolicyLenient Policy = "lenient"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyLenient:
		return PolicyLenient, nil
	}
	return "", fmt.Errorf("bad policy '%s', must be [%s|%s]", s, PolicyStrict, PolicyLenient)
}

// Loader turns a backing file into records. The zero value uses the strict
// policy and slog.Default for diagnostics.
type Loader struct {
	Policy Policy
	Logger *slog.Logger
}

const maxLineCapacity = 1024 * 1024

// Initialize makes sure the directory and the file exist. A new file gets
// the header line; an existing file is left untouched.
func Initialize(filename string) (created bool, err error) {

	dir := filepath.Dir(filename)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return false, &IOError{Op: "create directory", Path: dir, Err: err}
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, &IOError{Op: "create file", Path: filename, Err: err}
	}

	_, err = io.WriteString(f, record.Header+"\n")
	if err != nil {
		f.Close()
		return true, &IOError{Op: "write header", Path: filename, Err: err}
	}

	err = f.Close()
	if err != nil {
		return true, &IOError{Op: "close file", Path: filename, Err: err}
	}

	return true, nil
}

// LoadAll reads filename with the default Loader.
func LoadAll(filename string) ([]record.Record, error) {
	return (&Loader{}).LoadAll(filename)
}

// LoadAll returns the records of filename in file order. Each call is an
// independent pass over the file.
func (l *Loader) LoadAll(filename string) ([]record.Record, error) {

	f, err := os.Open(filename)
	if err != nil {
		return nil, &IOError{Op: "open file for read", Path: filename, Err: err}
	}
	defer f.Close()

	records, err := l.Decode(f)
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		ioErr.Path = filename
	}

	return records, err
}

// Decode reads a header line followed by data lines from r.
func (l *Loader) Decode(r io.Reader) ([]record.Record, error) {

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineCapacity)

	records := []record.Record{}

	// Header is skipped without looking at it
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, &IOError{Op: "read header", Err: err}
		}
		return records, nil
	}

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()

		rec, err := DecodeLine(lineNo, text)
		if err == nil {
			records = append(records, rec)
			continue
		}

		var shapeErr *ShapeError
		if errors.As(err, &shapeErr) {
			l.report(lineNo, shapeErr.Reason, text)
			continue
		}

		if l.policy() == PolicyLenient {
			l.report(lineNo, err.Error(), text)
			continue
		}

		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, &IOError{Op: "read line", Err: err}
	}

	return records, nil
}

func (l *Loader) policy() Policy {
	if l.Policy == "" {
		return PolicyStrict
	}
	return l.Policy
}

func (l *Loader) report(lineNo int, reason, raw string) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("skip line", "line", lineNo, "reason", reason, "raw", raw)
}

// DecodeLine converts one data line into a Record. It returns a *ShapeError
// for a wrong field count or over-length text and a *ParseError for a
// numeric field that does not convert.
func DecodeLine(lineNo int, text string) (record.Record, error) {

	parts := strings.Split(text, ",")
	if len(parts) != record.Columns {
		return record.Record{}, &ShapeError{
			Line:   lineNo,
			Reason: fmt.Sprintf("invalid line format: %d fields, expected %d", len(parts), record.Columns),
			Raw:    text,
		}
	}

	r := record.Record{}
	var err error

	if r.Id, err = parseInt(lineNo, "id", parts[0]); err != nil {
		return record.Record{}, err
	}
	if r.Age, err = parseInt(lineNo, "age", parts[3]); err != nil {
		return record.Record{}, err
	}
	if r.Math, err = parseFloat(lineNo, "math", parts[4]); err != nil {
		return record.Record{}, err
	}
	if r.Chinese, err = parseFloat(lineNo, "chinese", parts[5]); err != nil {
		return record.Record{}, err
	}
	if r.English, err = parseFloat(lineNo, "english", parts[6]); err != nil {
		return record.Record{}, err
	}

	r.Name = strings.TrimSpace(parts[1])
	if n := utf8.RuneCountInString(r.Name); n > record.MaxNameLen {
		return record.Record{}, &ShapeError{
			Line:   lineNo,
			Reason: fmt.Sprintf("name exceeds %d characters: %s", record.MaxNameLen, r.Name),
			Raw:    text,
		}
	}

	r.Sex = strings.TrimSpace(parts[2])
	if n := utf8.RuneCountInString(r.Sex); n > record.MaxSexLen {
		return record.Record{}, &ShapeError{
			Line:   lineNo,
			Reason: fmt.Sprintf("sex exceeds %d characters: %s", record.MaxSexLen, r.Sex),
			Raw:    text,
		}
	}

	return r, nil
}

func parseInt(lineNo int, field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Line: lineNo, Field: field, Value: value, Err: err}
	}
	return n, nil
}

// ErrNotDecimal rejects score text that strconv accepts but is not a plain
// decimal number: hex literals, infinities and NaN.
var ErrNotDecimal = errors.New("not a finite decimal number")

func parseFloat(lineNo int, field, value string) (float64, error) {
	if strings.ContainsAny(value, "xX") {
		return 0, &ParseError{Line: lineNo, Field: field, Value: value, Err: ErrNotDecimal}
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ParseError{Line: lineNo, Field: field, Value: value, Err: err}
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, &ParseError{Line: lineNo, Field: field, Value: value, Err: ErrNotDecimal}
	}
	return n, nil
}

// Info describes the backing file on disk.
type Info struct {
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

func Stat(filename string) (*Info, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		return nil, &IOError{Op: "stat file", Path: filename, Err: err}
	}
	return &Info{
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}, nil
}
