// Package namer computes the next available numbered directory name for a
// base name, optionally suffixed with the current date and time in a
// requested timezone. Probing is read-only; creating the directory is the
// caller's job.
package namer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/aparfeno/smartdirs/internal/fsx"
)

// Position controls where the sequence number sits in the final name.
type Position string

const (
	// Prefix numbers names like 1-data. The default.
	Prefix Position = "prefix"
	// Suffix numbers names like data-1.
	Suffix Position = "suffix"
)

// Format defaults, strftime-style.
const (
	DefaultDateFormat        = "%Y-%m-%d"
	defaultTimeFormat        = "%I:%M%p"
	defaultTimeFormatSeconds = "%I:%M:%S%p"
	DefaultSeparator         = "-"
)

var (
	ErrInvalidBaseName = errors.New("invalid base name")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidFormat   = errors.New("invalid format")
)

// Request describes one naming request. It is consumed by Resolve and
// discarded; unused format fields (a date format without UseDate, the
// seconds flag without UseTime) are ignored, not errors.
type Request struct {
	BaseName    string
	UseDate     bool
	UseTime     bool
	DateFormat  string // strftime-style; empty means DefaultDateFormat
	TimeFormat  string // strftime-style override; empty derives from WithSeconds
	WithSeconds bool
	Timezone    string // IANA zone name; empty means the process-local zone
	Separator   string // empty means DefaultSeparator
	Position    Position
}

// Resolved holds the formatted name parts plus the smallest sequence number
// whose full name is free in the probed parent directory.
type Resolved struct {
	Sequence  int
	BaseName  string
	DatePart  string
	TimePart  string
	Separator string
	Position  Position
}

// Name assembles the full directory name for the resolved sequence number.
func (r Resolved) Name() string {
	return r.NameFor(r.Sequence)
}

// NameFor assembles the full name the given sequence number would produce.
func (r Resolved) NameFor(n int) string {
	parts := []string{r.BaseName}
	if r.DatePart != "" {
		parts = append(parts, r.DatePart)
	}
	if r.TimePart != "" {
		parts = append(parts, r.TimePart)
	}
	if r.Position == Suffix {
		parts = append(parts, strconv.Itoa(n))
	} else {
		parts = append([]string{strconv.Itoa(n)}, parts...)
	}
	return strings.Join(parts, r.Separator)
}

// Resolver computes collision-free directory names against a filesystem.
type Resolver struct {
	FS    afero.Fs
	Clock Clock
}

// Resolve validates req, formats its date/time parts at the clock's current
// instant in the requested timezone, and probes parentDir for the smallest
// free sequence number starting at 1. Validation failures surface before
// any filesystem access.
func (rv Resolver) Resolve(req Request, parentDir string) (Resolved, error) {
	if err := validateBaseName(req.BaseName); err != nil {
		return Resolved{}, err
	}

	loc, err := ResolveLocation(req.Timezone)
	if err != nil {
		return Resolved{}, err
	}

	res := Resolved{
		BaseName:  req.BaseName,
		Separator: req.Separator,
		Position:  req.Position,
	}
	if res.Separator == "" {
		res.Separator = DefaultSeparator
	}
	if res.Position == "" {
		res.Position = Prefix
	}

	now := rv.Clock.Now().In(loc)

	if req.UseDate {
		pattern := req.DateFormat
		if pattern == "" {
			pattern = DefaultDateFormat
		}
		layout, err := translateFormat(pattern)
		if err != nil {
			return Resolved{}, err
		}
		res.DatePart = now.Format(layout)
	}

	if req.UseTime {
		pattern := req.TimeFormat
		if pattern == "" {
			pattern = defaultTimeFormat
			if req.WithSeconds {
				pattern = defaultTimeFormatSeconds
			}
		}
		layout, err := translateFormat(pattern)
		if err != nil {
			return Resolved{}, err
		}
		res.TimePart = now.Format(layout)
	}

	return rv.NextFree(res, parentDir, 1)
}

// NextFree probes parentDir for the smallest free sequence number >= from,
// keeping the already-formatted parts. Creators call this to resume after
// losing a creation race to another process.
func (rv Resolver) NextFree(res Resolved, parentDir string, from int) (Resolved, error) {
	entries, err := fsx.ListEntries(rv.FS, parentDir)
	if err != nil {
		return Resolved{}, fmt.Errorf("failed to probe %s: %w", parentDir, err)
	}

	taken := make(map[string]struct{}, len(entries))
	for _, name := range entries {
		taken[name] = struct{}{}
	}

	n := from
	if n < 1 {
		n = 1
	}
	// Terminates: at most len(taken)+1 candidates can collide.
	for {
		if _, ok := taken[res.NameFor(n)]; !ok {
			break
		}
		n++
	}

	res.Sequence = n
	return res, nil
}

// ResolveLocation maps an IANA zone name to a Go location. An empty name
// selects the process-local zone.
func ResolveLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}

func validateBaseName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: base name is empty", ErrInvalidBaseName)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidBaseName, name)
	}
	return nil
}
