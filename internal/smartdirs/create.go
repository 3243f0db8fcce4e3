// Package smartdirs orchestrates directory creation: it resolves the next
// free numbered name, creates the directory with must-not-exist semantics,
// resumes probing when another process steals the name, and appends one row
// to the creation log.
package smartdirs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/aparfeno/smartdirs/internal/config"
	"github.com/aparfeno/smartdirs/internal/dirlog"
	"github.com/aparfeno/smartdirs/internal/fsx"
	"github.com/aparfeno/smartdirs/internal/namer"
)

// maxCreateAttempts bounds the probe/create loop when concurrent callers
// keep winning the race for the chosen name.
const maxCreateAttempts = 100

// ErrDirectoryCreate is returned when the directory cannot be created:
// permission failures, or the retry bound exhausted on lost races.
var ErrDirectoryCreate = errors.New("directory create failed")

// Options describes one creation request.
type Options struct {
	BaseName   string
	ParentDir  string // empty means the current directory
	UseDate    bool
	UseTime    bool
	DateFormat string // strftime-style; empty means the default
	TimeFormat string // strftime-style; empty derives from config
	Timezone   string // overrides the configured timezone when set
	Separator  string
	Position   namer.Position
}

// Result reports a successful creation.
type Result struct {
	Path     string
	Name     string
	Sequence int
	// LogErr reports a failed log append. The directory exists regardless;
	// callers surface this as a warning, not a failure.
	LogErr error
}

// Creator holds the collaborators for directory creation. Build one per
// invocation; it has no mutable state of its own.
type Creator struct {
	FS       afero.Fs
	Clock    namer.Clock
	Settings config.Settings
	Log      zerolog.Logger
}

// New returns a Creator over the given filesystem, clock, and settings.
func New(fs afero.Fs, clock namer.Clock, settings config.Settings, log zerolog.Logger) *Creator {
	return &Creator{FS: fs, Clock: clock, Settings: settings, Log: log}
}

// createState tracks the probe/create loop. A lost race moves creating back
// to probing at the next sequence number; the bound moves it to failed.
type createState int

const (
	stateProbing createState = iota
	stateCreating
	stateDone
	stateFailed
)

// Create resolves the next free name for opts and creates the directory.
// Validation errors surface before any filesystem mutation; creation races
// are retried transparently up to maxCreateAttempts.
func (c *Creator) Create(opts Options) (*Result, error) {
	parent := opts.ParentDir
	if parent == "" {
		parent = "."
	}

	tz := opts.Timezone
	if tz == "" {
		tz = c.Settings.Timezone
	}

	req := namer.Request{
		BaseName:    opts.BaseName,
		UseDate:     opts.UseDate,
		UseTime:     opts.UseTime,
		DateFormat:  opts.DateFormat,
		TimeFormat:  opts.TimeFormat,
		WithSeconds: c.Settings.WithSeconds,
		Timezone:    tz,
		Separator:   opts.Separator,
		Position:    opts.Position,
	}

	resolver := namer.Resolver{FS: c.FS, Clock: c.Clock}
	res, err := resolver.Resolve(req, parent)
	if err != nil {
		return nil, err
	}

	if err := fsx.EnsureDir(c.FS, parent); err != nil {
		return nil, fmt.Errorf("%w: parent %s: %v", ErrDirectoryCreate, parent, err)
	}

	attempts := 0
	var created string

	state := stateProbing
	for state != stateDone {
		switch state {
		case stateProbing:
			if attempts >= maxCreateAttempts {
				state = stateFailed
				continue
			}
			state = stateCreating

		case stateCreating:
			attempts++
			target := filepath.Join(parent, res.Name())
			createErr := fsx.Mkdir(c.FS, target)
			if createErr == nil {
				created = target
				state = stateDone
				continue
			}
			if errors.Is(createErr, os.ErrExist) {
				// Another process claimed the name between probe and create.
				c.Log.Debug().Str("name", res.Name()).Msg("creation race lost, reprobing")
				res, err = resolver.NextFree(res, parent, res.Sequence+1)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrDirectoryCreate, err)
				}
				state = stateProbing
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryCreate, target, createErr)

		case stateFailed:
			return nil, fmt.Errorf("%w: gave up on %q after %d lost races",
				ErrDirectoryCreate, res.BaseName, attempts)
		}
	}

	path := created
	if abs, err := filepath.Abs(created); err == nil {
		path = abs
	}

	result := &Result{Path: path, Name: res.Name(), Sequence: res.Sequence}
	c.Log.Info().Str("path", path).Int("sequence", res.Sequence).Msg("directory created")

	if logPath := c.Settings.LogPath(); logPath != "" {
		// Timezone already validated by Resolve.
		loc, _ := namer.ResolveLocation(tz)
		rec := dirlog.NewRecord(c.Clock.Now().In(loc), path)
		if err := dirlog.Append(c.FS, logPath, rec); err != nil {
			c.Log.Warn().Err(err).Str("log", logPath).Msg("creation log append failed")
			result.LogErr = err
		}
	}

	return result, nil
}
