// Package config loads cardsheets run files.
//
// A run file is TOML with an optional [defaults] table and any number of
// [[job]] entries. Every job inherits the fields it leaves unset from
// [defaults], which in turn inherits from [Default]:
//
//	[defaults]
//	card_size_in = [2.5, 3.5]
//	page_size_in = [12, 18]
//	margin_in = 1
//
//	[[job]]
//	name = "watcher"
//	dir = "sts-cards/watcher"
//	front_bg_color = "#000000"
//	back_bg_color = "#6c0dbe"
//	output_front = "cards_fronts_watcher.pdf"
//	output_back = "cards_backs_watcher.pdf"
//
// A key set to an empty string clears the inherited value: an empty color
// means none (default black marks, no background) and an empty output falls
// back to the name-derived default.
//
// Relative paths are resolved against the run file's directory. Resolved
// jobs are validated before any card is read; failures carry
// [errors.ErrCodeInvalidConfig].
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cardsheets/pkg/errors"
)

// DefaultFile is the run file looked up when none is given.
const DefaultFile = "cardsheets.toml"

// File is a parsed run file.
type File struct {
	Defaults Settings `toml:"defaults"`
	Entries  []Entry  `toml:"job"`

	// Dir is the directory relative paths are resolved against.
	Dir string `toml:"-"`
}

// Entry is one [[job]] table before defaults are applied.
type Entry struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"`
	Settings
}

// Settings are the overridable job fields. Unset fields are nil so they
// can be layered; an explicit empty string is a value, so a job can write
// front_bg_color = "" to drop a background set in [defaults].
type Settings struct {
	CardSize   []float64 `toml:"card_size_in"`
	PageSize   []float64 `toml:"page_size_in"`
	Margin     *float64  `toml:"margin_in"`
	Spacing    *float64  `toml:"spacing_in"`
	Bleed      *float64  `toml:"bleed_in"`
	MarkLength *float64  `toml:"mark_length_in"`

	FrontBackground *string `toml:"front_bg_color"`
	BackBackground  *string `toml:"back_bg_color"`
	FrontMarkColor  *string `toml:"front_mark_color"`
	BackMarkColor   *string `toml:"back_mark_color"`

	OutputFront *string `toml:"output_front"`
	OutputBack  *string `toml:"output_back"`
	JSON        *bool   `toml:"json"`

	Crosshair   *bool    `toml:"crosshair"`
	MirrorBacks *bool    `toml:"mirror_backs"`
	MaxDPI      *float64 `toml:"max_dpi"`
	BackMarker  *string  `toml:"back_marker"`
}

// Load reads and parses the run file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "run file %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	f, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses run file contents. Relative paths resolve against dir.
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
func Parse(data []byte, dir string) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse run file")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	f.Dir = dir
	return &f, nil
}

// Jobs resolves and validates every job in file order.
func (f *File) Jobs() ([]Job, error) {
	if len(f.Entries) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "run file has no [[job]] entries")
	}
	jobs := make([]Job, 0, len(f.Entries))
	seen := make(map[string]bool, len(f.Entries))
	for i, e := range f.Entries {
		job, err := f.resolve(e)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		if seen[job.Name] {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "duplicate job name %q", job.Name)
		}
		seen[job.Name] = true
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Job resolves the job called name.
func (f *File) Job(name string) (Job, error) {
	jobs, err := f.Jobs()
	if err != nil {
		return Job{}, err
	}
	for _, j := range jobs {
		if j.Name == name {
			return j, nil
		}
	}
	return Job{}, errors.New(errors.ErrCodeJobNotFound, "no job named %q", name)
}

func (f *File) resolve(e Entry) (Job, error) {
	job := Default()
	if err := f.Defaults.Apply(&job); err != nil {
		return Job{}, fmt.Errorf("defaults: %w", err)
	}
	if err := e.Settings.Apply(&job); err != nil {
		return Job{}, err
	}
	job.Name = e.Name
	job.Dir = e.Dir
	job.Complete()

	job.Dir = f.path(job.Dir)
	job.OutputFront = f.path(job.OutputFront)
	job.OutputBack = f.path(job.OutputBack)

	if err := job.Validate(); err != nil {
		return Job{}, err
	}
	return job, nil
}

func (f *File) path(p string) string {
	if p == "" || filepath.IsAbs(p) || f.Dir == "" {
		return p
	}
	return filepath.Join(f.Dir, p)
}

// Apply overlays the set fields of s onto job.
func (s Settings) Apply(job *Job) error {
	if s.CardSize != nil {
		if len(s.CardSize) != 2 {
			return errors.New(errors.ErrCodeInvalidConfig, "card_size_in must have two elements, got %d", len(s.CardSize))
		}
		job.CardSize = [2]float64{s.CardSize[0], s.CardSize[1]}
	}
	if s.PageSize != nil {
		if len(s.PageSize) != 2 {
			return errors.New(errors.ErrCodeInvalidConfig, "page_size_in must have two elements, got %d", len(s.PageSize))
		}
		job.PageSize = [2]float64{s.PageSize[0], s.PageSize[1]}
	}
	setFloat(&job.Margin, s.Margin)
	setFloat(&job.Spacing, s.Spacing)
	setFloat(&job.Bleed, s.Bleed)
	setFloat(&job.MarkLength, s.MarkLength)
	setFloat(&job.MaxDPI, s.MaxDPI)

	setString(&job.FrontBackground, s.FrontBackground)
	setString(&job.BackBackground, s.BackBackground)
	setString(&job.FrontMarkColor, s.FrontMarkColor)
	setString(&job.BackMarkColor, s.BackMarkColor)
	setString(&job.OutputFront, s.OutputFront)
	setString(&job.OutputBack, s.OutputBack)
	setString(&job.BackMarker, s.BackMarker)

	setBool(&job.JSON, s.JSON)
	setBool(&job.Crosshair, s.Crosshair)
	setBool(&job.MirrorBacks, s.MirrorBacks)
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
