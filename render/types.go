// Package render defines options and sentinel errors for the report
// writers of github.com/lazork/lazork.
package render

import (
	"errors"
	"fmt"

	"github.com/lazork/lazork/board"
)

// Sentinel errors for writer invocation.
var (
	// ErrNilBoard is returned if a nil board pointer is passed.
	ErrNilBoard = errors.New("render: board is nil")

	// ErrNilResult is returned if a nil solver result is passed.
	ErrNilResult = errors.New("render: result is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// ColorMode selects ANSI coloring for the text writer.
type ColorMode int

const (
	// ColorAuto enables color only when the writer is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces ANSI escapes regardless of the writer.
	ColorAlways
	// ColorNever emits plain text.
	ColorNever
)

// Option configures writer behavior via functional arguments.
type Option func(*Options)

// Options holds parameters shared by the three writers.
type Options struct {
	// Name labels the report (JSON puzzle_name, text header). Empty omits it.
	Name string

	// Trajectory is the beam path to draw and export. The solver's result
	// carries no trajectory; callers re-trace the winning placement with
	// recording enabled and pass the path here.
	Trajectory []board.Point

	// Color selects ANSI coloring for Text. Default ColorAuto.
	Color ColorMode

	// Scale is the PNG cell edge in pixels. Default 60.
	Scale int

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns the writer defaults: unnamed report, no
// trajectory, automatic color, 60-pixel cells.
func defaultOptions() Options {
	return Options{Color: ColorAuto, Scale: 60}
}

// WithName labels the report.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithTrajectory supplies the beam path for drawing and export.
func WithTrajectory(path []board.Point) Option {
	return func(o *Options) { o.Trajectory = path }
}

// WithColor selects the ANSI color mode for the text writer.
func WithColor(m ColorMode) Option {
	return func(o *Options) {
		if m != ColorAuto && m != ColorAlways && m != ColorNever {
			o.err = fmt.Errorf("%w: unknown color mode %d", ErrOptionViolation, m)
			return
		}
		o.Color = m
	}
}

// WithScale sets the PNG cell edge in pixels. Must be positive.
func WithScale(px int) Option {
	return func(o *Options) {
		if px < 1 {
			o.err = fmt.Errorf("%w: Scale must be positive (%d)", ErrOptionViolation, px)
			return
		}
		o.Scale = px
	}
}

// buildOptions folds opts over the defaults and surfaces the first
// violation.
func buildOptions(opts []Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
