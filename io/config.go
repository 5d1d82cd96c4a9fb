package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/lininterp/interpolate"
)

const (
	ExampleInterpFile = `[Interp]

#######################
# Required Parameters #
#######################

# File containing the (x, y) points. Rows must be sorted so that x is
# strictly increasing.
TableFile = path/to/points.txt

#######################
# Optional Parameters #
#######################

# Either Columns (whitespace separated text columns) or YAML (a list of
# {x: ..., y: ...} entries under a top-level "points" key). Default is
# Columns.
# TableFormat = Columns

# Zero-indexed columns to read x and y from when TableFormat is Columns.
# Defaults are 0 and 1.
# XColumn = 0
# YColumn = 1

# Only the first ActivePoints rows of the table are used. 0 means every row.
# ActivePoints = 0

# Linear or Bisect. Linear is faster for short tables. Default is Linear.
# Search = Linear

# Auto, Float64, or Extended. Default is Auto.
# Arithmetic = Auto

# Comma or whitespace separated x values to evaluate. Values given on the
# command line are appended to these.
# Queries = -1, 0.5, 2

# If set, the table and the interpolated curve are plotted to this file.
# PlotFile = curve.png
# PlotPoints = 200

# Prints diagnostic messages.
# Verbose = false`
)

type InterpConfig struct {
	// Required
	TableFile string

	// Optional
	TableFormat      string
	XColumn, YColumn int
	ActivePoints     int
	Search           string
	Arithmetic       string
	Queries          string
	PlotFile         string
	PlotPoints       int
	Verbose          bool
}

type InterpWrapper struct {
	Interp InterpConfig
}

func DefaultInterpWrapper() *InterpWrapper {
	con := InterpConfig{}
	con.TableFormat = "Columns"
	con.XColumn, con.YColumn = 0, 1
	con.Search = "Linear"
	con.Arithmetic = "Auto"
	con.PlotPoints = 200
	return &InterpWrapper{con}
}

func (con *InterpConfig) ValidTableFile() bool {
	return con.TableFile != ""
}
func (con *InterpConfig) ValidTableFormat() bool {
	switch strings.ToLower(con.TableFormat) {
	case "columns", "yaml":
		return true
	}
	return false
}
func (con *InterpConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *InterpConfig) ValidActivePoints() bool {
	return con.ActivePoints >= 0
}
func (con *InterpConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *InterpConfig) ValidPlotPoints() bool {
	return con.PlotPoints >= 2
}

// CheckInit validates the config, returning an error describing the first
// invalid field.
func (con *InterpConfig) CheckInit() error {
	if !con.ValidTableFile() {
		return fmt.Errorf("Invalid/non-existent 'TableFile' value.")
	} else if !con.ValidTableFormat() {
		return fmt.Errorf(
			"TableFormat must be one of [Columns | YAML]. '%s' is not "+
				"recognized.", con.TableFormat,
		)
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"XColumn and YColumn must be distinct and non-negative, but are "+
				"%d and %d.", con.XColumn, con.YColumn,
		)
	} else if !con.ValidActivePoints() {
		return fmt.Errorf(
			"ActivePoints must be non-negative, but is %d.", con.ActivePoints,
		)
	} else if con.ValidPlotFile() && !con.ValidPlotPoints() {
		return fmt.Errorf(
			"PlotPoints must be at least 2, but is %d.", con.PlotPoints,
		)
	}

	if _, err := con.SearchStrategy(); err != nil {
		return err
	}
	if _, err := con.ArithmeticPolicy(); err != nil {
		return err
	}
	if _, err := ParseQueries(con.Queries); err != nil {
		return err
	}
	return nil
}

func (con *InterpConfig) SearchStrategy() (interpolate.Search, error) {
	return interpolate.ParseSearch(con.Search)
}

func (con *InterpConfig) ArithmeticPolicy() (interpolate.Arithmetic, error) {
	return interpolate.ParseArithmetic(con.Arithmetic)
}

// Options returns the interpolator options described by the config.
func (con *InterpConfig) Options() ([]interpolate.Option, error) {
	s, err := con.SearchStrategy()
	if err != nil {
		return nil, err
	}
	a, err := con.ArithmeticPolicy()
	if err != nil {
		return nil, err
	}
	return []interpolate.Option{
		interpolate.WithSearch(s), interpolate.WithArithmetic(a),
	}, nil
}

// ReadInterpConfig reads and validates an [Interp] config file.
func ReadInterpConfig(fname string) (*InterpConfig, error) {
	wrap := DefaultInterpWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Interp.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Interp, nil
}

// ParseInterpConfig is like ReadInterpConfig, but reads the config from a
// string.
func ParseInterpConfig(str string) (*InterpConfig, error) {
	wrap := DefaultInterpWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	if err := wrap.Interp.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Interp, nil
}
