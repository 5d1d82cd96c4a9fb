package io

import (
	"fmt"
	"os"
	"strings"

	"github.com/phil-mansfield/table"
	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/lininterp/interpolate"
)

// Points is the table type read by this package.
type Points = []interpolate.Point[float64, float64]

// ReadColumnPoints reads x and y from the given zero-indexed columns of a
// whitespace separated text table.
func ReadColumnPoints(fname string, xCol, yCol int) (Points, error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys := cols[0], cols[1]
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"Table '%s' has %d x values but %d y values.", fname, len(xs), len(ys),
		)
	}

	pts := make(Points, len(xs))
	for i := range pts {
		pts[i] = interpolate.Pt(xs[i], ys[i])
	}
	return pts, nil
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlTable struct {
	Points []yamlPoint `yaml:"points"`
}

// ParseYAMLPoints decodes a document of the form
//
//	points:
//	  - {x: 0, y: 1}
//	  - {x: 1, y: 3}
func ParseYAMLPoints(data []byte) (Points, error) {
	var yt yamlTable
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, err
	}

	pts := make(Points, len(yt.Points))
	for i, p := range yt.Points {
		pts[i] = interpolate.Pt(p.X, p.Y)
	}
	return pts, nil
}

// ReadYAMLPoints reads a YAML point table from a file. See ParseYAMLPoints.
func ReadYAMLPoints(fname string) (Points, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	pts, err := ParseYAMLPoints(data)
	if err != nil {
		return nil, fmt.Errorf("Could not parse table '%s': %w", fname, err)
	}
	return pts, nil
}

// ReadPoints reads the table described by con.
func ReadPoints(con *InterpConfig) (Points, error) {
	switch strings.ToLower(con.TableFormat) {
	case "yaml":
		return ReadYAMLPoints(con.TableFile)
	case "columns", "":
		return ReadColumnPoints(con.TableFile, con.XColumn, con.YColumn)
	}
	return nil, fmt.Errorf("Unrecognized TableFormat '%s'.", con.TableFormat)
}

// ReadTable reads the table described by con and binds it with the
// configured number of active points.
func ReadTable(con *InterpConfig) (*interpolate.Table[float64, float64], error) {
	pts, err := ReadPoints(con)
	if err != nil {
		return nil, err
	}

	n := con.ActivePoints
	if n == 0 {
		n = len(pts)
	}
	tab, err := interpolate.NewTable(pts, n)
	if err != nil {
		return nil, fmt.Errorf("Table '%s': %w", con.TableFile, err)
	}
	return tab, nil
}
