// Package dataio reads and writes the whitespace-delimited text tables an
// N-body run produces: one file per point mass and one for the resolved body.
package dataio

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/vec"
)

const (
	pointColumns    = 8
	resolvedColumns = 24
)

// PointMassFile returns the path of point mass i for a run root.
func PointMassFile(root string, i int) string {
	return fmt.Sprintf("%s_pm%d.txt", root, i)
}

// ResolvedFile returns the path of the resolved body table for a run root.
func ResolvedFile(root string) string {
	return root + "_ext.txt"
}

// Dir reads the outputs of one run: Root_ext.txt and Root_pm0.txt through
// Root_pm{NumPoints-1}.txt.
type Dir struct {
	Root      string
	NumPoints int
}

// Load reads every table of the run. Any error is fatal and no partial
// collection is returned.
func (d Dir) Load(ctx context.Context) (*dynamo.Collection, error) {
	if d.NumPoints < 1 {
		return nil, ErrNoPoints
	}

	res, err := ReadResolvedFile(ResolvedFile(d.Root))
	if err != nil {
		return nil, err
	}

	coll := &dynamo.Collection{Resolved: *res, Points: make([]dynamo.PointMass, d.NumPoints)}
	for i := 0; i < d.NumPoints; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pm, err := ReadPointMassFile(PointMassFile(d.Root, i))
		if err != nil {
			return nil, err
		}
		coll.Points[i] = *pm
	}
	return coll, nil
}

func ReadPointMassFile(path string) (*dynamo.PointMass, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: open point mass: %w", err)
	}
	defer f.Close()
	return ReadPointMass(f, path)
}

// ReadPointMass parses columns t x y z vx vy vz m. The mass is taken from
// the first data row.
func ReadPointMass(r io.Reader, name string) (*dynamo.PointMass, error) {
	pm := &dynamo.PointMass{}
	first := true
	err := scanTable(r, name, pointColumns, func(row []float64) {
		pm.Time = append(pm.Time, row[0])
		pm.Pos = append(pm.Pos, vec.New(row[1], row[2], row[3]))
		pm.Vel = append(pm.Vel, vec.New(row[4], row[5], row[6]))
		if first {
			pm.Mass = row[7]
			first = false
		}
	})
	if err != nil {
		return nil, err
	}
	return pm, nil
}

func ReadResolvedFile(path string) (*dynamo.ResolvedSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: open resolved body: %w", err)
	}
	defer f.Close()
	return ReadResolved(f, path)
}

// ReadResolved parses the 24-column resolved body table.
func ReadResolved(r io.Reader, name string) (*dynamo.ResolvedSeries, error) {
	rs := &dynamo.ResolvedSeries{}
	err := scanTable(r, name, resolvedColumns, func(row []float64) {
		rs.Time = append(rs.Time, row[0])
		rs.Samples = append(rs.Samples, dynamo.Sample{
			Pos:   vec.New(row[1], row[2], row[3]),
			Vel:   vec.New(row[4], row[5], row[6]),
			Omega: vec.New(row[7], row[8], row[9]),
			L:     vec.New(row[10], row[11], row[12]),
			I: dynamo.Inertia{
				Ixx: row[13], Iyy: row[14], Izz: row[15],
				Ixy: row[16], Iyz: row[17], Ixz: row[18],
			},
		})
		rs.KERot = append(rs.KERot, row[19])
		rs.PESpring = append(rs.PESpring, row[20])
		rs.PEGrav = append(rs.PEGrav, row[21])
		rs.ETot = append(rs.ETot, row[22])
		rs.DEDt = append(rs.DEDt, row[23])
	})
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// scanTable skips the header line and blank lines and hands each parsed row
// of exactly cols fields to fn.
func scanTable(r io.Reader, name string, cols int, fn func([]float64)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	row := make([]float64, cols)
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != cols {
			return &LoadError{File: name, Line: line, Wrapped: fmt.Errorf("%w: got %d, want %d", ErrColumns, len(fields), cols)}
		}
		for i, s := range fields {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return &LoadError{File: name, Line: line, Wrapped: fmt.Errorf("%w: %q", ErrNumber, s)}
			}
			row[i] = v
		}
		fn(row)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("dataio: read %s: %w", name, err)
	}
	return nil
}
