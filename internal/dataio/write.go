package dataio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/orbspin/internal/dynamo"
)

const (
	pointHeader    = "t x y z vx vy vz m"
	resolvedHeader = "t x y z vx vy vz omx omy omz llx lly llz Ixx Iyy Izz Ixy Iyz Ixz KErot PEspr PEgrav Etot dEdt"
)

func writeRow(w *bufio.Writer, vals ...float64) error {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'e', 12, 64)
	}
	_, err := w.WriteString(strings.Join(parts, " ") + "\n")
	return err
}

func WritePointMass(w io.Writer, pm *dynamo.PointMass) error {
	if err := pm.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, pointHeader); err != nil {
		return err
	}
	for i := range pm.Time {
		p, v := pm.Pos[i], pm.Vel[i]
		if err := writeRow(bw, pm.Time[i], p.X, p.Y, p.Z, v.X, v.Y, v.Z, pm.Mass); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func WriteResolved(w io.Writer, rs *dynamo.ResolvedSeries) error {
	if err := rs.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, resolvedHeader); err != nil {
		return err
	}
	for i, s := range rs.Samples {
		in := s.I
		err := writeRow(bw, rs.Time[i],
			s.Pos.X, s.Pos.Y, s.Pos.Z, s.Vel.X, s.Vel.Y, s.Vel.Z,
			s.Omega.X, s.Omega.Y, s.Omega.Z, s.L.X, s.L.Y, s.L.Z,
			in.Ixx, in.Iyy, in.Izz, in.Ixy, in.Iyz, in.Ixz,
			rs.KERot[i], rs.PESpring[i], rs.PEGrav[i], rs.ETot[i], rs.DEDt[i])
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteDir writes every table of c under root, the layout Dir reads back.
func WriteDir(root string, c *dynamo.Collection) error {
	if err := writeFile(ResolvedFile(root), func(w io.Writer) error { return WriteResolved(w, &c.Resolved) }); err != nil {
		return err
	}
	for i := range c.Points {
		pm := &c.Points[i]
		if err := writeFile(PointMassFile(root, i), func(w io.Writer) error { return WritePointMass(w, pm) }); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("dataio: write %s: %w", path, err)
	}
	return f.Close()
}
