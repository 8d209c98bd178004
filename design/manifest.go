// Package design - manifest serialization.
//
// Writer emits the two plain tabular artifacts the downstream emulator
// imports, plus (optionally) the per-point collaborator hand-off.
//
// Safety: each manifest is rendered into memory first and written with a
// single os.WriteFile call, so an I/O failure never leaves a truncated file
// that could pass for a complete one. Errors carry path context.
package design

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Manifest path conventions under Writer.Root.
const (
	pointsManifestPattern = "design_points_%s_%s.dat"
	rangesManifestPattern = "design_ranges_%s_%s.dat"
)

// Writer serializes Designs.
//
// Fields:
//   - Root    — output root; manifests land directly under it, collaborator
//     files under <Root>/<kind>/<system>/.
//   - Physics — tables for collaborator metadata resolution (cross section).
//     Only consulted when Inputs is set.
//   - Inputs  — optional module-input collaborator, invoked once per point.
type Writer struct {
	Root    string
	Physics Physics
	Inputs  ModuleInputWriter
}

// Write creates the per-design output directory (idempotent), writes the
// design-point and range manifests, and hands each point to the Inputs
// collaborator when one is attached.
//
// Manifest formats:
//
//	design_points_<kind>_<system>.dat:  idx,<key_1>,...,<key_n>  (+ one row per point)
//	design_ranges_<kind>_<system>.dat:  param,min,max            (+ one row per sampled key)
//
// Keys follow Space order; derived keys trail the sampled ones. Range rows
// carry the floor-adjusted sampling bounds. Floats are rendered with
// strconv.FormatFloat(v, 'g', -1, 64) so parsing them back yields the exact
// stored value.
func (w Writer) Write(d Design) error {
	outdir := filepath.Join(w.Root, string(d.Kind), d.System.Label())
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return fmt.Errorf("design: create %s: %v", outdir, err)
	}

	if err := w.writePoints(d); err != nil {
		return err
	}
	if err := w.writeRanges(d); err != nil {
		return err
	}

	if w.Inputs != nil {
		recs, err := d.Records(w.Physics)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			if err = w.Inputs.WriteModuleInputs(outdir, rec.ID, rec.Values, rec.Meta); err != nil {
				return fmt.Errorf("design: module inputs for point %s: %w", rec.ID, err)
			}
		}
	}

	return nil
}

// writePoints renders and writes the design-point table.
func (w Writer) writePoints(d Design) error {
	keys := d.Space.AllKeys()

	var buf bytes.Buffer
	buf.WriteString("idx")
	for _, k := range keys {
		buf.WriteByte(',')
		buf.WriteString(k)
	}
	buf.WriteByte('\n')

	for _, pt := range d.Points {
		buf.WriteString(pt.ID)
		for _, k := range keys {
			buf.WriteByte(',')
			buf.WriteString(formatFloat(pt.Values[k]))
		}
		buf.WriteByte('\n')
	}

	path := filepath.Join(w.Root, fmt.Sprintf(pointsManifestPattern, d.Kind, d.System.Label()))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("design: write %s: %v", path, err)
	}

	return nil
}

// writeRanges renders and writes the range table (sampled parameters only;
// derived parameters have no range).
func (w Writer) writeRanges(d Design) error {
	var buf bytes.Buffer
	buf.WriteString("param,min,max\n")
	for _, sp := range d.Space.Specs() {
		buf.WriteString(sp.Key)
		buf.WriteByte(',')
		buf.WriteString(formatFloat(sp.SamplingMin()))
		buf.WriteByte(',')
		buf.WriteString(formatFloat(sp.Max))
		buf.WriteByte('\n')
	}

	path := filepath.Join(w.Root, fmt.Sprintf(rangesManifestPattern, d.Kind, d.System.Label()))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("design: write %s: %v", path, err)
	}

	return nil
}

// formatFloat renders v in the shortest form that parses back exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
