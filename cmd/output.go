package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"path/filepath"

	"github.com/samber/lo"

	"imagesearch/internal/dupe"
	"imagesearch/internal/search"
)

// compareOutput is the JSON envelope of the compare command.
type compareOutput struct {
	ReferencePath string        `json:"reference_path"`
	Algorithm     string        `json:"algorithm"`
	Diffs         []compareDiff `json:"diffs"`
}

type compareDiff struct {
	Diff float64 `json:"diff"`
	Path string  `json:"path"`
}

// dupeOutput is the JSON envelope of the dupe command.
type dupeOutput struct {
	Algorithm string      `json:"algorithm"`
	Dupes     []dupeGroup `json:"dupes"`
}

type dupeGroup struct {
	ImageHash string   `json:"image_hash"`
	Paths     []string `json:"paths"`
}

func newDupeOutput(algorithm string, groups []dupe.Group) dupeOutput {
	out := dupeOutput{Algorithm: algorithm, Dupes: []dupeGroup{}}
	for _, g := range groups {
		out.Dupes = append(out.Dupes, dupeGroup{
			ImageHash: g.Hash.String(),
			Paths:     absPaths(g.Paths),
		})
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

// printCompareText prints the reference path, then streams one result per
// line as distance<TAB>path, so matches appear as soon as the walk finds them.
func printCompareText(w io.Writer, refPath string, diffs iter.Seq2[search.Diff, error]) error {
	fmt.Fprintln(w, absPath(refPath))
	for d, err := range diffs {
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%g\t%s\n", d.Distance, absPath(d.Path))
	}
	return nil
}

// printDupeText prints one block per group: the fingerprint encoding, then
// the member paths.
func printDupeText(w io.Writer, groups []dupe.Group) {
	for _, g := range groups {
		fmt.Fprintln(w, g.Hash.String())
		for _, path := range g.Paths {
			fmt.Fprintln(w, absPath(path))
		}
	}
}

// absPath makes a path absolute for output, so results read the same no
// matter which working-directory spelling found the file.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func absPaths(paths []string) []string {
	return lo.Map(paths, func(path string, _ int) string { return absPath(path) })
}
