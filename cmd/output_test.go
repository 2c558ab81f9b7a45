package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"imagesearch/internal/dupe"
	"imagesearch/internal/fingerprint"
	"imagesearch/internal/search"
)

func TestWriteJSONCompareEnvelope(t *testing.T) {
	out := compareOutput{
		ReferencePath: "/pics/ref.png",
		Algorithm:     "ahash",
		Diffs: []compareDiff{
			{Diff: 0, Path: "/pics/a.png"},
			{Diff: 41.5, Path: "/pics/b.png"},
		},
	}

	var buf bytes.Buffer
	if err := writeJSON(&buf, out); err != nil {
		t.Fatalf("writeJSON failed: %v", err)
	}

	want := `{
  "reference_path": "/pics/ref.png",
  "algorithm": "ahash",
  "diffs": [
    {
      "diff": 0,
      "path": "/pics/a.png"
    },
    {
      "diff": 41.5,
      "path": "/pics/b.png"
    }
  ]
}
`
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteJSONEmptyDiffs(t *testing.T) {
	out := compareOutput{ReferencePath: "/pics/ref.png", Algorithm: "ahash", Diffs: []compareDiff{}}

	var buf bytes.Buffer
	if err := writeJSON(&buf, out); err != nil {
		t.Fatalf("writeJSON failed: %v", err)
	}

	if !strings.Contains(buf.String(), `"diffs": []`) {
		t.Errorf("no matches should encode as an empty array, got:\n%s", buf.String())
	}
}

func TestNewDupeOutput(t *testing.T) {
	groups := []dupe.Group{
		{Hash: fakeHash("aaaa"), Algorithm: "ahash", Paths: []string{"/pics/a.png", "/pics/b.png"}},
		{Hash: fakeHash("bbbb"), Algorithm: "ahash", Paths: []string{"/pics/c.png", "/pics/d.png"}},
	}

	out := newDupeOutput("ahash", groups)

	if out.Algorithm != "ahash" {
		t.Errorf("algorithm = %q; want %q", out.Algorithm, "ahash")
	}
	if len(out.Dupes) != 2 {
		t.Fatalf("got %d dupe entries; want 2", len(out.Dupes))
	}
	if out.Dupes[0].ImageHash != "aaaa" {
		t.Errorf("image hash = %q; want %q", out.Dupes[0].ImageHash, "aaaa")
	}
	if len(out.Dupes[0].Paths) != 2 || out.Dupes[0].Paths[0] != "/pics/a.png" {
		t.Errorf("paths = %v; want the group members", out.Dupes[0].Paths)
	}
}

func TestNewDupeOutputNoGroups(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, newDupeOutput("ahash", nil)); err != nil {
		t.Fatalf("writeJSON failed: %v", err)
	}

	if !strings.Contains(buf.String(), `"dupes": []`) {
		t.Errorf("no groups should encode as an empty array, got:\n%s", buf.String())
	}
}

func TestPrintCompareText(t *testing.T) {
	diffs := diffSeq([]search.Diff{
		{Path: "/pics/a.png", Distance: 0},
		{Path: "/pics/b.png", Distance: 41.5},
	}, nil)

	var buf bytes.Buffer
	if err := printCompareText(&buf, "/pics/ref.png", diffs); err != nil {
		t.Fatalf("printCompareText failed: %v", err)
	}

	want := "/pics/ref.png\n0\t/pics/a.png\n41.5\t/pics/b.png\n"
	if buf.String() != want {
		t.Errorf("got %q; want %q", buf.String(), want)
	}
}

func TestPrintCompareTextPropagatesError(t *testing.T) {
	scanErr := errors.New("scan failed")
	diffs := diffSeq([]search.Diff{{Path: "/pics/a.png", Distance: 3}}, scanErr)

	var buf bytes.Buffer
	err := printCompareText(&buf, "/pics/ref.png", diffs)

	if !errors.Is(err, scanErr) {
		t.Errorf("error = %v; want %v", err, scanErr)
	}
	// Results before the failure were already streamed out.
	if buf.String() != "/pics/ref.png\n3\t/pics/a.png\n" {
		t.Errorf("got %q; want the lines before the failure", buf.String())
	}
}

func TestPrintDupeText(t *testing.T) {
	groups := []dupe.Group{
		{Hash: fakeHash("aaaa"), Algorithm: "ahash", Paths: []string{"/pics/a.png", "/pics/b.png"}},
		{Hash: fakeHash("bbbb"), Algorithm: "ahash", Paths: []string{"/pics/c.png", "/pics/d.png"}},
	}

	var buf bytes.Buffer
	printDupeText(&buf, groups)

	want := "aaaa\n/pics/a.png\n/pics/b.png\nbbbb\n/pics/c.png\n/pics/d.png\n"
	if buf.String() != want {
		t.Errorf("got %q; want %q", buf.String(), want)
	}
}

// Helper functions

type fakeHash string

func (f fakeHash) Distance(fingerprint.Hash) (float64, error) { return 0, nil }
func (f fakeHash) String() string                             { return string(f) }

func diffSeq(diffs []search.Diff, trailing error) func(func(search.Diff, error) bool) {
	return func(yield func(search.Diff, error) bool) {
		for _, d := range diffs {
			if !yield(d, nil) {
				return
			}
		}
		if trailing != nil {
			yield(search.Diff{}, trailing)
		}
	}
}
