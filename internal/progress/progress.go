package progress

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// Reporter receives advisory per-file notifications while a fingerprint
// stream runs. Calls happen inline from the pipeline, so implementations
// must be cheap and must not fail.
type Reporter interface {
	// Hashed is called after a file was fingerprinted successfully.
	Hashed(path string)
	// Skipped is called when a discovered file was dropped because it
	// could not be fingerprinted.
	Skipped(path string, err error)
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) Hashed(string)         {}
func (Nop) Skipped(string, error) {}

// Bar renders a live progress line on stderr. The total file count is not
// known up front (the walk is lazy), so it runs as a counter with running
// hashed/skipped tallies and the file handled last.
type Bar struct {
	bar     *progressbar.ProgressBar
	hashed  int
	skipped int
}

func NewBar() *Bar {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("fingerprinting"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
	return &Bar{bar: bar}
}

func (b *Bar) Hashed(path string) {
	b.hashed++
	b.advance(path)
}

func (b *Bar) Skipped(path string, err error) {
	b.skipped++
	b.advance(path)
}

func (b *Bar) advance(path string) {
	b.bar.Describe(fmt.Sprintf("fingerprinting [hashed %d, skipped %d] %s",
		b.hashed, b.skipped, filepath.Base(path)))
	_ = b.bar.Add(1)
}

// Finish terminates the progress line so result output starts clean.
func (b *Bar) Finish() {
	_ = b.bar.Finish()
	fmt.Fprintln(os.Stderr)
}

// Log emits one debug record per file through the process logger. Used by
// verbose runs to explain which files were dropped and why.
type Log struct{}

func (Log) Hashed(path string) {
	logrus.WithField("path", path).Debug("fingerprinted")
}

func (Log) Skipped(path string, err error) {
	logrus.WithField("path", path).WithError(err).Debug("skipped")
}

// Multi fans notifications out to several reporters.
func Multi(reporters ...Reporter) Reporter { return multi(reporters) }

type multi []Reporter

func (m multi) Hashed(path string) {
	for _, r := range m {
		r.Hashed(path)
	}
}

func (m multi) Skipped(path string, err error) {
	for _, r := range m {
		r.Skipped(path, err)
	}
}
