package search

import (
	"errors"
	"fmt"
	"iter"

	"imagesearch/internal/fingerprint"
	"imagesearch/internal/imgio"
	"imagesearch/internal/progress"
	"imagesearch/internal/scanner"
)

// Diff is one candidate image that matched the reference, with its
// perceptual distance. Lower means more similar, 0 means an identical
// fingerprint.
type Diff struct {
	Path     string
	Distance float64
}

// ErrInvalidThreshold reports an unusable threshold configuration.
var ErrInvalidThreshold = errors.New("invalid threshold")

// Options adjusts a comparison run.
type Options struct {
	// Params are the algorithm parameters, used for the reference and
	// every candidate alike.
	Params fingerprint.Params
	// Threshold caps the distance of emitted results. Nil means no cap,
	// every candidate is emitted with its distance.
	Threshold *float64
	// StopOnFirstMatch ends the run at the first emitted result, without
	// fingerprinting anything further. Requires a threshold; without one
	// the first candidate would always win.
	StopOnFirstMatch bool
	// Decoder and Reporter pass through to the fingerprint stream.
	Decoder  *imgio.Decoder
	Reporter progress.Reporter
}

// Compare fingerprints the reference image, then lazily fingerprints every
// image reachable from searchPaths and yields the ones within the
// threshold, in walk order. Configuration problems and reference failures
// surface immediately from Compare itself; per-candidate failures follow
// the stream policy (explicitly named files are fatal, discovered files
// are skipped).
func Compare(refPath string, searchPaths []string, algo fingerprint.Algorithm, opts Options) (iter.Seq2[Diff, error], error) {
	if opts.Threshold != nil && *opts.Threshold < 0 {
		return nil, fmt.Errorf("%w: must be >= 0, got %v", ErrInvalidThreshold, *opts.Threshold)
	}
	if opts.StopOnFirstMatch && opts.Threshold == nil {
		return nil, fmt.Errorf("%w: stop on first match requires a threshold", ErrInvalidThreshold)
	}

	decoder := opts.Decoder
	if decoder == nil {
		decoder = &imgio.Decoder{}
	}

	// The reference is always explicit: any failure here is fatal.
	img, err := decoder.Decode(refPath)
	if err != nil {
		return nil, err
	}
	ref, err := algo.Compute(img, opts.Params)
	if err != nil {
		return nil, fmt.Errorf("fingerprint %s with %s: %w", refPath, algo.Name, err)
	}

	seq := func(yield func(Diff, error) bool) {
		stream := fingerprint.Stream(scanner.Walk(searchPaths), algo, fingerprint.Options{
			Params:   opts.Params,
			Decoder:  decoder,
			Reporter: opts.Reporter,
		})
		for fp, err := range stream {
			if err != nil {
				yield(Diff{}, err)
				return
			}
			d, err := fp.Hash.Distance(ref)
			if err != nil {
				yield(Diff{}, err)
				return
			}
			if opts.Threshold != nil && d > *opts.Threshold {
				continue
			}
			if !yield(Diff{Path: fp.Path, Distance: d}, nil) {
				return
			}
			if opts.StopOnFirstMatch {
				return
			}
		}
	}
	return seq, nil
}
