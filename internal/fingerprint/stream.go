package fingerprint

import (
	"fmt"
	"iter"

	"imagesearch/internal/imgio"
	"imagesearch/internal/progress"
	"imagesearch/internal/scanner"
)

// Options adjusts how a fingerprint stream runs.
type Options struct {
	// Params are the algorithm parameters, typically from ParseParams.
	Params Params
	// Decoder opens candidate files. Nil means a default decoder.
	Decoder *imgio.Decoder
	// Reporter receives advisory per-file notifications. Nil disables them.
	Reporter progress.Reporter
}

func (o *Options) fill() {
	if o.Decoder == nil {
		o.Decoder = &imgio.Decoder{}
	}
	if o.Reporter == nil {
		o.Reporter = progress.Nop{}
	}
}

// Stream lazily fingerprints every candidate, in candidate order. Nothing
// is read from the walk until the consumer pulls, and stopping the consumer
// stops the walk.
//
// Failures follow the candidate's provenance: a file named explicitly must
// fingerprint, so its decode failure ends the stream with that error, while
// a file merely discovered inside a directory is skipped and reported.
// Walker failures and compute failures (bad parameters poison every file
// equally) always end the stream.
func Stream(candidates iter.Seq2[scanner.Candidate, error], algo Algorithm, opts Options) iter.Seq2[ImageFingerprint, error] {
	opts.fill()
	return func(yield func(ImageFingerprint, error) bool) {
		for cand, err := range candidates {
			if err != nil {
				yield(ImageFingerprint{}, err)
				return
			}

			img, err := opts.Decoder.Decode(cand.Path)
			if err != nil {
				if !cand.Explicit {
					opts.Reporter.Skipped(cand.Path, err)
					continue
				}
				yield(ImageFingerprint{}, err)
				return
			}

			hash, err := algo.Compute(img, opts.Params)
			if err != nil {
				yield(ImageFingerprint{}, fmt.Errorf("fingerprint %s with %s: %w", cand.Path, algo.Name, err))
				return
			}

			opts.Reporter.Hashed(cand.Path)
			if !yield(ImageFingerprint{Path: cand.Path, Hash: hash}, nil) {
				return
			}
		}
	}
}
