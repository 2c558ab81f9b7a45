package fingerprint

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/samber/lo"
)

// Hash is an immutable perceptual fingerprint of an image. Distance
// measures dissimilarity against another hash of the same algorithm, with 0
// meaning identical fingerprints. String renders the canonical encoding;
// duplicate grouping keys on it.
type Hash interface {
	Distance(other Hash) (float64, error)
	String() string
}

// ImageFingerprint pairs a fingerprint with the file it was computed from.
type ImageFingerprint struct {
	Path string
	Hash Hash
}

// ErrUnknownAlgorithm is returned by FromName for names that are not
// registered.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm is one registered fingerprinting method. Values are plain data
// in a package-level table; adding an algorithm means adding a table entry.
type Algorithm struct {
	Name        string
	Description string
	Params      []ParamSpec

	compute func(img image.Image, p Params) (Hash, error)
}

// Compute fingerprints a decoded image. Missing parameters fall back to
// their declared defaults, so a nil Params is fine.
func (a Algorithm) Compute(img image.Image, p Params) (Hash, error) {
	return a.compute(img, a.fillDefaults(p))
}

// FromName looks up a registered algorithm by name, case-insensitively.
func FromName(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q (available: %s)",
		ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
}

// Algorithms returns the registered algorithms in registry order.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), algorithms...)
}

// Names returns the registered algorithm names in registry order.
func Names() []string {
	return lo.Map(algorithms, func(a Algorithm, _ int) string { return a.Name })
}
