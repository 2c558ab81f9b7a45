package fingerprint

import (
	"fmt"
	"image"

	"github.com/corona10/goimagehash"
	"github.com/vitali-fedulov/imagehash2"
	"github.com/vitali-fedulov/images4"
)

// Bucket parameters for the icon central hash.
const (
	iconHashEpsilon = 0.25
	iconHashBuckets = 4
)

// goimagehash packs bits into uint64 words and rejects hashes that do not
// fill them exactly, so the grid edge must be a multiple of 8.
var hashSizeParam = ParamSpec{
	Name:    "hash_size",
	Default: 8,
	Help:    "edge length of the hash grid, a multiple of 8",
	Parse:   parseHashSizeParam,
}

var algorithms = []Algorithm{
	{
		Name:        "ahash",
		Description: "average hash: bits mark pixels brighter than the mean",
		Params:      []ParamSpec{hashSizeParam},
		compute: func(img image.Image, p Params) (Hash, error) {
			size := p.Int("hash_size")
			h, err := goimagehash.ExtAverageHash(img, size, size)
			if err != nil {
				return nil, err
			}
			return bitHash{h}, nil
		},
	},
	{
		Name:        "dhash",
		Description: "difference hash: bits mark horizontal brightness gradients",
		Params:      []ParamSpec{hashSizeParam},
		compute: func(img image.Image, p Params) (Hash, error) {
			size := p.Int("hash_size")
			h, err := goimagehash.ExtDifferenceHash(img, size, size)
			if err != nil {
				return nil, err
			}
			return bitHash{h}, nil
		},
	},
	{
		Name:        "phash",
		Description: "perceptual hash: bits mark dominant low-frequency DCT signs",
		Params:      []ParamSpec{hashSizeParam},
		compute: func(img image.Image, p Params) (Hash, error) {
			size := p.Int("hash_size")
			h, err := goimagehash.ExtPerceptionHash(img, size, size)
			if err != nil {
				return nil, err
			}
			return bitHash{h}, nil
		},
	},
	{
		Name:        "icon",
		Description: "downsampled icon compared by Euclidean color distance",
		compute: func(img image.Image, _ Params) (Hash, error) {
			icon := images4.Icon(img)
			return iconHash{
				icon:    icon,
				central: imagehash2.CentralHash9(icon, iconHashEpsilon, iconHashBuckets),
			}, nil
		},
	},
}

// bitHash adapts a goimagehash bit-vector hash. Distance is the Hamming
// distance between the vectors; mixing algorithms or sizes is an error.
type bitHash struct {
	hash *goimagehash.ExtImageHash
}

func (h bitHash) Distance(other Hash) (float64, error) {
	o, ok := other.(bitHash)
	if !ok {
		return 0, fmt.Errorf("fingerprints are not comparable: %s vs %s", h, other)
	}
	d, err := h.hash.Distance(o.hash)
	if err != nil {
		return 0, err
	}
	return float64(d), nil
}

func (h bitHash) String() string {
	return h.hash.ToString()
}

// iconHash adapts an images4 icon. Distance sums the three EucMetric
// channel metrics. String renders the central hash of the icon's
// quantization buckets, which is what duplicate grouping keys on: icons in
// the same buckets encode identically even when their pixels differ a bit.
type iconHash struct {
	icon    images4.IconT
	central uint64
}

func (h iconHash) Distance(other Hash) (float64, error) {
	o, ok := other.(iconHash)
	if !ok {
		return 0, fmt.Errorf("fingerprints are not comparable: %s vs %s", h, other)
	}
	m1, m2, m3 := images4.EucMetric(h.icon, o.icon)
	return m1 + m2 + m3, nil
}

func (h iconHash) String() string {
	return fmt.Sprintf("%016x", h.central)
}
