package dupe

import (
	"sort"

	"imagesearch/internal/fingerprint"
	"imagesearch/internal/imgio"
	"imagesearch/internal/progress"
	"imagesearch/internal/scanner"
)

// Group is a set of at least two files whose images fingerprint identically
// under one algorithm.
type Group struct {
	Hash      fingerprint.Hash
	Algorithm string
	Paths     []string
}

// Options adjusts a duplicate scan.
type Options struct {
	Params   fingerprint.Params
	Decoder  *imgio.Decoder
	Reporter progress.Reporter
}

// Find fingerprints every image reachable from searchPaths and groups the
// files whose fingerprints encode identically. Groups come out ordered by
// hash encoding with member paths sorted, so two runs over the same tree
// print the same. Files that appear once stay out of the result.
func Find(searchPaths []string, algo fingerprint.Algorithm, opts Options) ([]Group, error) {
	pathsByHash := make(map[string][]string)
	hashes := make(map[string]fingerprint.Hash)

	stream := fingerprint.Stream(scanner.Walk(searchPaths), algo, fingerprint.Options{
		Params:   opts.Params,
		Decoder:  opts.Decoder,
		Reporter: opts.Reporter,
	})
	for fp, err := range stream {
		if err != nil {
			return nil, err
		}
		key := fp.Hash.String()
		pathsByHash[key] = append(pathsByHash[key], fp.Path)
		hashes[key] = fp.Hash
	}

	var groups []Group
	for key, paths := range pathsByHash {
		if len(paths) < 2 {
			continue
		}
		sort.Strings(paths)
		groups = append(groups, Group{Hash: hashes[key], Algorithm: algo.Name, Paths: paths})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Hash.String() < groups[j].Hash.String()
	})
	return groups, nil
}
