package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"imagesearch/internal/config"
	"imagesearch/internal/search"
)

var compareCmd = &cobra.Command{
	Use:   "compare <reference> <path>...",
	Short: "Find images that look like a reference image",
	Long: `Compare fingerprints the reference image and every image found under the
given paths, then reports each one with its perceptual distance to the
reference. Lower distance values indicate more similar images; a distance
of 0 means the fingerprints are identical.

Directories are searched recursively. Files that cannot be decoded are
skipped when they were discovered inside a directory, but fatal when named
directly on the command line.

Examples:
  # Compare everything under the photos directory against ref.jpg
  imagesearch compare ref.jpg ~/photos

  # Only report close matches
  imagesearch compare ref.jpg ~/photos --threshold 10

  # Stop at the first close match
  imagesearch compare ref.jpg ~/photos -t 10 -1

  # Use a different algorithm with a bigger hash
  imagesearch compare ref.jpg ~/photos -a phash -p hash_size=16

  # Tab-separated text instead of JSON
  imagesearch compare ref.jpg ~/photos -f text`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	registerScanFlags(compareCmd)
	compareCmd.Flags().Float64P("threshold", "t", 0, "Maximum distance to report (unset reports every image)")
	compareCmd.Flags().BoolP("stop-on-first-match", "1", false, "Stop scanning after the first match within the threshold")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	algo, params, err := algorithmFromFlags(cmd, cfg)
	if err != nil {
		return err
	}
	format, err := formatFromFlags(cmd, cfg)
	if err != nil {
		return err
	}

	reporter, finish := reporterFromFlags(cmd)
	opts := search.Options{
		Params:           params,
		StopOnFirstMatch: mustGetBool(cmd, "stop-on-first-match"),
		Decoder:          decoderFromConfig(cfg),
		Reporter:         reporter,
	}
	if cmd.Flags().Changed("threshold") {
		threshold := mustGetFloat64(cmd, "threshold")
		opts.Threshold = &threshold
	}

	diffs, err := search.Compare(args[0], args[1:], algo, opts)
	if err != nil {
		return err
	}

	if format == "text" {
		err := printCompareText(os.Stdout, args[0], diffs)
		finish()
		return err
	}

	out := compareOutput{
		ReferencePath: absPath(args[0]),
		Algorithm:     algo.Name,
		Diffs:         []compareDiff{},
	}
	for d, err := range diffs {
		if err != nil {
			finish()
			return err
		}
		out.Diffs = append(out.Diffs, compareDiff{Diff: d.Distance, Path: absPath(d.Path)})
	}
	finish()
	return writeJSON(os.Stdout, out)
}
