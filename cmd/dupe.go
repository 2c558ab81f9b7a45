package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"imagesearch/internal/config"
	"imagesearch/internal/dupe"
)

var dupeCmd = &cobra.Command{
	Use:   "dupe <path>...",
	Short: "Find groups of visually identical images",
	Long: `Dupe fingerprints every image found under the given paths and groups the
files whose fingerprints are identical. Identical fingerprints mean the
pictures are the same image as the algorithm sees it, even when the files
differ in format, size or compression.

Directories are searched recursively. Files that cannot be decoded are
skipped when they were discovered inside a directory, but fatal when named
directly on the command line.

Examples:
  # Group duplicates across two photo collections
  imagesearch dupe ~/photos ~/backup/photos

  # Use a stricter fingerprint
  imagesearch dupe ~/photos -a phash -p hash_size=16

  # Plain text blocks instead of JSON
  imagesearch dupe ~/photos -f text`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDupe,
}

func init() {
	rootCmd.AddCommand(dupeCmd)

	registerScanFlags(dupeCmd)
}

func runDupe(cmd *cobra.Command, args []string) error {
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
	groups, err := dupe.Find(args, algo, dupe.Options{
		Params:   params,
		Decoder:  decoderFromConfig(cfg),
		Reporter: reporter,
	})
	finish()
	if err != nil {
		return err
	}

	if format == "text" {
		printDupeText(os.Stdout, groups)
		return nil
	}
	return writeJSON(os.Stdout, newDupeOutput(algo.Name, groups))
}
