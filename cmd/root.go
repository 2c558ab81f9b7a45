package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"imagesearch/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "imagesearch",
	Short: "A CLI tool for finding images by visual similarity",
	Long: `Image Search scans files and directories for images that look like a
reference image, using perceptual fingerprints instead of byte equality.
Resized copies, recompressed exports and format conversions of the same
picture fingerprint close to each other, so near-duplicates can be found
and grouped without comparing files byte by byte.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every processed file to stderr")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
	logging.Setup(verbose)
}
