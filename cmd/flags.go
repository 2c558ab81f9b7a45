package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"imagesearch/internal/config"
	"imagesearch/internal/fingerprint"
	"imagesearch/internal/imgio"
	"imagesearch/internal/progress"
)

// mustGetBool gets a bool flag value or panics if the flag doesn't exist.
// This is appropriate for flags defined in init() - errors indicate programming bugs.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetString gets a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetFloat64 gets a float64 flag value or panics if the flag doesn't exist.
func mustGetFloat64(cmd *cobra.Command, name string) float64 {
	val, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetStringSlice gets a string slice flag value or panics if the flag doesn't exist.
func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// registerScanFlags adds the flags shared by every command that fingerprints
// files.
func registerScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("algorithm", "a", "", "Fingerprint algorithm (run 'imagesearch algorithms' for the list)")
	cmd.Flags().StringSliceP("param", "p", nil, "Algorithm parameter as name=value (can be specified multiple times)")
	cmd.Flags().StringP("format", "f", "", "Output format: json or text")
	cmd.Flags().Bool("progress", false, "Show scan progress on stderr")
}

// algorithmFromFlags resolves the fingerprint algorithm and its parameters
// from --algorithm and --param, falling back to the configured default.
func algorithmFromFlags(cmd *cobra.Command, cfg *config.Config) (fingerprint.Algorithm, fingerprint.Params, error) {
	name := mustGetString(cmd, "algorithm")
	if name == "" {
		name = cfg.Algorithm
	}
	algo, err := fingerprint.FromName(name)
	if err != nil {
		return fingerprint.Algorithm{}, nil, err
	}

	raw := make(map[string]string)
	for _, pair := range mustGetStringSlice(cmd, "param") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fingerprint.Algorithm{}, nil, fmt.Errorf("invalid --param %q, expected name=value", pair)
		}
		raw[key] = value
	}
	params, err := algo.ParseParams(raw)
	if err != nil {
		return fingerprint.Algorithm{}, nil, err
	}
	return algo, params, nil
}

// formatFromFlags resolves the output format from --format, falling back to
// the configured default.
func formatFromFlags(cmd *cobra.Command, cfg *config.Config) (string, error) {
	format := mustGetString(cmd, "format")
	if format == "" {
		format = cfg.Format
	}
	switch format {
	case "json", "text":
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected json or text", format)
	}
}

// reporterFromFlags builds the per-file progress reporter for a scan. The
// returned finish func must run once the scan is done so the progress line
// does not bleed into the results.
func reporterFromFlags(cmd *cobra.Command) (progress.Reporter, func()) {
	var reporters []progress.Reporter
	finish := func() {}
	if mustGetBool(cmd, "progress") {
		bar := progress.NewBar()
		reporters = append(reporters, bar)
		finish = bar.Finish
	}
	if verbose {
		reporters = append(reporters, progress.Log{})
	}
	if len(reporters) == 0 {
		return progress.Nop{}, finish
	}
	return progress.Multi(reporters...), finish
}

func decoderFromConfig(cfg *config.Config) *imgio.Decoder {
	return &imgio.Decoder{AutoOrient: cfg.Decoder.AutoOrient}
}
