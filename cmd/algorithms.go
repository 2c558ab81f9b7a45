package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"imagesearch/internal/fingerprint"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the available fingerprint algorithms",
	Long: `List every fingerprint algorithm the compare and dupe commands accept,
with their parameters and default values.`,
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ALGORITHM\tPARAMETERS\tDESCRIPTION")
		fmt.Fprintln(w, "---------\t----------\t-----------")
		for _, algo := range fingerprint.Algorithms() {
			params := lo.Map(algo.Params, func(p fingerprint.ParamSpec, _ int) string {
				return fmt.Sprintf("%s=%v", p.Name, p.Default)
			})
			list := strings.Join(params, ", ")
			if list == "" {
				list = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", algo.Name, list, algo.Description)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
