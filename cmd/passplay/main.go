// passplay runs a single Spyfall round on one shared device: the device is
// passed around for role reveals and votes, no server involved.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var playerNames []string

var rootCmd = &cobra.Command{
	Use:   "passplay --players Alice,Bob,Carol",
	Short: "Single-device Spyfall round",
	Long: `Runs one pass-and-play Spyfall round in the terminal: everyone sees
their secret role in turn, discusses, votes, and the round is resolved.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRound(cmd.InOrStdin(), cmd.OutOrStdout(), playerNames)
	},
}

func init() {
	rootCmd.Flags().StringSliceVarP(&playerNames, "players", "p", nil, "player names, comma-separated or repeated")
	_ = rootCmd.MarkFlagRequired("players")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
