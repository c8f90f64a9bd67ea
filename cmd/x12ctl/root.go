// Command x12ctl translates X12 payloads from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "x12ctl",
	Short: "X12 translation toolkit",
	Long: `x12ctl translates between business documents and ANSI X12 interchanges.

Outbound: a JSON document becomes wire-ready X12 text.
Inbound: raw X12 text becomes a parsed JSON document.

Examples:
  x12ctl translate --type 940 --in order.json --sender ACME --receiver WAREHOUSE
  x12ctl translate --type 997 --in ack.edi`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
