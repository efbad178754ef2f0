// Command crmctl runs operator tasks against the CRM database: inspecting and
// recomputing an organization's completeness and publishing its site.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "crmctl",
		Short:         "Operator tooling for GiveBase organizations",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(completenessCmd())
	rootCmd.AddCommand(siteCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
