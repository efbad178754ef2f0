package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"givebase.app/crm/internal/model"
)

func completenessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completeness",
		Short: "Inspect or recompute an organization's public visibility",
	}
	cmd.AddCommand(completenessStatusCmd())
	cmd.AddCommand(completenessRefreshCmd())
	return cmd
}

func completenessStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Evaluate every criterion without changing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			orgID, err := a.organizationID(cmd)
			if err != nil {
				return err
			}
			status, err := a.services.Completeness().GetCompletenessStatus(cmd.Context(), orgID)
			if err != nil {
				return err
			}
			return printStatus(cmd, status)
		},
	}
	addOrganizationFlags(cmd)
	return cmd
}

func completenessRefreshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Re-evaluate completeness and persist the public flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			orgID, err := a.organizationID(cmd)
			if err != nil {
				return err
			}
			status, err := a.services.Completeness().RefreshStatus(cmd.Context(), orgID)
			if err != nil {
				return err
			}
			return printStatus(cmd, status)
		},
	}
	addOrganizationFlags(cmd)
	return cmd
}

func printStatus(cmd *cobra.Command, status *model.CompletenessStatus) error {
	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, status)
	}

	fmt.Fprintln(out, "Completeness")
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintf(out, "  %-26s %s\n", "Publicly active:", yesNo(status.IsPubliclyActive))
	fmt.Fprintf(out, "  %-26s %s\n", "Payment account verified:", yesNo(status.StripeAccountVerified))
	fmt.Fprintf(out, "  %-26s %s\n", "Required pages published:", yesNo(status.RequiredPagesPublished))
	fmt.Fprintf(out, "  %-26s %s\n", "Active subscription:", yesNo(status.HasActiveSubscription))
	if len(status.MissingRequirements) > 0 {
		fmt.Fprintln(out, "\nMissing:")
		for _, r := range status.MissingRequirements {
			fmt.Fprintf(out, "  - %s\n", r)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
