package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"givebase.app/crm/internal/service"
)

func siteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Manage an organization's public site",
	}
	cmd.AddCommand(sitePublishCmd())
	return cmd
}

func sitePublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the site if every completeness criterion is met",
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

			publication, err := a.services.Publication().PublishSite(cmd.Context(), orgID)
			var precondition *service.PreconditionFailedError
			if errors.As(err, &precondition) {
				return fmt.Errorf("site not published, missing: %v", precondition.MissingRequirements)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(out, publication)
			}
			fmt.Fprintf(out, "Site published at %s\n", publication.PublishedAt.Format(time.RFC3339))
			return nil
		},
	}
	addOrganizationFlags(cmd)
	return cmd
}
