package main

import (
	"github.com/spf13/cobra"

	"lastdrop/internal/console"
	"lastdrop/internal/domain"
	"lastdrop/internal/lead"
)

func newLeadCmd(a *app) *cobra.Command {
	var (
		record = domain.NewLeadRecord()
		role   string
	)

	cmd := &cobra.Command{
		Use:   "lead",
		Short: "Submit a contact request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := domain.ParseRole(role)
			if err != nil {
				return err
			}
			record.Role = parsed

			form := lead.NewForm(a.client(), a.logger)
			defer form.Close()
			form.Fill(record)

			err = form.Submit(cmd.Context())
			if console.PrintValidation(cmd.OutOrStdout(), err) {
				return err
			}
			console.PrintStatus(cmd.OutOrStdout(), form.Status())
			return err
		},
	}

	cmd.Flags().StringVar(&record.Name, "name", "", "your name (required)")
	cmd.Flags().StringVar(&record.Email, "email", "", "your e-mail (required)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleConsumer), "retailer, consumer or other")
	cmd.Flags().StringVar(&record.Company, "company", "", "company (optional)")
	cmd.Flags().StringVar(&record.Message, "message", "", "message (optional)")
	cmd.Flags().BoolVar(&record.Consent, "consent", true, "agree to be contacted about LastDrop")

	return cmd
}
