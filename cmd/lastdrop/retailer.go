package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lastdrop/internal/console"
	"lastdrop/internal/dashboard"
	"lastdrop/internal/domain"
)

func newRegisterCmd(a *app) *cobra.Command {
	var email, password, company, contactName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a retailer account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			panel := dashboard.NewPanel(a.client(), a.logger)
			defer panel.Close()

			panel.SetStage(domain.StageRegister)
			panel.SetEmail(email)
			panel.SetPassword(password)
			panel.SetCompany(company)
			panel.SetContactName(contactName)

			err := panel.Register(cmd.Context())
			if console.PrintValidation(cmd.OutOrStdout(), err) {
				return err
			}
			if msg := panel.View().Message; msg != "" {
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account e-mail (required)")
	cmd.Flags().StringVar(&password, "password", "", "account password (required)")
	cmd.Flags().StringVar(&company, "company", "", "company (optional)")
	cmd.Flags().StringVar(&contactName, "contact-name", "", "contact name (optional)")

	return cmd
}

func newOrdersCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Sign in and list my orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			panel := dashboard.NewPanel(a.client(), a.logger)
			defer panel.Close()

			panel.SetEmail(email)
			panel.SetPassword(password)

			if err := panel.Login(cmd.Context()); err != nil {
				if !console.PrintValidation(cmd.OutOrStdout(), err) {
					fmt.Fprintln(cmd.OutOrStdout(), panel.View().Message)
				}
				return err
			}

			console.PrintOrders(cmd.OutOrStdout(), panel.View().Orders)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account e-mail (required)")
	cmd.Flags().StringVar(&password, "password", "", "account password (required)")

	return cmd
}

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive retailer area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.client()
			panel := dashboard.NewPanel(client, a.logger)
			defer panel.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Backend: %s\n", client.BaseURL())
			return console.Run(cmd.Context(), panel, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
