package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/contact"
)

var (
	contactName    string
	contactEmail   string
	contactMessage string
)

// contactCmd submits the contact form without the UI
var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Submit a contact message through the configured transport",
	Long: `Validates and delivers one contact message, printing the JSON result.
Exits non-zero when validation or delivery fails.

Example:
  folio contact --name "Ada Lovelace" --email ada@example.com --message "Loved the projects section!"`,
	Args: cobra.NoArgs,
	RunE: runContact,
}

func init() {
	contactCmd.Flags().StringVar(&contactName, "name", "", "Sender name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "Sender email")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "Message body")
}

func runContact(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	svc, err := contact.NewServiceFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	res := svc.Submit(cmd.Context(), contact.Payload{
		Name:    contactName,
		Email:   contactEmail,
		Message: contactMessage,
	})

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if !res.Success {
		return errors.New(res.Message)
	}
	return nil
}
