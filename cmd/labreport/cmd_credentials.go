package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"labreport/internal/credentials"
)

var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Manage the saved SMTP account",
}

var credentialsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Configure and save SMTP credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := promptCredentials()
		if err != nil {
			return err
		}
		if err := credentials.NewFileStore(cfg.CredentialsFile).Save(creds); err != nil {
			return err
		}
		fmt.Printf("Credentials for %s saved to %s\n", creds.Email, cfg.CredentialsFile)
		return nil
	},
}

var credentialsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved SMTP credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := credentials.NewFileStore(cfg.CredentialsFile).Clear(); err != nil {
			return err
		}
		fmt.Println("Credentials cleared.")
		return nil
	},
}

func init() {
	credentialsCmd.AddCommand(credentialsSetCmd, credentialsClearCmd)
}
