package main

import (
	"context"
	"fmt"

	"github.com/innoalumni/portalkit/internal/api"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the portal and print the bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadConfig()
		if err != nil {
			return err
		}
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if email == "" || password == "" {
			return fmt.Errorf("both --email and --password are required")
		}

		sender, err := doc.Sender()
		if err != nil {
			return err
		}

		tok, err := api.NewClient(sender).Login(context.Background(), email, password)
		if err != nil {
			return err
		}
		cmd.Println(tok.AccessToken)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
}
