package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag   string
	tokenFlag string
	rootCmd   = &cobra.Command{
		Use:   "notepadctl",
		Short: "CLI client for the notepad backend REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8000", "Notepad service base URL")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", os.Getenv("NOTEPAD_TOKEN"), "Supabase session token (defaults to NOTEPAD_TOKEN)")

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth(apiFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(healthCmd)

	notesCmd := &cobra.Command{
		Use:   "notes",
		Short: "Work with notes",
	}
	notesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List the caller's notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tokenFlag == "" {
				return fmt.Errorf("--token required")
			}
			return runNotesList(apiFlag, tokenFlag, os.Stdout)
		},
	}
	notesCmd.AddCommand(notesListCmd)
	rootCmd.AddCommand(notesCmd)

	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Send one chat message to the assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			message, _ := cmd.Flags().GetString("message")
			if tokenFlag == "" {
				return fmt.Errorf("--token required")
			}
			return runChat(apiFlag, tokenFlag, message, os.Stdout)
		},
	}
	chatCmd.Flags().StringP("message", "m", "", "Message text (required)")
	_ = chatCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(chatCmd)

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a Supabase session token from email/password",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			supabaseURL, _ := cmd.Flags().GetString("supabase-url")
			apiKey, _ := cmd.Flags().GetString("apikey")
			if supabaseURL == "" {
				supabaseURL = os.Getenv("NOTEPAD_SUPABASE_URL")
			}
			if apiKey == "" {
				apiKey = os.Getenv("NOTEPAD_SUPABASE_KEY")
			}
			if supabaseURL == "" || apiKey == "" {
				return fmt.Errorf("--supabase-url and --apikey required (or NOTEPAD_SUPABASE_URL / NOTEPAD_SUPABASE_KEY)")
			}
			return runToken(supabaseURL, apiKey, email, password, os.Stdout)
		},
	}
	tokenCmd.Flags().StringP("email", "e", "", "Account email (required)")
	tokenCmd.Flags().StringP("password", "p", "", "Account password (required)")
	tokenCmd.Flags().String("supabase-url", "", "Supabase project URL")
	tokenCmd.Flags().String("apikey", "", "Supabase anon/service API key")
	_ = tokenCmd.MarkFlagRequired("email")
	_ = tokenCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(tokenCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
