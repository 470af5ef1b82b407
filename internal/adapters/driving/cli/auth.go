package cli

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage backend API credentials",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save an API token for the search backend",
	RunE:  runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Delete the saved API token",
	RunE:  runAuthLogout,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an API token is saved",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if credentialsStore == nil {
		return errors.New("credentials store not configured")
	}

	cmd.Print("API token: ")
	token := readSecret()
	cmd.Println()

	if token == "" {
		return errors.New("no token entered")
	}

	if err := credentialsStore.SaveToken(token); err != nil {
		return err
	}
	cmd.Printf("Token saved to %s\n", credentialsStore.Path())
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if credentialsStore == nil {
		return errors.New("credentials store not configured")
	}

	if err := credentialsStore.Delete(); err != nil {
		return err
	}
	cmd.Println("Credentials deleted.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if credentialsStore == nil {
		return errors.New("credentials store not configured")
	}

	if !credentialsStore.IsAuthenticated() {
		cmd.Println("Not authenticated. Run 'tripsearch auth login' to save a token.")
		return nil
	}

	token, err := credentialsStore.GetToken(cmd.Context())
	if err != nil {
		return err
	}
	cmd.Printf("Authenticated (token %s)\n", maskToken(token))
	return nil
}

// readSecret reads a token without echoing when stdin is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readSecret() string {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
