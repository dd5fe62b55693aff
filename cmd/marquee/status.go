package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server status",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	status, err := NewClient(serverURL).Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, status)
	}

	printStatus(out, serverURL, status)
	return nil
}

func printStatus(w io.Writer, server string, s *StatusResponse) {
	fmt.Fprintf(w, "Server:      %s (%s)\n", server, s.Status)
	fmt.Fprintf(w, "Version:     %s\n", s.Version)
	fmt.Fprintf(w, "Config:      %s\n", s.Config)
	fmt.Fprintf(w, "Cache TTL:   %s\n", s.CacheTTL)
	fmt.Fprintf(w, "Genre match: %s\n", s.GenreMatch)
	fmt.Fprintf(w, "Cached keys: %d\n", s.CachedKeys)
}
