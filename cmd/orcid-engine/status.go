package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/orcid-engine/internal/registry"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the registry API is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := registry.NewClient(loadRegistryConfig(cmd))
		status, err := client.Status(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
