package main

import (
	"github.com/spf13/cobra"
)

// versionInfo is the data of the version command.
type versionInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return respond(a, versionInfo{
				Name:        a.cfg.App.Name,
				Version:     version,
				Environment: a.cfg.App.Environment,
			})
		},
	}
}
