package main

import (
	"github.com/spf13/cobra"

	"github.com/mchmarny/navmenu/pkg/server"
	"github.com/mchmarny/navmenu/pkg/site"
)

func newServeCmd(cfgFile *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pages rendered with the shared menus",
		Example: `  # Serve the built-in example on the default port
  navmenu serve

  # Serve your own menus
  navmenu serve --config menus.yaml --port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := loadDefinition(*cfgFile)
			if err != nil {
				return err
			}
			return site.Run(cmd.Context(), def, server.WithPort(port))
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", server.DefaultPort, "port to run the server on")

	return cmd
}
