package main

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mchmarny/navmenu/pkg/definition"
	"github.com/mchmarny/navmenu/pkg/logger"
)

const name = "navmenu"

//go:embed default.yaml
var defaultDefinition []byte

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   name,
		Short: "Build and render navigation menus",
		Long: `navmenu builds nested navigation menus from a YAML definition
and renders them as ul, ol or div markup, either once to stdout or
for every request of a small site.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.SetDefaultLogger(name, version)
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "menu definition file (default: built-in example)")

	cmd.AddCommand(newServeCmd(&cfgFile))
	cmd.AddCommand(newRenderCmd(&cfgFile))

	return cmd
}

// loadDefinition reads the definition at path, or the built-in one when
// path is empty.
func loadDefinition(path string) (*definition.File, error) {
	if path == "" {
		return definition.Parse(defaultDefinition)
	}
	return definition.Load(path)
}
