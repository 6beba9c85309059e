package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRenderCmd(cfgFile *string) *cobra.Command {
	var (
		menuName string
		path     string
		tag      string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one menu to stdout",
		Long: `Render a single menu of the definition as it would appear on the
page at --path. Items linking to that page are marked active.`,
		Example: `  # Render the main menu for the about page
  navmenu render --menu main --path /about

  # Render it as an ordered list
  navmenu render --config menus.yaml --menu main --type ol`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := loadDefinition(*cfgFile)
			if err != nil {
				return err
			}

			decl, ok := def.Menu(menuName)
			if !ok {
				return fmt.Errorf("menu %q not found", menuName)
			}
			if tag != "" {
				decl.Type = tag
			}

			set, err := def.Build(currentURL(def.BaseURL, path))
			if err != nil {
				return err
			}

			markup, err := decl.Render(set.Get(menuName))
			if err != nil {
				return fmt.Errorf("rendering menu %q: %w", menuName, err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
			return err
		},
	}

	cmd.Flags().StringVarP(&menuName, "menu", "m", "main", "name of the menu to render")
	cmd.Flags().StringVar(&path, "path", "/", "path of the current page")
	cmd.Flags().StringVarP(&tag, "type", "t", "", "markup to render: ul, ol or div (default: declared type)")

	_ = cmd.RegisterFlagCompletionFunc("type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"ul", "ol", "div"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func currentURL(base, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(base, "/") + path
}
