package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dogyears/internal/app"
	"dogyears/internal/ui"
)

var (
	home  string
	debug bool

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "dogyears",
		Short: "Dog-age calculator with persistent preferences",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if debug {
				cfg.Debug = true
			}
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".dogyears")
			}

			wire, err = app.NewWire(cfg)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.Run(wire.Calculator, wire.Themes, wire.Restorer)
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "preference dir (default ~/.dogyears)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")

	root.AddCommand(calcCmd(), themeCmd(), showCmd())
	return root.Execute()
}
