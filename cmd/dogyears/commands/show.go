package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dogyears/internal/domain"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the persisted preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			show := func(name, key string) {
				v, ok, err := wire.Store.Load(key)
				if err != nil {
					wire.Log.Warn("load preference", zap.String("key", key), zap.Error(err))
				}
				if !ok {
					fmt.Printf("%s: (not set)\n", name)
					return
				}
				fmt.Printf("%s: %s\n", name, v)
			}

			show("birth date", domain.KeyBirthDate)
			show("last result", domain.KeyResultText)
			show("theme", domain.KeyTheme)
			return nil
		},
	}
}
