package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dogyears/internal/domain"
)

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc [date]",
		Short: "Compute the human-equivalent age for a birth date (YYYY-MM-DD)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 1 {
				raw = args[0]
			} else {
				// No argument: fall back to the last-used date.
				v, ok, err := wire.Store.Load(domain.KeyBirthDate)
				if err != nil {
					wire.Log.Warn("load preference", zap.String("key", domain.KeyBirthDate), zap.Error(err))
				}
				if ok {
					raw = v
				}
			}

			wire.Calculator.RememberBirthDate(raw)
			fmt.Println(wire.Calculator.Calculate(raw))
			return nil
		},
	}
}
