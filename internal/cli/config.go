package cli

import (
	"github.com/deppfellow/products-api/internal/config"
	"github.com/deppfellow/products-api/internal/lib/utils"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration with secrets masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		return utils.PrintJSON(cmd.OutOrStdout(), cfg.Redacted())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
