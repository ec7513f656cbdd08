package cli

import (
	"github.com/deppfellow/products-api/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long:  "Creates the products table if needed, tracking applied versions in schema_version",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.loggerService.Shutdown()

		return database.Migrate(cmd.Context(), &rt.log, rt.cfg)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
