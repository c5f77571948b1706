/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eslsoft/examprep/internal/infrastructure/config"
	"github.com/eslsoft/examprep/internal/infrastructure/database"
	"github.com/eslsoft/examprep/internal/infrastructure/server"
)

// dbInitCmd migrates the schema and optionally seeds it from a catalog
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "Initialize the database and seed the catalog",
	Long: `Run schema migrations and, when --catalog is given, import a YAML catalog from a
local path or URL. Remote catalogs are cached under the user cache directory.
Note: go-sqlite3 requires building with CGO_ENABLED=1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		location, _ := cmd.Flags().GetString("catalog")
		batch, _ := cmd.Flags().GetInt("batch")
		cacheDir, _ := cmd.Flags().GetString("cache-dir")
		noCache, _ := cmd.Flags().GetBool("no-cache")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, err := server.NewLogger(cfg)
		if err != nil {
			return err
		}

		drv, cleanup, err := database.NewEntDriver(cfg, logger)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer cleanup()
		if err := database.Migrate(ctx, drv); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		logger.Info("schema migrated")
		if location == "" {
			return nil
		}

		writer, closeWriter, err := catalogWriter(cfg, drv, false, logger)
		if err != nil {
			return err
		}
		defer closeWriter()

		src := catalogSource{Location: location, CacheDir: cacheDir, NoCache: noCache}
		sum, err := importCatalog(ctx, src, cmd.InOrStdin(), writer, batch, logger)
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		cmd.Printf("seeded %d subjects, %d papers, %d videos\n", sum.Subjects, sum.Papers, sum.Videos)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)
	dbInitCmd.Flags().String("catalog", "", "catalog path or URL to seed after migrating")
	dbInitCmd.Flags().Int("batch", 1000, "rows per write batch")
	dbInitCmd.Flags().String("cache-dir", "", "catalog cache directory (default: user cache dir/examprep)")
	dbInitCmd.Flags().Bool("no-cache", false, "ignore the local cache and download again")
}
