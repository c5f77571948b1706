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
	"github.com/spf13/viper"

	"github.com/eslsoft/examprep/internal/infrastructure/config"
	"github.com/eslsoft/examprep/internal/infrastructure/database"
	"github.com/eslsoft/examprep/internal/infrastructure/server"
)

const (
	importInputKey = "catalog.import.input"
	importGzipKey  = "catalog.import.gzip"
	importBatchKey = "catalog.import.batch_size"
	importPgxKey   = "catalog.import.pgx"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import subjects, question papers and videos from a YAML catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		inputPath := viper.GetString(importInputKey)
		if inputPath == "" {
			return fmt.Errorf("specify a catalog with --input, or - for stdin")
		}

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

		writer, closeWriter, err := catalogWriter(cfg, drv, viper.GetBool(importPgxKey), logger)
		if err != nil {
			return err
		}
		defer closeWriter()

		src := catalogSource{Location: inputPath, Gzip: viper.GetBool(importGzipKey)}
		sum, err := importCatalog(ctx, src, cmd.InOrStdin(), writer, viper.GetInt(importBatchKey), logger)
		if err != nil {
			return fmt.Errorf("import catalog: %w", err)
		}

		source := inputPath
		if inputPath == "-" {
			source = "stdin"
		}
		cmd.Printf("imported %d subjects, %d papers, %d videos from %s\n", sum.Subjects, sum.Papers, sum.Videos, source)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("input", "i", "", "catalog file path or URL, - for stdin")
	importCmd.Flags().Bool("gzip", false, "input is gzip compressed")
	importCmd.Flags().Int("batch-size", 0, "rows per write batch (default 512)")
	importCmd.Flags().Bool("pgx", false, "write through a pgx batch pipeline (postgres only)")

	bindFlagToViper(importInputKey, importCmd.Flags().Lookup("input"))
	bindFlagToViper(importGzipKey, importCmd.Flags().Lookup("gzip"))
	bindFlagToViper(importBatchKey, importCmd.Flags().Lookup("batch-size"))
	bindFlagToViper(importPgxKey, importCmd.Flags().Lookup("pgx"))
}
