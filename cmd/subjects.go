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

	"github.com/eslsoft/examprep/internal/adapter/mapping"
	"github.com/eslsoft/examprep/internal/app"
	"github.com/eslsoft/examprep/internal/repository"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subject catalog",
	Example: `  examprep subjects --filter 'name.startsWith("Phys")' --order-by "name desc"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		orderBy, _ := cmd.Flags().GetString("order-by")

		uc, cleanup, err := app.InitializeUsecases()
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}
		defer cleanup()

		items, err := uc.Materials.ListSubjects(cmd.Context(), &repository.ListSubjectQuery{
			FilterOrder: repository.FilterOrder{Filter: filter, OrderBy: orderBy},
		})
		if err != nil {
			return err
		}
		for _, s := range mapping.ToPbSubjects(items) {
			cmd.Printf("%s\t%s\t%s\n", s.GetId(), s.GetSlug(), s.GetName())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
	subjectsCmd.Flags().String("filter", "", "CEL filter over name and id")
	subjectsCmd.Flags().String("order-by", "", "order clause, e.g. \"name desc\"")
}
