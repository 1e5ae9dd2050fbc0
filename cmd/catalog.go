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

	"github.com/eslsoft/lingopick/internal/app"
	"github.com/eslsoft/lingopick/internal/repository"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate the language catalog",
}

// catalogValidateCmd exits non-zero when the catalog cannot be loaded, so
// deployments can check an asset before rolling it out. With a file
// argument it validates that JSON document instead of the configured source.
var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate the configured catalog source or a JSON asset file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			langs, err := loadSeedLanguages(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("ok: %d languages in %s\n", len(langs), args[0])
			return nil
		}

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		count, err := container.Catalog.Reload(cmd.Context())
		if err != nil {
			return fmt.Errorf("catalog invalid: %w", err)
		}
		cmd.Printf("ok: %d languages\n", count)
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		orderBy, _ := cmd.Flags().GetString("order-by")

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		query := &repository.ListLanguageQuery{}
		query.Filter = filter
		query.OrderBy = orderBy
		langs, total, err := container.Catalog.ListLanguages(cmd.Context(), query)
		if err != nil {
			return err
		}

		for _, lang := range langs {
			cmd.Printf("%-12s %-12s difficulty=%.1f speakers=%d hours=%d\n",
				lang.ID, lang.Name, lang.BaseDifficulty, lang.Speakers.Total, lang.Hours.TotalHours)
		}
		cmd.Printf("total: %d\n", total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)

	catalogListCmd.Flags().String("filter", "", "cel filter expression, e.g. difficulty <= 3")
	catalogListCmd.Flags().String("order-by", "", "sort order, e.g. \"difficulty desc\"")
}
