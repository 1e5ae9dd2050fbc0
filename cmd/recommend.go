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
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/eslsoft/lingopick/internal/app"
	"github.com/eslsoft/lingopick/internal/entity"
)

// recommendCmd runs the scoring pipeline once against a survey file and
// prints the ranked result, without starting a server.
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Score a survey from a JSON file and print recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		top, _ := cmd.Flags().GetInt("top")

		raw, err := readSurvey(file, cmd.InOrStdin())
		if err != nil {
			return err
		}

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		recs, profile, err := container.Recommend.Recommend(cmd.Context(), raw)
		if err != nil {
			return err
		}
		if top > 0 && top < len(recs) {
			recs = recs[:top]
		}

		out := struct {
			Profile         *entity.UserProfile      `json:"profile"`
			Recommendations []*entity.Recommendation `json:"recommendations"`
		}{Profile: profile, Recommendations: recs}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func readSurvey(path string, stdin io.Reader) (*entity.RawSurvey, error) {
	reader := stdin
	if path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open survey file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	var raw entity.RawSurvey
	if err := json.NewDecoder(reader).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode survey: %w", err)
	}
	return &raw, nil
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("file", "f", "-", "survey JSON file, - reads standard input")
	recommendCmd.Flags().Int("top", 0, "limit output to the top N recommendations, 0 keeps all")
}
