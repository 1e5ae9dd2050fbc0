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
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	adapterrepo "github.com/eslsoft/lingopick/internal/adapter/repository"
	"github.com/eslsoft/lingopick/internal/entity"
	"github.com/eslsoft/lingopick/internal/infrastructure/config"
	"github.com/eslsoft/lingopick/internal/infrastructure/database"
)

// dbInitCmd creates the sqlite catalog schema and seeds it with language
// descriptors, so a sqlite-backed deployment can start from the same data
// the embedded source ships.
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "初始化 SQLite 语言目录并导入种子数据",
	Long:  "创建 languages 表并导入语言描述数据。注意: go-sqlite3 需要 CGO_ENABLED=1 构建。如需仅建表不导入，可使用 --schema-only。",
	RunE: func(cmd *cobra.Command, args []string) error {
		seedFile, _ := cmd.Flags().GetString("seed")
		schemaOnly, _ := cmd.Flags().GetBool("schema-only")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		if cfg.Catalog.Source != "sqlite" {
			return fmt.Errorf("db-init 仅支持 sqlite 目录源, 当前: %s", cfg.Catalog.Source)
		}

		db, cleanup, err := database.NewConnection(cfg)
		if err != nil {
			if cleanup != nil {
				cleanup()
			}
			return fmt.Errorf("打开数据库失败: %w", err)
		}
		defer cleanup()

		source := adapterrepo.NewSQLiteSource(db)
		if err := source.Init(cmd.Context()); err != nil {
			return fmt.Errorf("初始化表结构失败: %w", err)
		}
		if schemaOnly {
			cmd.Println("表结构初始化完成")
			return nil
		}

		langs, err := loadSeedLanguages(cmd.Context(), seedFile)
		if err != nil {
			return err
		}
		if err := source.ReplaceAll(cmd.Context(), langs); err != nil {
			return fmt.Errorf("导入种子数据失败: %w", err)
		}

		cmd.Printf("导入完成: %d 种语言, %s\n", len(langs), cfg.Catalog.Path)
		return nil
	},
}

// loadSeedLanguages reads descriptors from the given JSON file, falling back
// to the embedded asset when no file is given. Every descriptor is validated
// before any row is written.
func loadSeedLanguages(ctx context.Context, path string) ([]*entity.LanguageProfile, error) {
	var langs []*entity.LanguageProfile
	if path == "" {
		loaded, err := adapterrepo.NewEmbeddedSource().Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("读取内置目录失败: %w", err)
		}
		langs = loaded
	} else {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("读取种子文件失败: %w", err)
		}
		if err := json.Unmarshal(raw, &langs); err != nil {
			return nil, fmt.Errorf("解析种子文件失败: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(langs))
	for _, lang := range langs {
		lang.Normalize()
		if err := lang.Validate(); err != nil {
			return nil, fmt.Errorf("语言描述无效 %q: %w", lang.ID, err)
		}
		if _, dup := seen[lang.ID]; dup {
			return nil, fmt.Errorf("语言 ID 重复: %q", lang.ID)
		}
		seen[lang.ID] = struct{}{}
	}
	return langs, nil
}

func init() {
	rootCmd.AddCommand(dbInitCmd)
	dbInitCmd.Flags().String("seed", "", "种子 JSON 文件 (默认: 内置目录)")
	dbInitCmd.Flags().Bool("schema-only", false, "仅建表, 不导入种子数据")
}
