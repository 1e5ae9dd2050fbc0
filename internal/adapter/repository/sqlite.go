package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/eslsoft/lingopick/internal/entity"
)

// SQLiteSource loads descriptors from a sqlite catalog database. Structured
// attributes are stored as JSON text columns so the table stays aligned
// with the embedded asset format.
type SQLiteSource struct {
	db *sql.DB
}

func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

const selectLanguagesSQL = `
SELECT id, name, native_name, description, family, script,
       difficulty, tags, regions, difficulty_breakdown,
       speakers, writing_systems, learning_time
  FROM languages
 ORDER BY id`

const createLanguagesSQL = `
CREATE TABLE IF NOT EXISTS languages (
	id                   TEXT PRIMARY KEY,
	name                 TEXT NOT NULL,
	native_name          TEXT,
	description          TEXT,
	family               TEXT,
	script               TEXT,
	difficulty           REAL NOT NULL,
	tags                 TEXT,
	regions              TEXT,
	difficulty_breakdown TEXT,
	speakers             TEXT,
	writing_systems      TEXT,
	learning_time        TEXT
)`

const insertLanguageSQL = `
INSERT INTO languages (
	id, name, native_name, description, family, script,
	difficulty, tags, regions, difficulty_breakdown,
	speakers, writing_systems, learning_time
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Init creates the languages table when it does not exist yet.
func (s *SQLiteSource) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createLanguagesSQL); err != nil {
		return fmt.Errorf("create languages table: %w", err)
	}
	return nil
}

// ReplaceAll rewrites the languages table with the given descriptors in one
// transaction. A failed write leaves the previous rows untouched.
func (s *SQLiteSource) ReplaceAll(ctx context.Context, langs []*entity.LanguageProfile) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM languages`); err != nil {
		return fmt.Errorf("clear languages: %w", err)
	}
	for _, lang := range langs {
		args, err := languageRow(lang)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertLanguageSQL, args...); err != nil {
			return fmt.Errorf("insert language %q: %w", lang.ID, err)
		}
	}
	return tx.Commit()
}

func languageRow(lang *entity.LanguageProfile) ([]any, error) {
	cols := make(map[string][]byte, 6)
	for name, src := range map[string]any{
		"tags":                 lang.Tags,
		"regions":              lang.Regions,
		"difficulty_breakdown": lang.Breakdown,
		"speakers":             lang.Speakers,
		"writing_systems":      lang.WritingSystems,
		"learning_time":        lang.Hours,
	} {
		raw, err := json.Marshal(src)
		if err != nil {
			return nil, fmt.Errorf("language %q: encode %s: %w", lang.ID, name, err)
		}
		cols[name] = raw
	}

	return []any{
		lang.ID, lang.Name, lang.NativeName, lang.Description, lang.Family, lang.Script,
		lang.BaseDifficulty, cols["tags"], cols["regions"], cols["difficulty_breakdown"],
		cols["speakers"], cols["writing_systems"], cols["learning_time"],
	}, nil
}

func (s *SQLiteSource) Load(ctx context.Context) ([]*entity.LanguageProfile, error) {
	rows, err := s.db.QueryContext(ctx, selectLanguagesSQL)
	if err != nil {
		return nil, fmt.Errorf("query languages: %w", err)
	}
	defer rows.Close()

	var items []*entity.LanguageProfile
	for rows.Next() {
		lang, err := scanLanguage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, lang)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate languages: %w", err)
	}
	return items, nil
}

func scanLanguage(rows *sql.Rows) (*entity.LanguageProfile, error) {
	var (
		lang       entity.LanguageProfile
		nativeName sql.NullString
		desc       sql.NullString
		family     sql.NullString
		script     sql.NullString

		tags      []byte
		regions   []byte
		breakdown []byte
		speakers  []byte
		systems   []byte
		hours     []byte
	)

	if err := rows.Scan(
		&lang.ID, &lang.Name, &nativeName, &desc, &family, &script,
		&lang.BaseDifficulty, &tags, &regions, &breakdown,
		&speakers, &systems, &hours,
	); err != nil {
		return nil, fmt.Errorf("scan language row: %w", err)
	}

	lang.NativeName = nativeName.String
	lang.Description = desc.String
	lang.Family = family.String
	lang.Script = script.String

	for _, col := range []struct {
		name string
		raw  []byte
		dest any
	}{
		{"tags", tags, &lang.Tags},
		{"regions", regions, &lang.Regions},
		{"difficulty_breakdown", breakdown, &lang.Breakdown},
		{"speakers", speakers, &lang.Speakers},
		{"writing_systems", systems, &lang.WritingSystems},
		{"learning_time", hours, &lang.Hours},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			return nil, fmt.Errorf("language %q: decode %s: %w", lang.ID, col.name, err)
		}
	}

	return &lang, nil
}
