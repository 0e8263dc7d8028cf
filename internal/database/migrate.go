package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
)

// LoadMigrations reads every *.surql file from fsys in lexical order.
func LoadMigrations(fsys fs.FS) ([]string, error) {
	names, err := fs.Glob(fsys, "*.surql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]string, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if strings.TrimSpace(string(content)) == "" {
			continue
		}
		out = append(out, string(content))
	}
	return out, nil
}

// Migrate applies the migrations in fsys as one transaction. The bundled
// definitions use DEFINE ... OVERWRITE / IF NOT EXISTS so re-running is harmless.
func Migrate(ctx context.Context, db Database, fsys fs.FS) error {
	migs, err := LoadMigrations(fsys)
	if err != nil {
		return err
	}

	batch := NewAtomicBatch()
	for _, m := range migs {
		batch.Add(m, nil)
	}
	if batch.Len() == 0 {
		return nil
	}

	if err := batch.Execute(ctx, db); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	slog.Info("migrations applied", slog.Int("count", batch.Len()))
	return nil
}
