package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/mdterp/internal/filex"
)

// defaultExportDir is used when the configuration names no export folder.
const defaultExportDir = "exports"

var errEmptyExport = errors.New("server returned an empty export")

func (a *App) exportDir() string {
	if a.config != nil && a.config.ExportDir != "" {
		return a.config.ExportDir
	}
	return defaultExportDir
}

// Export downloads the items of a contract as CSV into the export folder.
func (a *App) Export(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "export <contract id>"); err != nil {
		return err
	}
	res, err := a.client.ExportItems(ctx, args[0])
	if err != nil {
		return err
	}
	if len(res.Data) == 0 {
		return errEmptyExport
	}

	dir, err := filex.EnsureSubdDir(a.exportDir())
	if err != nil {
		return err
	}
	path := filepath.Join(dir, filepath.Base(res.FileName))
	if err := os.WriteFile(path, res.Data, 0o640); err != nil {
		return err
	}

	a.printf("Saved %s\n", path)
	return nil
}
