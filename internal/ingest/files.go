package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// importDir is the drop folder for statement files awaiting ingestion.
const importDir = "import"

// processedDir is where ingested files are moved.
const processedDir = "import/processed"

// FileInfo describes a statement file in the import directory.
type FileInfo struct {
	Name     string
	Path     string
	Size     int64
	Freeform bool // .txt files go through the freeform scanner
}

// Scan returns importable files in <root>/import/: .csv files for the
// delimited pipeline and .txt files for the freeform scanner.
func Scan(root string) ([]FileInfo, error) {
	dir := filepath.Join(root, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		isCSV := strings.HasSuffix(name, ".csv")
		isTxt := strings.HasSuffix(name, ".txt")
		if !isCSV && !isTxt {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name:     e.Name(),
			Path:     filepath.Join(dir, e.Name()),
			Size:     info.Size(),
			Freeform: isTxt,
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, importDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	if err := os.Rename(src, filepath.Join(dstDir, fileName)); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
