package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
//
// Every file is first written to a temporary file in outputDir; the
// temporaries are renamed into place only once all of them were written.
// On failure the temporaries are removed and existing files are left as they
// were.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	temps := make([]string, 0, len(files))

	cleanup := func() {
		for _, tmp := range temps {
			_ = os.Remove(tmp)
		}
	}

	for _, file := range files {
		tmp, err := writeTemp(outputDir, file)
		if err != nil {
			cleanup()

			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		temps = append(temps, tmp)
	}

	for i, file := range files {
		if err := os.Rename(temps[i], filepath.Join(outputDir, file.Filename)); err != nil {
			cleanup()

			return fmt.Errorf("renaming file %s into place: %w", file.Filename, err)
		}
	}

	return nil
}

func writeTemp(dir string, file GeneratedFile) (string, error) {
	f, err := os.CreateTemp(dir, "."+file.Filename+".*.tmp")
	if err != nil {
		return "", err
	}

	name := f.Name()

	_, werr := f.Write(file.Content)
	cerr := f.Close()

	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(name)

		return "", err
	}

	if err := os.Chmod(name, filePerm); err != nil {
		_ = os.Remove(name)

		return "", err
	}

	return name, nil
}
