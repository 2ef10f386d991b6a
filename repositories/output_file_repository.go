package repositories

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
)

type OutputFileRepository struct{}

func (repo OutputFileRepository) WriteFile(ctx context.Context, path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "could not write output file %s", path)
	}
	return nil
}
