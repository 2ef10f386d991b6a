package repositories

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/corrisk/riskline/models"
	"github.com/corrisk/riskline/pure_utils"
)

type CompanyListRepository struct{}

// ReadCompanyNames reads the input CSV and returns the values of its "name"
// column, in file order. The header is matched case-insensitively. Empty
// names are skipped; nothing else is filtered or deduplicated.
func (repo CompanyListRepository) ReadCompanyNames(ctx context.Context, path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open company list %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(pure_utils.NewReaderWithoutBom(file))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "could not read header of company list %s", path)
	}

	nameIdx := -1
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), "name") {
			nameIdx = i
			break
		}
	}
	if nameIdx == -1 {
		return nil, errors.Wrapf(models.ErrMissingNameColumn, "in %s", path)
	}

	var names []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse company list %s", path)
		}
		if nameIdx >= len(record) || record[nameIdx] == "" {
			continue
		}
		names = append(names, record[nameIdx])
	}

	return names, nil
}
