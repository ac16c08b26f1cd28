package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/finsight/finance-engine/internal/domain"
)

// GenerateReport formats a result and writes it to the given path, or to
// stdout when path is empty.
func GenerateReport(result *domain.DashboardResult, format, path string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s",
			ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "))
	}

	data, err := f.Format(result)
	if err != nil {
		return err
	}

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
