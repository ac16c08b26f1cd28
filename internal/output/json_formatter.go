package output

import (
	"encoding/json"

	"github.com/finsight/finance-engine/internal/domain"
)

// JSONFormatter serializes the dashboard result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.DashboardResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
