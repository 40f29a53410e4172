package output

import (
	"encoding/json"

	"github.com/mpgo/mortgage-planner/internal/domain"
)

// JSONFormatter emits the full plan result as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
