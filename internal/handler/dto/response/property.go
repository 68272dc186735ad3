package response

import (
	"log/slog"

	"quinta-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// AssistantInstruction is deliberately absent: it is owner-facing prompt
// text, not public content.
type PropertyResponse struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	MaxCapacity      int      `json:"maxCapacity"`
	Description      string   `json:"description"`
	RulesAndPolicies string   `json:"rulesAndPolicies"`
	Images           []string `json:"images"`
}

func FromPropertyView(view *queries.PropertyView) *PropertyResponse {
	var resp PropertyResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to map property view", "error", err)
	}
	return &resp
}
