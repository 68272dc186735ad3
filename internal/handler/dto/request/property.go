package request

import (
	"quinta-booking/internal/pkg/patch"
	"quinta-booking/internal/usecase/commands"
	"quinta-booking/internal/usecase/queries"
)

// UpdatePropertyRequest carries only the fields the owner changed;
// missing fields keep their stored value.
type UpdatePropertyRequest struct {
	Name                 *string   `json:"name"`
	Address              *string   `json:"address"`
	MaxCapacity          *int      `json:"max_capacity" binding:"omitempty,min=1"`
	Description          *string   `json:"description"`
	RulesAndPolicies     *string   `json:"rules_and_policies"`
	AssistantInstruction *string   `json:"assistant_instruction"`
	Images               *[]string `json:"images"`
}

func (r UpdatePropertyRequest) MergeOnto(current *queries.PropertyView) commands.UpdatePropertyRequest {
	images := current.Images
	if r.Images != nil {
		images = *r.Images
	}
	return commands.UpdatePropertyRequest{
		Name:                 patch.Coalesce(r.Name, current.Name),
		Address:              patch.Coalesce(r.Address, current.Address),
		MaxCapacity:          patch.Coalesce(r.MaxCapacity, current.MaxCapacity),
		Description:          patch.Coalesce(r.Description, current.Description),
		RulesAndPolicies:     patch.Coalesce(r.RulesAndPolicies, current.RulesAndPolicies),
		AssistantInstruction: patch.Coalesce(r.AssistantInstruction, current.AssistantInstruction),
		Images:               images,
	}
}
