package interaction

import "github.com/zeusync/interactionsdk/internal/core/input"

// ServiceProfile is the static configuration of an InteractionService.
type ServiceProfile struct {
	NearInteraction bool         `yaml:"near_interaction"`
	FarInteraction  bool         `yaml:"far_interaction"`
	SelectAction    input.Action `yaml:"select_action"`
	GrabAction      input.Action `yaml:"grab_action"`
}

// DefaultProfile enables near and far interaction and binds no input actions.
func DefaultProfile() ServiceProfile {
	return ServiceProfile{NearInteraction: true, FarInteraction: true}
}
