package property

// Config is the property metadata surrounding the booking core. The core
// itself only reads MaxCapacity, for the advisory guest-count warning on
// quotes; everything else is display and assistant input.
type Config struct {
	Name                 string
	Address              string
	MaxCapacity          int
	Description          string
	RulesAndPolicies     string
	AssistantInstruction string
	Images               []string
}
