package types

// Decision represents the gating outcome of an assessment
type Decision string

const (
	DecisionShip               Decision = "SHIP"
	DecisionShipWithConditions Decision = "SHIP_WITH_CONDITIONS"
	DecisionEscalate           Decision = "ESCALATE"
)

// AllDecisions returns all valid decisions
func AllDecisions() []Decision {
	return []Decision{
		DecisionShip,
		DecisionShipWithConditions,
		DecisionEscalate,
	}
}

// IsValid checks if the decision is valid
func (d Decision) IsValid() bool {
	switch d {
	case DecisionShip, DecisionShipWithConditions, DecisionEscalate:
		return true
	default:
		return false
	}
}

// String returns the string representation of the decision
func (d Decision) String() string {
	return string(d)
}
