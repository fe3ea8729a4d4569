package types

// TriggerField represents the feature input dimension a trigger clause
// evaluates against
type TriggerField string

const (
	// Set-membership fields: the clause carries an accepted value set and
	// fires when any accepted value is present in the input field.
	TriggerDataCategories       TriggerField = "data_categories"
	TriggerProcessingOperations TriggerField = "processing_operations"
	TriggerJurisdictions        TriggerField = "jurisdictions"
	TriggerDataSubjects         TriggerField = "data_subjects"
	TriggerPurposes             TriggerField = "purposes"

	// Special-cased fields evaluated by dedicated predicates.
	TriggerCrossBorder    TriggerField = "cross_border_transfers"
	TriggerVendors        TriggerField = "vendors_involved"
	TriggerRetention      TriggerField = "retention"
	TriggerContentLogging TriggerField = "content_logging"
)

// AllTriggerFields returns all valid trigger fields
func AllTriggerFields() []TriggerField {
	return []TriggerField{
		TriggerDataCategories,
		TriggerProcessingOperations,
		TriggerJurisdictions,
		TriggerDataSubjects,
		TriggerPurposes,
		TriggerCrossBorder,
		TriggerVendors,
		TriggerRetention,
		TriggerContentLogging,
	}
}

// IsValid checks if the trigger field is valid
func (f TriggerField) IsValid() bool {
	switch f {
	case TriggerDataCategories,
		TriggerProcessingOperations,
		TriggerJurisdictions,
		TriggerDataSubjects,
		TriggerPurposes,
		TriggerCrossBorder,
		TriggerVendors,
		TriggerRetention,
		TriggerContentLogging:
		return true
	default:
		return false
	}
}

// RequiresValues returns true when a clause on this field must carry a
// non-empty accepted value set
func (f TriggerField) RequiresValues() bool {
	switch f {
	case TriggerDataCategories,
		TriggerProcessingOperations,
		TriggerJurisdictions,
		TriggerDataSubjects,
		TriggerPurposes:
		return true
	default:
		return false
	}
}

// String returns the string representation of the trigger field
func (f TriggerField) String() string {
	return string(f)
}
