package schema

// LibraryCheck is a catalog entry for a ready-made check that can be
// instantiated into a scenario.
type LibraryCheck struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Check       CheckDefinition `json:"check"`
}

// Instantiate returns a fresh CheckDefinition ready to add to a scenario.
func (l LibraryCheck) Instantiate() CheckDefinition {
	return l.Check.Clone()
}
