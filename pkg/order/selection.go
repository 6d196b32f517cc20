package order

// MaxSelectionSize caps how many add-ons a single order may carry.
const MaxSelectionSize = 6

// Toggle returns a new selection with addOnID removed when present, or
// appended when absent and the cap has room. A full selection stays
// unchanged; that is a customization no-op, not an error. The input
// slice is never mutated.
func Toggle(selection []string, addOnID string) []string {
	for i, id := range selection {
		if id == addOnID {
			next := make([]string, 0, len(selection)-1)
			next = append(next, selection[:i]...)
			next = append(next, selection[i+1:]...)
			return next
		}
	}

	if len(selection) >= MaxSelectionSize {
		return append([]string(nil), selection...)
	}

	next := make([]string, 0, len(selection)+1)
	next = append(next, selection...)
	next = append(next, addOnID)
	return next
}

// BuildSelection folds Toggle over a requested id sequence, so untrusted
// input ends up with toggle semantics: distinct ids, cap of six, an id
// repeated twice cancels out.
func BuildSelection(ids []string) []string {
	selection := []string{}
	for _, id := range ids {
		selection = Toggle(selection, id)
	}
	return selection
}
