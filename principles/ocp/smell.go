package ocp

// KindPrice is the smell: pricing by switching on a closed list of kinds.
// Supporting a new kind means editing this function, and every caller
// depending on today's behavior rides along with the edit.
func KindPrice(kind string, b Book) int {
	switch kind {
	case "hardcover":
		return b.Cents + 500
	case "paperback":
		return b.Cents
	case "clearance":
		return b.Cents / 2
	default:
		// Unknown kinds fall through to list price until someone remembers
		// to add a case.
		return b.Cents
	}
}
