package nav

// Args is the canonical argument record handed to a destination at
// navigation time. All fields are optional; the zero value is the canonical
// "empty" arguments. Treat Args as immutable once constructed.
type Args struct {
	// ID identifies the subject of the destination screen (e.g. a product ID).
	ID string

	// Title is an optional display title for the destination.
	Title string

	// Payload carries any additional caller-supplied data, opaque to the
	// router. Receivers type-assert based on the route.
	Payload any
}

// IsEmpty reports whether all three fields are absent.
func (a Args) IsEmpty() bool {
	return a.ID == "" && a.Title == "" && a.Payload == nil
}

// Normalize converts any caller-supplied value into Args. Exactly three
// rules apply, in order:
//
//  1. nil yields the empty Args.
//  2. An Args (or *Args) value is returned unchanged.
//  3. A map[string]any exposing "id", "title", or "data" keys has those
//     fields lifted directly; missing keys stay absent. Every
//     map[string]any takes this rule, so a map carrying none of the three
//     keys yields the empty Args rather than falling through to the
//     payload rule. This is the sole destructuring rule — nested values
//     are not processed.
//
// Anything else is wrapped whole as the payload. Rule 2 is checked before
// rule 3 so an already-canonical value is never re-destructured.
// Normalize never fails.
func Normalize(input any) Args {
	switch v := input.(type) {
	case nil:
		return Args{}
	case Args:
		return v
	case *Args:
		if v == nil {
			return Args{}
		}
		return *v
	case map[string]any:
		var a Args
		if id, ok := v["id"].(string); ok {
			a.ID = id
		}
		if title, ok := v["title"].(string); ok {
			a.Title = title
		}
		a.Payload = v["data"]
		return a
	default:
		return Args{Payload: input}
	}
}
