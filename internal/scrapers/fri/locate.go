package fri

import "urnik-backend/internal/htmlutil"

// entryClass marks every positioned block on the timetable grid.
const entryClass = "grid-entry"

// LocateEntries returns the grid entries of doc in document order.
func LocateEntries(doc htmlutil.Document) []htmlutil.Node {
	return doc.FindAllClass(entryClass)
}
