package orders

// Normalize folds a raw courses payload into deduplicated line items.
// Each occurrence of an id adds one to its count; entries without a
// numeric id are dropped. First-seen order is preserved.
func Normalize(raw []map[string]any) []LineItem {
	items := make([]LineItem, 0, len(raw))
	index := make(map[int]int, len(raw))
	for _, entry := range raw {
		v, ok := entry["id"]
		if !ok {
			continue
		}
		// JSON numbers decode as float64.
		f, ok := v.(float64)
		if !ok {
			continue
		}
		id := int(f)
		if i, seen := index[id]; seen {
			items[i].Count++
			continue
		}
		index[id] = len(items)
		items = append(items, LineItem{ID: id, Count: 1})
	}
	return items
}
