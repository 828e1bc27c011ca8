package portfolio

import (
	"encoding/json"
	"fmt"
)

// Locator identifies an item to remove: a plain list position, or a
// category + position pair for category-map collections like skills.
type Locator struct {
	Category string `json:"category,omitempty"`
	Index    int    `json:"index"`
}

// sectionToMap round-trips a section through JSON into its generic map form
// so item operations work uniformly across every section shape.
func sectionToMap(raw json.RawMessage) (map[string]interface{}, error) {
	var section map[string]interface{}
	if err := json.Unmarshal(raw, &section); err != nil {
		return nil, fmt.Errorf("decoding section: %w", err)
	}
	return section, nil
}

// appendToCollection appends item to the named sub-collection of section.
// List collections take the item as-is. Category-map collections expect item
// to be {"category": name, "item": value}; a missing category is created.
// Returns false when the collection cannot take the item.
func appendToCollection(section map[string]interface{}, collection string, item interface{}) bool {
	switch target := section[collection].(type) {
	case []interface{}:
		section[collection] = append(target, item)
		return true
	case map[string]interface{}:
		entry, ok := item.(map[string]interface{})
		if !ok {
			return false
		}
		category, ok := entry["category"].(string)
		if !ok || category == "" {
			return false
		}
		value, ok := entry["item"]
		if !ok {
			return false
		}
		list, _ := target[category].([]interface{})
		target[category] = append(list, value)
		return true
	default:
		return false
	}
}

// removeFromCollection removes the located item from the named sub-collection
// of section. Removing from a category map deletes the category key when its
// list becomes empty. Invalid locators leave the section unchanged and
// return false.
func removeFromCollection(section map[string]interface{}, collection string, loc Locator) bool {
	switch target := section[collection].(type) {
	case []interface{}:
		if loc.Index < 0 || loc.Index >= len(target) {
			return false
		}
		filtered := append(append([]interface{}{}, target[:loc.Index]...), target[loc.Index+1:]...)
		RenumberParagraphs(filtered)
		section[collection] = filtered
		return true
	case map[string]interface{}:
		list, ok := target[loc.Category].([]interface{})
		if !ok {
			return false
		}
		if loc.Index < 0 || loc.Index >= len(list) {
			return false
		}
		filtered := append(append([]interface{}{}, list[:loc.Index]...), list[loc.Index+1:]...)
		if len(filtered) == 0 {
			delete(target, loc.Category)
		} else {
			target[loc.Category] = filtered
		}
		return true
	default:
		return false
	}
}

// RenumberParagraphs rewrites the numbering field of paragraph entries so it
// stays contiguous from 1 after a removal or reorder.
func RenumberParagraphs(items []interface{}) {
	for i, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := entry["paragraph"]; ok {
			entry["paragraph"] = i + 1
		}
	}
}
