// Package catalog holds the menu view-filtering rules. The public menu and
// the admin list both work on an already-fetched snapshot of items, so these
// are pure functions with no storage access.
package catalog

import (
	"strings"

	"thawaqa-backend/models"
)

// AllCategories is the category filter value that matches every category.
const AllCategories = "all"

// VisibleItems returns the items shown on the public menu: published and in
// stock, matching the selected category (empty or "all" matches everything)
// and the search text. Search is a case-insensitive substring match across
// both names and both descriptions.
func VisibleItems(items []models.MenuItem, categoryID, search string) []models.MenuItem {
	var visible []models.MenuItem
	for _, item := range items {
		if !item.IsActive || !item.IsAvailable {
			continue
		}
		if !matchesCategory(item, categoryID) {
			continue
		}
		if !matchesSearch(item, search, true) {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// AdminItems returns the items shown on the admin list. Only the search
// predicate applies, and only on the two name fields; disabled and
// out-of-stock items stay visible so the admin can find and re-enable them.
func AdminItems(items []models.MenuItem, search string) []models.MenuItem {
	var filtered []models.MenuItem
	for _, item := range items {
		if !matchesSearch(item, search, false) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// ActiveCategories returns the categories offered as filter chips on the
// public menu.
func ActiveCategories(categories []models.Category) []models.Category {
	var active []models.Category
	for _, category := range categories {
		if category.IsActive {
			active = append(active, category)
		}
	}
	return active
}

func matchesCategory(item models.MenuItem, categoryID string) bool {
	if categoryID == "" || categoryID == AllCategories {
		return true
	}
	return item.CategoryID.String() == categoryID
}

func matchesSearch(item models.MenuItem, search string, includeDescriptions bool) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	if strings.Contains(strings.ToLower(item.Name), q) ||
		strings.Contains(strings.ToLower(item.NameAr), q) {
		return true
	}
	if includeDescriptions {
		return strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.DescriptionAr), q)
	}
	return false
}
