package services

import (
	"sort"

	"restaurant-platform/models"
)

func listingRank(pref string) int {
	switch pref {
	case models.ListingHigh:
		return 0
	case models.ListingLow:
		return 2
	default:
		// Unspecified preferences rank as mid.
		return 1
	}
}

// RankMenus returns the display order for a restaurant's menu: only available
// items in active categories, sorted by listing preference (high first), then
// category display order, then category name, then item name. The sort is
// stable, so ties keep their original relative order.
func RankMenus(items []models.Menu) []models.Menu {
	ranked := make([]models.Menu, 0, len(items))
	for _, item := range items {
		if item.IsAvailable && item.Category.IsActive {
			ranked = append(ranked, item)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if ra, rb := listingRank(a.ListingPreference), listingRank(b.ListingPreference); ra != rb {
			return ra < rb
		}
		if a.Category.DisplayOrder != b.Category.DisplayOrder {
			return a.Category.DisplayOrder < b.Category.DisplayOrder
		}
		if a.Category.Name != b.Category.Name {
			return a.Category.Name < b.Category.Name
		}
		return a.Name < b.Name
	})

	return ranked
}
