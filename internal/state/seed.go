package state

import "github.com/mvsaqua/aquastore-backend/pkg/models"

// SeedCatalog is the fixed default catalog persisted on first run, when the
// shared document has no products yet.
func SeedCatalog() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			SKU:         "FISH-NEON-XL",
			Name:        "Neon Tetra (XL)",
			Description: "Vibrant blue and red schooling fish, perfect for community tanks. Sold per piece.",
			Price:       40,
			Category:    "Fish",
			ImageURL:    "https://images.unsplash.com/photo-1522069169874-c58ec4b76be5?auto=format&fit=crop&q=80&w=800",
			Stock:       500,
			Weight:      0.05,
			Featured:    true,
		},
		{
			ID:          "2",
			SKU:         "SUB-ADA-9L",
			Name:        "ADA Amazonia Ver. 2 (9L)",
			Description: "The world standard for planted aquarium substrate. Rich in nutrients for aquatic plants.",
			Price:       3800,
			Category:    "Substrate",
			ImageURL:    "https://images.unsplash.com/photo-1544551763-46a013bb70d5?auto=format&fit=crop&q=80&w=800",
			Stock:       12,
			Weight:      9.0,
			Featured:    true,
		},
		{
			ID:          "3",
			SKU:         "PLNT-ANUB-PET",
			Name:        "Anubias Nana Petite",
			Description: "Slow-growing, hardy epiphyte plant for aquascaping. High quality mother plant.",
			Price:       350,
			Category:    "Plants",
			ImageURL:    "https://images.unsplash.com/photo-1509316785289-025f5b846b35?auto=format&fit=crop&q=80&w=800",
			Stock:       25,
			Weight:      0.1,
		},
		{
			ID:          "4",
			SKU:         "FLTR-EHM-2217",
			Name:        "Eheim 2217 Classic",
			Description: "Reliable canister filter for tanks up to 600 liters. Includes all media.",
			Price:       14500,
			Category:    "Equipment",
			ImageURL:    "https://images.unsplash.com/photo-1524704654690-b56c05c78a00?auto=format&fit=crop&q=80&w=800",
			Stock:       5,
			Weight:      6.0,
			Featured:    true,
		},
	}
}
