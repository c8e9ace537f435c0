package clouddb

import (
	"time"

	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

// DocumentKey is the fixed, versioned key the shared document lives under.
// The v2 suffix survives from the layout the document has always had;
// bumping it orphans existing data.
const DocumentKey = "aquastore_cloud_db_v2"

// Document is the single shared record: the whole catalog plus order
// history under one key. LastUpdated is informational only and plays no
// part in conflict resolution.
type Document struct {
	Products    []models.Product `json:"products"`
	Orders      []models.Order   `json:"orders"`
	LastUpdated int64            `json:"lastUpdated"`
}

// Patch is a partial document for SaveDB. A nil field is left untouched; a
// non-nil field replaces the corresponding top-level field wholesale.
// Arrays are never deep-merged.
type Patch struct {
	Products *[]models.Product
	Orders   *[]models.Order
}

// ProductsPatch builds a patch replacing only the product list.
func ProductsPatch(products []models.Product) Patch {
	return Patch{Products: &products}
}

// OrdersPatch builds a patch replacing only the order list.
func OrdersPatch(orders []models.Order) Patch {
	return Patch{Orders: &orders}
}

func emptyDocument() Document {
	return Document{
		Products:    []models.Product{},
		Orders:      []models.Order{},
		LastUpdated: time.Now().UnixMilli(),
	}
}
