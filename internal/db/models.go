package db

import (
	"time"

	"github.com/google/uuid"
)

type BlacklistEntry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	NameKey   string    `json:"-"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryRecord struct {
	Seq                    int64     `json:"-"`
	ID                     uuid.UUID `json:"id"`
	Barcode                string    `json:"barcode"`
	ProductName            string    `json:"product_name"`
	HadBlacklisted         bool      `json:"had_blacklisted_ingredients"`
	BlacklistedIngredients []string  `json:"blacklisted_ingredients"`
	ScannedAt              time.Time `json:"timestamp"`
}
