package entity

import "time"

// Category groups products under a client-supplied identifier. The ID
// doubles as the category's displayable key, so renaming a category means
// re-keying it and re-pointing every product that references the old ID.
type Category struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
