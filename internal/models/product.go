package models

// Product is a catalog product as served to the storefront. Image refs are
// absolute URLs by the time a product leaves this service.
type Product struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	SmallImage   string             `json:"small_image"`
	Image        []string           `json:"image"`
	Sizes        []string           `json:"sizes"`
	Inventory    []ProductInventory `json:"inventory"`
	ReviewsCount int                `json:"reviews_count"`
}

// ProductInventory is a size variant with its own price.
type ProductInventory struct {
	Size     string  `json:"size"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
