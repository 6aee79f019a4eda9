package models

// Cart is the server-authoritative cart payload. The commerce backend owns
// it; the storefront only reads it and requests mutations by cart item ID.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// CartItem is one raw line of the backend cart payload. Item order is the
// add-to-cart order and is preserved through the view model.
type CartItem struct {
	CartItemID string      `json:"cart_item_id"`
	Size       string      `json:"size"`
	Quantity   int         `json:"quantity"`
	Price      float64     `json:"price"`
	Product    CartProduct `json:"product"`
}

// CartProduct is the product snapshot embedded in a cart line.
type CartProduct struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SmallImage string `json:"small_image"`
}

// CartLine is the render-ready view of one cart item. CartItemID is the
// sole mutation key: product+size is not a stable identity because the
// backend collapses a product+size pair into a single line per cart.
type CartLine struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Size       string  `json:"size"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CartItemID string  `json:"cart_item_id"`
	ImageURL   string  `json:"image_url"`
}
