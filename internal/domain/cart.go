package domain

// CartItem is one line in the cart: one distinct product plus its quantity.
// Name/image/price are snapshots taken when the product was first added;
// later catalog changes do not retroactively affect existing lines.
type CartItem struct {
	ID        string  `json:"_id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is a snapshot of the cart aggregate. Totals are derived from the
// items, never patched incrementally.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

// CartStore persists the cart's line-item collection. Load returns an empty
// collection when the stored content is absent or unreadable.
type CartStore interface {
	Load() []CartItem
	Save(items []CartItem) error
}
