package cart

// StorageKey is the fixed namespace under which the serialized cart snapshot
// is persisted, whatever the storage backend.
const StorageKey = "shopcrypto-cart"

// Item is one line of purchase intent, keyed by product ID. The price is the
// price shown when the item was added (price-lock-at-cart-time).
type Item struct {
	ProductID      string   `json:"id"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compareAtPrice,omitempty"`
	Image          *string  `json:"image,omitempty"`
	Quantity       int      `json:"quantity"`
}
