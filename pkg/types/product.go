package types

// Product validation bounds for the admin management flow.
const (
	MinProductNameLen = 5
	MinProductPrice   = 1000
)

// Product is a catalog item. Image is either a remote URI or a symbolic key
// resolved outside the data layer.
type Product struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	CategoryID int64   `json:"categoryId"`
}

// Validate checks the product fields the admin flow requires.
// Returns a *ValidationError; never touches the store.
func (p Product) Validate() error {
	if len(p.Name) < MinProductNameLen {
		return &ValidationError{Field: "name", Msg: "product name must be at least 5 characters"}
	}
	if p.Price <= 0 {
		return &ValidationError{Field: "price", Msg: "price must be greater than 0"}
	}
	if p.Price < MinProductPrice {
		return &ValidationError{Field: "price", Msg: "price must be at least 1000"}
	}
	if p.CategoryID <= 0 {
		return &ValidationError{Field: "categoryId", Msg: "category is required"}
	}
	return nil
}
