package types

// MinCategoryNameLen is the minimum category name length accepted by the
// admin management flow.
const MinCategoryNameLen = 2

// Category groups products in the catalog. Products reference a category
// through their CategoryID.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Validate checks the category fields the admin flow requires.
// Returns a *ValidationError; never touches the store.
func (c Category) Validate() error {
	if len(c.Name) < MinCategoryNameLen {
		return &ValidationError{Field: "name", Msg: "category name must be at least 2 characters"}
	}
	return nil
}
