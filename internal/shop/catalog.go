package shop

import (
	"fmt"

	"github.com/dukaforge/storefront/internal/sqlite"
	"github.com/dukaforge/storefront/pkg/types"
)

// Catalog is the admin-facing catalog service. Deletions follow the
// configured delete policy: block refuses to remove referenced rows,
// cascade removes the dependents too, orphan leaves them dangling.
type Catalog struct {
	store  *sqlite.Store
	policy string
}

// NewCatalog creates a Catalog service using the store's configured
// delete policy.
func NewCatalog(store *sqlite.Store) *Catalog {
	return &Catalog{store: store, policy: store.Config().EffectiveDeletePolicy()}
}

// Categories lists all categories.
func (c *Catalog) Categories() ([]types.Category, error) {
	rows, err := c.store.GetAll(types.TableCategories)
	if err != nil {
		return nil, err
	}
	categories := make([]types.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.(types.Category))
	}
	return categories, nil
}

// Products lists products, all of them or one category's.
func (c *Catalog) Products(categoryID int64) ([]types.Product, error) {
	if categoryID > 0 {
		return c.store.ProductsByCategoryID(categoryID)
	}
	return c.store.SearchProductsByNameOrCategory("")
}

// Search matches products by name or category name, case-insensitive.
func (c *Catalog) Search(query string) ([]types.Product, error) {
	return c.store.SearchProductsByNameOrCategory(query)
}

// AddCategory validates and inserts a category. A zero ID lets the store
// assign one.
func (c *Catalog) AddCategory(category types.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	patches := types.PatchList{{Field: "name", Value: category.Name}}
	if category.ID > 0 {
		patches = append(patches, types.Patch{Field: "id", Value: category.ID})
	}
	return c.store.Insert(types.TableCategories, patches)
}

// UpdateCategory applies a patch list to a category, validating the fields
// it touches.
func (c *Catalog) UpdateCategory(id int64, patches types.PatchList) error {
	if err := validateCategoryPatches(patches); err != nil {
		return err
	}
	return c.store.Update(id, types.TableCategories, patches)
}

// DeleteCategory removes a category per the delete policy. Under block, a
// category with products is ErrCategoryInUse.
func (c *Catalog) DeleteCategory(id int64) error {
	switch c.policy {
	case types.DeleteBlock:
		inUse, err := c.store.CategoryHasProducts(id)
		if err != nil {
			return err
		}
		if inUse {
			return types.ErrCategoryInUse
		}
		return c.store.Delete(id, types.TableCategories)
	case types.DeleteCascade:
		return c.store.DeleteCategoryCascade(id)
	default:
		return c.store.Delete(id, types.TableCategories)
	}
}

// AddProduct validates and inserts a product. The category must exist.
func (c *Catalog) AddProduct(product types.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	if err := c.categoryExists(product.CategoryID); err != nil {
		return err
	}
	patches := types.PatchList{
		{Field: "name", Value: product.Name},
		{Field: "price", Value: product.Price},
		{Field: "image", Value: product.Image},
		{Field: "categoryId", Value: product.CategoryID},
	}
	if product.ID > 0 {
		patches = append(patches, types.Patch{Field: "id", Value: product.ID})
	}
	return c.store.Insert(types.TableProducts, patches)
}

// UpdateProduct applies a patch list to a product, validating the fields
// it touches.
func (c *Catalog) UpdateProduct(id int64, patches types.PatchList) error {
	if err := c.validateProductPatches(patches); err != nil {
		return err
	}
	return c.store.Update(id, types.TableProducts, patches)
}

// DeleteProduct removes a product per the delete policy. Under block, a
// product with orders is ErrProductInUse.
func (c *Catalog) DeleteProduct(id int64) error {
	switch c.policy {
	case types.DeleteBlock:
		inUse, err := c.store.ProductHasOrders(id)
		if err != nil {
			return err
		}
		if inUse {
			return types.ErrProductInUse
		}
		return c.store.Delete(id, types.TableProducts)
	case types.DeleteCascade:
		return c.store.DeleteProductCascade(id)
	default:
		return c.store.Delete(id, types.TableProducts)
	}
}

func (c *Catalog) categoryExists(categoryID int64) error {
	categories, err := c.Categories()
	if err != nil {
		return err
	}
	for _, cat := range categories {
		if cat.ID == categoryID {
			return nil
		}
	}
	return &types.ValidationError{Field: "categoryId", Msg: fmt.Sprintf("category %d does not exist", categoryID)}
}

func validateCategoryPatches(patches types.PatchList) error {
	for _, patch := range patches {
		if patch.Field != "name" {
			continue
		}
		name, ok := patch.Value.(string)
		if !ok || len(name) < types.MinCategoryNameLen {
			return &types.ValidationError{Field: "name", Msg: "category name must be at least 2 characters"}
		}
	}
	return nil
}

func (c *Catalog) validateProductPatches(patches types.PatchList) error {
	for _, patch := range patches {
		switch patch.Field {
		case "name":
			name, ok := patch.Value.(string)
			if !ok || len(name) < types.MinProductNameLen {
				return &types.ValidationError{Field: "name", Msg: "product name must be at least 5 characters"}
			}
		case "price":
			price, ok := patchFloat(patch.Value)
			if !ok || price < types.MinProductPrice {
				return &types.ValidationError{Field: "price", Msg: fmt.Sprintf("price must be at least %v", types.MinProductPrice)}
			}
		case "categoryId":
			categoryID, ok := patchInt(patch.Value)
			if !ok || categoryID < 1 {
				return &types.ValidationError{Field: "categoryId", Msg: "categoryId must be positive"}
			}
			if err := c.categoryExists(categoryID); err != nil {
				return err
			}
		}
	}
	return nil
}

func patchFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func patchInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}
