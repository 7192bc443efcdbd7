package types

// Standard table names. Table access goes through this closed set; free-form
// table strings never reach the SQL layer.
const (
	TableCategories = "categories"
	TableProducts   = "products"
	TableUsers      = "users"
	TableOrders     = "orders"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	TableCategories,
	TableProducts,
	TableUsers,
	TableOrders,
}

// tableColumns maps each table to its declared column set. Patch fields are
// validated against this before any statement is built, so an unknown field
// fails fast instead of silently no-opping.
var tableColumns = map[string]map[string]bool{
	TableCategories: {
		"id":   true,
		"name": true,
	},
	TableProducts: {
		"id":         true,
		"name":       true,
		"price":      true,
		"image":      true,
		"categoryId": true,
	},
	TableUsers: {
		"id":       true,
		"username": true,
		"password": true,
		"role":     true,
	},
	TableOrders: {
		"id":         true,
		"status":     true,
		"qty":        true,
		"totalPrice": true,
		"productId":  true,
		"userId":     true,
	},
}

// ValidTable reports whether name is one of the standard table names.
func ValidTable(name string) bool {
	_, ok := tableColumns[name]
	return ok
}

// ValidColumn reports whether field is a declared column of table.
// Returns false for unknown tables.
func ValidColumn(table, field string) bool {
	cols, ok := tableColumns[table]
	if !ok {
		return false
	}
	return cols[field]
}
