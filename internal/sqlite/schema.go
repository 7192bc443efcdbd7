package sqlite

// Schema DDL for the four storefront tables. Categories and products carry
// explicit ids so the seed can upsert canonical rows by id; users and orders
// autoincrement.
const (
	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);`

	createProducts = `CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    price REAL NOT NULL,
    image TEXT,
    categoryId INTEGER,
    FOREIGN KEY (categoryId) REFERENCES categories(id)
);`

	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE,
    password TEXT,
    role TEXT
);`

	createOrders = `CREATE TABLE IF NOT EXISTS orders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    status TEXT,
    qty INTEGER,
    totalPrice REAL,
    productId INTEGER,
    userId INTEGER,
    FOREIGN KEY (productId) REFERENCES products(id),
    FOREIGN KEY (userId) REFERENCES users(id)
);`
)

// Index DDL for the common query paths.
const (
	idxProductsCategory = `CREATE INDEX IF NOT EXISTS idx_products_category ON products(categoryId);`
	idxOrdersUserStatus = `CREATE INDEX IF NOT EXISTS idx_orders_user_status ON orders(userId, status);`
	idxOrdersProduct    = `CREATE INDEX IF NOT EXISTS idx_orders_product ON orders(productId);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createCategories,
	createProducts,
	createUsers,
	createOrders,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxProductsCategory,
	idxOrdersUserStatus,
	idxOrdersProduct,
}
