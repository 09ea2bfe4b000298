package sqlite

import "database/sql"

// schema sets up the database tables. It runs on startup to ensure tables exist.
// Amounts are decimal strings so no precision is lost to floating point.
// Order lines copy names and prices so history survives menu edits.
const schema = `
CREATE TABLE IF NOT EXISTS menu_items (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    base_price TEXT NOT NULL,
    available INTEGER NOT NULL DEFAULT 1,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS menu_variants (
    item_id TEXT NOT NULL,
    name TEXT NOT NULL,
    price_delta TEXT NOT NULL,
    is_default INTEGER NOT NULL DEFAULT 0,
    position INTEGER NOT NULL,
    PRIMARY KEY (item_id, name),
    FOREIGN KEY (item_id) REFERENCES menu_items(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS modifier_groups (
    item_id TEXT NOT NULL,
    name TEXT NOT NULL,
    mode TEXT NOT NULL,
    required INTEGER NOT NULL DEFAULT 0,
    position INTEGER NOT NULL,
    PRIMARY KEY (item_id, name),
    FOREIGN KEY (item_id) REFERENCES menu_items(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS modifier_options (
    item_id TEXT NOT NULL,
    group_name TEXT NOT NULL,
    name TEXT NOT NULL,
    price_delta TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (item_id, group_name, name),
    FOREIGN KEY (item_id, group_name) REFERENCES modifier_groups(item_id, name) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS orders (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    table_id TEXT NOT NULL DEFAULT '',
    guest_count INTEGER NOT NULL,
    order_type TEXT NOT NULL DEFAULT 'dine_in',
    status TEXT NOT NULL DEFAULT 'pending',
    notes TEXT NOT NULL DEFAULT '',
    subtotal TEXT NOT NULL,
    tax TEXT NOT NULL,
    total TEXT NOT NULL,
    tax_rate TEXT NOT NULL,
    currency TEXT NOT NULL,
    submitted_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_session ON orders(session_id, submitted_at);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, submitted_at);

CREATE TABLE IF NOT EXISTS order_lines (
    order_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    line_id TEXT NOT NULL,
    menu_item_id TEXT NOT NULL,
    name TEXT NOT NULL,
    variant TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    unit_price TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    line_total TEXT NOT NULL,
    PRIMARY KEY (order_id, position),
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS order_line_modifiers (
    order_id TEXT NOT NULL,
    line_position INTEGER NOT NULL,
    group_name TEXT NOT NULL,
    option_name TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (order_id, line_position, position),
    FOREIGN KEY (order_id, line_position) REFERENCES order_lines(order_id, position) ON DELETE CASCADE
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
