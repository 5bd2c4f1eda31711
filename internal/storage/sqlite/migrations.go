package sqlite

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Tables are ordered so that foreign key targets are created first.
// Money columns are TEXT holding exact decimal strings.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL,
    display_name TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS wallets (
    id TEXT PRIMARY KEY,
    owner_user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    balance TEXT NOT NULL,
    currency TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (owner_user_id) REFERENCES users(id)
)`,
	`CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    owner_user_id TEXT,
    created_at INTEGER NOT NULL,
    UNIQUE (owner_user_id, name),
    FOREIGN KEY (owner_user_id) REFERENCES users(id)
)`,
	`CREATE TABLE IF NOT EXISTS user_groups (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    creator_user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (creator_user_id) REFERENCES users(id)
)`,
	`CREATE TABLE IF NOT EXISTS group_members (
    group_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (group_id, user_id),
    FOREIGN KEY (group_id) REFERENCES user_groups(id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(id)
)`,
	`CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    amount TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL,
    type TEXT NOT NULL,
    owner_user_id TEXT NOT NULL,
    wallet_id TEXT NOT NULL,
    category_id TEXT NOT NULL,
    group_id TEXT,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (owner_user_id) REFERENCES users(id),
    FOREIGN KEY (wallet_id) REFERENCES wallets(id),
    FOREIGN KEY (category_id) REFERENCES categories(id),
    FOREIGN KEY (group_id) REFERENCES user_groups(id) ON DELETE SET NULL
)`,
	`CREATE TABLE IF NOT EXISTS debt_records (
    id TEXT PRIMARY KEY,
    transaction_id TEXT NOT NULL,
    debtor_user_id TEXT NOT NULL,
    share_amount TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (transaction_id) REFERENCES transactions(id) ON DELETE CASCADE,
    FOREIGN KEY (debtor_user_id) REFERENCES users(id)
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_global_name ON categories(name) WHERE owner_user_id IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_wallets_owner ON wallets(owner_user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_group_members_user ON group_members(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_owner_date ON transactions(owner_user_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_group_date ON transactions(group_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_debt_records_transaction ON debt_records(transaction_id)`,
	`CREATE INDEX IF NOT EXISTS idx_debt_records_debtor ON debt_records(debtor_user_id)`,
}
