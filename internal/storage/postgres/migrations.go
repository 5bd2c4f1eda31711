package postgres

// migrations mirrors the SQLite schema with native NUMERIC money columns.
// Dates stay TEXT (YYYY-MM-DD) so both backends scan them the same way.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL,
    display_name TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS wallets (
    id TEXT PRIMARY KEY,
    owner_user_id TEXT NOT NULL REFERENCES users(id),
    name TEXT NOT NULL,
    balance NUMERIC NOT NULL,
    currency TEXT NOT NULL,
    created_at BIGINT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    owner_user_id TEXT REFERENCES users(id),
    created_at BIGINT NOT NULL,
    UNIQUE (owner_user_id, name)
)`,
	`CREATE TABLE IF NOT EXISTS user_groups (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    creator_user_id TEXT NOT NULL REFERENCES users(id),
    created_at BIGINT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS group_members (
    group_id TEXT NOT NULL REFERENCES user_groups(id) ON DELETE CASCADE,
    user_id TEXT NOT NULL REFERENCES users(id),
    position INTEGER NOT NULL,
    PRIMARY KEY (group_id, user_id)
)`,
	`CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    amount NUMERIC NOT NULL CHECK (amount > 0),
    description TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL,
    type TEXT NOT NULL,
    owner_user_id TEXT NOT NULL REFERENCES users(id),
    wallet_id TEXT NOT NULL REFERENCES wallets(id),
    category_id TEXT NOT NULL REFERENCES categories(id),
    group_id TEXT REFERENCES user_groups(id) ON DELETE SET NULL,
    created_at BIGINT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS debt_records (
    id TEXT PRIMARY KEY,
    transaction_id TEXT NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
    debtor_user_id TEXT NOT NULL REFERENCES users(id),
    share_amount NUMERIC NOT NULL,
    position INTEGER NOT NULL
)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_global_name ON categories(name) WHERE owner_user_id IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_wallets_owner ON wallets(owner_user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_group_members_user ON group_members(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_owner_date ON transactions(owner_user_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_group_date ON transactions(group_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_debt_records_transaction ON debt_records(transaction_id)`,
	`CREATE INDEX IF NOT EXISTS idx_debt_records_debtor ON debt_records(debtor_user_id)`,
}
