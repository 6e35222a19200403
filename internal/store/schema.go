package store

// SchemaVersion is written alongside every persisted collection so future
// releases can migrate old blobs. Loads reject versions newer than this.
const SchemaVersion = 1

const schemaSQL = `
CREATE TABLE IF NOT EXISTS collections (
    name             TEXT PRIMARY KEY,
    schema_version   INTEGER NOT NULL,
    data             TEXT NOT NULL,
    updated_at       TEXT NOT NULL
);
`

// Persisted collection names.
const (
	colSubscriptions = "subscriptions"
	colBudgets       = "budgets"
	colCategories    = "categories"
	colSettings      = "settings"
)
