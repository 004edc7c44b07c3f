package ledger

const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    username     TEXT NOT NULL,
    date         TEXT NOT NULL,
    category     TEXT NOT NULL,
    amount       TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_user ON expenses(username, id);
`
