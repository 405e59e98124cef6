package accesslog

// SchemaDDL defines the SQLite schema for the access log.
// One table: every row is a single file access inside a repository.
// Execute against a SQLite database with: db.Exec(SchemaDDL)
//
// Timestamps are stored as RFC 3339 UTC text with millisecond precision so
// that lexicographic order matches chronological order and SQLite's julianday
// can parse them directly.
const SchemaDDL = `
CREATE TABLE IF NOT EXISTS accesses (
    repo TEXT NOT NULL,
    path TEXT NOT NULL,
    at   TEXT NOT NULL,
    UNIQUE (repo, path, at)
);

CREATE INDEX IF NOT EXISTS accesses_repo_path ON accesses (repo, path);
`
