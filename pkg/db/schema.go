package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Consultations: one row per completed consult run
CREATE TABLE IF NOT EXISTS consultations (
    consultation_id INTEGER PRIMARY KEY AUTOINCREMENT,
    industry TEXT NOT NULL,
    department TEXT NOT NULL,
    pain_point TEXT NOT NULL,
    solution_id TEXT NOT NULL,
    solution_name TEXT NOT NULL,
    match_score REAL NOT NULL,
    difficulty INTEGER NOT NULL,

    -- Full roadmap as JSON for later review
    roadmap TEXT NOT NULL,

    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_consultations_industry ON consultations(industry);
CREATE INDEX IF NOT EXISTS idx_consultations_created ON consultations(created_at);
`
