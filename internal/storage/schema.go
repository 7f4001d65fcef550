// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Two identically-shaped training log partitions plus weight history.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS training_log (
		id TEXT PRIMARY KEY,
		row_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		workout TEXT,
		exercise TEXT NOT NULL,
		set_number INTEGER,
		reps INTEGER,
		duration_seconds INTEGER,
		weight_kg REAL,
		machine_level REAL,
		warm_up TEXT,
		rpe REAL,
		notes TEXT
	);

	CREATE TABLE IF NOT EXISTS demo_training_log (
		id TEXT PRIMARY KEY,
		row_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		workout TEXT,
		exercise TEXT NOT NULL,
		set_number INTEGER,
		reps INTEGER,
		duration_seconds INTEGER,
		weight_kg REAL,
		machine_level REAL,
		warm_up TEXT,
		rpe REAL,
		notes TEXT
	);

	CREATE TABLE IF NOT EXISTS weight_history (
		date TEXT PRIMARY KEY,
		weight_kg REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_training_log_row ON training_log(row_id);
	CREATE INDEX IF NOT EXISTS idx_training_log_date ON training_log(date);
	CREATE INDEX IF NOT EXISTS idx_training_log_exercise ON training_log(exercise);
	CREATE INDEX IF NOT EXISTS idx_demo_training_log_row ON demo_training_log(row_id);
	CREATE INDEX IF NOT EXISTS idx_demo_training_log_date ON demo_training_log(date);
	CREATE INDEX IF NOT EXISTS idx_demo_training_log_exercise ON demo_training_log(exercise);
	`

	_, err := d.db.Exec(schema)
	return err
}
