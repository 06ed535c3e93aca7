package db

const (
	// UpsertJob replaces text and qty wholesale; nothing is merged.
	UpsertJob = `
		INSERT INTO print_jobs (id, text, qty)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			text = excluded.text,
			qty = excluded.qty,
			created_at = CURRENT_TIMESTAMP
	`

	GetJobByID = `
		SELECT id, text, qty, created_at
		FROM print_jobs WHERE id = ?
	`

	ListJobs = `
		SELECT id, text, qty, created_at
		FROM print_jobs ORDER BY created_at ASC, id ASC LIMIT ?
	`

	CountJobs = `SELECT COUNT(*) FROM print_jobs`
)
