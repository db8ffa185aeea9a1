package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/seoscan/seoscan/internal/model"
)

// DBFileName is the name of the SQLite database file inside the data directory.
const DBFileName = "seoscan.db"

// CrawlDB provides SQLite-based storage for URL records, extracted SEO
// fields, and classified issues. It manages connection pooling and
// provides methods for CRUD operations.
//
// Design decision: We use a single database file per site project rather
// than separate files per crawl run. Incremental crawling depends on the
// frontier surviving between runs, and a single file keeps relationship
// queries and backup/restore operations simple.
type CrawlDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures CrawlDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a CrawlDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*CrawlDB, error) {
	dbPath := filepath.Join(dbDir, DBFileName)

	// Check if we should create the database or require it to exist
	if !opts.CreateIfNotExists {
		// Check if database file exists
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		// Ensure directory exists
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Build connection string
	// We use modernc.org/sqlite which uses a different connection string format.
	// When CreateIfNotExists is false, we use mode=rw to prevent creating new files.
	// When CreateIfNotExists is true, we use mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	// SQLite doesn't benefit from multiple connections for writes,
	// and the crawl loop is sequential anyway
	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cdb := &CrawlDB{
		db:     db,
		dbPath: dbPath,
	}

	// Enable WAL mode if requested
	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Create tables
	if err := cdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return cdb, nil
}

// Close closes the database connection.
func (cdb *CrawlDB) Close() error {
	return cdb.db.Close()
}

// Path returns the path to the SQLite database file.
func (cdb *CrawlDB) Path() string {
	return cdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (cdb *CrawlDB) createTables() error {
	schema := `
	-- URL records are the crawl frontier and its durable state
	CREATE TABLE IF NOT EXISTS urls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL DEFAULT 'new',
		http_status INTEGER NOT NULL DEFAULT 0,
		retry_count INTEGER NOT NULL DEFAULT 0,
		last_crawled DATETIME,
		last_error_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_urls_status ON urls(status);
	CREATE INDEX IF NOT EXISTS idx_urls_status_retry ON urls(status, retry_count);

	-- SEO fields hold the most recent extracted snapshot per URL
	CREATE TABLE IF NOT EXISTS seo_fields (
		url_id INTEGER PRIMARY KEY REFERENCES urls(id) ON DELETE CASCADE,
		title TEXT,
		meta_description TEXT,
		h1_tags TEXT,
		h2_tags TEXT,
		canonical_url TEXT,
		robots_directives TEXT,
		og_title TEXT,
		og_description TEXT,
		og_image TEXT,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Issues hold the classified findings from the most recent crawl
	CREATE TABLE IF NOT EXISTS issues (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url_id INTEGER NOT NULL REFERENCES urls(id) ON DELETE CASCADE,
		issue_type TEXT NOT NULL,
		severity TEXT NOT NULL,
		details TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_issues_url ON issues(url_id);
	CREATE INDEX IF NOT EXISTS idx_issues_severity ON issues(severity);
	`

	_, err := cdb.db.ExecContext(context.Background(), schema)
	return err
}

// urlColumns is the SELECT list shared by every query that loads URL records.
const urlColumns = "id, url, status, http_status, retry_count, last_crawled, last_error_at, created_at, updated_at"

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanURLRecord scans one urls row into a model.URLRecord.
func scanURLRecord(row rowScanner) (*model.URLRecord, error) {
	var record model.URLRecord
	var status string
	var lastCrawled, lastErrorAt sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&record.ID,
		&record.URL,
		&status,
		&record.HTTPStatus,
		&record.RetryCount,
		&lastCrawled,
		&lastErrorAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Status = model.Status(status)
	if lastCrawled.Valid {
		record.LastCrawled = parseTimestamp(lastCrawled.String)
	}
	if lastErrorAt.Valid {
		record.LastErrorAt = parseTimestamp(lastErrorAt.String)
	}
	record.CreatedAt = parseTimestamp(createdAt)
	record.UpdatedAt = parseTimestamp(updatedAt)

	return &record, nil
}

// queryURLRecords runs a query that selects urlColumns and collects the results.
func (cdb *CrawlDB) queryURLRecords(ctx context.Context, query string, args ...any) ([]model.URLRecord, error) {
	rows, err := cdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query url records: %w", err)
	}
	defer rows.Close()

	var records []model.URLRecord
	for rows.Next() {
		record, err := scanURLRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan url record: %w", err)
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

// GetOrCreateURL returns the record for the given normalized URL,
// creating it in status "new" if it does not exist yet. Re-discovering
// a known URL never resets its state.
func (cdb *CrawlDB) GetOrCreateURL(ctx context.Context, url string) (*model.URLRecord, error) {
	insert := `INSERT INTO urls (url) VALUES (?) ON CONFLICT(url) DO NOTHING`
	if _, err := cdb.db.ExecContext(ctx, insert, url); err != nil {
		return nil, fmt.Errorf("failed to insert url record: %w", err)
	}

	record, err := cdb.GetURLRecord(ctx, url)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("url record missing after insert: %s", url)
	}
	return record, nil
}

// GetURLRecord retrieves a URL record by its normalized URL.
// Returns nil without error if the URL is unknown.
func (cdb *CrawlDB) GetURLRecord(ctx context.Context, url string) (*model.URLRecord, error) {
	query := `SELECT ` + urlColumns + ` FROM urls WHERE url = ?`

	record, err := scanURLRecord(cdb.db.QueryRowContext(ctx, query, url))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get url record: %w", err)
	}
	return record, nil
}

// ListRetryCandidates returns error records that still have retries
// left, ordered by retry count and then by failure time so the least
// retried, longest waiting URLs come first. Backoff eligibility is a
// policy question and is applied by the caller, not here.
func (cdb *CrawlDB) ListRetryCandidates(ctx context.Context, maxRetries int) ([]model.URLRecord, error) {
	query := `
	SELECT ` + urlColumns + ` FROM urls
	WHERE status = ? AND retry_count < ?
	ORDER BY retry_count ASC, last_error_at ASC
	`
	return cdb.queryURLRecords(ctx, query, model.StatusError.String(), maxRetries)
}

// ListNew returns never-crawled records in discovery order.
func (cdb *CrawlDB) ListNew(ctx context.Context) ([]model.URLRecord, error) {
	query := `
	SELECT ` + urlColumns + ` FROM urls
	WHERE status = ?
	ORDER BY created_at ASC, id ASC
	`
	return cdb.queryURLRecords(ctx, query, model.StatusNew.String())
}

// ListCrawled returns successfully crawled pages ordered by URL.
// A record only holds status "crawled" while its most recent fetch
// succeeded, so no extra HTTP status filter is needed.
func (cdb *CrawlDB) ListCrawled(ctx context.Context) ([]model.URLRecord, error) {
	query := `
	SELECT ` + urlColumns + ` FROM urls
	WHERE status = ?
	ORDER BY url ASC
	`
	return cdb.queryURLRecords(ctx, query, model.StatusCrawled.String())
}

// CountByStatus returns how many URL records are in each status.
func (cdb *CrawlDB) CountByStatus(ctx context.Context) (model.StatusCounts, error) {
	query := `SELECT status, COUNT(*) FROM urls GROUP BY status`

	var counts model.StatusCounts

	rows, err := cdb.db.QueryContext(ctx, query)
	if err != nil {
		return counts, fmt.Errorf("failed to count url records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return counts, fmt.Errorf("failed to scan status count: %w", err)
		}

		switch model.Status(status) {
		case model.StatusNew:
			counts.New = count
		case model.StatusCrawled:
			counts.Crawled = count
		case model.StatusError:
			counts.Error = count
		}
	}

	return counts, rows.Err()
}

// CountTerminal returns how many error records have exhausted their retries.
func (cdb *CrawlDB) CountTerminal(ctx context.Context, maxRetries int) (int, error) {
	query := `SELECT COUNT(*) FROM urls WHERE status = ? AND retry_count >= ?`

	var count int
	err := cdb.db.QueryRowContext(ctx, query, model.StatusError.String(), maxRetries).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count terminal records: %w", err)
	}
	return count, nil
}

// UpdateAfterFetch persists the complete result of processing one URL:
// the state transition on the record, the extracted SEO snapshot, the
// replaced issue set, and any newly discovered URLs. Everything is
// written in a single transaction so a crash loses at most the
// in-progress URL, never a half-written record.
func (cdb *CrawlDB) UpdateAfterFetch(ctx context.Context, update *model.CrawlUpdate) error {
	if update == nil || update.Record == nil || update.Record.ID == 0 {
		return fmt.Errorf("crawl update requires a persisted url record")
	}

	tx, err := cdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback is a no-op after a successful commit
	defer func() { _ = tx.Rollback() }()

	if err := updateURLRecord(ctx, tx, update.Record); err != nil {
		return err
	}
	if update.Fields != nil {
		if err := saveSEOFields(ctx, tx, update.Record.ID, update.Fields); err != nil {
			return err
		}
	}
	if update.Issues != nil {
		if err := replaceIssues(ctx, tx, update.Record.ID, update.Issues); err != nil {
			return err
		}
	}
	if err := insertDiscovered(ctx, tx, update.Discovered); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit crawl update: %w", err)
	}
	return nil
}

// updateURLRecord writes the record's crawl state back to its row.
func updateURLRecord(ctx context.Context, tx *sql.Tx, record *model.URLRecord) error {
	query := `
	UPDATE urls
	SET status = ?, http_status = ?, retry_count = ?,
		last_crawled = ?, last_error_at = ?, updated_at = ?
	WHERE id = ?
	`

	_, err := tx.ExecContext(ctx, query,
		record.Status.String(),
		record.HTTPStatus,
		record.RetryCount,
		nullableTimestamp(record.LastCrawled),
		nullableTimestamp(record.LastErrorAt),
		formatTimestamp(time.Now()),
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update url record: %w", err)
	}
	return nil
}

// saveSEOFields inserts or updates the SEO snapshot for a URL.
// Heading lists are serialized as JSON arrays.
func saveSEOFields(ctx context.Context, tx *sql.Tx, urlID int64, fields *model.SEOFields) error {
	h1JSON, err := json.Marshal(fields.H1Tags)
	if err != nil {
		return fmt.Errorf("failed to serialize h1 tags: %w", err)
	}
	h2JSON, err := json.Marshal(fields.H2Tags)
	if err != nil {
		return fmt.Errorf("failed to serialize h2 tags: %w", err)
	}

	query := `
	INSERT INTO seo_fields (url_id, title, meta_description, h1_tags, h2_tags,
		canonical_url, robots_directives, og_title, og_description, og_image, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(url_id) DO UPDATE SET
		title = excluded.title,
		meta_description = excluded.meta_description,
		h1_tags = excluded.h1_tags,
		h2_tags = excluded.h2_tags,
		canonical_url = excluded.canonical_url,
		robots_directives = excluded.robots_directives,
		og_title = excluded.og_title,
		og_description = excluded.og_description,
		og_image = excluded.og_image,
		updated_at = excluded.updated_at
	`

	_, err = tx.ExecContext(ctx, query,
		urlID,
		fields.Title,
		fields.MetaDescription,
		string(h1JSON),
		string(h2JSON),
		fields.CanonicalURL,
		fields.RobotsDirectives,
		fields.OGTitle,
		fields.OGDescription,
		fields.OGImage,
		formatTimestamp(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("failed to save seo fields: %w", err)
	}
	return nil
}

// replaceIssues swaps the stored issue set for a URL with the given one.
// Insertion order preserves classification order, which reports rely on.
func replaceIssues(ctx context.Context, tx *sql.Tx, urlID int64, issues []model.Issue) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM issues WHERE url_id = ?`, urlID); err != nil {
		return fmt.Errorf("failed to clear previous issues: %w", err)
	}

	insert := `INSERT INTO issues (url_id, issue_type, severity, details) VALUES (?, ?, ?, ?)`
	for _, issue := range issues {
		if _, err := tx.ExecContext(ctx, insert, urlID, string(issue.Type), issue.Severity.Key(), issue.Details); err != nil {
			return fmt.Errorf("failed to insert issue: %w", err)
		}
	}
	return nil
}

// insertDiscovered adds newly discovered URLs as "new" records.
// Known URLs are left untouched, which makes re-discovery idempotent.
func insertDiscovered(ctx context.Context, tx *sql.Tx, urls []string) error {
	if len(urls) == 0 {
		return nil
	}

	insert := `INSERT INTO urls (url) VALUES (?) ON CONFLICT(url) DO NOTHING`
	for _, u := range urls {
		if _, err := tx.ExecContext(ctx, insert, u); err != nil {
			return fmt.Errorf("failed to insert discovered url: %w", err)
		}
	}
	return nil
}

// GetSEOFields retrieves the stored SEO snapshot for a URL record.
// Returns nil without error if no snapshot has been stored yet.
func (cdb *CrawlDB) GetSEOFields(ctx context.Context, urlID int64) (*model.SEOFields, error) {
	query := `
	SELECT url_id, title, meta_description, h1_tags, h2_tags,
		canonical_url, robots_directives, og_title, og_description, og_image
	FROM seo_fields
	WHERE url_id = ?
	`

	var fields model.SEOFields
	var title, meta, h1JSON, h2JSON, canonical, robots sql.NullString
	var ogTitle, ogDesc, ogImage sql.NullString

	err := cdb.db.QueryRowContext(ctx, query, urlID).Scan(
		&fields.URLID,
		&title,
		&meta,
		&h1JSON,
		&h2JSON,
		&canonical,
		&robots,
		&ogTitle,
		&ogDesc,
		&ogImage,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get seo fields: %w", err)
	}

	fields.Title = title.String
	fields.MetaDescription = meta.String
	fields.CanonicalURL = canonical.String
	fields.RobotsDirectives = robots.String
	fields.OGTitle = ogTitle.String
	fields.OGDescription = ogDesc.String
	fields.OGImage = ogImage.String

	if h1JSON.Valid && h1JSON.String != "" {
		if err := json.Unmarshal([]byte(h1JSON.String), &fields.H1Tags); err != nil {
			return nil, fmt.Errorf("failed to parse h1 tags: %w", err)
		}
	}
	if h2JSON.Valid && h2JSON.String != "" {
		if err := json.Unmarshal([]byte(h2JSON.String), &fields.H2Tags); err != nil {
			return nil, fmt.Errorf("failed to parse h2 tags: %w", err)
		}
	}

	return &fields, nil
}

// ListIssues retrieves the stored issues for a URL record in
// classification order.
func (cdb *CrawlDB) ListIssues(ctx context.Context, urlID int64) ([]model.Issue, error) {
	query := `
	SELECT id, url_id, issue_type, severity, details
	FROM issues
	WHERE url_id = ?
	ORDER BY id ASC
	`

	rows, err := cdb.db.QueryContext(ctx, query, urlID)
	if err != nil {
		return nil, fmt.Errorf("failed to query issues: %w", err)
	}
	defer rows.Close()

	var issues []model.Issue
	for rows.Next() {
		var issue model.Issue
		var issueType, severity string
		var details sql.NullString

		if err := rows.Scan(&issue.ID, &issue.URLID, &issueType, &severity, &details); err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}

		issue.Type = model.IssueType(issueType)
		issue.Details = details.String
		issue.Severity = model.ParseSeverity(severity)
		issue.SeverityText = issue.Severity.Key()
		issues = append(issues, issue)
	}

	return issues, rows.Err()
}

// ListPageIssues returns every page that has stored issues, joined with
// its title, ordered by URL and then by classification order. Pages
// whose latest attempt failed keep the issues from their last
// successful crawl, so they appear here too.
func (cdb *CrawlDB) ListPageIssues(ctx context.Context) ([]model.PageIssues, error) {
	query := `
	SELECT u.url, u.http_status, u.last_crawled,
		COALESCE(f.title, ''),
		i.issue_type, i.severity, i.details
	FROM urls u
	JOIN issues i ON i.url_id = u.id
	LEFT JOIN seo_fields f ON f.url_id = u.id
	ORDER BY u.url ASC, i.id ASC
	`

	rows, err := cdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query page issues: %w", err)
	}
	defer rows.Close()

	var pages []model.PageIssues
	for rows.Next() {
		var pageURL, title string
		var httpStatus int
		var lastCrawled sql.NullString
		var issueType, severity string
		var details sql.NullString

		err := rows.Scan(&pageURL, &httpStatus, &lastCrawled, &title, &issueType, &severity, &details)
		if err != nil {
			return nil, fmt.Errorf("failed to scan page issue: %w", err)
		}

		// Rows arrive grouped by URL; start a new page when it changes
		if len(pages) == 0 || pages[len(pages)-1].URL != pageURL {
			page := model.PageIssues{
				URL:        pageURL,
				Title:      title,
				HTTPStatus: httpStatus,
			}
			if lastCrawled.Valid {
				page.LastCrawled = parseTimestamp(lastCrawled.String)
			}
			pages = append(pages, page)
		}

		sev := model.ParseSeverity(severity)
		current := &pages[len(pages)-1]
		current.Issues = append(current.Issues, model.Issue{
			Type:         model.IssueType(issueType),
			Details:      details.String,
			Severity:     sev,
			SeverityText: sev.Key(),
		})
	}

	return pages, rows.Err()
}

// CountIssuesBySeverity returns how many stored issues fall into each
// severity, keyed by the lowercase severity name.
func (cdb *CrawlDB) CountIssuesBySeverity(ctx context.Context) (map[string]int, error) {
	query := `SELECT severity, COUNT(*) FROM issues GROUP BY severity`

	rows, err := cdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count issues: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var severity string
		var count int
		if err := rows.Scan(&severity, &count); err != nil {
			return nil, fmt.Errorf("failed to scan issue count: %w", err)
		}
		counts[severity] = count
	}

	return counts, rows.Err()
}

// ResetAll deletes every URL record, SEO snapshot, and issue, returning
// the database to its just-created state. The next crawl re-seeds the
// frontier from the configured base URL.
func (cdb *CrawlDB) ResetAll(ctx context.Context) error {
	tx, err := cdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"issues", "seo_fields", "urls"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to reset %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}

// timestampLayout is the format used when writing timestamps.
// It matches SQLite's CURRENT_TIMESTAMP output.
const timestampLayout = "2006-01-02 15:04:05"

// formatTimestamp renders a time for storage, normalized to UTC.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// nullableTimestamp renders a time for storage, mapping the zero time to NULL.
func nullableTimestamp(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return formatTimestamp(t)
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	timestampLayout,           // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	// Return zero time if no format matches
	// This is a fallback to avoid breaking functionality for edge cases
	return time.Time{}
}
