// Package repo provides postgres access for the analysis pipeline
package repo

import (
	"context"
	"time"

	"credscan/internal/modkit/repokit"
	perr "credscan/internal/platform/errors"
	"credscan/internal/platform/store"
	"credscan/internal/services/analysis/domain"
)

// Repo is the persistence surface for scans, the known fake registry and feedback
type Repo interface {
	EnsureSchema(ctx context.Context) error

	InsertScan(ctx context.Context, row ScanRow) error
	IsKnownFake(ctx context.Context, contentHash string) (bool, error)

	ScansPage(ctx context.Context, userIDHash string, limit, offset int) ([]ScanRow, error)
	CountScans(ctx context.Context, userIDHash string) (int64, error)

	VerdictTotals(ctx context.Context, userIDHash string, since time.Time) (TotalsRow, error)
	ScansByDay(ctx context.Context, userIDHash string, since time.Time) ([]DayCount, error)
	TopSources(ctx context.Context, userIDHash string, since time.Time, limit int) ([]domain.SourceCount, error)

	ScanExists(ctx context.Context, scanID string) (bool, error)
	InsertFeedback(ctx context.Context, row FeedbackRow) error
}

// ScanRow is the storage shape of one scan result
// Sources and ExplanationReasons travel as raw jsonb text
type ScanRow struct {
	ID                 string    `db:"id"`
	Content            string    `db:"content"`
	ContentType        string    `db:"content_type"`
	ContentHash        string    `db:"content_hash"`
	Verdict            string    `db:"verdict"`
	CredibilityScore   int       `db:"credibility_score"`
	Confidence         float64   `db:"confidence"`
	Timestamp          time.Time `db:"timestamp"`
	SourceApp          string    `db:"source_app"`
	ProcessingTier     int       `db:"processing_tier"`
	ProcessingTimeMs   int64     `db:"processing_time_ms"`
	ExplanationSummary string    `db:"explanation_summary"`
	ExplanationReasons []byte    `db:"explanation_reasons"`
	Sources            []byte    `db:"sources"`
	Cached             bool      `db:"cached"`
	UserIDHash         string    `db:"user_id_hash"`
}

// TotalsRow aggregates verdict counts and the average score for a window
type TotalsRow struct {
	Total    int64   `db:"total"`
	Verified int64   `db:"verified"`
	Unclear  int64   `db:"unclear"`
	Fake     int64   `db:"fake"`
	AvgScore float64 `db:"avg_score"`
}

// DayCount is the number of scans on one calendar day
type DayCount struct {
	Day   string
	Count int
}

// FeedbackRow is the storage shape of one feedback record
type FeedbackRow struct {
	ID           string
	ScanID       string
	UserIDHash   string
	FeedbackType string
	Comment      string
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

var schemaStatements = []string{
	`
create table if not exists scan_results (
	id uuid primary key,
	content text not null,
	content_type text not null default 'text',
	content_hash text not null,
	verdict text not null,
	credibility_score int not null,
	confidence double precision not null,
	timestamp timestamptz not null default now(),
	source_app text,
	processing_tier int not null default 2,
	processing_time_ms bigint,
	explanation_summary text,
	explanation_reasons jsonb,
	counter_evidence jsonb,
	sources jsonb,
	cached boolean not null default false,
	user_id_hash text,
	created_at timestamptz not null default now()
)
`,
	`create index if not exists scan_results_hash_idx on scan_results (content_hash)`,
	`create index if not exists scan_results_user_idx on scan_results (user_id_hash, timestamp desc)`,
	`
create table if not exists known_fakes (
	id uuid primary key default gen_random_uuid(),
	content_hash text not null unique,
	content_type text,
	verified_fake boolean not null default true,
	source_fact_checker text,
	report_count int not null default 1,
	added_at timestamptz not null default now()
)
`,
	`
create table if not exists user_feedback (
	id uuid primary key,
	scan_id uuid not null,
	user_id_hash text,
	feedback_type text not null,
	comment text,
	created_at timestamptz not null default now()
)
`,
	`create index if not exists user_feedback_scan_idx on user_feedback (scan_id)`,
}

// EnsureSchema bootstraps the analysis tables, safe to run on every start
func (r *queries) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := store.Exec(ctx, r.q, stmt); err != nil {
			return perr.FromPostgres(err, "ensure schema")
		}
	}
	return nil
}

func (r *queries) InsertScan(ctx context.Context, row ScanRow) error {
	const sql = `
insert into scan_results (
	id, content, content_type, content_hash, verdict, credibility_score,
	confidence, timestamp, source_app, processing_tier, processing_time_ms,
	explanation_summary, explanation_reasons, sources, cached, user_id_hash
) values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
`
	err := store.ExecOne(ctx, r.q, sql,
		row.ID, row.Content, row.ContentType, row.ContentHash, row.Verdict,
		row.CredibilityScore, row.Confidence, row.Timestamp, row.SourceApp,
		row.ProcessingTier, row.ProcessingTimeMs, row.ExplanationSummary,
		row.ExplanationReasons, row.Sources, row.Cached, row.UserIDHash,
	)
	return perr.FromPostgresf(err, "insert scan %s", row.ID)
}

func (r *queries) IsKnownFake(ctx context.Context, contentHash string) (bool, error) {
	const sql = `select exists (select 1 from known_fakes where content_hash = $1)`
	found, err := store.Scalar[bool](ctx, r.q, sql, contentHash)
	if err != nil {
		return false, perr.FromPostgres(err, "known fake lookup")
	}
	return found, nil
}

func (r *queries) ScansPage(ctx context.Context, userIDHash string, limit, offset int) ([]ScanRow, error) {
	// jsonb columns come back as text so they land in the raw []byte fields
	const sql = `
select id::text as id, content, content_type, content_hash, verdict,
	credibility_score, confidence, timestamp,
	coalesce(source_app, '') as source_app, processing_tier,
	coalesce(processing_time_ms, 0) as processing_time_ms,
	coalesce(explanation_summary, '') as explanation_summary,
	coalesce(explanation_reasons, '[]'::jsonb)::text as explanation_reasons,
	coalesce(sources, '[]'::jsonb)::text as sources,
	cached, coalesce(user_id_hash, '') as user_id_hash
from scan_results
where user_id_hash = $1
order by timestamp desc
limit $2 offset $3
`
	out, err := store.StructsByName[ScanRow](ctx, r.q, sql, userIDHash, limit, offset)
	if err != nil {
		return nil, perr.FromPostgres(err, "scan history page")
	}
	return out, nil
}

func (r *queries) CountScans(ctx context.Context, userIDHash string) (int64, error) {
	const sql = `select count(1) from scan_results where user_id_hash = $1`
	n, err := store.Scalar[int64](ctx, r.q, sql, userIDHash)
	if err != nil {
		return 0, perr.FromPostgres(err, "scan count")
	}
	return n, nil
}

func (r *queries) VerdictTotals(ctx context.Context, userIDHash string, since time.Time) (TotalsRow, error) {
	const sql = `
select count(1) as total,
	count(1) filter (where verdict = 'VERIFIED') as verified,
	count(1) filter (where verdict = 'UNCLEAR') as unclear,
	count(1) filter (where verdict in ('LIKELY_FAKE', 'CONFIRMED_FAKE')) as fake,
	coalesce(round(avg(credibility_score)::numeric, 2), 0)::float8 as avg_score
from scan_results
where user_id_hash = $1 and timestamp >= $2
`
	t, err := store.StructByName[TotalsRow](ctx, r.q, sql, userIDHash, since)
	if err != nil {
		return TotalsRow{}, perr.FromPostgres(err, "verdict totals")
	}
	return t, nil
}

func (r *queries) ScansByDay(ctx context.Context, userIDHash string, since time.Time) ([]DayCount, error) {
	const sql = `
select to_char(timestamp, 'YYYY-MM-DD') as day, count(1)
from scan_results
where user_id_hash = $1 and timestamp >= $2
group by day
order by day asc
`
	out, err := store.Many(ctx, r.q, func(row store.Row) (DayCount, error) {
		var d DayCount
		err := row.Scan(&d.Day, &d.Count)
		return d, err
	}, sql, userIDHash, since)
	if err != nil {
		return nil, perr.FromPostgres(err, "scans by day")
	}
	return out, nil
}

func (r *queries) TopSources(ctx context.Context, userIDHash string, since time.Time, limit int) ([]domain.SourceCount, error) {
	const sql = `
select coalesce(s->>'name', 'Unknown') as name, count(1) as cnt
from scan_results, jsonb_array_elements(coalesce(sources, '[]'::jsonb)) s
where user_id_hash = $1 and timestamp >= $2
group by name
order by cnt desc, name asc
limit $3
`
	out, err := store.Many(ctx, r.q, func(row store.Row) (domain.SourceCount, error) {
		var sc domain.SourceCount
		err := row.Scan(&sc.Name, &sc.Count)
		return sc, err
	}, sql, userIDHash, since, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "top sources")
	}
	return out, nil
}

func (r *queries) ScanExists(ctx context.Context, scanID string) (bool, error) {
	const sql = `select exists (select 1 from scan_results where id = $1)`
	found, err := store.Scalar[bool](ctx, r.q, sql, scanID)
	if err != nil {
		return false, perr.FromPostgres(err, "scan lookup")
	}
	return found, nil
}

func (r *queries) InsertFeedback(ctx context.Context, row FeedbackRow) error {
	const sql = `
insert into user_feedback (id, scan_id, user_id_hash, feedback_type, comment)
values ($1, $2, $3, $4, $5)
`
	err := store.ExecOne(ctx, r.q, sql, row.ID, row.ScanID, row.UserIDHash, row.FeedbackType, row.Comment)
	return perr.FromPostgresWithField(err, "insert feedback")
}
