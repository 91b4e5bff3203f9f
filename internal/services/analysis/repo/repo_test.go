package repo

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	perr "credscan/internal/platform/errors"
	"credscan/internal/platform/store"
)

type stubTag string

func (s stubTag) String() string      { return string(s) }
func (s stubTag) RowsAffected() int64 { return 1 }

type stubRows struct {
	cols []string
	vals [][]any
	idx  int
}

func (r *stubRows) Next() bool {
	if r.idx < len(r.vals) {
		r.idx++
		return true
	}
	return false
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.vals[r.idx-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *any:
			*p = row[i]
		case *string:
			*p = row[i].(string)
		case *int:
			*p = row[i].(int)
		case *int64:
			*p = row[i].(int64)
		case *bool:
			*p = row[i].(bool)
		case *float64:
			*p = row[i].(float64)
		}
	}
	return nil
}

func (r *stubRows) Err() error        { return nil }
func (r *stubRows) Close()            {}
func (r *stubRows) Columns() []string { return r.cols }

type stubRow struct {
	val any
	err error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	switch p := dest[0].(type) {
	case *bool:
		*p = r.val.(bool)
	case *int64:
		*p = r.val.(int64)
	}
	return nil
}

type stubQueryer struct {
	execErr  error
	execSQLs []string

	rows     *stubRows
	queryErr error

	scalar    any
	scalarErr error
}

func (q *stubQueryer) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	q.execSQLs = append(q.execSQLs, sql)
	return stubTag("INSERT 0 1"), q.execErr
}

func (q *stubQueryer) Query(context.Context, string, ...any) (store.Rows, error) {
	return q.rows, q.queryErr
}

func (q *stubQueryer) QueryRow(context.Context, string, ...any) store.Row {
	return stubRow{val: q.scalar, err: q.scalarErr}
}

func TestInsertScan_MapsDuplicateKey(t *testing.T) {
	q := &stubQueryer{execErr: &pgconn.PgError{Code: "23505", ConstraintName: "scan_results_pkey"}}
	r := NewPG().Bind(q)

	err := r.InsertScan(context.Background(), ScanRow{ID: "abc"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("expected duplicate key code, got %v", err)
	}
}

func TestInsertFeedback_MapsForeignKeyToInvalidArgument(t *testing.T) {
	q := &stubQueryer{execErr: &pgconn.PgError{Code: "23503", ColumnName: "scan_id"}}
	r := NewPG().Bind(q)

	err := r.InsertFeedback(context.Background(), FeedbackRow{ID: "f1", ScanID: "missing"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument code, got %v", err)
	}
	e, ok := perr.As(err)
	if !ok || e.Field() != "scan_id" {
		t.Fatalf("expected field scan_id attached, got %v", err)
	}
}

func TestScansPage_MapsColumnsByName(t *testing.T) {
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	q := &stubQueryer{rows: &stubRows{
		cols: []string{
			"id", "content", "content_type", "content_hash", "verdict",
			"credibility_score", "confidence", "timestamp", "source_app",
			"processing_tier", "processing_time_ms", "explanation_summary",
			"explanation_reasons", "sources", "cached", "user_id_hash",
		},
		vals: [][]any{{
			"id-1", "hello", "text", "hash-1", "VERIFIED",
			int64(82), 0.9, ts, "Unknown",
			int64(2), int64(12), "Content appears credible",
			`["a","b"]`, `[{"name":"Reuters"}]`, false, "user-1",
		}},
	}}
	r := NewPG().Bind(q)

	rows, err := r.ScansPage(context.Background(), "user-1", 20, 0)
	if err != nil {
		t.Fatalf("ScansPage: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	got := rows[0]
	if got.ID != "id-1" || got.Verdict != "VERIFIED" || got.CredibilityScore != 82 {
		t.Fatalf("bad row mapping: %+v", got)
	}
	if !got.Timestamp.Equal(ts) {
		t.Fatalf("timestamp = %v, want %v", got.Timestamp, ts)
	}
	if string(got.ExplanationReasons) != `["a","b"]` {
		t.Fatalf("reasons = %q", got.ExplanationReasons)
	}
	if string(got.Sources) != `[{"name":"Reuters"}]` {
		t.Fatalf("sources = %q", got.Sources)
	}
}

func TestScansPage_MapsUnavailable(t *testing.T) {
	q := &stubQueryer{queryErr: &pgconn.PgError{Code: "57P03"}}
	r := NewPG().Bind(q)

	_, err := r.ScansPage(context.Background(), "user-1", 20, 0)
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable code, got %v", err)
	}
}

func TestIsKnownFake_ReadsScalar(t *testing.T) {
	q := &stubQueryer{scalar: true}
	r := NewPG().Bind(q)

	found, err := r.IsKnownFake(context.Background(), "hash-1")
	if err != nil {
		t.Fatalf("IsKnownFake: %v", err)
	}
	if !found {
		t.Fatalf("expected known fake hit")
	}
}

func TestVerdictTotals_MapsAggregates(t *testing.T) {
	q := &stubQueryer{rows: &stubRows{
		cols: []string{"total", "verified", "unclear", "fake", "avg_score"},
		vals: [][]any{{int64(10), int64(6), int64(3), int64(1), 71.5}},
	}}
	r := NewPG().Bind(q)

	totals, err := r.VerdictTotals(context.Background(), "user-1", time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("VerdictTotals: %v", err)
	}
	want := TotalsRow{Total: 10, Verified: 6, Unclear: 3, Fake: 1, AvgScore: 71.5}
	if totals != want {
		t.Fatalf("totals = %+v, want %+v", totals, want)
	}
}

func TestScansByDay_ScansPairs(t *testing.T) {
	q := &stubQueryer{rows: &stubRows{
		cols: []string{"day", "count"},
		vals: [][]any{
			{"2026-08-29", 3},
			{"2026-08-30", 1},
		},
	}}
	r := NewPG().Bind(q)

	days, err := r.ScansByDay(context.Background(), "user-1", time.Now().AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("ScansByDay: %v", err)
	}
	if len(days) != 2 || days[0].Day != "2026-08-29" || days[0].Count != 3 {
		t.Fatalf("bad day counts: %+v", days)
	}
}
