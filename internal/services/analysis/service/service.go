// Package service orchestrates scoring, source checks and persistence for scans
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"credscan/internal/core/heuristic"
	"credscan/internal/core/verdict"
	"credscan/internal/modkit/repokit"
	perr "credscan/internal/platform/errors"
	"credscan/internal/platform/logger"
	"credscan/internal/platform/store"
	"credscan/internal/services/analysis/domain"
	"credscan/internal/services/analysis/repo"
	srcdom "credscan/internal/services/sources/domain"
)

// DefaultCacheTTL keeps finished results for an hour
const DefaultCacheTTL = time.Hour

// Config controls pipeline behavior
type Config struct {
	CacheTTL time.Duration
}

// Service defines the analysis service contract
type Service interface {
	domain.AnalyzerPort
}

// Svc implements the analysis pipeline
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	checker srcdom.CheckerPort
	scorer  *heuristic.Scorer
	cache   resultCache

	// now is swappable for tests
	now func() time.Time
}

// New constructs the analysis service
// kv may be nil, the pipeline then runs uncached
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	checker srcdom.CheckerPort,
	kv store.KV,
	cfg Config,
) *Svc {
	if db == nil {
		panic("analysis.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("analysis.Service requires a non nil Repo binder")
	}
	if checker == nil {
		panic("analysis.Service requires a non nil CheckerPort")
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		checker: checker,
		scorer:  heuristic.New(),
		cache:   resultCache{kv: kv, ttl: cfg.CacheTTL},
		now:     time.Now,
	}
}

// Analyze runs one piece of content through the full credibility pipeline
// the known fake registry wins over everything, then the cache, then compute
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.ScanResult, error) {
	start := s.now()

	if in.ContentType == "" {
		in.ContentType = "text"
	}
	if in.SourceApp == "" {
		in.SourceApp = "Unknown"
	}
	if in.UserIDHash == "" {
		in.UserIDHash = "anonymous"
	}

	contentHash := heuristic.Hash(in.Content)
	ctx = logger.WithScan(ctx, contentHash[:12])

	known, err := s.Repo.IsKnownFake(ctx, contentHash)
	if err != nil {
		return domain.ScanResult{}, err
	}
	if known {
		res := s.knownFakeResult(in, start)
		if err := s.persist(ctx, res, in, contentHash); err != nil {
			return domain.ScanResult{}, err
		}
		s.cache.put(ctx, contentHash, res)
		logger.C(ctx).Info().Str("verdict", string(res.Verdict)).Msg("known fake hit")
		return res, nil
	}

	if res, ok := s.cache.get(ctx, contentHash); ok {
		res.Cached = true
		res.ProcessingTimeMs = s.now().Sub(start).Milliseconds()
		logger.C(ctx).Debug().Str("verdict", string(res.Verdict)).Msg("cache hit")
		return res, nil
	}

	res, err := s.compute(ctx, in, start)
	if err != nil {
		return domain.ScanResult{}, err
	}
	if err := s.persist(ctx, res, in, contentHash); err != nil {
		return domain.ScanResult{}, err
	}
	s.cache.put(ctx, contentHash, res)

	logger.C(ctx).Info().
		Str("verdict", string(res.Verdict)).
		Int("score", res.CredibilityScore).
		Int64("elapsed_ms", res.ProcessingTimeMs).
		Msg("scan complete")
	return res, nil
}

func (s *Svc) compute(ctx context.Context, in domain.AnalyzeInput, start time.Time) (domain.ScanResult, error) {
	breakdown := s.scorer.Score(in.Content)
	score := heuristic.Composite(breakdown)
	_, heurReasons := heuristic.Explain(breakdown, score)

	facts, err := s.checker.CheckFacts(ctx, in.Content)
	if err != nil {
		return domain.ScanResult{}, err
	}

	sig := facts.Signals()
	adjusted := verdict.Adjust(score, sig)
	v, confidence := verdict.Resolve(adjusted, sig)
	explanation := verdict.MergeExplanation(heurReasons, sig, adjusted)

	sources := facts.Sources
	if sources == nil {
		sources = []srcdom.Source{}
	}

	return domain.ScanResult{
		ID:               uuid.NewString(),
		Content:          in.Content,
		ContentType:      in.ContentType,
		Verdict:          v,
		CredibilityScore: adjusted,
		Confidence:       confidence,
		Timestamp:        s.now().UnixMilli(),
		SourceApp:        in.SourceApp,
		Sources:          sources,
		Explanation:      explanation,
		ProcessingTier:   domain.TierFull,
		ProcessingTimeMs: s.now().Sub(start).Milliseconds(),
		Cached:           false,
	}, nil
}

// knownFakeResult short-circuits content already in the registry
func (s *Svc) knownFakeResult(in domain.AnalyzeInput, start time.Time) domain.ScanResult {
	return domain.ScanResult{
		ID:               uuid.NewString(),
		Content:          in.Content,
		ContentType:      "text",
		Verdict:          verdict.ConfirmedFake,
		CredibilityScore: 5,
		Confidence:       0.99,
		Timestamp:        s.now().UnixMilli(),
		SourceApp:        in.SourceApp,
		Sources:          []srcdom.Source{},
		Explanation: verdict.Explanation{
			Summary: "This content is in our database of known misinformation",
			Reasons: []string{
				"Previously verified as false by fact-checkers",
				"Reported multiple times",
				"Contradicts verified information",
			},
		},
		ProcessingTier:   domain.TierKnownFake,
		ProcessingTimeMs: s.now().Sub(start).Milliseconds(),
		Cached:           false,
	}
}

func (s *Svc) persist(ctx context.Context, res domain.ScanResult, in domain.AnalyzeInput, contentHash string) error {
	sourcesJSON, err := json.Marshal(res.Sources)
	if err != nil {
		return err
	}
	reasonsJSON, err := json.Marshal(res.Explanation.Reasons)
	if err != nil {
		return err
	}
	return s.Repo.InsertScan(ctx, repo.ScanRow{
		ID:                 res.ID,
		Content:            in.Content,
		ContentType:        in.ContentType,
		ContentHash:        contentHash,
		Verdict:            string(res.Verdict),
		CredibilityScore:   res.CredibilityScore,
		Confidence:         res.Confidence,
		Timestamp:          time.UnixMilli(res.Timestamp),
		SourceApp:          in.SourceApp,
		ProcessingTier:     res.ProcessingTier,
		ProcessingTimeMs:   res.ProcessingTimeMs,
		ExplanationSummary: res.Explanation.Summary,
		ExplanationReasons: reasonsJSON,
		Sources:            sourcesJSON,
		Cached:             res.Cached,
		UserIDHash:         in.UserIDHash,
	})
}

// History returns a page of the user's scans, newest first
func (s *Svc) History(ctx context.Context, in domain.HistoryInput) (domain.HistoryPage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PageSize < 1 {
		in.PageSize = 20
	}

	total, err := s.Repo.CountScans(ctx, in.UserIDHash)
	if err != nil {
		return domain.HistoryPage{}, err
	}
	rows, err := s.Repo.ScansPage(ctx, in.UserIDHash, in.PageSize, (in.Page-1)*in.PageSize)
	if err != nil {
		return domain.HistoryPage{}, err
	}

	scans := make([]domain.ScanResult, 0, len(rows))
	for _, r := range rows {
		res, err := rowToResult(r)
		if err != nil {
			return domain.HistoryPage{}, err
		}
		scans = append(scans, res)
	}
	return domain.HistoryPage{
		Scans:    scans,
		Total:    total,
		Page:     in.Page,
		PageSize: in.PageSize,
	}, nil
}

func rowToResult(r repo.ScanRow) (domain.ScanResult, error) {
	sources := []srcdom.Source{}
	if len(r.Sources) > 0 {
		if err := json.Unmarshal(r.Sources, &sources); err != nil {
			return domain.ScanResult{}, perr.Wrapf(err, perr.ErrorCodeJSON, "scan %s sources", r.ID)
		}
	}
	reasons := []string{}
	if len(r.ExplanationReasons) > 0 {
		if err := json.Unmarshal(r.ExplanationReasons, &reasons); err != nil {
			return domain.ScanResult{}, perr.Wrapf(err, perr.ErrorCodeJSON, "scan %s reasons", r.ID)
		}
	}
	return domain.ScanResult{
		ID:               r.ID,
		Content:          r.Content,
		ContentType:      r.ContentType,
		Verdict:          verdict.Verdict(r.Verdict),
		CredibilityScore: r.CredibilityScore,
		Confidence:       r.Confidence,
		Timestamp:        r.Timestamp.UnixMilli(),
		SourceApp:        r.SourceApp,
		Sources:          sources,
		Explanation: verdict.Explanation{
			Summary: r.ExplanationSummary,
			Reasons: reasons,
		},
		ProcessingTier:   r.ProcessingTier,
		ProcessingTimeMs: r.ProcessingTimeMs,
		Cached:           r.Cached,
	}, nil
}

// Stats aggregates the user's scans over the last N days
func (s *Svc) Stats(ctx context.Context, in domain.StatsInput) (domain.Stats, error) {
	if in.Days < 1 {
		in.Days = 30
	}
	since := s.now().AddDate(0, 0, -in.Days)

	totals, err := s.Repo.VerdictTotals(ctx, in.UserIDHash, since)
	if err != nil {
		return domain.Stats{}, err
	}

	out := domain.Stats{
		TotalScans:              totals.Total,
		VerifiedCount:           totals.Verified,
		UnclearCount:            totals.Unclear,
		FakeCount:               totals.Fake,
		AverageCredibilityScore: totals.AvgScore,
		ScansByDay:              map[string]int{},
		TopSources:              []domain.SourceCount{},
	}
	if totals.Total == 0 {
		return out, nil
	}

	days, err := s.Repo.ScansByDay(ctx, in.UserIDHash, since)
	if err != nil {
		return domain.Stats{}, err
	}
	for _, d := range days {
		out.ScansByDay[d.Day] = d.Count
	}

	top, err := s.Repo.TopSources(ctx, in.UserIDHash, since, 5)
	if err != nil {
		return domain.Stats{}, err
	}
	if top != nil {
		out.TopSources = top
	}
	return out, nil
}

// Feedback stores a user's take on an existing scan, 404 when the scan is unknown
// the existence check and the insert share one tx so the scan cannot vanish between them
func (s *Svc) Feedback(ctx context.Context, in domain.FeedbackInput) error {
	if in.UserIDHash == "" {
		in.UserIDHash = "anonymous"
	}
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		found, err := r.ScanExists(ctx, in.ScanID)
		if err != nil {
			return err
		}
		if !found {
			return perr.NotFoundf("scan %s not found", in.ScanID)
		}
		return r.InsertFeedback(ctx, repo.FeedbackRow{
			ID:           uuid.NewString(),
			ScanID:       in.ScanID,
			UserIDHash:   in.UserIDHash,
			FeedbackType: in.FeedbackType,
			Comment:      in.Comment,
		})
	})
}
