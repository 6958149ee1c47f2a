package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"gazette/internal/enrichment"
	"gazette/internal/identity"
	"gazette/internal/logging"
	"gazette/internal/services"
	"gazette/internal/store"
)

// Provider supplies fresh people-data payloads.
type Provider interface {
	RetrievePerson(ctx context.Context, providerID string) (map[string]any, error)
	EnrichPerson(ctx context.Context, person identity.Person) (map[string]any, error)
}

// DirectoryLookup is the optional fallback source when the provider has no
// record for a person.
type DirectoryLookup interface {
	LookupPerson(ctx context.Context, person identity.Person) (map[string]any, error)
}

// Summary reports the outcome of a backfill run.
type Summary struct {
	Processed int `json:"processed"`
	Updated   int `json:"updated"`
	Skipped   int `json:"skipped"`
	Errors    int `json:"errors"`
}

// Runner owns one backfill pass over the people store.
type Runner struct {
	store      *store.Store
	provider   Provider
	directory  DirectoryLookup
	reconciler *enrichment.Reconciler
	lock       *flock.Flock
	logger     *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithDirectory enables the directory fallback lookup.
func WithDirectory(lookup DirectoryLookup) Option {
	return func(r *Runner) {
		r.directory = lookup
	}
}

// WithLogger overrides the no-op default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithReconciler swaps the reconciler, primarily so tests can pin its clock.
func WithReconciler(rec *enrichment.Reconciler) Option {
	return func(r *Runner) {
		if rec != nil {
			r.reconciler = rec
		}
	}
}

// New builds a Runner. staleFields selects which envelope payload fields mark
// a record as needing backfill; lockPath is the single-writer lock file.
func New(st *store.Store, provider Provider, staleFields []string, lockPath string, opts ...Option) *Runner {
	r := &Runner{
		store:      st,
		provider:   provider,
		reconciler: enrichment.NewReconciler(staleFields),
		lock:       flock.New(lockPath),
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the backfill pass. A failed database ping or a held lock is
// fatal; per-record failures increment Errors and the pass continues.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if err := r.store.Ping(ctx); err != nil {
		return Summary{}, services.Wrap(services.ErrConfiguration, "backfill", "ping", "database unavailable", err)
	}

	ok, err := r.lock.TryLock()
	if err != nil {
		return Summary{}, fmt.Errorf("acquire backfill lock: %w", err)
	}
	if !ok {
		return Summary{}, fmt.Errorf("another backfill run holds %s", r.lock.Path())
	}
	defer func() {
		_ = r.lock.Unlock()
	}()

	rows, err := r.store.ListEnriched(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list enriched records: %w", err)
	}

	var summary Summary
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Processed++

		recordCtx := services.WithRecordID(ctx, row.ID)
		recordCtx = services.WithStage(recordCtx, "backfill")
		recordCtx = services.WithRequestID(recordCtx, uuid.NewString())

		updated, err := r.processRecord(recordCtx, row)
		if err != nil {
			summary.Errors++
			r.logger.Error("backfill record failed",
				logging.Int64(logging.FieldRecordID, row.ID),
				logging.Error(err))
			if statusErr := r.store.SetStatus(recordCtx, row.ID, services.FailureStatus(err)); statusErr != nil {
				r.logger.Error("record status update failed",
					logging.Int64(logging.FieldRecordID, row.ID),
					logging.Error(statusErr))
			}
			continue
		}
		if updated {
			summary.Updated++
		} else {
			summary.Skipped++
		}
	}

	r.logger.Info("backfill run complete",
		logging.Int("processed", summary.Processed),
		logging.Int("updated", summary.Updated),
		logging.Int("skipped", summary.Skipped),
		logging.Int("errors", summary.Errors))
	return summary, nil
}

func (r *Runner) processRecord(ctx context.Context, row *store.PersonRecord) (bool, error) {
	envelope := enrichment.ParseEnvelope(row.EnrichmentJSON)
	payload := enrichment.ProviderPayload(envelope)

	mutated := false
	if r.reconciler.NeedsBackfill(payload) {
		fresh, method, err := r.fetchFresh(ctx, payload, row.Person())
		if err != nil {
			return false, err
		}
		if len(fresh) > 0 {
			envelope = r.reconciler.Reconcile(envelope, fresh, method)
			mutated = true
		}
	}
	if enrichment.BackfillExistingRecord(envelope, row) {
		mutated = true
	}
	if !mutated {
		return false, nil
	}

	encoded, err := enrichment.EncodeEnvelope(envelope)
	if err != nil {
		return false, fmt.Errorf("encode envelope: %w", err)
	}
	if err := r.store.UpdateEnvelope(ctx, row.ID, encoded); err != nil {
		return false, fmt.Errorf("persist envelope: %w", err)
	}
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		r.logger.Info("envelope updated",
			logging.Int64(logging.FieldRecordID, row.ID),
			logging.String(logging.FieldRequestID, rid))
	}
	return true, nil
}

// fetchFresh prefers a direct record retrieval when the stored payload names
// a provider id, then falls back to an identity lookup and finally the
// directory scrape. A failed retrieval is logged and treated as no result;
// stored provider ids go permanently stale and must not wedge the record.
func (r *Runner) fetchFresh(ctx context.Context, payload map[string]any, person identity.Person) (map[string]any, enrichment.Method, error) {
	if id := providerID(payload); id != "" {
		fresh, err := r.provider.RetrievePerson(ctx, id)
		if err != nil {
			r.logger.Warn("provider retrieval failed, trying lookup",
				logging.String("provider_id", id),
				logging.Error(err))
		} else if len(fresh) > 0 {
			return fresh, enrichment.MethodRetrieve, nil
		}
	}

	fresh, err := r.provider.EnrichPerson(ctx, person)
	if err != nil {
		return nil, "", services.Wrap(services.ErrExternalTool, "backfill", "lookup", "provider lookup failed", err)
	}
	if len(fresh) > 0 {
		return fresh, enrichment.MethodLookup, nil
	}

	if r.directory != nil {
		fresh, err = r.directory.LookupPerson(ctx, person)
		if err != nil {
			return nil, "", services.Wrap(services.ErrExternalTool, "backfill", "directory", "directory lookup failed", err)
		}
		if len(fresh) > 0 {
			return fresh, enrichment.MethodLookup, nil
		}
	}
	return nil, "", nil
}

func providerID(payload map[string]any) string {
	if payload == nil {
		return ""
	}
	if id, ok := payload["id"].(string); ok {
		return strings.TrimSpace(id)
	}
	return ""
}
