package advisor

import "skinAdvisor/domain"

// Engine is the deterministic recommendation core. Rules and locale are
// fixed at construction; every method is a pure function of its inputs,
// so concurrent requests can share a single Engine with no coordination.
type Engine struct {
	rules  Rules
	locale Locale
}

func NewEngine(rules Rules, locale Locale) *Engine {
	return &Engine{
		rules:  rules,
		locale: locale,
	}
}

// Recommend runs the full pipeline over one payload and catalog snapshot:
// derive metrics once, estimate skin age, rank the catalog, format the
// selection and compose the routine. An empty catalog or no positively
// scoring product still yields a usable result (empty top list, fallback
// reasons, full generic routine).
func (e *Engine) Recommend(payload *domain.AdvisorPayload, catalog []domain.Product, topN int) domain.AdvisorResult {
	metrics := DeriveMetrics(payload)

	ranked := e.Rank(catalog, payload, metrics, topN)
	entries := e.FormatEntries(ranked)

	return domain.AdvisorResult{
		SkinAge: EstimateSkinAge(payload, metrics),
		Top:     entries,
		Reasons: e.SummarizeReasons(payload, metrics),
		Routine: e.ComposeRoutine(entries, payload, metrics),
	}
}
