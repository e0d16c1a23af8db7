package advisor

import (
	"sort"

	"skinAdvisor/domain"
)

const defaultTopN = 3

// ScoredCandidate is one positively-scored product awaiting selection.
type ScoredCandidate struct {
	Product  domain.Product
	Score    float64
	Evidence []string
}

// Rank scores the whole catalog, drops banned and non-positive products,
// sorts descending (stable, so catalog order breaks ties) and selects up
// to topN under a category-diversity constraint: at most one product per
// official category on the first pass, then a backfill pass that ignores
// category when too few distinct categories scored positively. Products
// that never scored positively are never used as padding.
func (e *Engine) Rank(catalog []domain.Product, payload *domain.AdvisorPayload, m DerivedMetrics, topN int) []ScoredCandidate {
	if topN <= 0 {
		topN = defaultTopN
	}

	candidates := make([]ScoredCandidate, 0, len(catalog))
	for _, p := range catalog {
		outcome := e.ScoreProduct(p, payload, m)
		if !outcome.Eligible() {
			continue
		}
		candidates = append(candidates, ScoredCandidate{
			Product:  p,
			Score:    outcome.Points,
			Evidence: outcome.Evidence,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	// Diversity pass: one product per distinct category.
	selected := make([]ScoredCandidate, 0, topN)
	picked := make(map[int]bool, topN)
	seenCats := make(map[string]bool)

	for i, c := range candidates {
		if len(selected) >= topN {
			break
		}
		cat := c.Product.OfficialCategory
		if seenCats[cat] {
			continue
		}
		selected = append(selected, c)
		picked[i] = true
		seenCats[cat] = true
	}

	// Backfill pass: top up from the sorted list regardless of category.
	if len(selected) < topN {
		for i, c := range candidates {
			if len(selected) >= topN {
				break
			}
			if picked[i] {
				continue
			}
			selected = append(selected, c)
			picked[i] = true
		}
	}

	return selected
}
