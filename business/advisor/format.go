package advisor

import (
	"fmt"
	"math"

	"skinAdvisor/domain"
)

const (
	maxDisplayTags    = 4
	maxDisplayReasons = 3
)

// FormatEntries shapes ranked candidates for the front end: 1-based rank,
// localized category and tags (first 4), score rounded to 2 decimals, and
// the first 3 evidence strings as reasons.
func (e *Engine) FormatEntries(ranked []ScoredCandidate) []domain.DisplayEntry {
	entries := make([]domain.DisplayEntry, 0, len(ranked))

	for i, c := range ranked {
		tags := make([]string, 0, maxDisplayTags)
		for _, t := range c.Product.Tags {
			if len(tags) >= maxDisplayTags {
				break
			}
			tags = append(tags, e.locale.Tag(t))
		}

		reasons := c.Evidence
		if len(reasons) > maxDisplayReasons {
			reasons = reasons[:maxDisplayReasons]
		}

		entries = append(entries, domain.DisplayEntry{
			Rank:     i + 1,
			Name:     c.Product.Name,
			Brand:    c.Product.Brand,
			Category: e.locale.Category(c.Product.OfficialCategory),
			Score:    math.Round(c.Score*100) / 100,
			Tags:     tags,
			Reasons:  reasons,
		})
	}

	return entries
}

// SummarizeReasons produces the short natural-language summary shown above
// the product list. Checks run in a fixed order and are additive; when
// nothing applies a generic sentence is emitted so the summary is never
// empty.
func (e *Engine) SummarizeReasons(payload *domain.AdvisorPayload, m DerivedMetrics) []string {
	var reasons []string

	if payload.Env.UV >= 6 {
		reasons = append(reasons, fmt.Sprintf("UV가 강한 날(%.1f)이라 선케어를 1순위로 챙겼어요.", payload.Env.UV))
	}
	if m.Dryness >= 60 {
		reasons = append(reasons, "피부가 많이 건조해 보여 보습 장벽 제품을 골랐어요.")
	}
	if m.Acne >= 60 {
		reasons = append(reasons, "트러블 진정에 좋은 성분을 우선시했어요.")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "현재 피부 상태와 날씨 밸런스를 고려해 선정했어요.")
	}

	return reasons
}
