package advisor

import (
	"fmt"
	"strings"

	"skinAdvisor/domain"
)

// Ban reasons for the hard safety overrides.
const (
	BanDaytimeRetinol    = "daytime_retinol"
	BanSensitiveIrritant = "sensitive_irritant"
)

// ScoreOutcome is the tagged result of scoring one product: either an
// eligible point total with its evidence, or a hard ban. A banned product
// can never re-enter the ranking through accumulated positive points.
type ScoreOutcome struct {
	Points    float64
	Banned    bool
	BanReason string
	Evidence  []string
}

// Eligible reports whether the product can enter the ranking at all.
func (o ScoreOutcome) Eligible() bool {
	return !o.Banned && o.Points > 0
}

// ---- bucket helpers ----

func uvBucket(uv float64) string {
	switch {
	case uv >= 8:
		return "very"
	case uv >= 6:
		return "high"
	case uv >= 3:
		return "mod"
	default:
		return "low"
	}
}

func humidityBucket(h float64) string {
	switch {
	case h <= 40:
		return "dry"
	case h >= 70:
		return "humid"
	default:
		return "normal"
	}
}

func tempBucket(t float64) string {
	switch {
	case t >= 28:
		return "hot"
	case t <= 10:
		return "cold"
	default:
		return "normal"
	}
}

// ---- tag matching ----

// The catalog vocabulary is open-ended and caller-supplied, so matching
// stays permissive string membership: unrecognized tags simply never match
// any rule.
type stringSet map[string]struct{}

func newStringSet(items []string) stringSet {
	s := make(stringSet, len(items))
	for _, it := range items {
		s[strings.ToLower(strings.TrimSpace(it))] = struct{}{}
	}
	return s
}

func (s stringSet) has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s stringSet) hasAny(keys ...string) bool {
	for _, k := range keys {
		if s.has(k) {
			return true
		}
	}
	return false
}

// ScoreProduct scores one product against the full payload. Rule groups
// run in a fixed order (environment, skin state, preference, age bracket)
// and accumulate additively; the terminal safety overrides short-circuit
// everything accumulated before them. Pure: identical inputs always yield
// identical outcomes.
func (e *Engine) ScoreProduct(p domain.Product, payload *domain.AdvisorPayload, m DerivedMetrics) ScoreOutcome {
	r := e.rules
	tags := newStringSet(p.Tags)
	ings := newStringSet(p.FeaturedIngredients)
	cat := p.OfficialCategory

	var score float64
	var evidence []string

	// [A] environment rules

	uv := payload.Env.UV
	switch uvBucket(uv) {
	case "low":
		if tags.has("spf30") {
			score += r.UVLowSPF30
			evidence = append(evidence, fmt.Sprintf("자외선 low (UV %.1f) → SPF30 제품(+%.0f점)", uv, r.UVLowSPF30))
		}
	case "mod":
		if tags.has("spf30") {
			score += r.UVModSPF30
			evidence = append(evidence, fmt.Sprintf("자외선 mod (UV %.1f) → SPF30 제품(+%.0f점)", uv, r.UVModSPF30))
		}
	case "high":
		if tags.has("spf50") || cat == "Sunscreen" {
			score += r.UVHighSPF50
			evidence = append(evidence, fmt.Sprintf("자외선 high (UV %.1f) → SPF50 제품(+%.0f점)", uv, r.UVHighSPF50))
		}
	case "very":
		if tags.has("spf50") || cat == "Sunscreen" {
			score += r.UVVerySPF50
			evidence = append(evidence, fmt.Sprintf("자외선 very (UV %.1f) → SPF50 제품(+%.0f점)", uv, r.UVVerySPF50))
		}
	}

	humidity := payload.Env.Humidity
	switch humidityBucket(humidity) {
	case "dry":
		if tags.hasAny("moisturizing", "rich", "cream") {
			score += r.HumidityDryRichMoist
			evidence = append(evidence, fmt.Sprintf("건조한 날씨(습도 %.0f%%) → 고보습 케어(+%.0f점)", humidity, r.HumidityDryRichMoist))
		}
	case "humid":
		if tags.hasAny("light", "gel", "watery") {
			score += r.HumidityHumidLightGel
			evidence = append(evidence, fmt.Sprintf("습한 날씨 → 산뜻한 제형(+%.0f점)", r.HumidityHumidLightGel))
		}
	}

	temp := payload.Env.Temperature
	switch tempBucket(temp) {
	case "hot":
		if tags.hasAny("sebum", "pore", "gel") {
			score += r.TempHotSebumGel
			evidence = append(evidence, fmt.Sprintf("더운 날씨(%.0f도) → 피지 조절/젤(+%.0f점)", temp, r.TempHotSebumGel))
		}
	case "cold":
		if tags.hasAny("barrier", "ceramide", "cream") {
			score += r.TempColdBarrierCream
			evidence = append(evidence, fmt.Sprintf("추운 날씨 → 장벽 보호(+%.0f점)", r.TempColdBarrierCream))
		}
	}

	// [B] skin-state rules

	dSebum := 0.5*m.Sebum + 0.3*camVal(payload.Camera, "pore", defaultPore)
	if dSebum >= r.SebumLoadThreshold {
		if tags.hasAny("sebum", "oily-skin") {
			score += r.SebumHighSebumGel
			evidence = append(evidence, fmt.Sprintf("유분/모공 고민 → 피지 케어(+%.0f점)", r.SebumHighSebumGel))
		}
		if tags.hasAny("oil", "balm") {
			score += r.SebumHighHeavyOil
			evidence = append(evidence, fmt.Sprintf("지성 피부 주의 → 오일/밤 감점(%.0f점)", r.SebumHighHeavyOil))
		}
	}

	if m.Acne >= r.AcneThreshold {
		if tags.hasAny("bha", "azelaic", "tea tree", "acne-care") {
			score += r.AcneHighBHAAzelaic
			evidence = append(evidence, fmt.Sprintf("트러블 지수 높음 → 진정/BHA 성분(+%.0f점)", r.AcneHighBHAAzelaic))
		}
	}

	if m.Sensitivity >= r.SensitivityThreshold {
		if tags.hasAny("cica", "soothing", "mugwort") {
			score += r.SensitiveSoothing
			evidence = append(evidence, fmt.Sprintf("민감/홍조 심함 → 시카/진정(+%.0f점)", r.SensitiveSoothing))
		}
		if tags.hasAny("aha", "bha") {
			score += r.SensitiveStrongAcid
			evidence = append(evidence, fmt.Sprintf("민감 피부 → 강한 산 성분 감점(%.0f점)", r.SensitiveStrongAcid))
		}
		if ings.has("retinol") {
			score += r.SensitiveRetinol
			evidence = append(evidence, fmt.Sprintf("민감 피부 → 레티놀 성분 감점(%.0f점)", r.SensitiveRetinol))
		}
	}

	// [C] stated texture preference

	pref := strings.ToLower(strings.TrimSpace(payload.User.PrefTexture))
	if pref == "" {
		pref = "gel"
	}
	if (pref == "gel" && tags.has("gel")) || (pref == "cream" && tags.has("cream")) {
		score += r.PrefTextureBonus
		evidence = append(evidence, fmt.Sprintf("선호 제형(%s) 일치(+%.0f점)", pref, r.PrefTextureBonus))
	}

	// [D] age bracket (mutually exclusive)

	age := userAge(payload)
	if age >= r.MatureAgeMin {
		if tags.hasAny("anti-aging", "retinoid", "collagen", "rich") {
			score += r.MatureAgeBonus
			evidence = append(evidence, fmt.Sprintf("30대 피부 관리(%.0f세) → 안티에이징 케어(+%.0f점)", age, r.MatureAgeBonus))
		}
	} else if age <= r.YouthAgeMax && m.Sebum > 50 {
		if tags.hasAny("light", "fresh", "pore-care") {
			score += r.YouthSebumBonus
			evidence = append(evidence, fmt.Sprintf("20대 피지 관리(%.0f세) → 산뜻한 케어(+%.0f점)", age, r.YouthSebumBonus))
		}
	}

	// [E] terminal safety overrides. Evaluated last so no positive
	// accumulation can bypass them.

	if payload.Hour >= 6 && payload.Hour < 18 && (ings.has("retinol") || tags.has("retinoid")) {
		evidence = append(evidence, fmt.Sprintf("현재 시간(%d시) → 주간 레티놀 사용 금지", payload.Hour))
		return ScoreOutcome{Banned: true, BanReason: BanDaytimeRetinol, Evidence: evidence}
	}

	sensitiveUser := m.Sensitivity >= r.SensitivityThreshold ||
		strings.EqualFold(strings.TrimSpace(payload.Lifestyle.Sensitivity), "yes")
	if sensitiveUser && tags.hasAny("strong_acid", "high_alcohol") {
		evidence = append(evidence, "민감성 피부 → 자극 성분 제외")
		return ScoreOutcome{Banned: true, BanReason: BanSensitiveIrritant, Evidence: evidence}
	}

	return ScoreOutcome{Points: score, Evidence: evidence}
}
