package advisor

import (
	"fmt"
	"strings"
	"time"

	"skinAdvisor/domain"
)

// roleSlots maps recommended products to routine roles. Each slot holds at
// most one product name; each product fills at most one slot (first
// matching role in the fixed checking order wins).
type roleSlots struct {
	sun     string
	retinol string
	relief  string
	moist   string
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func assignRoles(entries []domain.DisplayEntry) roleSlots {
	var slots roleSlots

	for _, en := range entries {
		name := "**" + en.Name + "**"
		tagText := strings.Join(en.Tags, " ")

		switch {
		case strings.Contains(en.Category, "선크림") || containsAny(tagText, "SPF", "spf", "자외선 차단"):
			if slots.sun == "" {
				slots.sun = name
			}
		case containsAny(tagText, "레티놀", "retinol", "레티노이드", "안티에이징"):
			if slots.retinol == "" {
				slots.retinol = name
			}
		case containsAny(tagText, "진정", "시카", "트러블", "BHA"):
			if slots.relief == "" {
				slots.relief = name
			}
		case containsAny(tagText, "보습", "장벽", "히알루론산", "크림"):
			if slots.moist == "" {
				slots.moist = name
			}
		}
	}

	return slots
}

// ComposeRoutine turns the recommended products into morning/evening care
// instructions. Every branch has a fallback, so both sequences are
// non-empty even for an empty product list.
func (e *Engine) ComposeRoutine(entries []domain.DisplayEntry, payload *domain.AdvisorPayload, m DerivedMetrics) domain.Routine {
	isSensitive := m.Sensitivity >= e.rules.SensitivityThreshold ||
		strings.EqualFold(strings.TrimSpace(payload.Lifestyle.Sensitivity), "yes")
	highDry := m.Dryness >= 60
	highAcne := m.Acne >= e.rules.AcneThreshold
	highUV := payload.Env.UV >= 6
	hotDay := payload.Env.Temperature >= 28
	dryEnv := payload.Env.Humidity <= 40

	pref := strings.ToLower(strings.TrimSpace(payload.User.PrefTexture))
	if pref == "" {
		pref = "gel"
	}

	slots := assignRoles(entries)

	// ---- morning ----

	var am []string

	switch {
	case isSensitive:
		am = append(am, "🚿 **아침**: 폼 클렌저 대신 '물세안'이나 약산성 젤로 가볍게 시작하세요.")
	case m.Sebum >= 60:
		am = append(am, "🚿 **아침**: 밤사이 쌓인 유분 제거를 위해 T존 위주로 꼼꼼히 세안하세요.")
	default:
		am = append(am, "🚿 **아침**: 미온수로 가볍게 씻어 피부 장벽을 지켜주세요.")
	}

	if dryEnv || highDry {
		am = append(am, "💧 **수분**: 건조한 날씨입니다. 토너를 2번 겹쳐 바르는 '레이어링'을 추천해요.")
	} else {
		am = append(am, "💧 **결 정돈**: 토너로 피부결을 정돈해주세요.")
	}

	switch {
	case slots.relief != "":
		am = append(am, fmt.Sprintf("🌿 **진정**: %s (자극받은 피부 보호)", slots.relief))
	case slots.moist != "":
		if hotDay {
			am = append(am, fmt.Sprintf("💧 **보습**: %s (덥지 않게 얇게 펴 바르기)", slots.moist))
		} else {
			am = append(am, fmt.Sprintf("💧 **보습**: %s (수분막 형성)", slots.moist))
		}
	case pref == "gel":
		am = append(am, "💧 **보습**: 선호하시는 가벼운 젤 로션으로 산뜻하게 마무리.")
	default:
		am = append(am, "💧 **보습**: 가지고 계신 수분 크림을 얇게 발라주세요.")
	}

	if slots.sun != "" {
		if highUV {
			am = append(am, fmt.Sprintf("☀️ **선케어**: %s (UV 강함! 검지 두 마디만큼 충분히)", slots.sun))
		} else {
			am = append(am, fmt.Sprintf("☀️ **선케어**: %s (외출 20분 전 도포)", slots.sun))
		}
	} else {
		am = append(am, "☀️ **선케어**: **선크림**은 선택이 아닌 필수! (집에 있는 제품 꼭 챙기세요)")
	}

	// ---- evening ----

	var pm []string

	if slots.sun != "" || strings.Contains(pref, "oil") {
		pm = append(pm, "🌙 **저녁**: 선크림/메이크업 잔여물이 남지 않게 '이중 세안' 꼼꼼히!")
	} else {
		pm = append(pm, "🌙 **저녁**: 하루 종일 쌓인 먼지를 약산성 폼으로 부드럽게 씻어내세요.")
	}

	reliefUsedForAcne := false
	if slots.retinol != "" {
		pm = append(pm, fmt.Sprintf("✨ **나이트케어**: %s (밤에만 사용)", slots.retinol))
		pm = append(pm, "   💡 Tip: 자극이 느껴지면 '크림 → 레티놀 → 크림' 순서로 발라보세요(샌드위치 법).")
	} else if highAcne {
		if slots.relief != "" {
			pm = append(pm, fmt.Sprintf("🚑 **트러블**: %s (고민 부위에 도톰하게 얹기)", slots.relief))
			reliefUsedForAcne = true
		} else {
			pm = append(pm, "🚑 **트러블**: 스팟 케어 제품이 있다면 고민 부위에만 톡톡.")
		}
	}

	switch {
	case slots.moist != "":
		pm = append(pm, fmt.Sprintf("🛡️ **잠금**: %s (수분이 날아가지 않게 듬뿍)", slots.moist))
	case slots.relief != "" && !reliefUsedForAcne:
		pm = append(pm, fmt.Sprintf("🌿 **진정**: %s (피부 휴식)", slots.relief))
	default:
		pm = append(pm, "🛡️ **보습**: 평소 쓰시는 영양 크림으로 마무리.")
	}

	switch payload.Weekday {
	case time.Friday, time.Saturday, time.Sunday:
		pm = append(pm, "🛀 **주말 Tip**: 이번 주는 고생한 피부를 위해 마스크팩 어떠세요?")
	}

	return domain.Routine{Morning: am, Evening: pm}
}
