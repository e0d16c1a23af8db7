package advisor

// Locale maps catalog vocabulary to display strings. Unknown keys pass
// through unchanged, so an untranslated catalog entry can never fail a
// request.
type Locale struct {
	Categories map[string]string
	Tags       map[string]string
}

func (l Locale) Category(key string) string {
	if v, ok := l.Categories[key]; ok {
		return v
	}
	return key
}

func (l Locale) Tag(key string) string {
	if v, ok := l.Tags[key]; ok {
		return v
	}
	return key
}

// DefaultLocale is the Korean display mapping shipped with the app.
func DefaultLocale() Locale {
	return Locale{
		Categories: map[string]string{
			"Sunscreen": "선크림", "Toner": "토너",
			"Serum": "세럼", "Essence": "에센스",
			"Ampoule": "앰플", "Cream": "크림",
			"Gel": "젤 크림", "Balm": "밤",
			"Cleanser": "클렌저", "Cleansing Oil": "오일 클렌저",
			"Cleansing Foam": "폼 클렌저", "Toner Pads": "패드",
			"Sheet Mask": "시트 마스크", "Mask": "마스크",
			"Moisturizer": "보습제", "Lotion": "로션",
			"Emulsion": "에멀전", "Cleansing Gel": "젤 클렌저",
		},
		Tags: map[string]string{
			// function
			"soothing": "진정", "barrier": "장벽 케어",
			"moisturizing": "보습", "anti-aging": "안티에이징",
			"brightening": "미백", "acne-care": "트러블 케어",
			"sebum": "피지 케어", "pore-care": "모공 케어",

			// texture
			"light": "가벼운 제형", "rich": "영양감 있는",
			"gel": "젤 타입", "cream": "크림 타입",
			"lotion": "로션 타입", "emulsion": "에멀전",

			// skin type / safety
			"sensitive": "민감 피부용", "oily-skin": "지성 피부용",
			"non-comedogenic": "논코메도제닉",
			"no-white-cast":   "백탁 적음", "spf50": "자외선 차단(강)",
			"fragrance-free": "무향", "alcohol-free": "무알콜",
			"low-alcohol": "저알콜",

			// ingredients
			"cica": "시카", "ceramide": "세라마이드",
			"ha": "히알루론산", "hyaluronic": "히알루론산",
			"bha": "BHA(각질제거)", "azelaic": "아젤라익산",
			"niacinamide": "나이아신아마이드", "zinc": "징크",
			"retinoid": "레티노이드", "occlusive": "밀폐 보습",
		},
	}
}
