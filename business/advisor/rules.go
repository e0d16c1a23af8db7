package advisor

// Rules holds every weight and threshold the scorer uses. It is loaded once
// at startup and injected into the Engine; nothing mutates it afterwards,
// which keeps scoring reproducible and lets tests run alternate rule sets.
type Rules struct {
	// UV bucket awards (points for the matching SPF tier)
	UVLowSPF30  float64
	UVModSPF30  float64
	UVHighSPF50 float64
	UVVerySPF50 float64

	// Humidity bucket awards
	HumidityDryRichMoist  float64
	HumidityHumidLightGel float64

	// Temperature bucket awards
	TempHotSebumGel      float64
	TempColdBarrierCream float64

	// Skin-state awards/penalties (penalties are negative)
	SebumHighSebumGel   float64
	SebumHighHeavyOil   float64
	AcneHighBHAAzelaic  float64
	SensitiveSoothing   float64
	SensitiveStrongAcid float64
	SensitiveRetinol    float64

	// User bonuses
	PrefTextureBonus float64
	MatureAgeBonus   float64
	YouthSebumBonus  float64

	// Gating thresholds
	SebumLoadThreshold   float64
	AcneThreshold        float64
	SensitivityThreshold float64

	// Age brackets
	MatureAgeMin float64
	YouthAgeMax  float64
}

const (
	defaultUVLowSPF30  = 5
	defaultUVModSPF30  = 15
	defaultUVHighSPF50 = 30
	defaultUVVerySPF50 = 35

	defaultHumidityDryRichMoist  = 20
	defaultHumidityHumidLightGel = 20

	defaultTempHotSebumGel      = 15
	defaultTempColdBarrierCream = 15

	defaultSebumHighSebumGel   = 15
	defaultSebumHighHeavyOil   = -10
	defaultAcneHighBHAAzelaic  = 20
	defaultSensitiveSoothing   = 15
	defaultSensitiveStrongAcid = -20
	defaultSensitiveRetinol    = -20

	defaultPrefTextureBonus = 5
	defaultMatureAgeBonus   = 15
	defaultYouthSebumBonus  = 10

	defaultSebumLoadThreshold   = 60
	defaultAcneThreshold        = 60
	defaultSensitivityThreshold = 60

	defaultMatureAgeMin = 30
	defaultYouthAgeMax  = 24
)

func DefaultRules() Rules {
	return Rules{
		UVLowSPF30:  defaultUVLowSPF30,
		UVModSPF30:  defaultUVModSPF30,
		UVHighSPF50: defaultUVHighSPF50,
		UVVerySPF50: defaultUVVerySPF50,

		HumidityDryRichMoist:  defaultHumidityDryRichMoist,
		HumidityHumidLightGel: defaultHumidityHumidLightGel,

		TempHotSebumGel:      defaultTempHotSebumGel,
		TempColdBarrierCream: defaultTempColdBarrierCream,

		SebumHighSebumGel:   defaultSebumHighSebumGel,
		SebumHighHeavyOil:   defaultSebumHighHeavyOil,
		AcneHighBHAAzelaic:  defaultAcneHighBHAAzelaic,
		SensitiveSoothing:   defaultSensitiveSoothing,
		SensitiveStrongAcid: defaultSensitiveStrongAcid,
		SensitiveRetinol:    defaultSensitiveRetinol,

		PrefTextureBonus: defaultPrefTextureBonus,
		MatureAgeBonus:   defaultMatureAgeBonus,
		YouthSebumBonus:  defaultYouthSebumBonus,

		SebumLoadThreshold:   defaultSebumLoadThreshold,
		AcneThreshold:        defaultAcneThreshold,
		SensitivityThreshold: defaultSensitivityThreshold,

		MatureAgeMin: defaultMatureAgeMin,
		YouthAgeMax:  defaultYouthAgeMax,
	}
}
