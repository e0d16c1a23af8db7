package domain

import "time"

// AnalysisLog is one vision-analysis result: per-metric scores in [0,100]
// as produced by the upstream analyzer. The advisor only ever reads these
// as already-computed floats.
type AnalysisLog struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"column:user_id;index" json:"user_id"`
	Acne         float64   `gorm:"column:acne" json:"acne"`
	Wrinkles     float64   `gorm:"column:wrinkles" json:"wrinkles"`
	Pores        float64   `gorm:"column:pores" json:"pores"`
	Pigmentation float64   `gorm:"column:pigmentation" json:"pigmentation"`
	Redness      float64   `gorm:"column:redness" json:"redness"`
	Moisture     float64   `gorm:"column:moisture" json:"moisture"`
	Sebum        float64   `gorm:"column:sebum" json:"sebum"`
	Tone         float64   `gorm:"column:tone;default:50" json:"tone"`
	ImagePath    string    `gorm:"column:image_path;type:text" json:"image_path,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AnalysisLog) TableName() string {
	return "analysis_log"
}

// CameraScores converts a stored analysis row into the advisor's camera
// mapping (keyed by the advisor's metric names).
func (a AnalysisLog) CameraScores() map[string]float64 {
	return map[string]float64{
		"acne":         a.Acne,
		"wrinkle":      a.Wrinkles,
		"pore":         a.Pores,
		"pigmentation": a.Pigmentation,
		"redness":      a.Redness,
		"moisture":     a.Moisture,
		"sebum":        a.Sebum,
		"tone":         a.Tone,
	}
}
