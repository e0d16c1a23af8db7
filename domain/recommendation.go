package domain

import (
	"time"

	"gorm.io/datatypes"
)

// RecommendationLog persists one advisor run for history and analytics.
type RecommendationLog struct {
	ID          uint64                            `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID   string                            `gorm:"column:request_id;type:text" json:"request_id"`
	UserID      uint                              `gorm:"column:user_id;index;not null" json:"user_id"`
	AnalysisID  uint64                            `gorm:"column:analysis_id" json:"analysis_id"`
	SkinAge     float64                           `gorm:"column:skin_age" json:"skin_age"`
	TopProducts datatypes.JSONSlice[DisplayEntry] `gorm:"column:top_products;type:jsonb" json:"top_products"`
	RoutineAM   datatypes.JSONSlice[string]       `gorm:"column:routine_am;type:jsonb" json:"routine_am"`
	RoutinePM   datatypes.JSONSlice[string]       `gorm:"column:routine_pm;type:jsonb" json:"routine_pm"`
	TroubleProb float64                           `gorm:"column:trouble_prob" json:"trouble_prob"`
	CreatedAt   time.Time                         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RecommendationLog) TableName() string {
	return "recommendation_log"
}

// HistoryEntry is one row of a user's past recommendations joined with the
// analysis scores that produced it.
type HistoryEntry struct {
	RecordID  uint64             `json:"record_id"`
	SkinAge   float64            `json:"skin_age"`
	TopNames  []string           `json:"top_names"`
	Date      time.Time          `json:"date"`
	ImagePath string             `json:"image_path,omitempty"`
	Scores    map[string]float64 `json:"scores"`
}
