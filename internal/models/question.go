package models

// Category holds the owning category's id as text, matching how the
// category-filtered listing compares it.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
	Category   string `gorm:"size:32;not null;index" json:"category"`
}
