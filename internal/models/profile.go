package models

import "gorm.io/datatypes"

// JobseekerProfile is one-to-one with a jobseeker User. Skills, education and
// experience are stored as JSONB sub-records, same shape the client submits.
type JobseekerProfile struct {
	BaseModel
	UserID     string         `gorm:"not null;uniqueIndex" json:"user_id"`
	Headline   string         `json:"headline"`
	City       string         `json:"city"`
	Phone      string         `json:"phone"`
	Skills     datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Education  datatypes.JSON `gorm:"type:jsonb" json:"education"`
	Experience datatypes.JSON `gorm:"type:jsonb" json:"experience"`
}
