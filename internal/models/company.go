package models

type Company struct {
	BaseModel
	UserID      string        `gorm:"not null;uniqueIndex" json:"user_id"`
	Name        string        `gorm:"not null" json:"name"`
	Status      CompanyStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Description string        `json:"description"`
	Website     string        `json:"website"`
	City        string        `json:"city"`

	Jobs []Job `gorm:"foreignKey:CompanyID" json:"jobs,omitempty"`
}
