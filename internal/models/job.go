package models

type Job struct {
	BaseModel
	CompanyID   string    `gorm:"not null;index" json:"company_id"`
	Title       string    `gorm:"not null" json:"title"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Status      JobStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	ApplyMethod string    `json:"apply_method"`

	Company      *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}
