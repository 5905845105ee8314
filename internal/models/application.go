package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Application links a jobseeker to a job. The composite unique index on
// (job_id, user_id) is the single enforcement point for "apply once":
// callers rely on the insert failing, not on a prior existence check.
type Application struct {
	BaseModel
	JobID         string            `gorm:"not null;index;uniqueIndex:idx_job_applicant" json:"job_id"`
	UserID        string            `gorm:"not null;index;uniqueIndex:idx_job_applicant" json:"user_id"`
	Status        ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverLetter   string            `json:"cover_letter"`
	StatusHistory datatypes.JSON    `gorm:"type:jsonb" json:"status_history"`

	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// StatusTransition is one entry of the append-only status history.
type StatusTransition struct {
	From      ApplicationStatus `json:"from"`
	To        ApplicationStatus `json:"to"`
	ChangedBy string            `json:"changed_by"`
	ChangedAt time.Time         `json:"changed_at"`
}

// AppendStatusTransition records a transition without overwriting earlier
// entries.
func (a *Application) AppendStatusTransition(to ApplicationStatus, changedBy string) error {
	var history []StatusTransition
	if len(a.StatusHistory) > 0 {
		if err := json.Unmarshal(a.StatusHistory, &history); err != nil {
			return err
		}
	}

	history = append(history, StatusTransition{
		From:      a.Status,
		To:        to,
		ChangedBy: changedBy,
		ChangedAt: time.Now().UTC(),
	})

	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}

	a.Status = to
	a.StatusHistory = raw
	return nil
}

// Transitions decodes the stored status history.
func (a *Application) Transitions() ([]StatusTransition, error) {
	if len(a.StatusHistory) == 0 {
		return nil, nil
	}
	var history []StatusTransition
	if err := json.Unmarshal(a.StatusHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}
