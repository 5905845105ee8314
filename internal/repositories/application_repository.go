package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and user")
)

type ApplicationFilter struct {
	Status   models.ApplicationStatus
	JobID    string
	Page     int
	PageSize int
}

type ApplicationRepository interface {
	// Create relies on the composite (job_id, user_id) unique index; a second
	// application by the same user to the same job surfaces as
	// ErrDuplicateApplication straight from the insert.
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	Update(application *models.Application) error
	FindByJobIDs(jobIDs []string, criteria ApplicationFilter) ([]models.Application, int64, error)
	FindByUserID(userID string) ([]models.Application, error)
	CountByStatus() (map[string]int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").Preload("Job.Company").Preload("User").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) Update(application *models.Application) error {
	result := r.db.Model(application).Updates(map[string]interface{}{
		"status":         application.Status,
		"status_history": application.StatusHistory,
		"updated_at":     time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// FindByJobIDs constrains the query to the given job id set; an empty set
// short-circuits to an empty result instead of an unscoped scan.
func (r *ApplicationRepositoryImpl) FindByJobIDs(jobIDs []string, criteria ApplicationFilter) ([]models.Application, int64, error) {
	if len(jobIDs) == 0 {
		return []models.Application{}, 0, nil
	}

	query := r.db.Model(&models.Application{}).Where("job_id IN ?", jobIDs)

	if criteria.JobID != "" {
		query = query.Where("job_id = ?", criteria.JobID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page <= 0 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	var applications []models.Application
	err := query.Preload("Job").Preload("User").
		Order("created_at DESC, id DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&applications).Error

	return applications, total, err
}

func (r *ApplicationRepositoryImpl) FindByUserID(userID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) CountByStatus() (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err := r.db.Model(&models.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
