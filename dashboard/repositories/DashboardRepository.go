package repositories

import (
	"time"

	"personal-crm-backend/db/models"

	"gorm.io/gorm"
)

// DashboardStats is the aggregate snapshot served at /api/dashboard/stats.
type DashboardStats struct {
	TotalContacts      int64                `json:"totalContacts"`
	TotalInteractions  int64                `json:"totalInteractions"`
	TotalNotes         int64                `json:"totalNotes"`
	UpcomingReminders  int64                `json:"upcomingReminders"`
	OverdueReminders   int64                `json:"overdueReminders"`
	InteractionsByType map[string]int64     `json:"interactionsByType"`
	RecentContacts     []models.Contact     `json:"recentContacts"`
	RecentInteractions []models.Interaction `json:"recentInteractions"`
}

type DashboardRepository interface {
	GetStats() (*DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		InteractionsByType: make(map[string]int64),
	}
	now := time.Now()

	if err := r.db.Model(&models.Contact{}).Count(&stats.TotalContacts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Interaction{}).Count(&stats.TotalInteractions).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Note{}).Count(&stats.TotalNotes).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Reminder{}).
		Where("is_completed = ? AND due_date >= ?", false, now).
		Count(&stats.UpcomingReminders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Reminder{}).
		Where("is_completed = ? AND due_date < ?", false, now).
		Count(&stats.OverdueReminders).Error; err != nil {
		return nil, err
	}

	var typeCounts []struct {
		Type  string
		Count int64
	}
	if err := r.db.Model(&models.Interaction{}).
		Select("type, COUNT(*) as count").
		Group("type").
		Scan(&typeCounts).Error; err != nil {
		return nil, err
	}
	for _, tc := range typeCounts {
		stats.InteractionsByType[tc.Type] = tc.Count
	}

	if err := r.db.Order("created_at DESC").Limit(5).
		Find(&stats.RecentContacts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Preload("Contact").Order("date DESC").Limit(5).
		Find(&stats.RecentInteractions).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
