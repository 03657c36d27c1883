// services/closing_service.go
package services

import (
	"log"
	"time"

	"salonmanager-app/models"
	"salonmanager-app/pricing"
	"salonmanager-app/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ClosingService logs an end-of-day summary of the day's activity: how many
// services were recorded, how many performed, and the day's revenue.
type ClosingService struct {
	db *gorm.DB
}

func NewClosingService(db *gorm.DB) *ClosingService {
	return &ClosingService{db: db}
}

func (s *ClosingService) StartScheduler() {
	c := cron.New()

	// Run every day at 23:55
	c.AddFunc("55 23 * * *", func() {
		s.LogDailyClosing(utils.FormatDay(time.Now()))
	})

	c.Start()
	log.Println("Daily closing scheduler started")
}

// LogDailyClosing summarizes the records of one calendar day.
func (s *ClosingService) LogDailyClosing(day string) {
	var records []models.ServiceRecord
	if err := s.db.Where("date = ?", day).Find(&records).Error; err != nil {
		log.Printf("Closing %s: failed to fetch records: %v", day, err)
		return
	}

	summary := pricing.Summarize(records)

	var users []models.User
	if err := s.db.Find(&users, "is_active = ?", true).Error; err != nil {
		log.Printf("Closing %s: failed to fetch salon accounts: %v", day, err)
	}
	salonName := ""
	if len(users) > 0 {
		salonName = users[0].SalonName
	}

	log.Printf("Closing %s (%s): %d records, %d done / %d not done, revenue %s, lost %s",
		day,
		salonName,
		summary.TotalCount,
		summary.DoneCount,
		summary.NotDoneCount,
		summary.TotalRevenue.StringFixed(2),
		summary.LostRevenue.StringFixed(2))
}
