// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"salonmanager-app/config"
	"salonmanager-app/models"
	"salonmanager-app/pricing"
	"salonmanager-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportController handles the day-grouped report and the analysis view.
type ReportController struct{}

// TimelinePoint is one day of the revenue timeline chart. Days without
// revenue are present with a zero value so the chart axis has no gaps.
type TimelinePoint struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// GetReport serves the per-collaborator report grouped by day: each day's
// records, the day total across both statuses, and Done/NotDone counts.
// Scoped by month=YYYY-MM or day=YYYY-MM-DD.
func (rc *ReportController) GetReport(c *gin.Context) {
	collabID := c.Query("collaboratorId")
	if collabID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "collaboratorId is required")
		return
	}
	collabUUID, err := uuid.Parse(collabID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid collaboratorId format")
		return
	}

	period, ok, err := periodFromQuery(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !ok || period.Mode == pricing.PeriodRange {
		utils.RespondWithError(c, http.StatusBadRequest, "month or day filter is required")
		return
	}
	period.CollaboratorID = collabUUID

	var collab models.Collaborator
	if err := config.DB.First(&collab, "id = ?", collabUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Collaborator not found")
		return
	}

	var records []models.ServiceRecord
	if err := config.DB.Order("date, created_at").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	filtered := pricing.FilterByPeriod(records, period)
	groups := pricing.GroupByDay(filtered)

	c.JSON(http.StatusOK, gin.H{
		"collaborator": gin.H{
			"id":   collab.ID,
			"name": collab.Name,
			"role": collab.Role,
		},
		"period":  gin.H{"mode": period.Mode, "value": period.Value},
		"groups":  groups,
		"summary": pricing.Summarize(filtered),
	})
}

// GetAnalysis serves the range analysis: KPI bundle, gap-free daily revenue
// timeline and the top-5 rankings. Defaults to the current calendar month.
func (rc *ReportController) GetAnalysis(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" && end == "" {
		now := time.Now()
		first := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		start = utils.FormatDay(first)
		end = utils.FormatDay(last)
	}
	if !utils.ValidDay(start) || !utils.ValidDay(end) {
		utils.RespondWithError(c, http.StatusBadRequest, "start and end must both be YYYY-MM-DD")
		return
	}

	var records []models.ServiceRecord
	if err := config.DB.Order("date, created_at").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	var collabs []models.Collaborator
	if err := config.DB.Find(&collabs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve collaborators")
		return
	}

	var procs []models.Procedure
	if err := config.DB.Find(&procs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve procedures")
		return
	}

	period := pricing.Period{Mode: pricing.PeriodRange, Start: start, End: end}
	if collabID := c.Query("collaboratorId"); collabID != "" {
		id, err := uuid.Parse(collabID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid collaboratorId format")
			return
		}
		period.CollaboratorID = id
	}

	filtered := pricing.FilterByPeriod(records, period)

	// The timeline charts revenue, so only performed records feed it; the
	// seeded range keeps zero-revenue days on the axis.
	done := make([]models.ServiceRecord, 0, len(filtered))
	for _, r := range filtered {
		if r.Status == models.StatusDone {
			done = append(done, r)
		}
	}
	timeline := make([]TimelinePoint, 0)
	for _, g := range pricing.GroupByDayRange(done, start, end) {
		timeline = append(timeline, TimelinePoint{Date: g.Date, Value: g.Total})
	}

	c.JSON(http.StatusOK, gin.H{
		"period":           gin.H{"start": start, "end": end},
		"summary":          pricing.Summarize(filtered),
		"dailyRevenue":     timeline,
		"collabRanking":    pricing.RevenueByCollaborator(filtered, collabs, 5),
		"procedureRanking": pricing.VolumeByProcedure(filtered, procs, 5),
	})
}
