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
)

// RecentEntry is one row of the dashboard's latest-records panel, with
// collaborator and procedure references already resolved to names.
type RecentEntry struct {
	ID               uuid.UUID `json:"id"`
	Date             string    `json:"date"`
	CollaboratorName string    `json:"collaboratorName"`
	ProcedureName    string    `json:"procedureName"`
	Status           string    `json:"status"`
	CalculatedValue  string    `json:"calculatedValue"`
}

// GetDashboardOverview serves the month overview: KPI bundle, revenue
// ranking by collaborator, most performed procedures and the latest entries.
// Defaults to the current month when no month is given.
func GetDashboardOverview(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if !utils.ValidMonth(month) {
		utils.RespondWithError(c, http.StatusBadRequest, "month must be YYYY-MM")
		return
	}

	var records []models.ServiceRecord
	if err := config.DB.Order("created_at desc").Find(&records).Error; err != nil {
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

	monthRecords := pricing.FilterByPeriod(records, pricing.Period{
		Mode:  pricing.PeriodMonth,
		Value: month,
	})

	summary := pricing.Summarize(monthRecords)

	activeCollabs := 0
	for _, collab := range collabs {
		if collab.IsActive {
			activeCollabs++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"month":               month,
		"summary":             summary,
		"activeCollaborators": activeCollabs,
		"revenueRanking":      pricing.RevenueByCollaborator(monthRecords, collabs, -1),
		"topProcedures":       pricing.VolumeByProcedure(monthRecords, procs, 5),
		"recentRecords":       recentEntries(records, collabs, procs, 8),
	})
}

func recentEntries(records []models.ServiceRecord, collabs []models.Collaborator, procs []models.Procedure, limit int) []RecentEntry {
	collabNames := make(map[uuid.UUID]string, len(collabs))
	for _, collab := range collabs {
		collabNames[collab.ID] = collab.Name
	}
	procNames := make(map[uuid.UUID]string, len(procs))
	for _, proc := range procs {
		procNames[proc.ID] = proc.Name
	}

	entries := make([]RecentEntry, 0, limit)
	for _, r := range records {
		if len(entries) >= limit {
			break
		}
		collabName, ok := collabNames[r.CollaboratorID]
		if !ok {
			collabName = pricing.UnknownLabel
		}
		procName, ok := procNames[r.ProcedureID]
		if !ok {
			procName = pricing.UnknownLabel
		}
		entries = append(entries, RecentEntry{
			ID:               r.ID,
			Date:             r.Date,
			CollaboratorName: collabName,
			ProcedureName:    procName,
			Status:           r.Status,
			CalculatedValue:  r.CalculatedValue.StringFixed(2),
		})
	}
	return entries
}
