// controllers/record.go
package controllers

import (
	"errors"
	"net/http"

	"salonmanager-app/config"
	"salonmanager-app/models"
	"salonmanager-app/pricing"
	"salonmanager-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateRecordInput defines the expected JSON structure for creating a
// service record. The calculated value is not accepted from the client; it
// is derived here and frozen on the record.
type CreateRecordInput struct {
	Date           string   `json:"date" binding:"required"`
	CollaboratorID string   `json:"collaboratorId" binding:"required"`
	ProcedureID    string   `json:"procedureId" binding:"required"`
	Status         string   `json:"status" binding:"required"`
	Notes          string   `json:"notes"`
	Extras         []string `json:"extras"`
}

// CreateRecord creates an immutable service record, valuing it from the
// procedure's current price configuration at this moment. Later price
// changes never alter the stored value.
func CreateRecord(c *gin.Context) {
	var input CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidDay(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	if !models.ValidStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}
	for _, extra := range input.Extras {
		if !models.ValidExtra(extra) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown extra: "+extra)
			return
		}
	}

	collabUUID, err := uuid.Parse(input.CollaboratorID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid collaborator ID format")
		return
	}
	procUUID, err := uuid.Parse(input.ProcedureID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid procedure ID format")
		return
	}

	var collab models.Collaborator
	if err := config.DB.First(&collab, "id = ?", collabUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Collaborator not found")
		return
	}
	if len(collab.AllowedProcedureIDs) > 0 && !collab.AllowedProcedureIDs.Contains(procUUID.String()) {
		utils.RespondWithError(c, http.StatusBadRequest, "Collaborator is not allowed to perform this procedure")
		return
	}

	var prices []models.PriceConfig
	if err := config.DB.Where("procedure_id = ?", procUUID).Find(&prices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve price configurations")
		return
	}

	priceConfig, found := pricing.ResolvePrice(prices, procUUID)
	value := pricing.ComputeValue(priceConfig, found, input.Status, input.Extras)

	record := models.ServiceRecord{
		Date:            input.Date,
		CollaboratorID:  collabUUID,
		ProcedureID:     procUUID,
		Status:          input.Status,
		Notes:           input.Notes,
		Extras:          models.StringList(input.Extras),
		CalculatedValue: value,
	}
	if record.Extras == nil {
		record.Extras = models.StringList{}
	}

	if err := config.DB.Create(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetRecords retrieves service records, optionally scoped by period
// (month=YYYY-MM, day=YYYY-MM-DD or start=&end=) and by collaborator.
func GetRecords(c *gin.Context) {
	var records []models.ServiceRecord
	if err := config.DB.Order("date, created_at").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve records")
		return
	}

	period, ok, err := periodFromQuery(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if ok {
		records = pricing.FilterByPeriod(records, period)
	} else if period.CollaboratorID != uuid.Nil {
		filtered := records[:0]
		for _, r := range records {
			if r.CollaboratorID == period.CollaboratorID {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	c.JSON(http.StatusOK, records)
}

// DeleteRecord removes a service record. Records are immutable otherwise.
func DeleteRecord(c *gin.Context) {
	recordUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid record ID format")
		return
	}

	result := config.DB.Where("id = ?", recordUUID).Delete(&models.ServiceRecord{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete record")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Record not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

// periodFromQuery builds a pricing.Period from the request's query string.
// The boolean reports whether any period mode was requested; a collaborator
// filter may be present either way.
func periodFromQuery(c *gin.Context) (pricing.Period, bool, error) {
	var period pricing.Period

	if collabID := c.Query("collaboratorId"); collabID != "" {
		id, err := uuid.Parse(collabID)
		if err != nil {
			return period, false, errInvalidCollaboratorID
		}
		period.CollaboratorID = id
	}

	switch {
	case c.Query("month") != "":
		month := c.Query("month")
		if !utils.ValidMonth(month) {
			return period, false, errInvalidMonth
		}
		period.Mode = pricing.PeriodMonth
		period.Value = month
	case c.Query("day") != "":
		day := c.Query("day")
		if !utils.ValidDay(day) {
			return period, false, errInvalidDay
		}
		period.Mode = pricing.PeriodDay
		period.Value = day
	case c.Query("start") != "" || c.Query("end") != "":
		start, end := c.Query("start"), c.Query("end")
		if !utils.ValidDay(start) || !utils.ValidDay(end) {
			return period, false, errInvalidRange
		}
		period.Mode = pricing.PeriodRange
		period.Start = start
		period.End = end
	default:
		return period, false, nil
	}

	return period, true, nil
}

var (
	errInvalidCollaboratorID = errors.New("invalid collaboratorId format")
	errInvalidMonth          = errors.New("month must be YYYY-MM")
	errInvalidDay            = errors.New("day must be YYYY-MM-DD")
	errInvalidRange          = errors.New("start and end must both be YYYY-MM-DD")
)
