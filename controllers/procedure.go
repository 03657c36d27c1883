// controllers/procedure.go
package controllers

import (
	"errors"
	"net/http"

	"salonmanager-app/config"
	"salonmanager-app/models"
	"salonmanager-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateProcedureInput struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Active   *bool  `json:"active"`
}

type UpdateProcedureInput struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Active   *bool   `json:"active"`
}

// CreateProcedure creates a new procedure
func CreateProcedure(c *gin.Context) {
	var input CreateProcedureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidCategory(input.Category) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category")
		return
	}

	proc := models.Procedure{
		Name:     input.Name,
		Category: input.Category,
		IsActive: true,
	}
	if input.Active != nil {
		proc.IsActive = *input.Active
	}

	if err := config.DB.Create(&proc).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create procedure")
		return
	}

	c.JSON(http.StatusCreated, proc)
}

// GetProcedures retrieves all procedures
func GetProcedures(c *gin.Context) {
	var procs []models.Procedure
	if err := config.DB.Order("name").Find(&procs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve procedures")
		return
	}

	c.JSON(http.StatusOK, procs)
}

// UpdateProcedure updates an existing procedure
func UpdateProcedure(c *gin.Context) {
	procUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid procedure ID format")
		return
	}

	var input UpdateProcedureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var proc models.Procedure
	if err := config.DB.First(&proc, "id = ?", procUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Procedure not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		proc.Name = *input.Name
	}
	if input.Category != nil {
		if !models.ValidCategory(*input.Category) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid category")
			return
		}
		proc.Category = *input.Category
	}
	if input.Active != nil {
		proc.IsActive = *input.Active
	}

	if err := config.DB.Save(&proc).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update procedure")
		return
	}

	c.JSON(http.StatusOK, proc)
}

// DeleteProcedure soft deletes a procedure. Historical records keep their
// reference; reads resolve it to a placeholder label.
func DeleteProcedure(c *gin.Context) {
	procUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid procedure ID format")
		return
	}

	result := config.DB.Where("id = ?", procUUID).Delete(&models.Procedure{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete procedure")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Procedure not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Procedure deleted successfully"})
}
