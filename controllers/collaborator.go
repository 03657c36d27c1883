// controllers/collaborator.go
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

// CreateCollaboratorInput defines the expected JSON structure for creating a collaborator
type CreateCollaboratorInput struct {
	Name                string   `json:"name" binding:"required"`
	Role                string   `json:"role" binding:"required"`
	Notes               string   `json:"notes"`
	AllowedProcedureIDs []string `json:"allowedProcedureIds"`
	Active              *bool    `json:"active"`
}

// UpdateCollaboratorInput defines the expected JSON structure for updating a collaborator
type UpdateCollaboratorInput struct {
	Name                *string   `json:"name"`
	Role                *string   `json:"role"`
	Notes               *string   `json:"notes"`
	AllowedProcedureIDs *[]string `json:"allowedProcedureIds"`
	Active              *bool     `json:"active"`
}

// CreateCollaborator creates a new collaborator
func CreateCollaborator(c *gin.Context) {
	var input CreateCollaboratorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidRole(input.Role) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid role")
		return
	}

	collab := models.Collaborator{
		Name:                input.Name,
		Role:                input.Role,
		Notes:               input.Notes,
		AllowedProcedureIDs: models.StringList(input.AllowedProcedureIDs),
		IsActive:            true,
	}
	if collab.AllowedProcedureIDs == nil {
		collab.AllowedProcedureIDs = models.StringList{}
	}
	if input.Active != nil {
		collab.IsActive = *input.Active
	}

	if err := config.DB.Create(&collab).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create collaborator")
		return
	}

	c.JSON(http.StatusCreated, collab)
}

// GetCollaborators retrieves all collaborators
func GetCollaborators(c *gin.Context) {
	var collabs []models.Collaborator
	if err := config.DB.Order("name").Find(&collabs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve collaborators")
		return
	}

	c.JSON(http.StatusOK, collabs)
}

// GetCollaborator retrieves a specific collaborator by ID
func GetCollaborator(c *gin.Context) {
	collabUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid collaborator ID format")
		return
	}

	var collab models.Collaborator
	if err := config.DB.First(&collab, "id = ?", collabUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Collaborator not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, collab)
}

// UpdateCollaborator updates an existing collaborator
func UpdateCollaborator(c *gin.Context) {
	collabUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid collaborator ID format")
		return
	}

	var input UpdateCollaboratorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var collab models.Collaborator
	if err := config.DB.First(&collab, "id = ?", collabUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Collaborator not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		collab.Name = *input.Name
	}
	if input.Role != nil {
		if !models.ValidRole(*input.Role) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid role")
			return
		}
		collab.Role = *input.Role
	}
	if input.Notes != nil {
		collab.Notes = *input.Notes
	}
	if input.AllowedProcedureIDs != nil {
		collab.AllowedProcedureIDs = models.StringList(*input.AllowedProcedureIDs)
	}
	if input.Active != nil {
		collab.IsActive = *input.Active
	}

	if err := config.DB.Save(&collab).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update collaborator")
		return
	}

	c.JSON(http.StatusOK, collab)
}

// DeleteCollaborator soft deletes a collaborator
func DeleteCollaborator(c *gin.Context) {
	collabUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid collaborator ID format")
		return
	}

	result := config.DB.Where("id = ?", collabUUID).Delete(&models.Collaborator{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete collaborator")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Collaborator not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Collaborator deleted successfully"})
}
