// controllers/profile.go
package controllers

import (
	"net/http"

	"salonmanager-app/config"
	"salonmanager-app/models"
	"salonmanager-app/utils"

	"github.com/gin-gonic/gin"
)

type UpdateSalonInput struct {
	Name      *string `json:"name"`
	SalonName *string `json:"salonName"`
}

type UpdateThemeInput struct {
	Theme string `json:"theme" binding:"required"`
}

// GetProfile returns the authenticated user's profile and settings.
func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateSalonProfile updates the salon display data.
func UpdateSalonProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input UpdateSalonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.SalonName != nil {
		user.SalonName = *input.SalonName
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateTheme persists the UI theme preference ("light" or "dark") so it
// follows the user across browsers instead of living in local storage.
func UpdateTheme(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input UpdateThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Theme != "light" && input.Theme != "dark" {
		utils.RespondWithError(c, http.StatusBadRequest, "Theme must be light or dark")
		return
	}

	user.Theme = input.Theme
	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update theme")
		return
	}

	c.JSON(http.StatusOK, user)
}

func currentUser(c *gin.Context) (models.User, bool) {
	var user models.User

	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return user, false
	}

	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return user, false
	}
	return user, true
}
