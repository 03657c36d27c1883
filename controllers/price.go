// controllers/price.go
package controllers

import (
	"errors"
	"net/http"

	"salonmanager-app/config"
	"salonmanager-app/models"
	"salonmanager-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreatePriceInput struct {
	ProcedureID     string          `json:"procedureId" binding:"required"`
	ValueDone       decimal.Decimal `json:"valueDone"`
	ValueNotDone    decimal.Decimal `json:"valueNotDone"`
	ValueAdditional decimal.Decimal `json:"valueAdditional"`
	Active          *bool           `json:"active"`
}

type UpdatePriceInput struct {
	ValueDone       *decimal.Decimal `json:"valueDone"`
	ValueNotDone    *decimal.Decimal `json:"valueNotDone"`
	ValueAdditional *decimal.Decimal `json:"valueAdditional"`
	Active          *bool            `json:"active"`
}

func validAmounts(amounts ...decimal.Decimal) bool {
	for _, a := range amounts {
		if a.IsNegative() {
			return false
		}
	}
	return true
}

// CreatePrice creates a price configuration for a procedure. Only one active
// configuration per procedure is meaningful, so any previous active config
// for the same procedure is deactivated in the same transaction.
func CreatePrice(c *gin.Context) {
	var input CreatePriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	procUUID, err := uuid.Parse(input.ProcedureID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid procedure ID format")
		return
	}

	if !validAmounts(input.ValueDone, input.ValueNotDone, input.ValueAdditional) {
		utils.RespondWithError(c, http.StatusBadRequest, "Amounts must be non-negative")
		return
	}

	price := models.PriceConfig{
		ProcedureID:     procUUID,
		ValueDone:       input.ValueDone.Round(2),
		ValueNotDone:    input.ValueNotDone.Round(2),
		ValueAdditional: input.ValueAdditional.Round(2),
		IsActive:        true,
	}
	if input.Active != nil {
		price.IsActive = *input.Active
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if price.IsActive {
			if err := tx.Model(&models.PriceConfig{}).
				Where("procedure_id = ? AND is_active = true", procUUID).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&price).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create price configuration")
		return
	}

	c.JSON(http.StatusCreated, price)
}

// GetPrices retrieves all price configurations
func GetPrices(c *gin.Context) {
	var prices []models.PriceConfig
	if err := config.DB.Find(&prices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve price configurations")
		return
	}

	c.JSON(http.StatusOK, prices)
}

// UpdatePrice updates an existing price configuration. Records already
// created keep their frozen calculated value.
func UpdatePrice(c *gin.Context) {
	priceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price ID format")
		return
	}

	var input UpdatePriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var price models.PriceConfig
	if err := config.DB.First(&price, "id = ?", priceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Price configuration not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ValueDone != nil {
		if input.ValueDone.IsNegative() {
			utils.RespondWithError(c, http.StatusBadRequest, "Amounts must be non-negative")
			return
		}
		price.ValueDone = input.ValueDone.Round(2)
	}
	if input.ValueNotDone != nil {
		if input.ValueNotDone.IsNegative() {
			utils.RespondWithError(c, http.StatusBadRequest, "Amounts must be non-negative")
			return
		}
		price.ValueNotDone = input.ValueNotDone.Round(2)
	}
	if input.ValueAdditional != nil {
		if input.ValueAdditional.IsNegative() {
			utils.RespondWithError(c, http.StatusBadRequest, "Amounts must be non-negative")
			return
		}
		price.ValueAdditional = input.ValueAdditional.Round(2)
	}
	if input.Active != nil {
		price.IsActive = *input.Active
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if price.IsActive {
			if err := tx.Model(&models.PriceConfig{}).
				Where("procedure_id = ? AND is_active = true AND id <> ?", price.ProcedureID, price.ID).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(&price).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update price configuration")
		return
	}

	c.JSON(http.StatusOK, price)
}

// DeletePrice soft deletes a price configuration
func DeletePrice(c *gin.Context) {
	priceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price ID format")
		return
	}

	result := config.DB.Where("id = ?", priceUUID).Delete(&models.PriceConfig{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete price configuration")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Price configuration not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Price configuration deleted successfully"})
}
