package controllers

import (
	"errors"
	"net/http"

	"hotel-frontdesk/config"
	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetHotelSettings(c *gin.Context) {
	var setting models.HotelSetting
	if err := config.DB.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, models.HotelSetting{})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, setting)
}

func UpdateHotelSettings(c *gin.Context) {
	var payload models.HotelSetting
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	var setting models.HotelSetting
	err := config.DB.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := config.DB.Create(&payload).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, payload)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	payload.ID = setting.ID
	if err := config.DB.Model(&setting).Updates(&payload).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, setting)
}
