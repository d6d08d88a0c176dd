package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sagarikadotcom/canaan-pet-resort/controllers/boarding_controller"
)

func RegisterBoardingRoutes(r *gin.Engine, bc *boarding_controller.BoardingController, authMW, writeLimit gin.HandlerFunc) {
	group := r.Group("/boardings")
	group.Use(authMW)
	{
		group.GET("", bc.GetBoardingUpdates)
		group.POST("/check-in", writeLimit, bc.ConfirmCheckIn)
	}
}
