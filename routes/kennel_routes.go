package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sagarikadotcom/canaan-pet-resort/controllers/kennel_controller"
)

func RegisterKennelRoutes(r *gin.Engine, kc *kennel_controller.KennelController, authMW gin.HandlerFunc) {
	group := r.Group("/kennels")
	group.Use(authMW)
	{
		group.GET("", kc.ListKennels)
		group.GET("/:id", kc.GetKennel)
		group.GET("/:id/sub-kennels", kc.SubKennelOptions)
	}
}
