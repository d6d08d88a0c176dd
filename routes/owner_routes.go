package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sagarikadotcom/canaan-pet-resort/controllers/dog_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/owner_controller"
)

// RegisterOwnerRoutes mounts the read-only owner and dog listings.
func RegisterOwnerRoutes(r *gin.Engine, oc *owner_controller.OwnerController, dc *dog_controller.DogController, authMW gin.HandlerFunc) {
	owners := r.Group("/owners")
	owners.Use(authMW)
	{
		owners.GET("", oc.ListOwners)
		owners.GET("/:id", oc.GetOwner)
	}

	dogs := r.Group("/dogs")
	dogs.Use(authMW)
	{
		dogs.GET("", dc.ListDogs)
		dogs.GET("/:id", dc.GetDog)
	}
}
