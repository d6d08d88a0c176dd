package dog_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/models/dog_models"
	"github.com/sagarikadotcom/canaan-pet-resort/utils"
)

type DogStore interface {
	GetDogByID(ctx context.Context, id uuid.UUID) (*dog_models.Dog, error)
	ListDogs(ctx context.Context) ([]dog_models.Dog, error)
}

type DogController struct {
	Dogs DogStore
}

func NewDogController(dogs DogStore) *DogController {
	return &DogController{Dogs: dogs}
}

func (dc *DogController) ListDogs(c *gin.Context) {
	logger.InfoLogger.Info("ListDogs controller called")

	dogs, err := dc.Dogs.ListDogs(c.Request.Context())
	if err != nil {
		utils.RespondError(c, utils.InternalError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"dogs": dogs})
}

func (dc *DogController) GetDog(c *gin.Context) {
	logger.InfoLogger.Info("GetDog controller called")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dog ID"})
		return
	}

	dog, err := dc.Dogs.GetDogByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, dog_models.ErrDogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dog not found!"})
			return
		}
		utils.RespondError(c, utils.InternalError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"dog": dog})
}
