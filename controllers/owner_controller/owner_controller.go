package owner_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/models/owner_models"
	"github.com/sagarikadotcom/canaan-pet-resort/utils"
)

type OwnerStore interface {
	GetOwnerByID(ctx context.Context, id uuid.UUID) (*owner_models.Owner, error)
	ListOwners(ctx context.Context) ([]owner_models.Owner, error)
}

type OwnerController struct {
	Owners OwnerStore
}

func NewOwnerController(owners OwnerStore) *OwnerController {
	return &OwnerController{Owners: owners}
}

func (oc *OwnerController) ListOwners(c *gin.Context) {
	logger.InfoLogger.Info("ListOwners controller called")

	owners, err := oc.Owners.ListOwners(c.Request.Context())
	if err != nil {
		utils.RespondError(c, utils.InternalError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"owners": owners})
}

func (oc *OwnerController) GetOwner(c *gin.Context) {
	logger.InfoLogger.Info("GetOwner controller called")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid owner ID"})
		return
	}

	owner, err := oc.Owners.GetOwnerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, owner_models.ErrOwnerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Owner not found!"})
			return
		}
		utils.RespondError(c, utils.InternalError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"owner": owner})
}
