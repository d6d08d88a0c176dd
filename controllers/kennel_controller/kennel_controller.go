package kennel_controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/models/kennel_models"
	"github.com/sagarikadotcom/canaan-pet-resort/utils"
)

type KennelDirectory interface {
	ListKennels(ctx context.Context) ([]kennel_models.Kennel, error)
	GetKennel(ctx context.Context, rawID string) (*kennel_models.Kennel, error)
	SubKennelOptions(ctx context.Context, rawKennelID string) ([]kennel_models.SubKennel, error)
}

type KennelController struct {
	Kennels KennelDirectory
}

func NewKennelController(kennels KennelDirectory) *KennelController {
	return &KennelController{Kennels: kennels}
}

func (kc *KennelController) ListKennels(c *gin.Context) {
	logger.InfoLogger.Info("ListKennels controller called")

	kennels, err := kc.Kennels.ListKennels(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"kennels": kennels})
}

func (kc *KennelController) GetKennel(c *gin.Context) {
	logger.InfoLogger.Info("GetKennel controller called")

	kennel, err := kc.Kennels.GetKennel(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"kennel": kennel})
}

// SubKennelOptions lists the sub-kennels selectable once a kennel is chosen.
func (kc *KennelController) SubKennelOptions(c *gin.Context) {
	logger.InfoLogger.Info("SubKennelOptions controller called")

	subs, err := kc.Kennels.SubKennelOptions(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subKennels": subs})
}
