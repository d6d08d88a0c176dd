package boarding_controller

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/models/booking_models"
	"github.com/sagarikadotcom/canaan-pet-resort/services/boarding_service"
	"github.com/sagarikadotcom/canaan-pet-resort/services/kennel_service"
	"github.com/sagarikadotcom/canaan-pet-resort/utils"
)

type BoardingBoard interface {
	GetBoardingUpdates(ctx context.Context, q boarding_service.BoardingQuery) (*boarding_service.BoardingUpdates, error)
}

type CheckInConfirmer interface {
	ConfirmCheckIn(ctx context.Context, req kennel_service.CheckInRequest) (*booking_models.Booking, error)
}

// BoardingController serves the boarding-updates board and the check-in flow.
type BoardingController struct {
	Board    BoardingBoard
	CheckIns CheckInConfirmer
}

func NewBoardingController(board BoardingBoard, checkIns CheckInConfirmer) *BoardingController {
	return &BoardingController{Board: board, CheckIns: checkIns}
}

// GetBoardingUpdates serves GET /boardings?month=&q=&tz=.
func (bc *BoardingController) GetBoardingUpdates(c *gin.Context) {
	logger.InfoLogger.Info("GetBoardingUpdates controller called")

	var q boarding_service.BoardingQuery
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
			return
		}
		q.Month = &month
	}
	if tz := strings.TrimSpace(c.Query("tz")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timezone"})
			return
		}
		q.Location = loc
	}
	q.Search = c.Query("q")

	updates, err := bc.Board.GetBoardingUpdates(c.Request.Context(), q)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}

func (bc *BoardingController) ConfirmCheckIn(c *gin.Context) {
	logger.InfoLogger.Info("ConfirmCheckIn controller called")

	var req kennel_service.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnLogger.Warnf("Invalid check-in body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	booking, err := bc.CheckIns.ConfirmCheckIn(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Check-in confirmed",
		"booking": booking,
	})
}
