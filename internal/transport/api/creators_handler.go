package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-market/internal/domain"
)

type CreatorsHandler struct {
	nftService NFTServicer
}

func NewCreatorsHandler(nftService NFTServicer) *CreatorsHandler {
	return &CreatorsHandler{
		nftService: nftService,
	}
}

type TopCreatorResponse struct {
	UserID         int64  `json:"userID"`
	Fullname       string `json:"fullname"`
	ProfilePicture string `json:"profilePicture"`
	NFTCount       int64  `json:"nftCount"`
}

// Top GET RouteGroup + TopCreatorsRoute. Топ авторов по числу созданных NFT за период.
// Период задается query-параметром period (24h, 7d или 30d), по умолчанию 24h.
func (h *CreatorsHandler) Top(c *gin.Context) {
	period := domain.CreatorsPeriodType(c.DefaultQuery("period", string(domain.CreatorsPeriod24H)))

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	creators, err := h.nftService.TopCreators(ctx, period)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown period"})
		return
	}

	response := make([]TopCreatorResponse, len(creators))
	for i, creator := range creators {
		response[i] = TopCreatorResponse{
			UserID:         creator.CreatorID,
			Fullname:       creator.Fullname,
			ProfilePicture: creator.ProfilePicture,
			NFTCount:       creator.NFTCount,
		}
	}
	c.JSON(http.StatusOK, response)
}
