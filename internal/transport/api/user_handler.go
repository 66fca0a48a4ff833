package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-market/internal/domain"
)

type UserHandler struct {
	userService UserServicer
}

func NewUserHandler(userService UserServicer) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// Balance GET RouteGroup + BalanceRoute. Текущий баланс юзера.
func (h *UserHandler) Balance(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.GetByID(ctx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{Balance: user.Balance.InexactFloat64()})
}

// ClaimDailyReward POST RouteGroup + DailyRewardRoute. Начисляет ежедневную награду.
// Если кулдаун еще не прошел, вернется 409.
func (h *UserHandler) ClaimDailyReward(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.ClaimDailyReward(ctx, currentUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRewardNotReady):
			_ = c.AbortWithError(http.StatusConflict, domain.ErrRewardNotReady).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{Balance: user.Balance.InexactFloat64()})
}
