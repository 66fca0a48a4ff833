package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
)

type NFTsHandler struct {
	nftService      NFTServicer
	transferService TransferServicer
}

func NewNFTsHandler(nftService NFTServicer, transferService TransferServicer) *NFTsHandler {
	return &NFTsHandler{
		nftService:      nftService,
		transferService: transferService,
	}
}

type NFTResponse struct {
	ID          int64     `json:"ID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Royalty     float64   `json:"royalty"`
	CreatorID   int64     `json:"creatorID"`
	OwnerID     int64     `json:"ownerID"`
	Listed      bool      `json:"listed"`
	LikesCount  int64     `json:"likesCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newNFTResponse(nft *domain.NFT) NFTResponse {
	return NFTResponse{
		ID:          nft.ID,
		Name:        nft.Name,
		Description: nft.Description,
		Price:       nft.Price.InexactFloat64(),
		Image:       nft.Image,
		Royalty:     nft.Royalty.InexactFloat64(),
		CreatorID:   nft.CreatorID,
		OwnerID:     nft.OwnerID,
		Listed:      nft.Listed,
		LikesCount:  nft.LikesCount,
		CreatedAt:   nft.CreatedAt,
	}
}

func newNFTListResponse(nfts []domain.NFT) []NFTResponse {
	response := make([]NFTResponse, len(nfts))
	for i := range nfts {
		response[i] = newNFTResponse(&nfts[i])
	}
	return response
}

type CreateNFTParams struct {
	Name        string          `binding:"required,min=1,max=100"      json:"name"`
	Description string          `binding:"required,max_bytes=5000"     json:"description"`
	Price       decimal.Decimal `binding:"required"                    json:"price"`
	Image       string          `binding:"required,max_bytes=2048"     json:"image"`
	Royalty     decimal.Decimal `binding:"-"                           json:"royalty"`
}

// Create POST RouteGroup + NFTsRoute.
func (h *NFTsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateNFTParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	nft, createErr := h.nftService.Create(ctx, service.CreateNFTArgs{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Image:       params.Image,
		Royalty:     params.Royalty,
		CreatorID:   currentUserID,
	})
	if createErr != nil {
		if errors.Is(createErr, service.ErrPriceOutOfRange) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, service.ErrPriceOutOfRange).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, newNFTResponse(nft))
}

// Index GET RouteGroup + NFTsRoute. Каталог: все NFT, выставленные на продажу.
func (h *NFTsHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	nfts, err := h.nftService.Catalog(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, newNFTListResponse(nfts))
}

// My GET RouteGroup + MyNFTsRoute. NFT текущего юзера.
func (h *NFTsHandler) My(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	nfts, err := h.nftService.GetByOwnerID(ctx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	if len(nfts) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, newNFTListResponse(nfts))
}

type UpdateNFTParams struct {
	Name        string          `binding:"required,min=1,max=100"  json:"name"`
	Description string          `binding:"required,max_bytes=5000" json:"description"`
	Price       decimal.Decimal `binding:"required"                json:"price"`
	Image       string          `binding:"required,max_bytes=2048" json:"image"`
}

// Update PUT RouteGroup + NFTRoute.
func (h *NFTsHandler) Update(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	nftID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var params UpdateNFTParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	nft, updErr := h.nftService.Update(ctx, currentUserID, service.UpdateNFTArgs{
		ID:          nftID,
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		Image:       params.Image,
	})
	if updErr != nil {
		h.abortWithNFTError(c, updErr)
		return
	}
	c.JSON(http.StatusOK, newNFTResponse(nft))
}

// Delete DELETE RouteGroup + NFTRoute. Удаление доступно только автору, пока NFT не продан.
func (h *NFTsHandler) Delete(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	nftID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.nftService.Delete(ctx, currentUserID, nftID); err != nil {
		h.abortWithNFTError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// Buy POST RouteGroup + BuyNFTRoute. Покупка NFT: переход владения, списание средств,
// роялти автору и запись в журнал - одна атомарная операция.
func (h *NFTsHandler) Buy(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	nftID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	nft, err := h.transferService.Buy(ctx, nftID, currentUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNFTNotOnSale):
			_ = c.AbortWithError(http.StatusNotFound, errors.New("NFT not found or not for sale")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			_ = c.AbortWithError(http.StatusNotFound, errors.New("user not found")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrNotEnoughBalance):
			_ = c.AbortWithError(http.StatusPaymentRequired, domain.ErrNotEnoughBalance).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrOwnerConflict):
			_ = c.AbortWithError(http.StatusConflict, errors.New("you already own this NFT")).
				SetType(gin.ErrorTypePublic)
		default:
			// Транзакция откачена целиком, ни списаний ни смены владельца не произошло.
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newNFTResponse(nft))
}

// List PUT RouteGroup + ListNFTRoute. Повторное выставление NFT на продажу.
func (h *NFTsHandler) List(c *gin.Context) {
	h.setListed(c, true)
}

// Unlist PUT RouteGroup + UnlistNFTRoute. Снятие NFT с продажи.
func (h *NFTsHandler) Unlist(c *gin.Context) {
	h.setListed(c, false)
}

func (h *NFTsHandler) setListed(c *gin.Context, listed bool) {
	currentUserID := getUserIDFromContext(c)
	nftID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var nft *domain.NFT
	var err error
	if listed {
		nft, err = h.nftService.List(ctx, currentUserID, nftID)
	} else {
		nft, err = h.nftService.Unlist(ctx, currentUserID, nftID)
	}
	if err != nil {
		h.abortWithNFTError(c, err)
		return
	}
	c.JSON(http.StatusOK, newNFTResponse(nft))
}

// Favorite POST RouteGroup + FavoriteNFTRoute.
func (h *NFTsHandler) Favorite(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	nftID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.nftService.Favorite(ctx, currentUserID, nftID); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusBadRequest, errors.New("NFT already in favorites")).
				SetType(gin.ErrorTypePublic)
			return
		}
		h.abortWithNFTError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// Unfavorite DELETE RouteGroup + FavoriteNFTRoute.
func (h *NFTsHandler) Unfavorite(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	nftID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.nftService.Unfavorite(ctx, currentUserID, nftID); err != nil {
		h.abortWithNFTError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusOK)
}

// Trending GET RouteGroup + TrendingRoute.
func (h *NFTsHandler) Trending(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	nfts, err := h.nftService.Trending(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, newNFTListResponse(nfts))
}

type TransactionResponse struct {
	ID        int64     `json:"ID"`
	NFTID     int64     `json:"nftID"`
	SellerID  int64     `json:"sellerID"`
	BuyerID   int64     `json:"buyerID"`
	CreatorID int64     `json:"creatorID"`
	Price     float64   `json:"price"`
	Royalties float64   `json:"royalties"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Transactions GET RouteGroup + TransactionsRoute. История сделок текущего юзера.
func (h *NFTsHandler) Transactions(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.nftService.TransactionHistory(ctx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	if len(transactions) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		response[i] = TransactionResponse{
			ID:        transaction.ID,
			NFTID:     transaction.NFTID,
			SellerID:  transaction.SellerID,
			BuyerID:   transaction.BuyerID,
			CreatorID: transaction.CreatorID,
			Price:     transaction.Price.InexactFloat64(),
			Royalties: transaction.Royalties.InexactFloat64(),
			Status:    string(transaction.Status),
			CreatedAt: transaction.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

type EarningsResponse struct {
	TotalSales     float64 `json:"totalSales"`
	TotalRoyalties float64 `json:"totalRoyalties"`
	TotalEarnings  float64 `json:"totalEarnings"`
}

// Earnings GET RouteGroup + EarningsRoute. Суммарный заработок текущего юзера.
func (h *NFTsHandler) Earnings(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	earnings, err := h.nftService.GetEarnings(ctx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, &EarningsResponse{
		TotalSales:     earnings.TotalSales.InexactFloat64(),
		TotalRoyalties: earnings.TotalRoyalties.InexactFloat64(),
		TotalEarnings:  earnings.TotalEarnings.InexactFloat64(),
	})
}

func (h *NFTsHandler) abortWithNFTError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrNotAuthorized):
		c.AbortWithStatus(http.StatusForbidden)
	case errors.Is(err, service.ErrPriceOutOfRange):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, service.ErrPriceOutOfRange).
			SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
