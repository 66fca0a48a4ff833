package repoargs

import (
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	NFTID     int64
	SellerID  int64
	BuyerID   int64
	CreatorID int64
	Price     decimal.Decimal
	Royalties decimal.Decimal
	Status    domain.TransactionStatusType
}

type EarningsAggregation struct {
	SalesAmount   decimal.Decimal
	RoyaltyAmount decimal.Decimal
}

type TopCreatorRow struct {
	CreatorID      int64
	Fullname       string
	ProfilePicture string
	NFTCount       int64
}
