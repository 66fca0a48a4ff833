package repoargs

import "github.com/shopspring/decimal"

type CreateNFT struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Royalty     decimal.Decimal
	CreatorID   int64
}

type UpdateNFT struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
}
