package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Fullname          string
	Age               int32
	Email             string
	EncryptedPassword string
	ProfilePicture    string
	Balance           decimal.Decimal
	LastClaimedReward *time.Time
}

type NFT struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Royalty     decimal.Decimal
	CreatorID   int64
	OwnerID     int64
	Listed      bool
	LikesCount  int64
}

type Transaction struct {
	ID        int64
	CreatedAt time.Time
	NFTID     int64
	SellerID  int64
	BuyerID   int64
	CreatorID int64
	Price     decimal.Decimal
	Royalties decimal.Decimal
	Status    TransactionStatusType
}

type Notification struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	Message   string
	IsRead    bool
}
