package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// Notifier принимает уведомления для юзеров. Доставка best-effort: вызов не блокирует
// и не возвращает ошибку, так что сбой доставки не может повлиять на вызывающего.
type Notifier interface {
	Notify(userID int64, message string)
}

type UserRepository interface {
	Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error)
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error
	ClaimReward(ctx context.Context, id int64, amount decimal.Decimal, cooldown string) (*domain.User, error)
	FindRewardEligibleIDs(ctx context.Context, cooldown string) ([]int64, error)
}

type NFTRepository interface {
	Create(ctx context.Context, args repoargs.CreateNFT) (*domain.NFT, error)
	FindByID(ctx context.Context, id int64) (*domain.NFT, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.NFT, error)
	Update(ctx context.Context, args repoargs.UpdateNFT) (*domain.NFT, error)
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) (*domain.NFT, error)
	Delete(ctx context.Context, id int64) error
	GetListed(ctx context.Context) ([]domain.NFT, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.NFT, error)
	SetListed(ctx context.Context, id int64, listed bool) (*domain.NFT, error)
	TransferOwnership(ctx context.Context, id, newOwnerID int64) (*domain.NFT, error)
	AddLike(ctx context.Context, nftID, userID int64) error
	RemoveLike(ctx context.Context, nftID, userID int64) error
	GetLikerIDs(ctx context.Context, nftID int64) ([]int64, error)
	ClearLikes(ctx context.Context, nftID int64) error
	Trending(ctx context.Context, since time.Time, limit uint) ([]domain.NFT, error)
	TopCreators(ctx context.Context, since time.Time, limit uint) ([]repoargs.TopCreatorRow, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	GetByParticipantID(ctx context.Context, userID int64) ([]domain.Transaction, error)
	GetEarnings(ctx context.Context, userID int64) (*repoargs.EarningsAggregation, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, args repoargs.CreateNotification) (*domain.Notification, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
	ExistsUnread(ctx context.Context, userID int64, message string) (bool, error)
}
