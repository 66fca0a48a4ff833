package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ClaimDailyReward(ctx context.Context, userID int64) (*domain.User, error)
}

type NFTServicer interface {
	Create(ctx context.Context, args service.CreateNFTArgs) (*domain.NFT, error)
	Update(ctx context.Context, userID int64, args service.UpdateNFTArgs) (*domain.NFT, error)
	Delete(ctx context.Context, userID, nftID int64) error
	List(ctx context.Context, userID, nftID int64) (*domain.NFT, error)
	Unlist(ctx context.Context, userID, nftID int64) (*domain.NFT, error)
	Favorite(ctx context.Context, userID, nftID int64) error
	Unfavorite(ctx context.Context, userID, nftID int64) error
	Catalog(ctx context.Context) ([]domain.NFT, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.NFT, error)
	Trending(ctx context.Context) ([]domain.NFT, error)
	TopCreators(ctx context.Context, period domain.CreatorsPeriodType) ([]repoargs.TopCreatorRow, error)
	TransactionHistory(ctx context.Context, userID int64) ([]domain.Transaction, error)
	GetEarnings(ctx context.Context, userID int64) (*service.Earnings, error)
}

type TransferServicer interface {
	Buy(ctx context.Context, nftID, buyerID int64) (*domain.NFT, error)
}

type NotificationServicer interface {
	GetByUserID(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
}
