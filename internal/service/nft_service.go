package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

var ErrPriceOutOfRange = errors.New("price is out of range")

const (
	trendingWindow   = 30 * 24 * time.Hour
	trendingLimit    = 15
	topCreatorsLimit = 10
)

// creatorPeriods - допустимые окна выборки топа авторов.
var creatorPeriods = map[domain.CreatorsPeriodType]time.Duration{
	domain.CreatorsPeriod24H: 24 * time.Hour,
	domain.CreatorsPeriod7D:  7 * 24 * time.Hour,
	domain.CreatorsPeriod30D: 30 * 24 * time.Hour,
}

type NFTService struct {
	uow             uow.UOW
	nftRepo         NFTRepository
	userRepo        UserRepository
	transactionRepo TransactionRepository
	notifier        Notifier
	maxPrice        decimal.Decimal
}

func NewNFTService(u uow.UOW, notifier Notifier, maxPrice decimal.Decimal) (*NFTService, error) {
	nftRepo, nftRepoErr := uow.GetRepositoryAs[NFTRepository](u, uow.RepositoryName(repoargs.NFTRepoName))
	if nftRepoErr != nil {
		return nil, nftRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	transactionRepo, transactionRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	return &NFTService{
		uow:             u,
		nftRepo:         nftRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		notifier:        notifier,
		maxPrice:        maxPrice,
	}, nil
}

type CreateNFTArgs struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Royalty     decimal.Decimal
	CreatorID   int64
}

// Create создает NFT: владелец совпадает с автором, лот сразу выставлен на продажу.
// Нулевой роялти трактуется как незаданный и заменяется ставкой по умолчанию.
func (s *NFTService) Create(ctx context.Context, args CreateNFTArgs) (*domain.NFT, error) {
	if err := s.validatePrice(args.Price); err != nil {
		return nil, err
	}
	royalty := args.Royalty
	if royalty.IsZero() {
		royalty = decimal.NewFromInt(defaultRoyaltyRate)
	}

	nft, err := s.nftRepo.Create(ctx, repoargs.CreateNFT{
		Name:        args.Name,
		Description: args.Description,
		Price:       args.Price,
		Image:       args.Image,
		Royalty:     royalty,
		CreatorID:   args.CreatorID,
	})
	if err != nil {
		return nil, fmt.Errorf("creating nft: %w", err)
	}
	return nft, nil
}

type UpdateNFTArgs struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
}

// Update изменяет NFT от имени userID. Автор, пока владеет своим NFT, может менять все поля;
// владелец-перекупщик - только цену; остальным - domain.ErrNotAuthorized.
// Юзеры, добавившие NFT в избранное, получают уведомление.
func (s *NFTService) Update(ctx context.Context, userID int64, args UpdateNFTArgs) (*domain.NFT, error) {
	if err := s.validatePrice(args.Price); err != nil {
		return nil, err
	}

	nft, findErr := s.nftRepo.FindByID(ctx, args.ID)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}

	isCreator := nft.CreatorID == userID
	isOwner := nft.OwnerID == userID

	var updated *domain.NFT
	var updErr error
	switch {
	case isCreator && isOwner:
		updated, updErr = s.nftRepo.Update(ctx, repoargs.UpdateNFT{
			ID:          args.ID,
			Name:        args.Name,
			Description: args.Description,
			Price:       args.Price,
			Image:       args.Image,
		})
	case isOwner:
		updated, updErr = s.nftRepo.UpdatePrice(ctx, args.ID, args.Price)
	default:
		return nil, domain.ErrNotAuthorized
	}
	if updErr != nil {
		return nil, fmt.Errorf("updating nft %d: %w", args.ID, updErr)
	}

	s.notifyLikers(ctx, nft.ID, userID, func(editor *domain.User) string {
		return fmt.Sprintf("NFT %s has been updated by %s", updated.Name, editor.Fullname)
	})
	return updated, nil
}

// Delete удаляет NFT. Разрешено только автору и только пока NFT не был продан
// (автор все еще владелец).
func (s *NFTService) Delete(ctx context.Context, userID, nftID int64) error {
	nft, findErr := s.nftRepo.FindByID(ctx, nftID)
	if findErr != nil {
		return findErr //nolint:wrapcheck
	}
	if nft.CreatorID != userID || nft.OwnerID != userID {
		return domain.ErrNotAuthorized
	}
	if err := s.nftRepo.Delete(ctx, nftID); err != nil {
		return fmt.Errorf("deleting nft %d: %w", nftID, err)
	}
	return nil
}

// List выставляет NFT на продажу повторно. Только для владельца.
func (s *NFTService) List(ctx context.Context, userID, nftID int64) (*domain.NFT, error) {
	if err := s.authorizeOwner(ctx, userID, nftID); err != nil {
		return nil, err
	}
	nft, err := s.nftRepo.SetListed(ctx, nftID, true)
	if err != nil {
		return nil, fmt.Errorf("listing nft %d: %w", nftID, err)
	}
	return nft, nil
}

// Unlist снимает NFT с продажи, чистит избранное и уведомляет всех, кто следил за лотом.
func (s *NFTService) Unlist(ctx context.Context, userID, nftID int64) (*domain.NFT, error) {
	if err := s.authorizeOwner(ctx, userID, nftID); err != nil {
		return nil, err
	}

	// Список следящих снимается до очистки избранного.
	likerIDs, likersErr := s.nftRepo.GetLikerIDs(ctx, nftID)
	if likersErr != nil {
		return nil, fmt.Errorf("unlisting nft %d: %w", nftID, likersErr)
	}

	nft, unlistErr := s.nftRepo.SetListed(ctx, nftID, false)
	if unlistErr != nil {
		return nil, fmt.Errorf("unlisting nft %d: %w", nftID, unlistErr)
	}

	if clearErr := s.nftRepo.ClearLikes(ctx, nftID); clearErr != nil {
		return nil, fmt.Errorf("unlisting nft %d: %w", nftID, clearErr)
	}

	for _, likerID := range likerIDs {
		s.notifier.Notify(likerID, fmt.Sprintf("The NFT %s is no longer for sale.", nft.Name))
	}
	return nft, nil
}

// Favorite добавляет NFT в избранное юзера. Повторное добавление - domain.ErrDuplicateKey.
// Владелец получает уведомление, если лот лайкнул кто-то другой.
func (s *NFTService) Favorite(ctx context.Context, userID, nftID int64) error {
	nft, findErr := s.nftRepo.FindByID(ctx, nftID)
	if findErr != nil {
		return findErr //nolint:wrapcheck
	}

	if err := s.nftRepo.AddLike(ctx, nftID, userID); err != nil {
		return err //nolint:wrapcheck
	}

	if nft.OwnerID != userID {
		if liker, likerErr := s.userRepo.FindByID(ctx, userID); likerErr == nil {
			s.notifier.Notify(nft.OwnerID,
				fmt.Sprintf("%s added your NFT %s to favorites.", liker.Fullname, nft.Name))
		}
	}
	return nil
}

func (s *NFTService) Unfavorite(ctx context.Context, userID, nftID int64) error {
	if _, findErr := s.nftRepo.FindByID(ctx, nftID); findErr != nil {
		return findErr //nolint:wrapcheck
	}
	if err := s.nftRepo.RemoveLike(ctx, nftID, userID); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

// Catalog возвращает все NFT, выставленные на продажу.
func (s *NFTService) Catalog(ctx context.Context) ([]domain.NFT, error) {
	nfts, err := s.nftRepo.GetListed(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return nfts, nil
}

func (s *NFTService) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.NFT, error) {
	nfts, err := s.nftRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return nfts, nil
}

// Trending возвращает самые залайканные NFT из выставленных на продажу за последние 30 дней.
func (s *NFTService) Trending(ctx context.Context) ([]domain.NFT, error) {
	since := time.Now().Add(-trendingWindow)
	nfts, err := s.nftRepo.Trending(ctx, since, trendingLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return nfts, nil
}

// TopCreators возвращает авторов с наибольшим числом созданных NFT за указанный период.
func (s *NFTService) TopCreators(
	ctx context.Context,
	period domain.CreatorsPeriodType,
) ([]repoargs.TopCreatorRow, error) {
	window, ok := creatorPeriods[period]
	if !ok {
		return nil, fmt.Errorf("unknown top creators period %q: %w", period, domain.ErrRecordNotFound)
	}
	creators, err := s.nftRepo.TopCreators(ctx, time.Now().Add(-window), topCreatorsLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return creators, nil
}

// TransactionHistory возвращает сделки, в которых юзер участвовал как покупатель или продавец.
func (s *NFTService) TransactionHistory(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.GetByParticipantID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

type Earnings struct {
	TotalSales     decimal.Decimal
	TotalRoyalties decimal.Decimal
	TotalEarnings  decimal.Decimal
}

// GetEarnings считает суммарный заработок юзера: выручка с продаж (за вычетом роялти)
// плюс роялти, полученные как автором.
func (s *NFTService) GetEarnings(ctx context.Context, userID int64) (*Earnings, error) {
	aggregation, err := s.transactionRepo.GetEarnings(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &Earnings{
		TotalSales:     aggregation.SalesAmount,
		TotalRoyalties: aggregation.RoyaltyAmount,
		TotalEarnings:  aggregation.SalesAmount.Add(aggregation.RoyaltyAmount),
	}, nil
}

func (s *NFTService) authorizeOwner(ctx context.Context, userID, nftID int64) error {
	nft, err := s.nftRepo.FindByID(ctx, nftID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if nft.OwnerID != userID {
		return domain.ErrNotAuthorized
	}
	return nil
}

func (s *NFTService) validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() || price.GreaterThan(s.maxPrice) {
		return ErrPriceOutOfRange
	}
	return nil
}

// notifyLikers рассылает уведомление всем, кто добавил NFT в избранное, кроме самого editor.
// Ошибки чтения списка глушатся: уведомления best-effort.
func (s *NFTService) notifyLikers(ctx context.Context, nftID, editorID int64, message func(*domain.User) string) {
	likerIDs, likersErr := s.nftRepo.GetLikerIDs(ctx, nftID)
	if likersErr != nil || len(likerIDs) == 0 {
		return
	}
	editor, editorErr := s.userRepo.FindByID(ctx, editorID)
	if editorErr != nil {
		return
	}
	msg := message(editor)
	for _, likerID := range likerIDs {
		if likerID == editorID {
			continue
		}
		s.notifier.Notify(likerID, msg)
	}
}
