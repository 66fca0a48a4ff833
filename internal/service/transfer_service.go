package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const (
	// defaultRoyaltyRate применяется, если у NFT роялти не задан или задан некорректно.
	defaultRoyaltyRate = 5
	maxRoyaltyRate     = 20
)

// minRoyaltyFee - нижняя граница роялти при перепродаже. Автор не должен получать ноль
// из-за округления на дешевых NFT.
var minRoyaltyFee = decimal.New(1, -2) // 0.01

// TransferService выполняет покупку NFT: переход владения, списание и зачисление средств,
// роялти автору и запись в журнал сделок - всё одной транзакцией. Либо применяется весь
// набор изменений, либо ни одно из них.
type TransferService struct {
	uow      uow.UOW
	notifier Notifier
	log      logrus.FieldLogger
}

func NewTransferService(u uow.UOW, notifier Notifier, log logrus.FieldLogger) *TransferService {
	return &TransferService{
		uow:      u,
		notifier: notifier,
		log:      log,
	}
}

// saleOutcome собирает данные успешной сделки для пост-коммитных уведомлений.
type saleOutcome struct {
	nft        *domain.NFT
	buyerName  string
	sellerID   int64
	creatorID  int64
	price      decimal.Decimal
	royaltyFee decimal.Decimal
}

// Buy покупает NFT от имени buyerID.
//
// Внутри одной транзакции:
//  1. Читает NFT с блокировкой строки; отсутствующий или снятый с продажи NFT - domain.ErrNFTNotOnSale.
//  2. Отклоняет покупку собственного NFT - domain.ErrOwnerConflict.
//  3. Блокирует участников (покупатель, продавец, автор) строго по возрастанию id,
//     иначе два встречных перевода могут взаимно заблокироваться.
//  4. Проверяет баланс покупателя - domain.ErrNotEnoughBalance.
//  5. Считает роялти, двигает балансы, передает владение, пишет строку журнала.
//
// Любая ошибка откатывает транзакцию целиком: частично примененных списаний не бывает.
// Уведомления продавцу и автору ставятся в очередь только после коммита.
func (s *TransferService) Buy(ctx context.Context, nftID, buyerID int64) (*domain.NFT, error) {
	var outcome saleOutcome

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		return s.executeTransfer(c, tx, nftID, buyerID, &outcome)
	})
	if txErr != nil {
		if !isTransferUserError(txErr) {
			// Инфраструктурный сбой или нарушение целостности данных. Транзакция уже
			// откачена, наружу уходит обобщенная ошибка.
			s.log.WithError(txErr).
				WithField("nft_id", nftID).
				WithField("buyer_id", buyerID).
				Error("nft transfer aborted")
		}
		return nil, fmt.Errorf("buying nft %d: %w", nftID, txErr)
	}

	s.emitSaleNotifications(outcome)
	return outcome.nft, nil
}

func (s *TransferService) executeTransfer(
	ctx context.Context,
	tx uow.TX,
	nftID, buyerID int64,
	outcome *saleOutcome,
) error {
	nftRepo, nftRepoErr := uow.GetAs[NFTRepository](tx, uow.RepositoryName(repoargs.NFTRepoName))
	if nftRepoErr != nil {
		return nftRepoErr //nolint:wrapcheck
	}
	userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return userRepoErr //nolint:wrapcheck
	}
	transactionRepo, transactionRepoErr :=
		uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return transactionRepoErr //nolint:wrapcheck
	}

	nft, nftErr := nftRepo.FindByIDForUpdate(ctx, nftID)
	if nftErr != nil {
		if errors.Is(nftErr, domain.ErrRecordNotFound) {
			return domain.ErrNFTNotOnSale
		}
		return nftErr //nolint:wrapcheck
	}
	if !nft.Listed {
		return domain.ErrNFTNotOnSale
	}
	if nft.OwnerID == buyerID {
		return domain.ErrOwnerConflict
	}

	participants, lockErr := s.lockParticipants(ctx, userRepo, nft, buyerID)
	if lockErr != nil {
		return lockErr
	}
	buyer := participants[buyerID]
	seller := participants[nft.OwnerID]
	creator := participants[nft.CreatorID]

	if buyer.Balance.LessThan(nft.Price) {
		return domain.ErrNotEnoughBalance
	}

	fee := royaltyFee(nft.Price, nft.Royalty, seller.ID == creator.ID)

	// Балансы складываем по участникам и пишем ровно один UPDATE на юзера. Роли могут
	// совпадать (автор выкупает свой NFT у перекупщика): два абсолютных UPDATE одной
	// строки затерли бы друг друга и нарушили бы сохранение общей суммы средств.
	balances := make(map[int64]decimal.Decimal, len(participants))
	for id, user := range participants {
		balances[id] = user.Balance
	}
	balances[buyer.ID] = balances[buyer.ID].Sub(nft.Price)
	balances[seller.ID] = balances[seller.ID].Add(nft.Price.Sub(fee))
	if fee.IsPositive() {
		balances[creator.ID] = balances[creator.ID].Add(fee)
	}
	for _, id := range slices.Sorted(maps.Keys(balances)) {
		if balances[id].Equal(participants[id].Balance) {
			continue
		}
		if err := userRepo.UpdateBalance(ctx, id, balances[id]); err != nil {
			return err //nolint:wrapcheck
		}
	}

	transferred, transferErr := nftRepo.TransferOwnership(ctx, nft.ID, buyer.ID)
	if transferErr != nil {
		// Строка заблокирована нами, конкурент успеть не мог: любая ошибка здесь системная.
		return transferErr //nolint:wrapcheck
	}

	if _, err := transactionRepo.Create(ctx, repoargs.CreateTransaction{
		NFTID:     nft.ID,
		SellerID:  seller.ID,
		BuyerID:   buyer.ID,
		CreatorID: creator.ID,
		Price:     nft.Price,
		Royalties: fee,
		Status:    domain.TransactionStatusCompleted,
	}); err != nil {
		return err //nolint:wrapcheck
	}

	*outcome = saleOutcome{
		nft:        transferred,
		buyerName:  buyer.Fullname,
		sellerID:   seller.ID,
		creatorID:  creator.ID,
		price:      nft.Price,
		royaltyFee: fee,
	}
	return nil
}

// lockParticipants блокирует строки участников сделки по возрастанию id. Отсутствующий
// покупатель или продавец - пользовательская ошибка; отсутствующий автор означает битые
// данные (NFT без автора создать нельзя) и конвертируется в системную ошибку.
func (s *TransferService) lockParticipants(
	ctx context.Context,
	userRepo UserRepository,
	nft *domain.NFT,
	buyerID int64,
) (map[int64]*domain.User, error) {
	ids := []int64{buyerID, nft.OwnerID, nft.CreatorID}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	participants := make(map[int64]*domain.User, len(ids))
	for _, id := range ids {
		user, err := userRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				if id == buyerID || id == nft.OwnerID {
					return nil, err //nolint:wrapcheck
				}
				return nil, fmt.Errorf("nft %d references missing creator %d: %w",
					nft.ID, id, domain.ErrUnknown)
			}
			return nil, err //nolint:wrapcheck
		}
		participants[id] = user
	}
	return participants, nil
}

func (s *TransferService) emitSaleNotifications(outcome saleOutcome) {
	if outcome.royaltyFee.IsPositive() {
		s.notifier.Notify(outcome.creatorID, fmt.Sprintf(
			"You received %s NFTokens in royalties from the resale of %s.",
			outcome.royaltyFee.StringFixed(2), outcome.nft.Name,
		))
	}
	s.notifier.Notify(outcome.sellerID, fmt.Sprintf(
		"Your NFT %s was purchased by %s for %s NFTokens.",
		outcome.nft.Name, outcome.buyerName, outcome.price.StringFixed(2),
	))
}

// royaltyFee считает роялти с продажи. На первой продаже (продавец и есть автор) роялти нет.
// При перепродаже - процент от цены, но не меньше minRoyaltyFee, округленный до 2 знаков.
// Нулевая или выходящая за [0, 20] ставка трактуется как незаданная.
func royaltyFee(price, rate decimal.Decimal, firstSale bool) decimal.Decimal {
	if firstSale {
		return decimal.Zero
	}
	if !rate.IsPositive() || rate.GreaterThan(decimal.NewFromInt(maxRoyaltyRate)) {
		rate = decimal.NewFromInt(defaultRoyaltyRate)
	}
	fee := price.Mul(rate).Div(decimal.NewFromInt(100)) //nolint:mnd
	if fee.LessThan(minRoyaltyFee) {
		fee = minRoyaltyFee
	}
	return fee.Round(2) //nolint:mnd
}

// isTransferUserError отличает ожидаемые отказы (покупатель выбрал неподходящий NFT или
// ему не хватает средств) от системных сбоев.
func isTransferUserError(err error) bool {
	return errors.Is(err, domain.ErrNFTNotOnSale) ||
		errors.Is(err, domain.ErrOwnerConflict) ||
		errors.Is(err, domain.ErrNotEnoughBalance) ||
		errors.Is(err, domain.ErrRecordNotFound)
}
