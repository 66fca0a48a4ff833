package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
	"github.com/fsdevblog/groph-market/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
)

type TransferServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockNFTRepo         *mocks.MockNFTRepository
	mockUserRepo        *mocks.MockUserRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	mockNotifier        *mocks.MockNotifier
	service             *TransferService
}

func TestTransferServiceSuite(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}

func (s *TransferServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockNFTRepo = mocks.NewMockNFTRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)

	s.service = NewTransferService(s.mockUOW, s.mockNotifier, l)
}

func (s *TransferServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTransaction настраивает мок UOW так, что колбэк выполняется с mockTX,
// репозитории отдаются из mockTX.
func (s *TransferServiceTestSuite) expectTransaction() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	)
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.NFTRepoName)).
		Return(s.mockNFTRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()
}

func (s *TransferServiceTestSuite) TestBuy_Resale() {
	buyer := domain.User{ID: 30, Fullname: "Buyer", Balance: decimal.NewFromInt(250)}
	seller := domain.User{ID: 20, Fullname: "Seller", Balance: decimal.NewFromInt(50)}
	creator := domain.User{ID: 10, Fullname: "Creator", Balance: decimal.NewFromInt(5)}

	nft := domain.NFT{
		ID:        7,
		Name:      "Sunset",
		Price:     decimal.NewFromInt(100),
		Royalty:   decimal.NewFromInt(10),
		CreatorID: creator.ID,
		OwnerID:   seller.ID,
		Listed:    true,
	}
	expectedFee := decimal.NewFromInt(10) // 10% от 100

	s.expectTransaction()

	s.mockNFTRepo.EXPECT().FindByIDForUpdate(gomock.Any(), nft.ID).Return(&nft, nil)

	// Участники блокируются строго по возрастанию id.
	lockCreator := s.mockUserRepo.EXPECT().
		FindByIDForUpdate(gomock.Any(), creator.ID).Return(&creator, nil)
	lockSeller := s.mockUserRepo.EXPECT().
		FindByIDForUpdate(gomock.Any(), seller.ID).Return(&seller, nil)
	lockBuyer := s.mockUserRepo.EXPECT().
		FindByIDForUpdate(gomock.Any(), buyer.ID).Return(&buyer, nil)
	gomock.InOrder(lockCreator, lockSeller, lockBuyer)

	// Сумма списаний равна сумме зачислений: 100 уходит от покупателя,
	// 90 продавцу и 10 автору.
	s.mockUserRepo.EXPECT().UpdateBalance(gomock.Any(), buyer.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, balance decimal.Decimal) error {
			s.True(balance.Equal(decimal.NewFromInt(150)))
			return nil
		})
	s.mockUserRepo.EXPECT().UpdateBalance(gomock.Any(), seller.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, balance decimal.Decimal) error {
			s.True(balance.Equal(decimal.NewFromInt(140)))
			return nil
		})
	s.mockUserRepo.EXPECT().UpdateBalance(gomock.Any(), creator.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, balance decimal.Decimal) error {
			s.True(balance.Equal(decimal.NewFromInt(15)))
			return nil
		})

	transferred := nft
	transferred.OwnerID = buyer.ID
	transferred.Listed = false
	s.mockNFTRepo.EXPECT().TransferOwnership(gomock.Any(), nft.ID, buyer.ID).
		Return(&transferred, nil)

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(nft.ID, args.NFTID)
			s.Equal(seller.ID, args.SellerID)
			s.Equal(buyer.ID, args.BuyerID)
			s.Equal(creator.ID, args.CreatorID)
			s.True(args.Price.Equal(nft.Price))
			s.True(args.Royalties.Equal(expectedFee))
			s.Equal(domain.TransactionStatusCompleted, args.Status)
			return &domain.Transaction{ID: 1}, nil
		})

	// Уведомления уходят только после коммита: автору про роялти, продавцу про продажу.
	s.mockNotifier.EXPECT().Notify(creator.ID, gomock.Any())
	s.mockNotifier.EXPECT().Notify(seller.ID, gomock.Any())

	result, err := s.service.Buy(s.T().Context(), nft.ID, buyer.ID)
	s.Require().NoError(err)
	s.Equal(buyer.ID, result.OwnerID)
	s.False(result.Listed)
}

func (s *TransferServiceTestSuite) TestBuy_FirstSaleNoRoyalty() {
	// Продавец и есть автор: роялти нет, баланс автора трогается один раз как продавца.
	creator := domain.User{ID: 10, Fullname: "Creator", Balance: decimal.NewFromInt(5)}
	buyer := domain.User{ID: 30, Fullname: "Buyer", Balance: decimal.NewFromInt(250)}

	nft := domain.NFT{
		ID:        7,
		Name:      "Sunset",
		Price:     decimal.NewFromInt(100),
		Royalty:   decimal.NewFromInt(10),
		CreatorID: creator.ID,
		OwnerID:   creator.ID,
		Listed:    true,
	}

	s.expectTransaction()

	s.mockNFTRepo.EXPECT().FindByIDForUpdate(gomock.Any(), nft.ID).Return(&nft, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), creator.ID).Return(&creator, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), buyer.ID).Return(&buyer, nil)

	s.mockUserRepo.EXPECT().UpdateBalance(gomock.Any(), buyer.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, balance decimal.Decimal) error {
			s.True(balance.Equal(decimal.NewFromInt(150)))
			return nil
		})
	s.mockUserRepo.EXPECT().UpdateBalance(gomock.Any(), creator.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, balance decimal.Decimal) error {
			// Полная цена без вычета роялти.
			s.True(balance.Equal(decimal.NewFromInt(105)))
			return nil
		})

	transferred := nft
	transferred.OwnerID = buyer.ID
	transferred.Listed = false
	s.mockNFTRepo.EXPECT().TransferOwnership(gomock.Any(), nft.ID, buyer.ID).
		Return(&transferred, nil)

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.True(args.Royalties.IsZero())
			return &domain.Transaction{ID: 1}, nil
		})

	// Одно уведомление: продавцу. Роялти нулевое, автору писать не о чем.
	s.mockNotifier.EXPECT().Notify(creator.ID, gomock.Any()).Times(1)

	_, err := s.service.Buy(s.T().Context(), nft.ID, buyer.ID)
	s.Require().NoError(err)
}

func (s *TransferServiceTestSuite) TestBuy_CreatorBuysBack() {
	// Автор выкупает свой NFT у перекупщика: списание цены и зачисление роялти
	// сворачиваются в один UPDATE его строки. Общая сумма средств не меняется.
	creator := domain.User{ID: 10, Fullname: "Creator", Balance: decimal.NewFromInt(100)}
	seller := domain.User{ID: 20, Fullname: "Seller", Balance: decimal.NewFromInt(50)}

	nft := domain.NFT{
		ID:        7,
		Name:      "Sunset",
		Price:     decimal.NewFromInt(30),
		Royalty:   decimal.NewFromInt(10),
		CreatorID: creator.ID,
		OwnerID:   seller.ID,
		Listed:    true,
	}
	expectedFee := decimal.NewFromInt(3) // 10% от 30

	s.expectTransaction()

	s.mockNFTRepo.EXPECT().FindByIDForUpdate(gomock.Any(), nft.ID).Return(&nft, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), creator.ID).Return(&creator, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), seller.ID).Return(&seller, nil)

	// Ровно два UPDATE: 100 - 30 + 3 = 73 автору-покупателю, 50 + 27 = 77 продавцу.
	s.mockUserRepo.EXPECT().UpdateBalance(gomock.Any(), creator.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, balance decimal.Decimal) error {
			s.True(balance.Equal(decimal.NewFromInt(73)), "got %s", balance)
			return nil
		}).Times(1)
	s.mockUserRepo.EXPECT().UpdateBalance(gomock.Any(), seller.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, balance decimal.Decimal) error {
			s.True(balance.Equal(decimal.NewFromInt(77)), "got %s", balance)
			return nil
		}).Times(1)

	transferred := nft
	transferred.OwnerID = creator.ID
	transferred.Listed = false
	s.mockNFTRepo.EXPECT().TransferOwnership(gomock.Any(), nft.ID, creator.ID).
		Return(&transferred, nil)

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			s.Equal(creator.ID, args.BuyerID)
			s.Equal(seller.ID, args.SellerID)
			s.True(args.Royalties.Equal(expectedFee))
			return &domain.Transaction{ID: 1}, nil
		})

	s.mockNotifier.EXPECT().Notify(creator.ID, gomock.Any())
	s.mockNotifier.EXPECT().Notify(seller.ID, gomock.Any())

	result, err := s.service.Buy(s.T().Context(), nft.ID, creator.ID)
	s.Require().NoError(err)
	s.Equal(creator.ID, result.OwnerID)
}

func (s *TransferServiceTestSuite) TestBuy_NotEnoughBalance() {
	creator := domain.User{ID: 10, Balance: decimal.NewFromInt(5)}
	seller := domain.User{ID: 20, Balance: decimal.NewFromInt(50)}
	buyer := domain.User{ID: 30, Balance: decimal.NewFromFloat(99.99)}

	nft := domain.NFT{
		ID:        7,
		Price:     decimal.NewFromInt(100),
		CreatorID: creator.ID,
		OwnerID:   seller.ID,
		Listed:    true,
	}

	s.expectTransaction()

	s.mockNFTRepo.EXPECT().FindByIDForUpdate(gomock.Any(), nft.ID).Return(&nft, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), creator.ID).Return(&creator, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), seller.ID).Return(&seller, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), buyer.ID).Return(&buyer, nil)

	// Ни одного движения средств и ни одного уведомления.
	s.mockUserRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Buy(s.T().Context(), nft.ID, buyer.ID)
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}

func (s *TransferServiceTestSuite) TestBuy_SelfPurchase() {
	nft := domain.NFT{
		ID:        7,
		Price:     decimal.NewFromInt(100),
		CreatorID: 10,
		OwnerID:   30,
		Listed:    true,
	}

	s.expectTransaction()
	s.mockNFTRepo.EXPECT().FindByIDForUpdate(gomock.Any(), nft.ID).Return(&nft, nil)

	_, err := s.service.Buy(s.T().Context(), nft.ID, nft.OwnerID)
	s.Require().ErrorIs(err, domain.ErrOwnerConflict)
}

func (s *TransferServiceTestSuite) TestBuy_NotOnSale() {
	delisted := domain.NFT{
		ID:        7,
		Price:     decimal.NewFromInt(100),
		CreatorID: 10,
		OwnerID:   20,
		Listed:    false,
	}

	cases := []struct {
		name  string
		nftID int64
		setup func()
	}{
		{
			name:  "nft not found",
			nftID: 404,
			setup: func() {
				s.mockNFTRepo.EXPECT().FindByIDForUpdate(gomock.Any(), int64(404)).
					Return(nil, domain.ErrRecordNotFound)
			},
		},
		{
			name:  "nft delisted",
			nftID: delisted.ID,
			setup: func() {
				s.mockNFTRepo.EXPECT().FindByIDForUpdate(gomock.Any(), delisted.ID).
					Return(&delisted, nil)
			},
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.expectTransaction()
			t.setup()

			_, err := s.service.Buy(s.T().Context(), t.nftID, 30)
			s.Require().ErrorIs(err, domain.ErrNFTNotOnSale)
		})
	}
}

func (s *TransferServiceTestSuite) TestBuy_MissingCreator() {
	// NFT ссылается на несуществующего автора: это битые данные, не пользовательская ошибка.
	seller := domain.User{ID: 20, Balance: decimal.NewFromInt(50)}

	nft := domain.NFT{
		ID:        7,
		Price:     decimal.NewFromInt(100),
		CreatorID: 10,
		OwnerID:   seller.ID,
		Listed:    true,
	}

	s.expectTransaction()

	s.mockNFTRepo.EXPECT().FindByIDForUpdate(gomock.Any(), nft.ID).Return(&nft, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), nft.CreatorID).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Buy(s.T().Context(), nft.ID, 30)
	s.Require().ErrorIs(err, domain.ErrUnknown)
	s.Require().NotErrorIs(err, domain.ErrRecordNotFound)
}

func (s *TransferServiceTestSuite) TestBuy_OwnershipClaimFails() {
	// Сбой на передаче владения: транзакция возвращает ошибку, журнал не пишется,
	// уведомления не уходят.
	creator := domain.User{ID: 10, Balance: decimal.NewFromInt(5)}
	seller := domain.User{ID: 20, Balance: decimal.NewFromInt(50)}
	buyer := domain.User{ID: 30, Balance: decimal.NewFromInt(250)}

	nft := domain.NFT{
		ID:        7,
		Price:     decimal.NewFromInt(100),
		Royalty:   decimal.NewFromInt(5),
		CreatorID: creator.ID,
		OwnerID:   seller.ID,
		Listed:    true,
	}

	s.expectTransaction()

	s.mockNFTRepo.EXPECT().FindByIDForUpdate(gomock.Any(), nft.ID).Return(&nft, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), creator.ID).Return(&creator, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), seller.ID).Return(&seller, nil)
	s.mockUserRepo.EXPECT().FindByIDForUpdate(gomock.Any(), buyer.ID).Return(&buyer, nil)
	s.mockUserRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(3)

	s.mockNFTRepo.EXPECT().TransferOwnership(gomock.Any(), nft.ID, buyer.ID).
		Return(nil, domain.ErrUnknown)

	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Buy(s.T().Context(), nft.ID, buyer.ID)
	s.Require().ErrorIs(err, domain.ErrUnknown)
}

func (s *TransferServiceTestSuite) TestBuy_TransactionError() {
	// Ошибка из самой обертки транзакции доходит до вызывающего.
	wantErr := errors.New("connection refused")
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Return(wantErr)

	_, err := s.service.Buy(s.T().Context(), 7, 30)
	s.Require().ErrorIs(err, wantErr)
}

func (s *TransferServiceTestSuite) TestRoyaltyFee() {
	cases := []struct {
		name      string
		price     decimal.Decimal
		rate      decimal.Decimal
		firstSale bool
		want      decimal.Decimal
	}{
		{
			name:  "explicit rate",
			price: decimal.NewFromInt(200),
			rate:  decimal.NewFromInt(10),
			want:  decimal.NewFromInt(20),
		},
		{
			name:  "zero rate falls back to default",
			price: decimal.NewFromInt(200),
			rate:  decimal.Zero,
			want:  decimal.NewFromInt(10),
		},
		{
			name:  "rate above limit falls back to default",
			price: decimal.NewFromInt(200),
			rate:  decimal.NewFromInt(55),
			want:  decimal.NewFromInt(10),
		},
		{
			name:  "negative rate falls back to default",
			price: decimal.NewFromInt(200),
			rate:  decimal.NewFromInt(-3),
			want:  decimal.NewFromInt(10),
		},
		{
			name:  "fee never below one cent",
			price: decimal.NewFromFloat(0.05),
			rate:  decimal.NewFromInt(5),
			want:  decimal.NewFromFloat(0.01),
		},
		{
			name:  "fee rounded to cents",
			price: decimal.NewFromFloat(33.33),
			rate:  decimal.NewFromInt(7),
			want:  decimal.NewFromFloat(2.33),
		},
		{
			name:      "first sale pays nothing",
			price:     decimal.NewFromInt(200),
			rate:      decimal.NewFromInt(10),
			firstSale: true,
			want:      decimal.Zero,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			got := royaltyFee(t.price, t.rate, t.firstSale)
			s.True(t.want.Equal(got), "want %s got %s", t.want, got)
		})
	}
}
