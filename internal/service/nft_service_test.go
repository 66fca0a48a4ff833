package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
	"github.com/fsdevblog/groph-market/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
)

type NFTServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockNFTRepo         *mocks.MockNFTRepository
	mockUserRepo        *mocks.MockUserRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	mockNotifier        *mocks.MockNotifier
	maxPrice            decimal.Decimal
	service             *NFTService
}

func TestNFTServiceSuite(t *testing.T) {
	suite.Run(t, new(NFTServiceTestSuite))
}

func (s *NFTServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockNFTRepo = mocks.NewMockNFTRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.maxPrice = decimal.NewFromInt(10000)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.NFTRepoName)).
		Return(s.mockNFTRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	service, servErr := NewNFTService(s.mockUOW, s.mockNotifier, s.maxPrice)
	s.Require().NoError(servErr)
	s.service = service
}

func (s *NFTServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *NFTServiceTestSuite) TestCreate() {
	args := CreateNFTArgs{
		Name:        "Sunset",
		Description: "desc",
		Price:       decimal.NewFromInt(100),
		Image:       "data:image/png;base64,xxx",
		Royalty:     decimal.NewFromInt(10),
		CreatorID:   1,
	}

	s.mockNFTRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.CreateNFT) (*domain.NFT, error) {
			s.Equal(args.Name, createArgs.Name)
			s.True(createArgs.Royalty.Equal(args.Royalty))
			return &domain.NFT{ID: 7, Name: args.Name, CreatorID: 1, OwnerID: 1, Listed: true}, nil
		})

	nft, err := s.service.Create(s.T().Context(), args)
	s.Require().NoError(err)
	// Новый NFT сразу на продаже, владелец - автор.
	s.True(nft.Listed)
	s.Equal(nft.CreatorID, nft.OwnerID)
}

func (s *NFTServiceTestSuite) TestCreate_DefaultRoyalty() {
	args := CreateNFTArgs{
		Name:      "Sunset",
		Price:     decimal.NewFromInt(100),
		CreatorID: 1,
	}

	s.mockNFTRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.CreateNFT) (*domain.NFT, error) {
			// Незаданный роялти заменяется ставкой по умолчанию.
			s.True(createArgs.Royalty.Equal(decimal.NewFromInt(defaultRoyaltyRate)))
			return &domain.NFT{ID: 7}, nil
		})

	_, err := s.service.Create(s.T().Context(), args)
	s.Require().NoError(err)
}

func (s *NFTServiceTestSuite) TestCreate_PriceOutOfRange() {
	cases := []struct {
		name  string
		price decimal.Decimal
	}{
		{name: "zero", price: decimal.Zero},
		{name: "negative", price: decimal.NewFromInt(-1)},
		{name: "above max", price: s.maxPrice.Add(decimal.NewFromInt(1))},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.service.Create(s.T().Context(), CreateNFTArgs{
				Name:      "Sunset",
				Price:     t.price,
				CreatorID: 1,
			})
			s.Require().ErrorIs(err, ErrPriceOutOfRange)
		})
	}
}

func (s *NFTServiceTestSuite) TestUpdate_Permissions() {
	creatorID := int64(1)
	resellerID := int64(2)
	strangerID := int64(3)

	args := UpdateNFTArgs{
		ID:          7,
		Name:        "New name",
		Description: "new desc",
		Price:       decimal.NewFromInt(150),
		Image:       "img",
	}

	// Автор-владелец: полное обновление.
	ownedByCreator := domain.NFT{ID: 7, CreatorID: creatorID, OwnerID: creatorID}
	s.mockNFTRepo.EXPECT().FindByID(gomock.Any(), args.ID).Return(&ownedByCreator, nil)
	s.mockNFTRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		Return(&domain.NFT{ID: 7, Name: args.Name}, nil)
	s.mockNFTRepo.EXPECT().GetLikerIDs(gomock.Any(), args.ID).Return(nil, nil)

	_, err := s.service.Update(s.T().Context(), creatorID, args)
	s.Require().NoError(err)

	// Перекупщик: только цена.
	resold := domain.NFT{ID: 7, CreatorID: creatorID, OwnerID: resellerID}
	s.mockNFTRepo.EXPECT().FindByID(gomock.Any(), args.ID).Return(&resold, nil)
	s.mockNFTRepo.EXPECT().UpdatePrice(gomock.Any(), args.ID, args.Price).
		Return(&domain.NFT{ID: 7}, nil)
	s.mockNFTRepo.EXPECT().GetLikerIDs(gomock.Any(), args.ID).Return(nil, nil)

	_, err = s.service.Update(s.T().Context(), resellerID, args)
	s.Require().NoError(err)

	// Посторонний: отказ.
	s.mockNFTRepo.EXPECT().FindByID(gomock.Any(), args.ID).Return(&resold, nil)

	_, err = s.service.Update(s.T().Context(), strangerID, args)
	s.Require().ErrorIs(err, domain.ErrNotAuthorized)
}

func (s *NFTServiceTestSuite) TestUpdate_NotifiesLikers() {
	creatorID := int64(1)
	args := UpdateNFTArgs{ID: 7, Name: "New name", Price: decimal.NewFromInt(10)}

	nft := domain.NFT{ID: 7, CreatorID: creatorID, OwnerID: creatorID}
	s.mockNFTRepo.EXPECT().FindByID(gomock.Any(), args.ID).Return(&nft, nil)
	s.mockNFTRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		Return(&domain.NFT{ID: 7, Name: args.Name}, nil)

	// В избранном у троих, включая самого автора: он уведомление не получает.
	s.mockNFTRepo.EXPECT().GetLikerIDs(gomock.Any(), args.ID).
		Return([]int64{creatorID, 5, 6}, nil)
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), creatorID).
		Return(&domain.User{ID: creatorID, Fullname: "Creator"}, nil)
	s.mockNotifier.EXPECT().Notify(int64(5), gomock.Any())
	s.mockNotifier.EXPECT().Notify(int64(6), gomock.Any())

	_, err := s.service.Update(s.T().Context(), creatorID, args)
	s.Require().NoError(err)
}

func (s *NFTServiceTestSuite) TestDelete() {
	creatorID := int64(1)

	cases := []struct {
		name    string
		nft     domain.NFT
		wantErr error
	}{
		{
			name: "creator still owns it",
			nft:  domain.NFT{ID: 7, CreatorID: creatorID, OwnerID: creatorID},
		},
		{
			name:    "already sold",
			nft:     domain.NFT{ID: 7, CreatorID: creatorID, OwnerID: 2},
			wantErr: domain.ErrNotAuthorized,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockNFTRepo.EXPECT().FindByID(gomock.Any(), t.nft.ID).Return(&t.nft, nil)
			if t.wantErr == nil {
				s.mockNFTRepo.EXPECT().Delete(gomock.Any(), t.nft.ID).Return(nil)
			}

			err := s.service.Delete(s.T().Context(), creatorID, t.nft.ID)
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *NFTServiceTestSuite) TestUnlist() {
	ownerID := int64(2)
	nft := domain.NFT{ID: 7, Name: "Sunset", CreatorID: 1, OwnerID: ownerID, Listed: true}
	delisted := nft
	delisted.Listed = false

	s.mockNFTRepo.EXPECT().FindByID(gomock.Any(), nft.ID).Return(&nft, nil)
	// Следящие снимаются до очистки избранного, иначе уведомлять будет некого.
	likers := s.mockNFTRepo.EXPECT().GetLikerIDs(gomock.Any(), nft.ID).Return([]int64{5, 6}, nil)
	unlist := s.mockNFTRepo.EXPECT().SetListed(gomock.Any(), nft.ID, false).Return(&delisted, nil)
	clearLikes := s.mockNFTRepo.EXPECT().ClearLikes(gomock.Any(), nft.ID).Return(nil)
	gomock.InOrder(likers, unlist, clearLikes)

	s.mockNotifier.EXPECT().Notify(int64(5), gomock.Any())
	s.mockNotifier.EXPECT().Notify(int64(6), gomock.Any())

	result, err := s.service.Unlist(s.T().Context(), ownerID, nft.ID)
	s.Require().NoError(err)
	s.False(result.Listed)
}

func (s *NFTServiceTestSuite) TestList_NotOwner() {
	nft := domain.NFT{ID: 7, CreatorID: 1, OwnerID: 2, Listed: false}
	s.mockNFTRepo.EXPECT().FindByID(gomock.Any(), nft.ID).Return(&nft, nil)

	_, err := s.service.List(s.T().Context(), 3, nft.ID)
	s.Require().ErrorIs(err, domain.ErrNotAuthorized)
}

func (s *NFTServiceTestSuite) TestFavorite() {
	likerID := int64(5)
	nft := domain.NFT{ID: 7, Name: "Sunset", CreatorID: 1, OwnerID: 2, Listed: true}

	s.mockNFTRepo.EXPECT().FindByID(gomock.Any(), nft.ID).Return(&nft, nil)
	s.mockNFTRepo.EXPECT().AddLike(gomock.Any(), nft.ID, likerID).Return(nil)
	s.mockUserRepo.EXPECT().FindByID(gomock.Any(), likerID).
		Return(&domain.User{ID: likerID, Fullname: "Liker"}, nil)
	s.mockNotifier.EXPECT().Notify(nft.OwnerID, gomock.Any())

	err := s.service.Favorite(s.T().Context(), likerID, nft.ID)
	s.Require().NoError(err)
}

func (s *NFTServiceTestSuite) TestFavorite_Duplicate() {
	likerID := int64(5)
	nft := domain.NFT{ID: 7, CreatorID: 1, OwnerID: 2, Listed: true}

	s.mockNFTRepo.EXPECT().FindByID(gomock.Any(), nft.ID).Return(&nft, nil)
	s.mockNFTRepo.EXPECT().AddLike(gomock.Any(), nft.ID, likerID).
		Return(domain.ErrDuplicateKey)

	err := s.service.Favorite(s.T().Context(), likerID, nft.ID)
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *NFTServiceTestSuite) TestFavorite_OwnNFTSilent() {
	// Владелец лайкает свой лот: уведомление самому себе не уходит.
	ownerID := int64(2)
	nft := domain.NFT{ID: 7, CreatorID: 1, OwnerID: ownerID, Listed: true}

	s.mockNFTRepo.EXPECT().FindByID(gomock.Any(), nft.ID).Return(&nft, nil)
	s.mockNFTRepo.EXPECT().AddLike(gomock.Any(), nft.ID, ownerID).Return(nil)
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	err := s.service.Favorite(s.T().Context(), ownerID, nft.ID)
	s.Require().NoError(err)
}

func (s *NFTServiceTestSuite) TestTopCreators_UnknownPeriod() {
	_, err := s.service.TopCreators(s.T().Context(), domain.CreatorsPeriodType("1y"))
	s.Require().Error(err)
}

func (s *NFTServiceTestSuite) TestGetEarnings() {
	userID := int64(1)
	s.mockTransactionRepo.EXPECT().GetEarnings(gomock.Any(), userID).
		Return(&repoargs.EarningsAggregation{
			SalesAmount:   decimal.NewFromInt(90),
			RoyaltyAmount: decimal.NewFromInt(10),
		}, nil)

	earnings, err := s.service.GetEarnings(s.T().Context(), userID)
	s.Require().NoError(err)
	s.True(earnings.TotalSales.Equal(decimal.NewFromInt(90)))
	s.True(earnings.TotalRoyalties.Equal(decimal.NewFromInt(10)))
	s.True(earnings.TotalEarnings.Equal(decimal.NewFromInt(100)))
}
