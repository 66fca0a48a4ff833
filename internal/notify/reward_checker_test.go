package notify

import (
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
)

type RewardCheckerTestSuite struct {
	suite.Suite
	mockCtrl             *gomock.Controller
	mockUserRepo         *mocks.MockUserRepository
	mockNotificationRepo *mocks.MockNotificationRepository
	mockNotifier         *mocks.MockNotifier
	checker              *RewardChecker
}

func TestRewardCheckerSuite(t *testing.T) {
	suite.Run(t, new(RewardCheckerTestSuite))
}

func (s *RewardCheckerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockNotificationRepo = mocks.NewMockNotificationRepository(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)

	s.checker = NewRewardChecker(s.mockUserRepo, s.mockNotificationRepo, s.mockNotifier, l)
}

func (s *RewardCheckerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RewardCheckerTestSuite) TestCheckOnce() {
	// Юзер 1 получает напоминание, у юзера 2 оно уже висит непрочитанным.
	s.mockUserRepo.EXPECT().
		FindRewardEligibleIDs(gomock.Any(), service.RewardCooldown).
		Return([]int64{1, 2}, nil)

	s.mockNotificationRepo.EXPECT().
		ExistsUnread(gomock.Any(), int64(1), RewardReadyMessage).
		Return(false, nil)
	s.mockNotificationRepo.EXPECT().
		ExistsUnread(gomock.Any(), int64(2), RewardReadyMessage).
		Return(true, nil)

	s.mockNotifier.EXPECT().Notify(int64(1), RewardReadyMessage).Times(1)

	s.checker.checkOnce(s.T().Context())
}

func (s *RewardCheckerTestSuite) TestCheckOnce_RepoError() {
	s.mockUserRepo.EXPECT().
		FindRewardEligibleIDs(gomock.Any(), service.RewardCooldown).
		Return(nil, domain.ErrUnknown)

	// Проверка пропускается молча, уведомления не рассылаются.
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	s.checker.checkOnce(s.T().Context())
}
