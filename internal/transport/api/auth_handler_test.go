package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/logger"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-market/internal/transport/api/testutils"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *mocks.MockUserServicer
	jwtSecret       []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *AuthHandlerTestSuite) registerPayload() UserRegisterParams {
	return UserRegisterParams{
		Fullname: gofakeit.Name(),
		Age:      int32(gofakeit.Number(18, 80)), //nolint:gosec
		Email:    gofakeit.Email(),
		Password: "Abc123!x",
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	params := s.registerPayload()

	savedUser := domain.User{
		ID:       1,
		Fullname: params.Fullname,
		Email:    params.Email,
		Balance:  decimal.NewFromInt(100),
	}

	s.mockUserService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args service.RegisterUserArgs) (*domain.User, string, error) {
			s.Equal(params.Email, args.Email)
			s.Equal(params.Fullname, args.Fullname)
			return &savedUser, "jwt-token", nil
		})

	body, marshalErr := json.Marshal(params)
	s.Require().NoError(marshalErr)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + RegisterRoute,
		Body:   bytes.NewReader(body),
	}, testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)

	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusCreated, res.StatusCode)
	// Токен сразу в заголовке: отдельный логин после регистрации не нужен.
	s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))

	var response struct {
		User UserResponse `json:"user"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
	s.Equal(savedUser.ID, response.User.ID)
	s.InDelta(100.0, response.User.Balance, 0.001)
}

func (s *AuthHandlerTestSuite) TestRegister_Validation() {
	valid := s.registerPayload()

	tooYoung := valid
	tooYoung.Age = 17

	longName := valid
	longName.Fullname = "This fullname is way over the limit"

	badEmail := valid
	badEmail.Email = "not an email"

	hugePicture := valid
	// Лимит в байтах: мультибайтовые руны выедают его быстрее, чем растет длина строки.
	hugePicture.ProfilePicture = testutils.GenerateOverBytesUnderRunes(1000)

	// До сервиса ни один из запросов не доходит.
	s.mockUserService.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name   string
		params UserRegisterParams
	}{
		{name: "too young", params: tooYoung},
		{name: "fullname too long", params: longName},
		{name: "invalid email", params: badEmail},
		{name: "profile picture too big", params: hugePicture},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			body, marshalErr := json.Marshal(t.params)
			s.Require().NoError(marshalErr)

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + RegisterRoute,
				Body:   bytes.NewReader(body),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
		})
	}
}

func (s *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	params := s.registerPayload()

	s.mockUserService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, "", domain.ErrDuplicateKey)

	body, marshalErr := json.Marshal(params)
	s.Require().NoError(marshalErr)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + RegisterRoute,
		Body:   bytes.NewReader(body),
	}, testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)

	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusConflict, res.StatusCode)
}

func (s *AuthHandlerTestSuite) TestLogin() {
	email := gofakeit.Email()
	password := "Abc123!x"

	savedUser := domain.User{ID: 1, Email: email}

	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: email, Password: password}).
		Return(&savedUser, "jwt-token", nil)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Email: email, Password: "Wrong123!"}).
		Return(nil, "", domain.ErrPasswordMissMatch)

	cases := []struct {
		name       string
		password   string
		wantStatus int
	}{
		{name: "ok", password: password, wantStatus: http.StatusOK},
		{name: "wrong password", password: "Wrong123!", wantStatus: http.StatusUnauthorized},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			body, marshalErr := json.Marshal(UserLoginParams{Email: email, Password: t.password})
			s.Require().NoError(marshalErr)

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + LoginRoute,
				Body:   bytes.NewReader(body),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantStatus == http.StatusOK {
				s.Equal("Bearer jwt-token", res.Header.Get("Authorization"))
			}
		})
	}
}
