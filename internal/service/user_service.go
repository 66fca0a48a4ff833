package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service/tokens"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

// RewardCooldown - минимальный интервал между начислениями ежедневной награды.
// Формат postgres interval, строка уходит в запрос как есть.
const RewardCooldown = "12 hours"

const passwordSpecialChars = "!@#$%^&*"

var ErrWeakPassword = errors.New(
	"password must contain at least 6 characters, 1 uppercase letter, 3 digits, and 1 special character")

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
	signupBonus    decimal.Decimal
	rewardAmount   decimal.Decimal
}

type UserServiceArgs struct {
	JWTTokenSecret []byte
	SignupBonus    decimal.Decimal
	RewardAmount   decimal.Decimal
}

func NewUserService(u uow.UOW, psswd PasswordHasher, args UserServiceArgs) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		psswd:          psswd,
		jwtTokenSecret: args.JWTTokenSecret,
		signupBonus:    args.SignupBonus,
		rewardAmount:   args.RewardAmount,
	}, nil
}

type RegisterUserArgs struct {
	Fullname       string
	Age            int32
	Email          string
	Password       string
	ProfilePicture string
}

// Register создает юзера со стартовым балансом и сразу аутентифицирует его.
// Возвращает 3 значения: созданный юзер, jwt токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	if !isStrongPassword(args.Password) {
		return nil, "", ErrWeakPassword
	}

	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}

	var user *domain.User
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		var userErr, tokenErr error
		user, userErr = userRepo.Create(c, repoargs.CreateUser{
			Fullname:       args.Fullname,
			Age:            args.Age,
			Email:          args.Email,
			Password:       password,
			ProfilePicture: args.ProfilePicture,
			Balance:        s.signupBonus,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		token, tokenErr = tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login аутентифицирует по паре email/пароль. Возвращает domain.ErrRecordNotFound если юзера нет
// и domain.ErrPasswordMissMatch при неверном пароле.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, userErr := s.userRepo.FindByEmail(ctx, args.Email)
	if userErr != nil {
		return nil, "", fmt.Errorf("logging in user: %w", userErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %s", tokenErr.Error())
	}
	return user, token, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

// ClaimDailyReward начисляет ежедневную награду. Проверка кулдауна и зачисление выполняются
// одним условным UPDATE в репозитории, так что двойное начисление невозможно даже при
// конкурентных запросах. Если награда еще не готова, возвращает domain.ErrRewardNotReady.
func (s *UserService) ClaimDailyReward(ctx context.Context, userID int64) (*domain.User, error) {
	user, claimErr := s.userRepo.ClaimReward(ctx, userID, s.rewardAmount, RewardCooldown)
	if claimErr == nil {
		return user, nil
	}
	if !errors.Is(claimErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("claiming daily reward: %w", claimErr)
	}

	// Условие UPDATE не совпало: либо юзера нет, либо кулдаун не прошел.
	if _, findErr := s.userRepo.FindByID(ctx, userID); findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	return nil, domain.ErrRewardNotReady
}

// isStrongPassword повторяет требования к паролю: минимум 6 символов, 1 заглавная буква,
// 3 цифры и 1 спецсимвол.
func isStrongPassword(password string) bool {
	if len(password) < 6 { //nolint:mnd
		return false
	}
	var digits, uppers, specials int
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsUpper(r):
			uppers++
		case strings.ContainsRune(passwordSpecialChars, r):
			specials++
		}
	}
	return digits >= 3 && uppers >= 1 && specials >= 1 //nolint:mnd
}
