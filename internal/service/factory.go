package service

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-market/pkg/uow"
)

type AppServices struct {
	UserService         *UserService
	NFTService          *NFTService
	TransferService     *TransferService
	NotificationService *NotificationService
}

type FactoryArgs struct {
	JWTSecret    []byte
	MaxNFTPrice  decimal.Decimal
	SignupBonus  decimal.Decimal
	RewardAmount decimal.Decimal
	Notifier     Notifier
	Logger       logrus.FieldLogger
	Hasher       PasswordHasher
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, args.Hasher, UserServiceArgs{
		JWTTokenSecret: args.JWTSecret,
		SignupBonus:    args.SignupBonus,
		RewardAmount:   args.RewardAmount,
	})
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	nftService, nftServiceErr := NewNFTService(unitOfWork, args.Notifier, args.MaxNFTPrice)
	if nftServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", nftServiceErr.Error())
	}

	notificationService, notificationServiceErr := NewNotificationService(unitOfWork)
	if notificationServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", notificationServiceErr.Error())
	}

	transferService := NewTransferService(unitOfWork, args.Notifier, args.Logger)

	return &AppServices{
		UserService:         userService,
		NFTService:          nftService,
		TransferService:     transferService,
		NotificationService: notificationService,
	}, nil
}
