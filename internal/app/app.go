package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-market/internal/config"
	"github.com/fsdevblog/groph-market/internal/notify"
	"github.com/fsdevblog/groph-market/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/service/psswd"
	"github.com/fsdevblog/groph-market/internal/transport/api"
	"github.com/fsdevblog/groph-market/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	maxNFTPrice, signupBonus, rewardAmount, amountsErr := a.Config.Amounts()
	if amountsErr != nil {
		return fmt.Errorf("app run: %s", amountsErr.Error())
	}

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	notificationRepo := pgrepo.NewNotificationRepository(conn)
	dispatcher := notify.NewDispatcher(notificationRepo, a.Logger)
	go dispatcher.Run(notifyCtx)

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret:    []byte(a.Config.JWTUserSecret),
		MaxNFTPrice:  maxNFTPrice,
		SignupBonus:  signupBonus,
		RewardAmount: rewardAmount,
		Notifier:     dispatcher,
		Logger:       a.Logger,
		Hasher:       psswd.PasswordHash(""),
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	rewardChecker := notify.NewRewardChecker(
		pgrepo.NewUserRepository(conn),
		notificationRepo,
		dispatcher,
		a.Logger,
	)
	go rewardChecker.Run(notifyCtx)

	router := api.New(api.RouterArgs{
		Logger:              a.Logger,
		UserService:         services.UserService,
		NFTService:          services.NFTService,
		TransferService:     services.TransferService,
		NotificationService: services.NotificationService,
		JWTSecretKey:        []byte(a.Config.JWTUserSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// user repo
	userRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewUserRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.UserRepoName), userRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// nft repo
	nftRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewNFTRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.NFTRepoName), nftRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// transaction repo
	transactionRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewTransactionRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.TransactionRepoName),
		transactionRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// notification repo
	notificationRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewNotificationRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.NotificationRepoName),
		notificationRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
