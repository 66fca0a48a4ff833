package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-market/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	RegisterRoute    = "/user/register"
	LoginRoute       = "/user/login"
	BalanceRoute     = "/user/balance"
	DailyRewardRoute = "/user/daily-reward"

	NFTsRoute          = "/nfts"
	MyNFTsRoute        = "/nfts/my"
	TrendingRoute      = "/nfts/trending"
	TransactionsRoute  = "/nfts/transactions"
	EarningsRoute      = "/nfts/earnings"
	NFTRoute           = "/nfts/:id"
	BuyNFTRoute        = "/nfts/:id/buy"
	ListNFTRoute       = "/nfts/:id/list"
	UnlistNFTRoute     = "/nfts/:id/unlist"
	FavoriteNFTRoute   = "/nfts/:id/favorite"
	TopCreatorsRoute   = "/creators/top"
	NotificationsRoute = "/notifications"
	ReadAllRoute       = "/notifications/read"
	ReadOneRoute       = "/notifications/read/:id"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	UserService         UserServicer
	NFTService          NFTServicer
	TransferService     TransferServicer
	NotificationService NotificationServicer
	JWTSecretKey        []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	_ = registerValidators()

	authHandler := NewAuthHandler(args.UserService)
	userHandler := NewUserHandler(args.UserService)
	nftsHandler := NewNFTsHandler(args.NFTService, args.TransferService)
	creatorsHandler := NewCreatorsHandler(args.NFTService)
	notificationsHandler := NewNotificationsHandler(args.NotificationService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	// публичные читающие роуты
	api.GET(NFTsRoute, nftsHandler.Index)
	api.GET(TrendingRoute, nftsHandler.Trending)
	api.GET(TopCreatorsRoute, creatorsHandler.Top)

	auth := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	auth.GET(BalanceRoute, userHandler.Balance)
	auth.POST(DailyRewardRoute, userHandler.ClaimDailyReward)

	auth.POST(NFTsRoute, nftsHandler.Create)
	auth.GET(MyNFTsRoute, nftsHandler.My)
	auth.GET(TransactionsRoute, nftsHandler.Transactions)
	auth.GET(EarningsRoute, nftsHandler.Earnings)
	auth.PUT(NFTRoute, nftsHandler.Update)
	auth.DELETE(NFTRoute, nftsHandler.Delete)
	auth.POST(BuyNFTRoute, nftsHandler.Buy)
	auth.PUT(ListNFTRoute, nftsHandler.List)
	auth.PUT(UnlistNFTRoute, nftsHandler.Unlist)
	auth.POST(FavoriteNFTRoute, nftsHandler.Favorite)
	auth.DELETE(FavoriteNFTRoute, nftsHandler.Unfavorite)

	auth.GET(NotificationsRoute, notificationsHandler.Index)
	auth.PUT(ReadAllRoute, notificationsHandler.ReadAll)
	auth.PUT(ReadOneRoute, notificationsHandler.ReadOne)

	return r
}
