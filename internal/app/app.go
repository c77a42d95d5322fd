package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/fds-bd/fds-server/internal/config"
	"github.com/fds-bd/fds-server/internal/fundsync"
	"github.com/fds-bd/fds-server/internal/repository/memrepo"
	"github.com/fds-bd/fds-server/internal/repository/memstore"
	"github.com/fds-bd/fds-server/internal/repository/repoargs"
	"github.com/fds-bd/fds-server/internal/service"
	"github.com/fds-bd/fds-server/internal/service/psswd"
	"github.com/fds-bd/fds-server/internal/transport/api"
	"github.com/fds-bd/fds-server/pkg/uow"
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

	db, dbErr := memstore.NewSeeded()
	if dbErr != nil {
		return fmt.Errorf("app run: %s", dbErr.Error())
	}

	unitOfWork, uowErr := initUOW(db)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTSecret), psswd.PasswordHash{})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:         a.Logger,
		UserService:    services.UserService,
		MemberService:  services.MemberService,
		PaymentService: services.PaymentService,
		FundService:    services.FundService,
		JWTSecretKey:   []byte(a.Config.JWTSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	refresher := fundsync.New(services.FundService, a.Logger).
		SetInterval(a.Config.FundRefreshInterval)

	go refresher.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(db *memstore.DB) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(db)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(a memstore.Accessor) uow.Repository {
			return memrepo.NewUserRepository(a)
		},
		repoargs.MemberRepoName: func(a memstore.Accessor) uow.Repository {
			return memrepo.NewMemberRepository(a)
		},
		repoargs.PaymentRepoName: func(a memstore.Accessor) uow.Repository {
			return memrepo.NewPaymentRepository(a)
		},
		repoargs.FundRepoName: func(a memstore.Accessor) uow.Repository {
			return memrepo.NewFundRepository(a)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
