package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/fds-bd/fds-server/internal/repository/memrepo"
	"github.com/fds-bd/fds-server/internal/repository/memstore"
	"github.com/fds-bd/fds-server/internal/repository/repoargs"
	"github.com/fds-bd/fds-server/internal/service/psswd"
	"github.com/fds-bd/fds-server/pkg/uow"
)

// newSeededServices builds the full service set over a freshly seeded
// in-memory store. Service tests run against the real repositories: with the
// store in memory there is nothing worth faking below the service layer.
func newSeededServices(jwtSecret []byte) (*AppServices, error) {
	db, dbErr := memstore.NewSeeded()
	if dbErr != nil {
		return nil, dbErr
	}

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
			return nil, regErr
		}
	}

	// MinCost keeps registration tests fast; seed hashes are unaffected.
	return Factory(unitOfWork, jwtSecret, psswd.PasswordHash{Cost: bcrypt.MinCost})
}
