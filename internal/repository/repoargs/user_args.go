package repoargs

import "github.com/fds-bd/fds-server/internal/domain"

type CreateUser struct {
	Email    string
	Password string
	Name     string
	Role     domain.RoleType
}
