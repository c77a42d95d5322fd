package repoargs

type RepositoryName string

const (
	UserRepoName    RepositoryName = "user"
	MemberRepoName  RepositoryName = "member"
	PaymentRepoName RepositoryName = "payment"
	FundRepoName    RepositoryName = "fund"
)
