package repoargs

type CreateMember struct {
	UserID     string
	Phone      string
	Address    string
	MonthlyFee int64
}
