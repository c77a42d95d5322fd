package repoargs

type FundTotals struct {
	TotalAmount      int64
	TotalMembers     int64
	MonthlyCollected int64
}
