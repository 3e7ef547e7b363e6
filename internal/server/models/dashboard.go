package models

// Dashboard summarises the back office. Financial totals are only filled
// for admins.
type Dashboard struct {
	TotalClients       int64
	ActiveContracts    int64
	UrgentTasks        []*Task
	TotalContractValue float64
	TotalItemsValue    float64
	TotalMeasuredValue float64
}
