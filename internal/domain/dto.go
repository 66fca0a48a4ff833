package domain

type TransactionStatusType string

const (
	TransactionStatusCompleted TransactionStatusType = "Completed"
	TransactionStatusFailed    TransactionStatusType = "Failed"
)

type CreatorsPeriodType string

const (
	CreatorsPeriod24H CreatorsPeriodType = "24h"
	CreatorsPeriod7D  CreatorsPeriodType = "7d"
	CreatorsPeriod30D CreatorsPeriodType = "30d"
)
