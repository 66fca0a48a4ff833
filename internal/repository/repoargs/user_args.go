package repoargs

import "github.com/shopspring/decimal"

type CreateUser struct {
	Fullname       string
	Age            int32
	Email          string
	Password       string
	ProfilePicture string
	Balance        decimal.Decimal
}
