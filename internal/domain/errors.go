package domain

import (
	"errors"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance = errors.New("not enough balance")
	ErrNFTNotOnSale     = errors.New("nft not found or not for sale")
	ErrOwnerConflict    = errors.New("owner conflict")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrRewardNotReady   = errors.New("daily reward not ready")
)
