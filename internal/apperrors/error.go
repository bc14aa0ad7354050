package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrLoginAlreadyExists     = errors.New("login already exists")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidPassword        = errors.New("invalid password")
	ErrAccountNotFound        = errors.New("account not found")
	ErrAccountBlocked         = errors.New("account is blocked")
	ErrCooldownActive         = errors.New("cooldown active")
	ErrSuspiciousActivity     = errors.New("suspicious activity detected")
	ErrInvalidTapCount        = errors.New("tap count must be positive")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrBelowMinWithdrawal     = errors.New("amount is below the minimum withdrawal")
	ErrWithdrawalNotFound     = errors.New("withdrawal request not found")
	ErrAlreadyProcessed       = errors.New("withdrawal request already processed")
	ErrRefundTargetMissing    = errors.New("refund target account no longer exists")
	ErrNoWithdrawals          = errors.New("no withdrawals found")
	ErrVersionConflict        = errors.New("concurrent update conflict")
	ErrTemporarilyUnavailable = errors.New("temporarily unavailable, retry later")

	ErrUnableToGetUserLoginFromContext = errors.New("unable to get user login from context")
)

type ValueError struct {
	caller  string
	message string
	err     error
}

func NewValueError(message string, caller string, err error) error {
	return &ValueError{
		caller:  caller,
		message: message,
		err:     err,
	}
}

func (v *ValueError) Error() string {
	return fmt.Sprintf("%s %s %s", v.caller, v.message, v.err)
}

func (v *ValueError) Unwrap() error {
	return v.err
}
