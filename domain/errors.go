package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// auction engine errors, each aborts the call before any state change

	// ErrInvalidTiming covers bad start/end ordering and calls outside the
	// bidding window
	ErrInvalidTiming = errors.New("invalid timing")
	// ErrInvalidPrice covers zero prices, reserve below start price and raises
	// below the minimum-increase threshold
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInsufficientPayment is returned when the supplied value or ledger
	// balance does not cover the required escrow or listing fee
	ErrInsufficientPayment = errors.New("insufficient payment")
	// ErrUnsupportedPaymentToken is returned when no price feed is configured
	// for the requested payment method
	ErrUnsupportedPaymentToken = errors.New("payment token not supported")
	// ErrUnauthorized is returned when the caller is not the bidder, seller or
	// owner the operation requires
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidState covers transitions against a terminal or mismatched
	// record: auction already sold or cancelled, bid already closed, accepting
	// before the window end, accepting a non-highest bid, cancelling the
	// protected highest bid
	ErrInvalidState = errors.New("invalid state")
	// ErrZeroBalance is returned by withdrawals with nothing to withdraw
	ErrZeroBalance = errors.New("zero balance")

	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
)
