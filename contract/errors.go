package contract

import (
	"fmt"
	"strings"

	"meridian_protocol/sdk"
)

// Stable error symbols shared across the suite. These are part of the caller
// contract: clients match on the symbol, the message is free-form.
const (
	ErrNotAuthorizedSigner      = "NotAuthorizedSigner"
	ErrUnauthorized             = "Unauthorized"
	ErrTransactionNotPending    = "TransactionNotPending"
	ErrTransactionAlreadyExec   = "TransactionAlreadyExecuted"
	ErrAlreadyApproved          = "AlreadyApproved"
	ErrInvalidTransactionId     = "InvalidTransactionId"
	ErrRequiredApprovalsTooLow  = "RequiredApprovalsTooLow"
	ErrRequiredApprovalsTooHigh = "RequiredApprovalsTooHigh"
	ErrCooldownPeriodTooLow     = "CooldownPeriodTooLow"
	ErrCooldownPeriodTooHigh    = "CooldownPeriodTooHigh"
	ErrInsufficientApprovals    = "InsufficientApprovals"
	ErrCooldownNotExpired       = "CooldownNotExpired"
	ErrInvalidAccount           = "InvalidAccount"
	ErrInvalidRole              = "InvalidRole"
	ErrInvalidAmount            = "InvalidAmount"
	ErrInvalidDataLength        = "InvalidDataLength"
	ErrDuplicateSigners         = "DuplicateSigners"
	ErrTooManySigners           = "TooManySigners"
	ErrEmptyRejectionReason     = "EmptyRejectionReason"
	ErrRejectionReasonTooLong   = "RejectionReasonTooLong"
	ErrOverflow                 = "Overflow"
	ErrMathOverflow             = "MathOverflow"
	ErrTokenProgramNotSet       = "TokenProgramNotSet"
	ErrPresaleProgramNotSet     = "PresaleProgramNotSet"
	ErrAlreadyInitialized       = "AlreadyInitialized"
	ErrNotInitialized           = "NotInitialized"

	ErrTokenPaused            = "TokenPaused"
	ErrBlacklisted            = "Blacklisted"
	ErrRestricted             = "Restricted"
	ErrNotWhitelisted         = "NotWhitelisted"
	ErrSellLimitExceeded      = "SellLimitExceeded"
	ErrSupplyCapExceeded      = "SupplyCapExceeded"
	ErrVersionMismatch        = "VersionMismatch"
	ErrGovernanceCooldown     = "GovernanceCooldown"
	ErrNoPendingGovernance    = "NoPendingGovernance"
	ErrMintAuthorityRevoked   = "MintAuthorityRevoked"

	ErrPresaleNotActive        = "PresaleNotActive"
	ErrPresaleStopped          = "PresaleStopped"
	ErrInvalidStatusTransition = "InvalidStatusTransition"
	ErrPresaleCapExceeded      = "PresaleCapExceeded"
	ErrPerUserLimitExceeded    = "PerUserLimitExceeded"
	ErrTokenNotAllowed         = "TokenNotAllowed"
	ErrInvalidPrice            = "InvalidPrice"
	ErrStalePrice              = "StalePrice"
	ErrInvalidPriceFeed        = "InvalidPriceFeed"
	ErrInvalidVault            = "InvalidVault"
	ErrInsufficientVaultFunds  = "InsufficientVaultFunds"
	ErrTreasuryNotSet          = "TreasuryNotSet"
	ErrCapBelowRaised          = "CapBelowRaised"
	ErrPerUserAboveCap         = "PerUserAboveCap"
)

// Fail reverts the whole instruction with a stable symbol and free-form detail.
// Example payload: contract.Fail(contract.ErrCooldownNotExpired, "1799 < 1800")
func Fail(symbol string, format string, args ...any) {
	sdk.Revert(fmt.Sprintf(format, args...), symbol)
}

// Catch runs fn and returns the error symbol it reverted with, or "" when it
// completed. Used by tests to assert on the taxonomy without string soup.
func Catch(fn func()) (symbol string) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if idx := strings.Index(msg, ":"); idx > 0 {
				symbol = msg[:idx]
			} else {
				symbol = msg
			}
		}
	}()
	fn()
	return ""
}
