package core

import "errors"

var (
	// ErrOperationForbidden caller is not authorized for the operation
	ErrOperationForbidden = errors.New("operation forbidden")
	// ErrInvalidValue config value out of range or malformed
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidAmount amount is zero or negative
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrAlreadyConfigured asset already present in the registry
	ErrAlreadyConfigured = errors.New("asset already configured")
	// ErrOraclePriceZero oracle quoted a zero price
	ErrOraclePriceZero = errors.New("oracle price is zero")
	// ErrStalePrice oracle quote is older than the staleness window
	ErrStalePrice = errors.New("oracle price is stale")
	// ErrPriceNotFound no oracle quote for the asset
	ErrPriceNotFound = errors.New("oracle price not found")

	// ErrUnsupportedBorrowAsset asset is not a configured borrow asset
	ErrUnsupportedBorrowAsset = errors.New("unsupported borrow asset")
	// ErrBorrowAssetStillInUse outstanding principal is non-zero
	ErrBorrowAssetStillInUse = errors.New("borrow asset still in use")
	// ErrNoBorrowAssetLeft removing the last remaining borrow asset
	ErrNoBorrowAssetLeft = errors.New("no borrow asset left")
	// ErrNotACollateralToken asset is not a configured collateral asset
	ErrNotACollateralToken = errors.New("not a collateral token")
	// ErrCollateralIsBorrowAsset collateral asset is also a borrow asset
	ErrCollateralIsBorrowAsset = errors.New("collateral is borrow asset")

	// ErrInsufficientLiquidity free liquidity cannot cover the payout
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")
	// ErrInsufficientBalance custody balance cannot cover the transfer
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrAccountUnhealthy position would exceed its borrow capacity
	ErrAccountUnhealthy = errors.New("account unhealthy")
	// ErrBorrowNotFound account has no debt in the asset
	ErrBorrowNotFound = errors.New("borrow not found")
	// ErrRepaymentAmountIsZero repay called with a zero amount
	ErrRepaymentAmountIsZero = errors.New("repayment amount is zero")

	// ErrSupplierNotAllowed beneficiary may not hold a supply position
	ErrSupplierNotAllowed = errors.New("supplier not allowed")
	// ErrSharesCannotBeZero operation would mint or burn zero shares
	ErrSharesCannotBeZero = errors.New("shares cannot be zero")
	// ErrSharesLessThanMinShares remaining position below the min-shares floor
	ErrSharesLessThanMinShares = errors.New("shares cannot be less than min shares")
	// ErrInsufficientBorrowShares account owns fewer shares than requested
	ErrInsufficientBorrowShares = errors.New("insufficient borrow shares")
	// ErrZeroTotalBorrowTokens pool has no claim to redeem against
	ErrZeroTotalBorrowTokens = errors.New("zero total borrow tokens")

	// ErrCannotLiquidateYet account is still healthy
	ErrCannotLiquidateYet = errors.New("cannot liquidate yet")
	// ErrCollateralPreferenceEmpty liquidation needs at least one collateral asset
	ErrCollateralPreferenceEmpty = errors.New("collateral preference is empty")
)
