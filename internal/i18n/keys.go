// internal/i18n/keys.go
package i18n

// Translation keys constants. Service error codes use the same keys, so the
// API surface can localize engine failures without extra mapping.
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserNotFound       = "auth.user_not_found"
	KeyAuthUserExists         = "auth.user_exists"

	// Deals
	KeyDealNotFound        = "deal.not_found"
	KeyDealNotASeller      = "deal.not_a_seller"
	KeyDealNotAConsumer    = "deal.not_a_consumer"
	KeyDealBlocked         = "deal.blocked"
	KeyDealAlreadyPaid     = "deal.already_paid"
	KeyDealAlreadySupplied = "deal.already_supplied"
	KeyDealNotPaid         = "deal.not_paid"
	KeyDealNotSupplied     = "deal.not_supplied"
	KeyDealStale           = "deal.stale"
	KeyDealSelfPurchase    = "deal.self_purchase"

	// Products
	KeyProductNotFound   = "product.not_found"
	KeyProductNotOwner   = "product.not_owner"
	KeyProductOutOfStock = "product.out_of_stock"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Rate limiting
	KeyRateLimitExceeded = "rate.limit_exceeded"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
)
