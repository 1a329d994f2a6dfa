package constants

import "time"

// Session cookie
const (
	TokenCookieName = "token"
	TokenTTL        = 24 * time.Hour
)

// gin context keys
const (
	CtxPrincipal = "principal"
	CtxRequestID = "requestId"
)

// Payroll
const (
	PaymentCurrency     = "usd"
	MinorUnitsPerMajor  = 100
	ApprovalLockTTL     = 30 * time.Second
	ApprovalLockPrefix  = "payroll:approve:"
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

// Contacts
const ContactPageSize = 5

// Cache
const (
	AdminStatsCacheKey = "stats:admin"
	AdminStatsCacheTTL = 5 * time.Minute
)
