package model

import "errors"

// Pipeline errors. Each maps to exactly one HTTP status and one user-safe
// message at the handler layer; raw provider detail stays in logs.
var (
	// ErrStoryTextRequired means the story text was empty after trimming.
	ErrStoryTextRequired = errors.New("story text is required")
	// ErrAINotConfigured means the gateway rejected our credentials.
	ErrAINotConfigured = errors.New("ai gateway is not configured")
	// ErrAIRateLimited means the gateway throttled the request.
	ErrAIRateLimited = errors.New("ai gateway rate limit exceeded")
	// ErrAIUpstream means the gateway failed server-side.
	ErrAIUpstream = errors.New("ai gateway upstream error")
	// ErrAIUnavailable covers transport failures and malformed envelopes.
	ErrAIUnavailable = errors.New("ai gateway unavailable")
	// ErrInvalidAnalysis means the model reply failed normalization.
	ErrInvalidAnalysis = errors.New("invalid analysis response")
	// ErrSaveFailed means the pipeline succeeded but persistence did not.
	ErrSaveFailed = errors.New("failed to save analysis")
)

// Persistence and ownership errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrEmptyUpdate   = errors.New("no fields to update")
	ErrNotStoryOwner = errors.New("story belongs to another user")
)

// Token verification errors.
var (
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is malformed")
)
