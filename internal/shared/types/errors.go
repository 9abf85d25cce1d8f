package types

import "errors"

var (
	ErrMalformedResult  = errors.New("cost explorer result is missing expected structure")
	ErrUnknownAccount   = errors.New("account id not found in organization")
	ErrMissingSecretID  = errors.New("no secret id configured. Set secret_id or COST_REPORT_SECRET_ID")
	ErrSecretKeyMissing = errors.New("webhook url key not found in secret")
)
