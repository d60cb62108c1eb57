package orch

import "errors"

// Outcomes of IssueToken. Callers map them to responses with errors.Is.
var (
	ErrMissingParameter           = errors.New("room and openid_token are required")
	ErrIdentityVerificationFailed = errors.New("openid token verification failed")
	ErrNotAMember                 = errors.New("user is not a member of this room")
	ErrDirectoryUnavailable       = errors.New("membership lookup failed")
	ErrSessionCreationFailed      = errors.New("failed to create call session")
	ErrSessionJoinFailed          = errors.New("failed to join call session")
)
