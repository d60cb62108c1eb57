package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBackendUnavailable       = errors.New("meeting backend unavailable")
	ErrMalformedBackendResponse = errors.New("malformed meeting backend response")
)

// MeetingExpiredError reports that the backend no longer knows the meeting.
type MeetingExpiredError struct {
	MeetingID MeetingID
}

func (e *MeetingExpiredError) Error() string {
	return fmt.Sprintf("meeting %s expired", e.MeetingID)
}

// BackendError is a non-success response from the meeting backend.
// Body is for logs only.
type BackendError struct {
	Status int
	Body   string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("meeting backend returned %d: %s", e.Status, e.Body)
}

func IsMeetingExpired(err error) bool {
	var expired *MeetingExpiredError
	return errors.As(err, &expired)
}
