package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// UnavailableError reports that an external collaborator is not
// configured or not reachable. It never carries a state change.
type UnavailableError struct {
	Capability string
}

func (e UnavailableError) Error() string {
	if e.Capability == "" {
		return "capability unavailable"
	}
	return fmt.Sprintf("%s unavailable", e.Capability)
}

// Is enables errors.Is matching on UnavailableError.
func (e UnavailableError) Is(target error) bool {
	_, ok := target.(UnavailableError)
	if ok {
		return true
	}
	_, ok = target.(*UnavailableError)
	return ok
}

// ErrUnavailable is the sentinel error for missing capabilities.
var ErrUnavailable = UnavailableError{}

// UploadError reports that a file failed to upload after the blob
// store was invoked. The batch it belonged to appends nothing.
type UploadError struct {
	Key string
	Err error
}

func (e UploadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upload of %s failed", e.Key)
	}
	return fmt.Sprintf("upload of %s failed: %v", e.Key, e.Err)
}

func (e UploadError) Unwrap() error { return e.Err }

// Is enables errors.Is matching on UploadError.
func (e UploadError) Is(target error) bool {
	_, ok := target.(UploadError)
	if ok {
		return true
	}
	_, ok = target.(*UploadError)
	return ok
}

// ErrUpload is the sentinel error for failed uploads.
var ErrUpload = UploadError{}

// ConflictError represents a rejected concurrent operation.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	if e.Reason == "" {
		return "conflict"
	}
	return e.Reason
}

// Is enables errors.Is matching on ConflictError.
func (e ConflictError) Is(target error) bool {
	_, ok := target.(ConflictError)
	if ok {
		return true
	}
	_, ok = target.(*ConflictError)
	return ok
}

// ErrUploadInFlight is returned when a second upload batch is started
// while one is still pending for the same editing session.
var ErrUploadInFlight = ConflictError{Reason: "an upload is already in flight for this session"}
