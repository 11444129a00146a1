package youtube

import "fmt"

// NotFoundError reports a video id the upstream services have no data
// for: no captions, or no such video.
type NotFoundError struct {
	VideoID string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("video %s: %s", e.VideoID, e.Message)
	}
	return fmt.Sprintf("video %s not found", e.VideoID)
}

func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// RemoteError wraps transport or payload failures of an upstream
// collaborator service.
type RemoteError struct {
	Service string
	Err     error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func IsRemote(err error) bool {
	_, ok := err.(*RemoteError)
	return ok
}
