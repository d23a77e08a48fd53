package douban

import "errors"

const (
	categoriesFailedMessage = "failed to fetch douban category data"
	imageFailedMessage      = "failed to fetch douban image"
)

// ErrRequestFailed matches every RequestError via errors.Is.
var ErrRequestFailed = errors.New("douban request failed")

// RequestError reports a response whose status was not 2xx. It deliberately
// carries only a fixed message; the status is logged, not returned.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }
