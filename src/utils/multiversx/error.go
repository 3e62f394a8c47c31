package multiversx

import "fmt"

// FetchError wraps a failed gateway call together with the upstream response.
// It aborts the current ingestion cycle only, the next cycle retries naturally.
type FetchError struct {
	StatusCode int
	Body       string
	Err        error
}

func (self *FetchError) Error() string {
	if self.Err != nil {
		return fmt.Sprintf("gateway request failed: %s", self.Err.Error())
	}
	return fmt.Sprintf("gateway request failed: status %d: %s", self.StatusCode, self.Body)
}

func (self *FetchError) Unwrap() error {
	return self.Err
}
