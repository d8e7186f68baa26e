// Package httputil provides retry helpers for HTTP clients.
//
// [Retry] re-runs an operation with exponential backoff when it fails with a
// [RetryableError]. Clients wrap transient failures (network errors, 5xx
// responses) with [Retryable] and return everything else unwrapped, so a 404
// or a rate-limit response is reported immediately.
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
package httputil
