package apierror

// Numeric error codes reported by the recommendation API in the error body.
const (
	// CodeServerError means the server encountered an internal error. The
	// request may be retried, but this usually indicates a problem on the API
	// side.
	CodeServerError = 0

	// CodeServerUnavailable means the server is currently unavailable. An
	// exponential backoff retry scheme is recommended.
	CodeServerUnavailable = 1

	// CodeTooManyRequests means the amount of requests exceeds the limit of
	// the subscription.
	CodeTooManyRequests = 2

	// CodeAuthError means authentication cannot be performed.
	CodeAuthError = 21

	// CodeJwtTokenExpired means the JWT token has expired.
	CodeJwtTokenExpired = 22

	// CodeRefreshTokenExpired means the refresh token has expired.
	CodeRefreshTokenExpired = 28

	// CodeWrongData means there is an error in the submitted data.
	CodeWrongData = 40

	// CodeDuplicated means some resource is duplicated.
	CodeDuplicated = 42

	// CodeForbidden means the account does not have enough permissions to
	// access the resource.
	CodeForbidden = 50

	// CodeNotFound means some resource does not exist.
	CodeNotFound = 60

	// CodeMethodNotAllowed means the HTTP method is not allowed.
	CodeMethodNotAllowed = 70
)
