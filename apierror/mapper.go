package apierror

import (
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
)

// ServerError is the wire shape of a non-success response body.
type ServerError struct {
	ErrorCode *int           `json:"error_code"`
	ErrorName string         `json:"error_name"`
	Message   string         `json:"message"`
	ErrorData map[string]any `json:"error_data"`
}

const retryAfterKey = "retry_after"

// statusCodeKinds maps the documented (http status, server error code) pairs
// to their kinds. First match wins; anything else degrades to KindServerError.
var statusCodeKinds = map[int]map[int]Kind{
	http.StatusUnauthorized: {
		CodeAuthError:           KindAuthError,
		CodeJwtTokenExpired:     KindJwtTokenExpired,
		CodeRefreshTokenExpired: KindRefreshTokenExpired,
	},
	http.StatusBadRequest: {
		CodeWrongData:  KindWrongData,
		CodeDuplicated: KindDuplicated,
	},
	http.StatusForbidden: {
		CodeForbidden: KindForbidden,
	},
	http.StatusNotFound: {
		CodeNotFound: KindNotFound,
	},
	http.StatusMethodNotAllowed: {
		CodeMethodNotAllowed: KindMethodNotAllowed,
	},
	http.StatusTooManyRequests: {
		CodeTooManyRequests: KindTooManyRequests,
	},
}

// Classify turns a non-success HTTP response into a typed error. body may be
// nil when the response carried no parseable error body (the resulting error
// then has a nil ErrorCode). A mismatched status/code pair degrades to
// KindServerError rather than trusting either side alone.
func Classify(httpStatus int, body *ServerError) *Error {
	kind := KindServerError
	if httpStatus == http.StatusServiceUnavailable {
		kind = KindServiceUnavailable
	} else if body != nil && body.ErrorCode != nil {
		if byCode, ok := statusCodeKinds[httpStatus]; ok {
			if k, ok := byCode[*body.ErrorCode]; ok {
				kind = k
			}
		}
	}

	apiErr := &Error{
		Kind:       kind,
		HTTPStatus: httpStatus,
	}
	if body == nil {
		return apiErr
	}

	apiErr.ErrorCode = body.ErrorCode
	apiErr.ErrorName = body.ErrorName
	apiErr.Message = body.Message
	apiErr.RetryAfter = retryAfterSeconds(body.ErrorData)

	for key, value := range body.ErrorData {
		if key == retryAfterKey {
			continue
		}
		if apiErr.Extra == nil {
			apiErr.Extra = make(map[string]string, len(body.ErrorData))
		}
		apiErr.Extra[key] = stringifyExtra(value)
	}

	return apiErr
}

// ClassifyBody decodes raw response bytes and classifies. An unparseable or
// empty body yields an error with no server code.
func ClassifyBody(httpStatus int, body []byte) *Error {
	if len(body) == 0 {
		return Classify(httpStatus, nil)
	}
	var serverErr ServerError
	if err := json.Unmarshal(body, &serverErr); err != nil {
		return Classify(httpStatus, nil)
	}
	return Classify(httpStatus, &serverErr)
}

func retryAfterSeconds(data map[string]any) *int {
	raw, ok := data[retryAfterKey]
	if !ok || raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		seconds := int(v)
		return &seconds
	case json.Number:
		if i, err := v.Int64(); err == nil {
			seconds := int(i)
			return &seconds
		}
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return &i
		}
	case int:
		return &v
	}
	return nil
}

func stringifyExtra(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
