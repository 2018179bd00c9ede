package utils

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// IDString converts a flexible user/item identifier to its canonical string
// form. The underlying type of an identifier (string, integer, UUID) is
// configured per database, so endpoint methods accept `any` and normalise here.
func IDString(id any) (string, error) {
	switch v := id.(type) {
	case nil:
		return "", errors.New("id is nil")
	case string:
		if v == "" {
			return "", errors.New("id is empty")
		}
		return v, nil
	case uuid.UUID:
		return v.String(), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", errors.Errorf("unsupported id type %T", id)
	}
}

// IDPathSegment converts a flexible identifier to a percent-encoded URL path
// segment.
func IDPathSegment(id any) (string, error) {
	s, err := IDString(id)
	if err != nil {
		return "", err
	}
	return url.PathEscape(s), nil
}
