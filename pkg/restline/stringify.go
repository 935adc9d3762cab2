package restline

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// stringifyValue renders one argument value as the text substituted into
// a placeholder or form field. Only values with an unambiguous textual
// form are accepted; passing anything else is an expansion error rather
// than a silent fmt.Sprintf fallback.
func stringifyValue(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
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
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case uuid.UUID:
		return v.String(), nil
	case time.Time:
		// RFC 3339 rather than time.Time's default String format, which
		// is not valid in URLs or headers.
		return v.Format(time.RFC3339), nil
	case fmt.Stringer:
		return v.String(), nil
	case nil:
		return "", fmt.Errorf("argument value is nil")
	default:
		return "", fmt.Errorf("argument type %T has no textual form", v)
	}
}
