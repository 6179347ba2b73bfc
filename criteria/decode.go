package criteria

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

// ErrDecodingCriteriaFailed is returned when inbound criteria JSON is malformed or has unknown fields.
var ErrDecodingCriteriaFailed = errors.New("decoding criteria failed")

var strictJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

// Entity is the set of criteria types of this package.
type Entity interface {
	User | Group | GroupUser | Invitation | Limit | Transaction | TransactionGroupUser | Category
}

// Decode parses criteria JSON, e.g. {"name":"Alice","and":[{"surname":"Brown"}]}.
// Unknown fields are rejected.
func Decode[T Entity](data []byte) (T, error) {
	var c T

	if err := strictJSON.Unmarshal(data, &c); err != nil {
		return c, errors.Join(ErrDecodingCriteriaFailed, err)
	}

	return c, nil
}
