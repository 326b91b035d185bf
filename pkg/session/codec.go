package session

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Codec converts the session mapping to and from its stored byte form.
// Encode must reject values it cannot represent; Decode must report
// malformed bytes as ErrCorruptPayload so the caller can fail open.
type Codec interface {
	Encode(data map[string]any) ([]byte, error)
	Decode(payload []byte) (map[string]any, error)
}

// BSONCodec is the default Codec. It stores the mapping as a BSON document,
// the native format of the canonical MongoDB record store, and confines
// values to a closed set so that every supported value survives a round
// trip unchanged:
//
//   - nil, string, bool
//   - signed and unsigned integers, normalized to int64 (uint values above
//     math.MaxInt64 are rejected)
//   - float32/float64, normalized to float64
//   - time.Time, normalized to UTC at millisecond precision (the BSON
//     datetime resolution)
//   - bson.ObjectID, the database-native document reference used for
//     authenticated-user identifiers
//   - []any and map[string]any of supported values, nested arbitrarily
//
// Anything else fails Encode with ErrUnsupportedType.
type BSONCodec struct{}

// Encode normalizes the mapping into the supported set and marshals it.
func (BSONCodec) Encode(data map[string]any) ([]byte, error) {
	doc := make(bson.M, len(data))
	for key, value := range data {
		nv, err := normalize(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		doc[key] = nv
	}

	payload, err := bson.Marshal(doc)
	if err != nil {
		return nil, errors.Join(ErrUnsupportedType, err)
	}
	return payload, nil
}

// Decode unmarshals a stored payload and canonicalizes driver types back
// into the supported set, so Decode(Encode(m)) equals m for every mapping
// Encode accepts.
func (BSONCodec) Decode(payload []byte) (map[string]any, error) {
	var doc bson.M
	if err := bson.Unmarshal(payload, &doc); err != nil {
		return nil, errors.Join(ErrCorruptPayload, err)
	}

	data := make(map[string]any, len(doc))
	for key, value := range doc {
		data[key] = canonicalize(value)
	}
	return data, nil
}

func normalize(v any) (any, error) {
	switch val := v.(type) {
	case nil, string, bool, int64, float64, bson.ObjectID:
		return val, nil
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint:
		if uint64(val) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint %d overflows int64", ErrUnsupportedType, val)
		}
		return int64(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint64 %d overflows int64", ErrUnsupportedType, val)
		}
		return int64(val), nil
	case float32:
		return float64(val), nil
	case time.Time:
		return val.UTC().Truncate(time.Millisecond), nil
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			nv, err := normalize(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = nv
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, elem := range val {
			nv, err := normalize(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			out[key] = nv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// canonicalize maps the driver's decode output back onto the supported
// set. The driver returns documents as bson.M or bson.D depending on
// nesting, arrays as bson.A, small integers as int32 and datetimes as
// bson.DateTime; none of those defined types compare equal to the plain
// types handlers put in.
func canonicalize(v any) any {
	switch val := v.(type) {
	case bson.M:
		out := make(map[string]any, len(val))
		for key, elem := range val {
			out[key] = canonicalize(elem)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(val))
		for _, elem := range val {
			out[elem.Key] = canonicalize(elem.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = canonicalize(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = canonicalize(elem)
		}
		return out
	case int32:
		return int64(val)
	case bson.DateTime:
		return val.Time().UTC()
	default:
		return val
	}
}
