package fieldfmt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/svcfmt/fieldfmt/pkg/dateutil"
	money "github.com/svcfmt/fieldfmt/pkg/decimal"
)

// coerceDecimal converts the numeric representations the presentation
// layer hands us into an arbitrary-precision decimal.
func coerceDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, nil
	case money.Money:
		return val.Decimal, nil
	case string:
		return decimal.NewFromString(val)
	case json.Number:
		return decimal.NewFromString(val.String())
	case float64:
		return decimal.NewFromFloat(val), nil
	case float32:
		return decimal.NewFromFloat32(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int32:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot coerce %T to decimal", v)
	}
}

// coerceTime converts a value to a timestamp. Zone-less strings are
// interpreted as wall-clock time in loc, matching the display zone.
func coerceTime(v any, loc *time.Location) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case string:
		return dateutil.ParseInLocation(val, loc)
	default:
		return time.Time{}, fmt.Errorf("cannot coerce %T to timestamp", v)
	}
}

func coerceBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		return strconv.ParseBool(val)
	default:
		return false, fmt.Errorf("cannot coerce %T to boolean", v)
	}
}

// coerceDuration accepts a time.Duration, a Go duration string such as
// "26h3m4s", or a bare numeric second count.
func coerceDuration(v any) (time.Duration, error) {
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case string:
		return time.ParseDuration(val)
	case int:
		return time.Duration(val) * time.Second, nil
	case int64:
		return time.Duration(val) * time.Second, nil
	case float64:
		return time.Duration(val * float64(time.Second)), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, err
		}
		return time.Duration(f * float64(time.Second)), nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to duration", v)
	}
}
