package launcher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hashicorp/go-multierror"
)

// Field is one value packed into a buffer side. A field with Raw bytes takes its bits from
// them, otherwise from Value.
type Field struct {
	Width int
	Value uint64
	Raw   []byte
}

// parseFields parses "width:value" pairs. Values are decimal integers or 0x-prefixed
// byte strings.
func parseFields(raw string) ([]Field, error) {
	var (
		fields []Field
		result *multierror.Error
	)
	for _, part := range splitCSV(raw) {
		pair := strings.SplitN(part, ":", 2)
		if len(pair) != 2 {
			result = multierror.Append(result, fmt.Errorf("field %q: expected width:value", part))
			continue
		}
		width, err := parseWidth(pair[0])
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("field %q: %w", part, err))
			continue
		}
		f, err := parseValue(width, pair[1])
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("field %q: %w", part, err))
			continue
		}
		fields = append(fields, f)
	}
	return fields, result.ErrorOrNil()
}

// parseWidths parses a comma separated list of field widths.
func parseWidths(raw string) ([]int, error) {
	var (
		widths []int
		result *multierror.Error
	)
	for _, part := range splitCSV(raw) {
		width, err := parseWidth(part)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("width %q: %w", part, err))
			continue
		}
		if width > 64 {
			result = multierror.Append(result, fmt.Errorf("width %d: at most 64 bits can be unpacked", width))
			continue
		}
		widths = append(widths, width)
	}
	return widths, result.ErrorOrNil()
}

func parseWidth(s string) (int, error) {
	width, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if width <= 0 {
		return 0, fmt.Errorf("width must be positive, got %d", width)
	}
	return width, nil
}

func parseValue(width int, s string) (Field, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		raw, err := hexutil.Decode(s)
		if err != nil {
			return Field{}, err
		}
		if width > 8*len(raw) {
			return Field{}, fmt.Errorf("%d bits wanted from a %d byte value", width, len(raw))
		}
		return Field{Width: width, Raw: raw}, nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Field{}, err
	}
	if width > 64 {
		return Field{}, fmt.Errorf("%d bits wanted from an integer, use a 0x value", width)
	}
	if width < 64 && v>>uint(width) != 0 {
		return Field{}, fmt.Errorf("value %d does not fit into %d bits", v, width)
	}
	return Field{Width: width, Value: v}, nil
}
