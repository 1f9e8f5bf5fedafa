package database

import (
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	decimalType     = reflect.TypeOf(decimal.Decimal{})
	nullDecimalType = reflect.TypeOf(decimal.NullDecimal{})
	timeType        = reflect.TypeOf(time.Time{})

	timeLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
)

// Decode converte Records nos tipos de domínio usando as tags mapstructure.
// out deve ser um ponteiro para struct ou para slice de structs.
func Decode(input interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			decimalHook,
			timeHook,
		),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	return errors.Wrap(decoder.Decode(input), "erro ao converter registros")
}

func decimalHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != decimalType && to != nullDecimalType {
		return data, nil
	}

	var (
		value decimal.Decimal
		err   error
	)

	switch v := data.(type) {
	case decimal.Decimal:
		value = v
	case decimal.NullDecimal:
		if to == nullDecimalType {
			return v, nil
		}
		value = v.Decimal
	case string:
		value, err = decimal.NewFromString(strings.TrimSpace(v))
	case []byte:
		value, err = decimal.NewFromString(strings.TrimSpace(string(v)))
	case float64:
		value = decimal.NewFromFloat(v)
	case float32:
		value = decimal.NewFromFloat32(v)
	case int64:
		value = decimal.NewFromInt(v)
	case int32:
		value = decimal.NewFromInt32(v)
	case int:
		value = decimal.NewFromInt(int64(v))
	default:
		return data, nil
	}

	if err != nil {
		return nil, err
	}

	if to == nullDecimalType {
		return decimal.NullDecimal{Decimal: value, Valid: true}, nil
	}
	return value, nil
}

func timeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != timeType {
		return data, nil
	}

	s, ok := data.(string)
	if !ok {
		return data, nil
	}

	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return nil, errors.Errorf("data em formato desconhecido: %q", s)
}
