package cricsheet

import (
	"encoding/json"
	"os"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// ErrMalformedRecord marks records that cannot be decoded or fail structural
// validation.
var ErrMalformedRecord = errors.New("malformed cricsheet record")

var validate = validator.New()

// Parse decodes a single Cricsheet JSON document.
func Parse(data []byte) (*Record, error) {
	var record Record
	if err := sonic.Unmarshal(data, &record); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode cricsheet record"), ErrMalformedRecord)
	}
	if err := validate.Struct(&record); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "validate cricsheet record"), ErrMalformedRecord)
	}
	return &record, nil
}

// UnmarshalJSON decodes each ball individually. A ball that does not match
// the feed shape is reported on Malformed and the rest of the over survives,
// so downstream code can skip and count bad balls without losing the record.
func (o *Over) UnmarshalJSON(data []byte) error {
	var raw struct {
		Over       any               `json:"over"`
		Deliveries []json.RawMessage `json:"deliveries"`
	}
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.Over = raw.Over
	o.Deliveries = nil
	o.Malformed = nil
	for i, msg := range raw.Deliveries {
		var d Delivery
		if err := sonic.Unmarshal(msg, &d); err != nil {
			o.Malformed = append(o.Malformed,
				errors.Mark(errors.Wrapf(err, "decode delivery %d", i+1), ErrMalformedRecord))
			continue
		}
		o.Deliveries = append(o.Deliveries, d)
	}

	return nil
}

// ParseFile reads and decodes one match file.
func ParseFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read cricsheet file %s", path)
	}
	record, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse cricsheet file %s", path)
	}
	return record, nil
}
