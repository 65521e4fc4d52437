package dto

import (
	"bytes"
	"encoding/json"

	"github.com/SscSPs/hisab_manager/internal/core/accounting"
	"github.com/shopspring/decimal"
)

// Amount is a decimal accepted either as a JSON number or as a numeric string.
// Missing, null or malformed input decodes to zero instead of failing the request.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = accounting.ParseAmount(s)
		return nil
	}
	a.Decimal = accounting.ParseAmount(string(data))
	return nil
}
