package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// Times returns the price of qty units.
func (m Money) Times(qty int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(qty))),
		Currency: m.Currency,
	}
}

func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// String formats the amount with two decimal places followed by the ISO code.
func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency.String()
}

type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.Amount, Currency: m.Currency.String()})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var v moneyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	unit, err := currency.ParseISO(v.Currency)
	if err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", v.Currency, err)
	}

	m.Amount = v.Amount
	m.Currency = unit
	return nil
}
