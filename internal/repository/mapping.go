package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func mapMoneyToDomain(amount decimal.Decimal, isoCode string) (domain.Money, error) {
	parsedCurrency, err := currency.ParseISO(isoCode)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", isoCode, err)
	}

	return domain.Money{Amount: amount, Currency: parsedCurrency}, nil
}

// notFound translates pgx.ErrNoRows into domain.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
