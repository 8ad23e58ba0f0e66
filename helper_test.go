package finances

import (
	"time"

	"github.com/shopspring/decimal"
)

// day is a shorthand for tests to build dates from consts.
func day(y int, m time.Month, d int) Date { return NewDate(y, m, d) }

// dec is a shorthand for tests to build decimals from consts.
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ob is a shorthand for tests to build a balance observation.
func ob(on Date, seq int64, balance float64) Observation {
	return Observation{Date: on, Seq: seq, Balance: dec(balance)}
}

// current is a shorthand for tests to declare an active current account.
func current(id string) *Account {
	return &Account{ID: id, Type: Current, Currency: "GBP", Status: Active}
}
