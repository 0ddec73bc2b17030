package yahoo

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChainRow is one contract row as returned by the provider. Strike and
// OpenInterest are the two mandatory source fields; everything else is
// enrichment that may be absent.
type ChainRow struct {
	ContractSymbol    string   `json:"contractSymbol"`
	Strike            *float64 `json:"strike"`
	OpenInterest      *int64   `json:"openInterest"`
	Volume            *int64   `json:"volume"`
	Bid               *float64 `json:"bid"`
	Ask               *float64 `json:"ask"`
	LastPrice         *float64 `json:"lastPrice"`
	ImpliedVolatility *float64 `json:"impliedVolatility"`
	Expiration        int64    `json:"expiration"`
}

// ChainSnapshot is the parsed result of one provider call: the underlying
// price, every listed expiration, and the call/put rows for one expiration.
type ChainSnapshot struct {
	Ticker         string
	StockPrice     decimal.Decimal
	Expirations    []time.Time
	ExpirationDate time.Time
	Calls          []ChainRow
	Puts           []ChainRow

	// Raw holds the unparsed response body for archiving.
	Raw []byte
}

type chainEnvelope struct {
	OptionChain struct {
		Result []chainResult  `json:"result"`
		Error  *envelopeError `json:"error"`
	} `json:"optionChain"`
}

type envelopeError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chainResult struct {
	UnderlyingSymbol string        `json:"underlyingSymbol"`
	ExpirationDates  []int64       `json:"expirationDates"`
	Quote            quoteBlock    `json:"quote"`
	Options          []optionBlock `json:"options"`
}

type quoteBlock struct {
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
}

type optionBlock struct {
	ExpirationDate int64      `json:"expirationDate"`
	Calls          []ChainRow `json:"calls"`
	Puts           []ChainRow `json:"puts"`
}
