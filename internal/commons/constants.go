package commons

import "time"

const (
	DefaultAPIBaseURL  = "https://api.exchangerate-api.com/v4/latest"
	DefaultConfigFile  = "config.json"
	DefaultHistoryFile = "history.json"
	DefaultLogLevel    = "warn"
	FetchTimeout       = 10 * time.Second
	CurrencyCodeLength = 3
	HistoryFileMode    = 0o644
	DisplayTimeLayout  = "2006-01-02 15:04:05"
	AmountPrecision    = 2
	RatePrecision      = 4
	CSVRatePrecision   = 6
)
