package presenter

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Lutefd/curconv/internal/model"
	"github.com/shopspring/decimal"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Presenter renders one conversion outcome. Implementations never return
// rendering failures as conversion errors; the caller only logs them.
type Presenter interface {
	Header()
	Result(result model.ConversionResult) error
	Error(err error) error
}

type Options struct {
	Program string
	Now     func() time.Time
}

func New(format Format, w io.Writer, opts Options) Presenter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Program == "" {
		opts.Program = "curconv"
	}

	switch format {
	case FormatJSON:
		return &JSONPresenter{w: w, now: opts.Now}
	case FormatCSV:
		return &CSVPresenter{w: w, now: opts.Now}
	default:
		return &TextPresenter{w: w, now: opts.Now, program: opts.Program}
	}
}

// fixed rounds half away from zero, the same way in every output mode.
func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

func rounded(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
