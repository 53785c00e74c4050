package presenter

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/Lutefd/curconv/internal/commons"
	"github.com/Lutefd/curconv/internal/model"
)

// CSVPresenter writes a single headerless line:
// timestamp,from,to,amount,result,rate
type CSVPresenter struct {
	w   io.Writer
	now func() time.Time
}

func (p *CSVPresenter) Header() {}

func (p *CSVPresenter) Result(result model.ConversionResult) error {
	return p.write([]string{
		p.now().Format(time.RFC3339),
		result.Request.From,
		result.Request.To,
		fixed(result.Request.Amount, commons.AmountPrecision),
		fixed(result.Amount, commons.AmountPrecision),
		fixed(result.Rate, commons.CSVRatePrecision),
	})
}

func (p *CSVPresenter) Error(err error) error {
	return p.write([]string{"error", err.Error()})
}

func (p *CSVPresenter) write(record []string) error {
	cw := csv.NewWriter(p.w)
	if err := cw.Write(record); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
