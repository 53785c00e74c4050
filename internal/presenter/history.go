package presenter

import (
	"errors"
	"fmt"
	"io"

	"github.com/Lutefd/curconv/internal/commons"
	"github.com/Lutefd/curconv/internal/model"
)

type HistoryPresenter struct {
	w io.Writer
}

func NewHistoryPresenter(w io.Writer) *HistoryPresenter {
	return &HistoryPresenter{w: w}
}

// Show prints records most recent first, followed by the total.
func (p *HistoryPresenter) Show(records []model.HistoryRecord) error {
	if len(records) == 0 {
		_, err := noticeColor.Fprintln(p.w, "📝 История конвертаций пуста")
		return err
	}

	banner(p.w, "ИСТОРИЯ КОНВЕРТАЦИЙ")
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		rateColor.Fprintf(p.w, "📅 %s\n", rec.Timestamp.Format(commons.DisplayTimeLayout))
		valueColor.Fprintf(p.w, "   %s %s = %s %s\n",
			fixed(rec.Amount, commons.AmountPrecision), rec.FromCurrency,
			fixed(rec.Result, commons.AmountPrecision), rec.ToCurrency)
		mutedColor.Fprintf(p.w, "   Курс: 1 %s = %s %s\n",
			rec.FromCurrency, fixed(rec.ExchangeRate, commons.RatePrecision), rec.ToCurrency)
		fmt.Fprintln(p.w)
	}
	_, err := frameColor.Fprintf(p.w, "Всего записей: %d\n", len(records))
	return err
}

// Unavailable reports a missing or unreadable history file. It is a notice, not a failure.
func (p *HistoryPresenter) Unavailable(err error) error {
	if errors.Is(err, model.ErrHistoryNotFound) {
		_, werr := errorColor.Fprintln(p.w, "❌ История конвертаций пуста или файл не найден")
		return werr
	}
	_, werr := errorColor.Fprintf(p.w, "❌ Ошибка чтения файла истории: %v\n", err)
	return werr
}
