package presenter

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Lutefd/curconv/internal/commons"
	"github.com/Lutefd/curconv/internal/model"
	"github.com/fatih/color"
)

const (
	resultTop    = "════════════════ РЕЗУЛЬТАТ ════════════════"
	resultBottom = "═══════════════════════════════════════════"
)

var (
	bannerColor = color.New(color.FgGreen, color.Bold)
	frameColor  = color.New(color.FgYellow, color.Bold)
	valueColor  = color.New(color.FgGreen)
	rateColor   = color.New(color.FgCyan)
	mutedColor  = color.New(color.FgHiBlack)
	errorColor  = color.New(color.FgRed)
	noticeColor = color.New(color.FgYellow)
)

type TextPresenter struct {
	w       io.Writer
	now     func() time.Time
	program string
}

func (p *TextPresenter) Header() {
	banner(p.w, "КОНВЕРТЕР ВАЛЮТ")
}

func (p *TextPresenter) Result(result model.ConversionResult) error {
	req := result.Request
	updated := result.RatesUpdatedAt

	fmt.Fprintln(p.w)
	frameColor.Fprintln(p.w, resultTop)
	valueColor.Fprintf(p.w, "%s %s = %s %s\n",
		fixed(req.Amount, commons.AmountPrecision), req.From,
		fixed(result.Amount, commons.AmountPrecision), req.To)
	fmt.Fprintln(p.w)
	rateColor.Fprintf(p.w, "Курс: 1 %s = %s %s\n", req.From, fixed(result.Rate, commons.RatePrecision), req.To)
	fmt.Fprintln(p.w)
	mutedColor.Fprintf(p.w, "Последнее обновление: %s (%s)\n",
		updated.Format(commons.DisplayTimeLayout), TimeAgo(p.now().Sub(updated)))
	fmt.Fprintln(p.w)
	_, err := frameColor.Fprintln(p.w, resultBottom)
	return err
}

func (p *TextPresenter) Error(err error) error {
	if _, werr := errorColor.Fprintf(p.w, "❌ Ошибка: %v\n", err); werr != nil {
		return werr
	}
	if errors.Is(err, model.ErrInvalidArguments) {
		return Usage(p.w, p.program)
	}
	return nil
}

func Usage(w io.Writer, program string) error {
	_, err := errorColor.Fprintf(w,
		"Использование: %[1]s [--json|--csv] <from> <to> <amount>\n"+
			"   или: %[1]s [--json|--csv]   (интерактивный режим)\n"+
			"   или: %[1]s --history\n", program)
	return err
}

func banner(w io.Writer, title string) {
	const width = 40
	pad := width - 2 - len([]rune(title))
	if pad < 0 {
		pad = 0
	}
	left := pad / 2

	bannerColor.Fprintln(w, "╔════════════════════════════════════════╗")
	bannerColor.Fprintf(w, "║ %*s%s%*s ║\n", left, "", title, pad-left, "")
	bannerColor.Fprintln(w, "╚════════════════════════════════════════╝")
	fmt.Fprintln(w)
}
