package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Lutefd/curconv/internal/commons"
	"github.com/Lutefd/curconv/internal/config"
	"github.com/Lutefd/curconv/internal/model"
	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

type Resolver struct {
	cfg    config.Config
	input  InputSource
	notice io.Writer
}

func NewResolver(cfg config.Config, input InputSource, notice io.Writer) *Resolver {
	return &Resolver{
		cfg:    cfg,
		input:  input,
		notice: notice,
	}
}

func (r *Resolver) Resolve(positional []string) (model.ConversionRequest, error) {
	switch len(positional) {
	case 3:
		amount, err := ParseAmount(positional[2])
		if err != nil {
			return model.ConversionRequest{}, err
		}
		return newRequest(positional[0], positional[1], amount)
	case 0:
		return r.interactive()
	default:
		return model.ConversionRequest{}, fmt.Errorf("%w: expected 0 or 3 positional arguments, got %d",
			model.ErrInvalidArguments, len(positional))
	}
}

func (r *Resolver) interactive() (model.ConversionRequest, error) {
	from, err := r.currency("Введите исходную валюту (по умолчанию %s): ", r.cfg.DefaultFrom)
	if err != nil {
		return model.ConversionRequest{}, err
	}
	to, err := r.currency("Введите целевую валюту (по умолчанию %s): ", r.cfg.DefaultTo)
	if err != nil {
		return model.ConversionRequest{}, err
	}

	for {
		line, err := r.input.ReadLine("Введите сумму для конвертации: ")
		if err != nil {
			return model.ConversionRequest{}, fmt.Errorf("%w: no amount entered: %w", model.ErrInvalidAmount, err)
		}
		amount, err := ParseAmount(line)
		if err == nil {
			return newRequest(from, to, amount)
		}
		color.New(color.FgRed).Fprintf(r.notice, "❌ %v, попробуйте ещё раз\n", err)
	}
}

func (r *Resolver) currency(prompt, fallback string) (string, error) {
	code, err := r.input.ReadLine(fmt.Sprintf(prompt, fallback))
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: failed to read input: %w", model.ErrInvalidArguments, err)
	}
	if code == "" {
		return fallback, nil
	}
	return code, nil
}

// ParseAmount accepts a positive decimal, with either a dot or a single comma
// as the separator.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", model.ErrInvalidAmount, raw)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: %q must be positive", model.ErrInvalidAmount, raw)
	}

	amount := d.InexactFloat64()
	if amount == 0 || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q is out of range", model.ErrInvalidAmount, raw)
	}
	return amount, nil
}

func newRequest(from, to string, amount float64) (model.ConversionRequest, error) {
	req := model.ConversionRequest{
		From:   strings.ToUpper(strings.TrimSpace(from)),
		To:     strings.ToUpper(strings.TrimSpace(to)),
		Amount: amount,
	}

	var validationErrors validator.ValidationErrors
	if errors.As(validate.Struct(req), &validationErrors) {
		fieldErr := validationErrors[0]
		if fieldErr.StructField() == "Amount" {
			return model.ConversionRequest{}, fmt.Errorf("%w: must be positive", model.ErrInvalidAmount)
		}
		return model.ConversionRequest{}, fmt.Errorf("%w: currency code %q must be %d letters",
			model.ErrInvalidArguments, fieldErr.Value(), commons.CurrencyCodeLength)
	}
	return req, nil
}
