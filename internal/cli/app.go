package cli

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Lutefd/curconv/internal/commons"
	"github.com/Lutefd/curconv/internal/config"
	"github.com/Lutefd/curconv/internal/logger"
	"github.com/Lutefd/curconv/internal/model"
	"github.com/Lutefd/curconv/internal/presenter"
	"github.com/Lutefd/curconv/internal/rates"
	"github.com/Lutefd/curconv/internal/repository"
	"github.com/Lutefd/curconv/internal/service"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

type App struct {
	env        commons.Env
	program    string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	input      InputSource
	now        func() time.Time
	httpClient *http.Client
	history    repository.HistoryRepository
}

type Option func(*App)

func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdin = stdin
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithInput replaces the terminal prompt reader.
func WithInput(input InputSource) Option {
	return func(a *App) {
		a.input = input
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(a *App) {
		a.httpClient = client
	}
}

func WithHistory(history repository.HistoryRepository) Option {
	return func(a *App) {
		a.history = history
	}
}

func WithProgram(name string) Option {
	return func(a *App) {
		a.program = name
	}
}

func NewApp(env commons.Env, opts ...Option) *App {
	a := &App{
		env:     env,
		program: "curconv",
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.history == nil {
		a.history = repository.NewJSONHistoryRepository(env.HistoryPath)
	}
	return a
}

// Run executes one invocation and returns the process exit code. Every
// conversion error is rendered in the active output format.
func (a *App) Run(ctx context.Context, args []string) int {
	inv := ParseArgs(args)

	switch inv.Mode {
	case ModeHistory:
		a.showHistory(ctx)
		return ExitOK
	case ModeHelp:
		if err := presenter.Usage(a.stdout, a.program); err != nil {
			logger.Errorf("failed to print usage: %v", err)
		}
		return ExitOK
	}

	cfg := config.Load(a.env.ConfigPath)
	format := inv.Format
	if format == "" {
		parsed, err := presenter.ParseFormat(cfg.OutputFormat)
		if err != nil {
			parsed = presenter.FormatText
		}
		format = parsed
	}

	p := presenter.New(format, a.stdout, presenter.Options{Program: a.program, Now: a.now})
	p.Header()

	result, err := a.convert(ctx, cfg, format, inv.Positional)
	if err != nil {
		logger.Debugf("conversion failed: %v", err)
		if rerr := p.Error(err); rerr != nil {
			logger.Errorf("failed to render error: %v", rerr)
		}
		return ExitFailure
	}

	a.record(ctx, result)

	if err := p.Result(result); err != nil {
		logger.Errorf("failed to render result: %v", err)
		return ExitFailure
	}
	return ExitOK
}

func (a *App) convert(ctx context.Context, cfg config.Config, format presenter.Format, positional []string) (model.ConversionResult, error) {
	// Prompts stay off stdout when stdout carries machine-readable output.
	promptOut := a.stdout
	if format != presenter.FormatText {
		promptOut = a.stderr
	}
	input := a.input
	if input == nil {
		input = NewPromptInput(a.stdin, promptOut)
	}

	req, err := NewResolver(cfg, input, promptOut).Resolve(positional)
	if err != nil {
		return model.ConversionResult{}, err
	}

	client := rates.NewExchangeRateAPIClient(a.env.APIBaseURL,
		rates.WithHTTPClient(a.httpClient),
		rates.WithProgress(a.stdout),
		rates.WithSilent(format != presenter.FormatText),
	)
	return service.NewCurrencyService(client).Convert(ctx, req)
}

// record is best effort: a failed write never changes the outcome.
func (a *App) record(ctx context.Context, result model.ConversionResult) {
	record := model.NewHistoryRecord(result, a.now())
	if err := a.history.Append(ctx, record); err != nil {
		logger.Debugf("history not saved: %v", err)
	}
}

func (a *App) showHistory(ctx context.Context) {
	hp := presenter.NewHistoryPresenter(a.stdout)

	records, err := a.history.List(ctx)
	if err != nil {
		logger.Debugf("history unavailable: %v", err)
		err = hp.Unavailable(err)
	} else {
		err = hp.Show(records)
	}
	if err != nil {
		logger.Errorf("failed to print history: %v", err)
	}
}
