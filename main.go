package main

import (
	"bufio"
	"context"
	"currency-converter/convert"
	"currency-converter/domain"
	"currency-converter/format"
	"currency-converter/input"
	"currency-converter/rates"
	"flag"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"io"
	"os"
	"strings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run converts the amount given as argument, or every line read from stdin when there is none.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("currency-converter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	from := fs.String("from", "USD", "currency to convert from")
	to := fs.String("to", "IDR", "currency to convert to")
	localeName := fs.String("locale", "", "locale used to format results (default: host locale)")
	ratesFile := fs.String("rates", "", "rate table fixture (.toml or .json)")
	list := fs.Bool("list", false, "print the rate table and exit")
	verbose := fs.Bool("v", false, "log every conversion to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	if *verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowWarn())
	}

	tag := format.DetectLocale()
	if *localeName != "" {
		var err error
		if tag, err = format.ParseLocale(*localeName); err != nil {
			level.Error(logger).Log("msg", "bad locale", "err", err)
			return 2
		}
	}

	ctx := context.Background()
	var source rates.Source = rates.NewStatic(rates.Default())
	if *ratesFile != "" {
		source = rates.NewFile(*ratesFile)
	}
	source = rates.NewLoggingSource(level.Debug(logger), source)
	table, err := source.Table(ctx)
	if err != nil {
		level.Error(logger).Log("msg", "loading rate table", "err", err)
		return 1
	}

	formatter := format.New(tag)
	if *list {
		printTable(stdout, table, formatter)
		return 0
	}

	var service convert.Service = convert.NewService(table)
	if *verbose {
		service = convert.NewLoggingService(level.Debug(logger), service)
	}

	c := &converter{
		service:   service,
		formatter: formatter,
		from:      domain.Currency(strings.ToUpper(*from)),
		to:        domain.Currency(strings.ToUpper(*to)),
		out:       stdout,
	}

	if fs.NArg() > 0 {
		if c.show(ctx, fs.Arg(0)) != input.Ready {
			return 1
		}
		return 0
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		c.show(ctx, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		level.Error(logger).Log("msg", "reading input", "err", err)
		return 1
	}
	return 0
}

// converter converts between one fixed pair of currencies
type converter struct {
	service   convert.Service
	formatter *format.Formatter
	from      domain.Currency
	to        domain.Currency
	out       io.Writer
}

// show converts raw and prints either the result or a message describing the problem
func (c *converter) show(ctx context.Context, raw string) input.Status {
	// anything the amount field would have refused is shown as invalid
	if !input.Accept(raw) {
		fmt.Fprintln(c.out, input.Invalid.Message())
		return input.Invalid
	}

	result, err := c.service.Convert(ctx, raw, c.from, c.to)
	status := input.Classify(raw, err)
	switch status {
	case input.Ready:
		fmt.Fprintln(c.out, c.formatter.Money(result.Amount, result.To))
	case input.Failed:
		fmt.Fprintf(c.out, "%s: %v\n", status.Message(), err)
	default:
		fmt.Fprintln(c.out, status.Message())
	}
	return status
}

func printTable(w io.Writer, t *rates.Table, f *format.Formatter) {
	fmt.Fprintf(w, "1 %s =\n", t.Base())
	for _, c := range t.Currencies() {
		r, _ := t.Rate(c)
		fmt.Fprintf(w, "  %s\n", f.Money(domain.Amount(r), c))
	}
}
