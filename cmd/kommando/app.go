package main

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"github.com/napalu/kommando"
	"github.com/napalu/kommando/errs"
	"github.com/napalu/kommando/i18n"
	"github.com/napalu/kommando/treespec"
	"github.com/napalu/kommando/tree"
)

//go:embed demo.yaml
var demoDocument []byte

var log = commonlog.GetLogger("kommando.cli")

// app holds the persistent flags shared by all sub-commands
type app struct {
	specPath  string
	lang      string
	verbosity int
	logPath   string
	noColor   bool
	source    string

	out    io.Writer
	errOut io.Writer
}

func (a *app) configureLogging() {
	var path *string
	if a.logPath != "" {
		path = &a.logPath
	}
	commonlog.Configure(a.verbosity, path)
	if a.noColor {
		color.NoColor = true
	}
}

func (a *app) document() (*treespec.Document, error) {
	if a.specPath == "" {
		return treespec.DecodeYAML(demoDocument)
	}
	log.Infof("loading commands from %s", a.specPath)
	return treespec.Load(a.specPath)
}

func (a *app) dispatcher() (*kommando.Dispatcher, error) {
	doc, err := a.document()
	if err != nil {
		return nil, err
	}

	configs := []kommando.ConfigureDispatcherFunc{
		kommando.WithCommandPrefix('/'),
		kommando.WithCaseInsensitiveCommands(true),
	}
	if a.lang != "" {
		lang, ok := i18n.Default().Match(a.lang)
		if !ok {
			return nil, errs.ErrUnsupportedLanguage.WithArgs(a.lang)
		}
		errs.UpdateMessageProvider(i18n.NewLanguageMessageProvider(i18n.Default(), lang))
		configs = append(configs, kommando.WithLanguage(a.lang))
	}

	registry := treespec.NewRegistry().
		Executor("print", a.print).
		Requirement("admin", requireAdmin)

	return registry.Compile(doc, configs...)
}

// print writes the values bound by the executed command line
func (a *app) print(ctx *tree.Context) error {
	values := ctx.Values()
	if len(values) == 0 {
		_, err := fmt.Fprintln(a.out, color.GreenString("ok"))
		return err
	}
	for _, v := range values {
		if _, err := fmt.Fprintf(a.out, "%s = %v\n", color.CyanString(v.Name), v.Value); err != nil {
			return err
		}
	}
	return nil
}

func requireAdmin(source any) error {
	switch source {
	case "admin", "console":
		return nil
	default:
		return fmt.Errorf("source '%v' is not an operator", source)
	}
}

// execute runs line and reports a failure on errOut. It returns the error for the exit code.
func (a *app) execute(d *kommando.Dispatcher, line string) error {
	err := d.Execute(line, a.source)
	if err != nil {
		a.report(err)
	}
	return err
}

// executeLines runs every non-empty line of r that is not a comment. It returns errReported
// when one of the lines failed.
func (a *app) executeLines(d *kommando.Dispatcher, r io.Reader) error {
	var failed error
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := a.execute(d, line); err != nil {
			failed = errReported
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return failed
}

func (a *app) report(err error) {
	var ce *kommando.CommandError
	if errors.As(err, &ce) {
		fmt.Fprintln(a.errOut, color.RedString("%s", ce.Error()))
		return
	}
	fmt.Fprintln(a.errOut, color.RedString("%s", err.Error()))
}

// errReported marks failures that were already printed
var errReported = errors.New("command failed")
