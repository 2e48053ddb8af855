package cmd

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/leonardinius/zsharp/internal/config"
	"github.com/leonardinius/zsharp/internal/graphics"
	"github.com/leonardinius/zsharp/internal/input"
	"github.com/leonardinius/zsharp/internal/interpreter"
	"github.com/leonardinius/zsharp/internal/parser"
	"github.com/leonardinius/zsharp/internal/scanner"
	"github.com/leonardinius/zsharp/internal/zserrors"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitLoad    = 65
	exitRuntime = 70
)

var errUsage = errors.New("Usage: zsharp [-config file.yaml] [-e commands] [builtins.zs]")

type ZSharpApp struct {
	err      error
	stdout   io.Writer
	stderr   io.Writer
	reporter zserrors.ErrReporter
	config   config.Config
	console  *console
}

func NewZSharpApp() *ZSharpApp {
	return newZSharpApp(os.Stdout, os.Stderr)
}

func newZSharpApp(stdout, stderr io.Writer) *ZSharpApp {
	return &ZSharpApp{stdout: stdout, stderr: stderr, config: config.Default()}
}

func (app *ZSharpApp) reportError(err error) {
	if app.reporter == nil {
		app.reporter = zserrors.NewErrReporter(app.stderr)
	}
	app.reporter.ReportError(err)
	app.err = err
}

func (app *ZSharpApp) Main(args []string) int {
	flags := flag.NewFlagSet("zsharp", flag.ContinueOnError)
	flags.SetOutput(app.stderr)
	configPath := flags.String("config", "", "YAML configuration file")
	commands := flags.String("e", "", "console commands to run instead of the prompt, one per line")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() > 1 {
		app.reportError(errUsage)
		return exitUsage
	}

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			app.reportError(err)
			return exitUsage
		}
		app.config = cfg
	}
	if flags.NArg() == 1 {
		app.config.Builtins = flags.Arg(0)
	}
	app.reporter = zserrors.NewErrReporter(app.stderr, zserrors.WithDebug(app.config.Debug))

	if err := app.load(); err != nil {
		app.reportError(err)
		return exitLoad
	}

	var err error
	if *commands != "" {
		err = app.runCommands(*commands)
	} else {
		err = app.runPrompt()
	}

	if err != nil {
		app.reportError(err)
	}
	if app.err != nil {
		return exitRuntime
	}
	return exitOK
}

func (app *ZSharpApp) resetError() {
	app.err = nil
}

// load reads the builtin declarations and builds the interpreter.
func (app *ZSharpApp) load() error {
	builtins := parser.NewBuiltins()

	if app.config.Builtins != "" {
		bytes, err := os.ReadFile(app.config.Builtins)
		if err != nil {
			return err
		}

		lines := scanner.NewScanner(string(bytes)).Scan()
		p := parser.NewParser(lines, parser.WithErrorReporter(app.reporter))
		if builtins, err = p.Parse(); err != nil {
			return err
		}
	}

	keys := input.NewKeys()
	keys.Load(app.config.Keys)

	in := interpreter.NewInterpreter(
		interpreter.WithBuiltins(builtins),
		interpreter.WithStdout(app.stdout),
		interpreter.WithErrorReporter(app.reporter),
		interpreter.WithRenderer(graphics.NewRecorder()),
		interpreter.WithKeys(keys),
	)
	app.console = newConsole(in, app.config, app.stdout)
	return nil
}

func (app *ZSharpApp) runPrompt() error {
	rl, err := readline.New(app.config.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := app.run(line); err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

func (app *ZSharpApp) runCommands(commands string) error {
	for _, line := range strings.Split(commands, "\n") {
		if err := app.run(line); err != nil {
			return err
		}
	}
	return nil
}

func (app *ZSharpApp) run(line string) error {
	return app.console.exec(context.Background(), line)
}
