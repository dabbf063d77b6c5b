// dialogsim replays a scripted dialog scenario against the simulated
// toolkit and prints every event the bridge emits. It exists to
// exercise the bridge end to end without a native UI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/NahejL/electron/pkg/config"
	"github.com/NahejL/electron/pkg/dialog"
	"github.com/NahejL/electron/pkg/events"
	"github.com/NahejL/electron/pkg/host"
	"github.com/NahejL/electron/pkg/logging"
	"github.com/NahejL/electron/pkg/toolkit"
	"github.com/NahejL/electron/pkg/toolkit/sim"
)

var configPath string

func main() {
	flag.StringVar(&configPath, "config", "dialogsim.yaml", "path to the scenario config")
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dialogsim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.SetMinLevel(logging.Level(cfg.LogLevel))

	tk := sim.New()
	scriptToolkit(tk, cfg.Scenario)

	exports := host.NewObject()
	dialog.Initialize(exports, tk, logger)

	if err := runMessageBoxes(exports, cfg.Scenario.MessageBoxes); err != nil {
		return err
	}
	return runFileDialogs(exports, tk, cfg.Scenario.FileDialogs)
}

// scriptToolkit queues every scripted user response ahead of the replay.
func scriptToolkit(tk *sim.Toolkit, scenario config.Scenario) {
	for _, step := range scenario.MessageBoxes {
		tk.QueueMessageBoxResponse(step.Response)
	}
	for _, step := range scenario.FileDialogs {
		switch step.Outcome.Result {
		case config.OutcomeSelect:
			tk.QueueFileOutcome(sim.Outcome{
				Kind: sim.OutcomeSingle,
				Path: toolkit.FilePath(step.Outcome.Paths[0]),
			})
		case config.OutcomeMulti:
			paths := make([]toolkit.FilePath, len(step.Outcome.Paths))
			for i, p := range step.Outcome.Paths {
				paths[i] = toolkit.FilePath(p)
			}
			tk.QueueFileOutcome(sim.Outcome{Kind: sim.OutcomeMulti, Paths: paths})
		default:
			tk.QueueFileOutcome(sim.Outcome{Kind: sim.OutcomeCancel})
		}
	}
}

func runMessageBoxes(exports *host.Object, steps []config.MessageBoxStep) error {
	fn := exports.Get("showMessageBox").Function()

	for _, step := range steps {
		buttons := make([]host.Value, len(step.Buttons))
		for i, b := range step.Buttons {
			buttons[i] = host.String(b)
		}

		v, err := fn(&host.CallContext{Args: host.Args{
			host.Int(int64(step.Type)),
			host.Array(buttons...),
			host.String(step.Title),
			host.String(step.Message),
			host.String(step.Detail),
		}})
		if err != nil {
			return err
		}

		label := "(dismissed)"
		if i := v.Int(); i >= 0 && int(i) < len(step.Buttons) {
			label = step.Buttons[i]
		}
		fmt.Printf("messagebox %q -> %d %s\n", step.Title, v.Int(), label)
	}
	return nil
}

func runFileDialogs(exports *host.Object, tk *sim.Toolkit, steps []config.FileDialogStep) error {
	if len(steps) == 0 {
		return nil
	}

	cls := exports.Get("FileDialog").Class()
	fd, err := cls.New(nil)
	if err != nil {
		return err
	}

	printer := func(ev events.Event) {
		parts := make([]string, len(ev.Args))
		for i, a := range ev.Args {
			parts[i] = a.(host.Value).GoString()
		}
		fmt.Printf("event %s [%s]\n", ev.Name, strings.Join(parts, ", "))
	}
	if _, err := fd.On(dialog.EventSelected, printer); err != nil {
		return err
	}
	if _, err := fd.On(dialog.EventCancelled, printer); err != nil {
		return err
	}

	window := host.WindowObject(host.NewWindow(0x1))

	for _, step := range steps {
		fileTypes := make([]host.Value, len(step.FileTypes))
		for i, ft := range step.FileTypes {
			fileTypes[i] = dialog.FileTypeValue(ft.Description, ft.Extensions...)
		}

		_, err := fd.Invoke("selectFile", host.Args{
			host.ObjectValue(window),
			host.Int(int64(step.Type)),
			host.String(step.Title),
			host.String(step.DefaultPath),
			host.Array(fileTypes...),
			host.Int(int64(step.FileTypeIndex)),
			host.String(step.DefaultExtension),
			host.Int(step.CallbackID),
		})
		if err != nil {
			return err
		}
	}

	// One main-loop turn delivers every queued completion.
	tk.Pump()
	return nil
}
