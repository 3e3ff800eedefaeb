package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli/model"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/cli/styles"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/domain/entity"
	"github.com/SeleniumHQ/htmlunit-driver-sub001/internal/logging"
)

var (
	runAccept     bool
	runDismiss    bool
	runAnswer     string
	runAutoAccept bool
	runTimeout    time.Duration
	runWindow     string
	runEngine     string
	runURL        string
	runBrowser    string
	runHeadful    bool
)

var runCmd = &cobra.Command{
	Use:   "run [script.js]",
	Short: "Run a script and answer its dialogs",
	Long: `Run a JavaScript file in a fresh page. Dialogs raised by the script are
shown in an interactive view where enter accepts and esc dismisses; prompts
take typed text.

The page comes from --engine: "script" is an embedded JavaScript runtime,
"cdp" drives a local Chrome over the DevTools protocol and "playwright"
drives Chromium through Playwright. Browser engines can load --url (a URL or
a local HTML file) before the script runs; the script is optional then.

With --accept, --dismiss or --answer every dialog is answered without
interaction. --auto-accept never blocks: alerts return, confirms cancel and
prompts yield null, as a browser without a user would.

Examples:
  dialogbridge run checkout.js
  dialogbridge run signup.js --answer "Alice"
  dialogbridge run unload.js --dismiss --timeout 5s
  dialogbridge run --engine cdp --url ./testdata/dialogs.html
  dialogbridge run --engine playwright --url https://example.com check.js --accept`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runAccept, "accept", false, "accept every dialog")
	runCmd.Flags().BoolVar(&runDismiss, "dismiss", false, "dismiss every dialog")
	runCmd.Flags().StringVar(&runAnswer, "answer", "", "accept every dialog, typing this text into prompts")
	runCmd.Flags().BoolVar(&runAutoAccept, "auto-accept", false, "never block on dialogs")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "dismiss dialogs left unanswered this long (0 uses config)")
	runCmd.Flags().StringVar(&runWindow, "window", "main", "window id reported for the page (cdp uses the target id)")
	runCmd.Flags().StringVar(&runEngine, "engine", cli.EngineScript, "page engine: script, cdp or playwright")
	runCmd.Flags().StringVar(&runURL, "url", "", "URL or HTML file to load first (browser engines)")
	runCmd.Flags().StringVar(&runBrowser, "browser-path", "", "Chrome binary for the cdp engine")
	runCmd.Flags().BoolVar(&runHeadful, "headful", false, "show the browser window")
	runCmd.MarkFlagsMutuallyExclusive("accept", "dismiss", "answer")
}

func runScript(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if len(args) == 0 && runURL == "" {
		return errors.New("nothing to run: pass a script, --url or both")
	}
	if runURL != "" && (runEngine == "" || runEngine == cli.EngineScript) {
		return errors.New("--url needs a browser engine (--engine cdp or playwright)")
	}

	var src []byte
	if len(args) == 1 {
		var err error
		if src, err = os.ReadFile(args[0]); err != nil {
			return fmt.Errorf("read script: %w", err)
		}
	}
	var target string
	if runURL != "" {
		var err error
		if target, err = cli.PageURL(runURL); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt)
	defer stop()
	ctx = logging.WithComponent(ctx, "run")

	if runAutoAccept {
		app.Bridge.SetAutoAccept(true)
	}
	if cmd.Flags().Changed("timeout") {
		app.Bridge.SetTimeout(runTimeout)
	} else {
		app.WatchConfig()
	}

	if app.Config.Dialogs.Journal {
		app.PruneJournal()
	}

	feed := cli.NewDialogFeed(64)
	app.Bridge.AddObserver(feed)

	page, release, err := app.OpenPage(ctx, cli.PageOptions{
		Engine:      runEngine,
		WindowID:    entity.WindowID(runWindow),
		BrowserPath: runBrowser,
		Headful:     runHeadful,
	})
	if err != nil {
		return err
	}
	defer release()
	if err := app.Windows.Open(ctx, page); err != nil {
		_ = page.Close(ctx)
		return err
	}

	done := make(chan model.ScriptDoneMsg, 1)
	go func() {
		done <- loadAndEval(ctx, page, target, string(src))
	}()

	var result model.ScriptDoneMsg
	if policy, ok := answerPolicy(); ok {
		result, err = runWithResponder(ctx, app, policy, feed, done)
	} else {
		result, err = runInteractive(ctx, app, feed, done)
	}

	if quitErr := app.Windows.Quit(app.Ctx()); quitErr != nil {
		err = errors.Join(err, quitErr)
	}
	if err != nil {
		return err
	}
	return printResult(app.Theme, result)
}

// loadAndEval navigates to target, if any, then evaluates src, if any. Both
// block while the page shows a dialog.
func loadAndEval(ctx context.Context, page cli.Page, target, src string) model.ScriptDoneMsg {
	if target != "" {
		nav, ok := page.(cli.Navigator)
		if !ok {
			return model.ScriptDoneMsg{Err: fmt.Errorf("engine %s cannot load %s", runEngine, target)}
		}
		if err := nav.Navigate(ctx, target); err != nil {
			return model.ScriptDoneMsg{Err: err}
		}
	}
	if src == "" {
		return model.ScriptDoneMsg{}
	}
	v, err := page.Eval(ctx, src)
	return model.ScriptDoneMsg{Value: v, Err: err}
}

func answerPolicy() (cli.AnswerPolicy, bool) {
	switch {
	case runAnswer != "":
		return cli.AnswerPolicy{Accept: true, Text: runAnswer, HasText: true}, true
	case runAccept:
		return cli.AnswerPolicy{Accept: true}, true
	case runDismiss:
		return cli.AnswerPolicy{Accept: false}, true
	default:
		return cli.AnswerPolicy{}, false
	}
}

func runWithResponder(
	ctx context.Context,
	app *cli.App,
	policy cli.AnswerPolicy,
	feed *cli.DialogFeed,
	done <-chan model.ScriptDoneMsg,
) (model.ScriptDoneMsg, error) {
	respCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- cli.NewResponder(app.Alerts, policy, app.Theme, os.Stdout).Run(respCtx, feed.Events())
	}()

	select {
	case res := <-done:
		cancel()
		drainFeed(app.Theme, feed)
		return res, nil
	case err := <-errCh:
		return model.ScriptDoneMsg{}, err
	}
}

// drainFeed prints outcomes delivered after the script finished.
func drainFeed(theme *styles.Theme, feed *cli.DialogFeed) {
	for {
		select {
		case ev := <-feed.Events():
			if ev.Closed {
				fmt.Println(theme.RenderOutcome(ev.Dialog))
			}
		default:
			return
		}
	}
}

func runInteractive(
	ctx context.Context,
	app *cli.App,
	feed *cli.DialogFeed,
	done <-chan model.ScriptDoneMsg,
) (model.ScriptDoneMsg, error) {
	m := model.NewController(ctx, app.Theme, app.Alerts, feed.Events(), done)
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return model.ScriptDoneMsg{}, err
	}

	cm, ok := final.(model.ControllerModel)
	if !ok || cm.Interrupted || cm.Result == nil {
		return model.ScriptDoneMsg{}, errors.New("interrupted")
	}
	return *cm.Result, nil
}

func printResult(theme *styles.Theme, res model.ScriptDoneMsg) error {
	if res.Err != nil {
		fmt.Println(theme.ErrorStyle.Render(styles.IconX + " script failed"))
		return res.Err
	}
	if res.Value != nil {
		fmt.Printf("%s %v\n", theme.SuccessStyle.Render(styles.IconCheck), res.Value)
	}
	return nil
}
