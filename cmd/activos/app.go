package main

import (
	"bufio"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Activos-api/internal/application/views"
	"github.com/jhoicas/Activos-api/internal/infrastructure/apiclient"
	"github.com/jhoicas/Activos-api/internal/infrastructure/notify"
	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

// errAborted el usuario no confirmó una acción destructiva.
var errAborted = errors.New("acción cancelada por el usuario")

// app dependencias compartidas por los comandos. Se arman en PersistentPreRun,
// una vez leídos los flags.
type app struct {
	cfg    *config.Config
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	verbose bool

	client   *apiclient.Client
	notifier *notify.Console
	orch     *views.Orchestrator
}

func newApp(cfg *config.Config, in io.Reader, out, errOut io.Writer) *app {
	return &app{cfg: cfg, in: bufio.NewReader(in), out: out, errOut: errOut}
}

func (a *app) setup(_ *cobra.Command, _ []string) {
	log := logger.New(logger.Config{Env: a.cfg.App.Env, Level: a.cfg.App.LogLevel, Output: a.errOut})
	a.client = apiclient.New(a.cfg.Client.BaseURL, a.cfg.Client.Token,
		apiclient.WithTimeout(a.cfg.Client.Timeout),
		apiclient.WithLogger(log.Component("apiclient")),
	)
	a.notifier = notify.NewConsole(a.errOut, log.Component("notify"), a.verbose)
	a.orch = views.NewOrchestrator(a.notifier, log.Component("orchestrator"))
}

// notified indica si el error ya se mostró como notificación.
func (a *app) notified() bool {
	return a.notifier != nil && a.notifier.Failures() > 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:              "activos",
		Short:            "Registro de activos con esquema dinámico por categoría",
		SilenceUsage:     true,
		SilenceErrors:    true,
		PersistentPreRun: a.setup,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Client.BaseURL, "api", a.cfg.Client.BaseURL, "URL base del API (API_BASE_URL)")
	flags.StringVar(&a.cfg.Client.Token, "token", a.cfg.Client.Token, "token Bearer (API_TOKEN)")
	flags.DurationVar(&a.cfg.Client.Timeout, "timeout", a.cfg.Client.Timeout, "timeout por request (API_TIMEOUT)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "mostrar también las notificaciones pendientes")

	root.AddCommand(newCategoriesCmd(a), newFieldsCmd(a), newAssetsCmd(a), newTokenCmd(a))
	return root
}
