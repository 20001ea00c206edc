package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/devauth/internal/client/client"
	"github.com/dmitrijs2005/devauth/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
	email  string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

// Run checks that the server answers and then blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.client.Ping(ctx); err != nil {
		a.printf("Server %s is not reachable: %v\n", a.config.ServerURL, err)
	}
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.email
	}
	return "guest"
}
