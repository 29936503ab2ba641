package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"cubewars/internal/core/querybuild"
	"cubewars/internal/dashboard"
	"cubewars/internal/platform/config"

	"github.com/spf13/cobra"
)

// globals are the flags every subcommand shares
type globals struct {
	baseURL string
	token   string
	timeout time.Duration
	lang    string
	filter  querybuild.Filter
}

func newRoot(cfg config.Conf) *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "cubewars-dash",
		Short:         "Cube Wars analytics dashboard in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.baseURL, "url", cfg.MayString("URL", "http://localhost:8080"), "API base url (CUBEWARS_DASH_URL)")
	pf.StringVar(&g.token, "token", cfg.MayString("TOKEN", ""), "session token from login (CUBEWARS_DASH_TOKEN)")
	pf.DurationVar(&g.timeout, "timeout", cfg.MayDuration("TIMEOUT", 60*time.Second), "per request timeout")
	pf.StringVar(&g.lang, "lang", cfg.MayString("LANG", "en"), "number formatting locale")
	pf.StringVar(&g.filter.StartDate, "start", "", "start date YYYY-MM-DD")
	pf.StringVar(&g.filter.EndDate, "end", "", "end date YYYY-MM-DD")
	pf.StringVar(&g.filter.Platform, "platform", "all", "all, ios or android")
	pf.StringVar(&g.filter.Country, "country", "all", "country filter")
	pf.StringVar(&g.filter.Version, "version", "all", "app version filter")

	root.AddCommand(
		newLoginCmd(g),
		newLoadCmd(g),
		newCohortCmd(g),
		newOptionsCmd(g),
	)
	return root
}

func (g *globals) client() (*dashboard.Client, error) {
	return dashboard.NewClient(dashboard.Options{BaseURL: g.baseURL, Token: g.token, Timeout: g.timeout})
}

// context cancels on interrupt so a slow warehouse does not pin the terminal
func (g *globals) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
}
