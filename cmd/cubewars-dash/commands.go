package main

import (
	"fmt"

	"cubewars/internal/dashboard"

	"github.com/spf13/cobra"
)

func newLoginCmd(g *globals) *cobra.Command {
	var credential string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange a Google ID token for a session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if credential == "" {
				return fmt.Errorf("--credential required")
			}
			ctx, cancel := g.context(cmd)
			defer cancel()
			c, err := g.client()
			if err != nil {
				return err
			}
			u, err := c.Login(ctx, credential)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "signed in as %s <%s>\n", u.Name, u.Email)
			fmt.Fprintln(cmd.OutOrStdout(), c.Token())
			return nil
		},
	}
	cmd.Flags().StringVar(&credential, "credential", "", "Google ID token")
	return cmd
}

func newLoadCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Fetch and print every dashboard section",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := g.context(cmd)
			defer cancel()
			c, err := g.client()
			if err != nil {
				return err
			}
			v := c.Load(ctx, g.filter)
			printView(cmd.OutOrStdout(), newPrinter(g.lang), v)
			if len(v.Errors) == len(dashboard.Sections) {
				return fmt.Errorf("no section could be loaded")
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&g.filter.LevelCount, "level-count", 0, "levels to include, default 50")
	f.StringVar(&g.filter.Level, "level", "all", "level for the loadout section")
	return cmd
}

func newCohortCmd(g *globals) *cobra.Command {
	var eventName, adFormat string
	cmd := &cobra.Command{
		Use:   "cohort",
		Short: "Print the day bucket drill down for a rewarded event or ad format",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (eventName == "") == (adFormat == "") {
				return fmt.Errorf("exactly one of --event or --ad-format is required")
			}
			ctx, cancel := g.context(cmd)
			defer cancel()
			c, err := g.client()
			if err != nil {
				return err
			}
			label := eventName
			fetch := c.RewardedCohort
			if adFormat != "" {
				label, fetch = adFormat, c.AdCohort
			}
			rows, err := fetch(ctx, g.filter, label)
			if err != nil {
				return err
			}
			printCohort(cmd.OutOrStdout(), newPrinter(g.lang), label, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&eventName, "event", "", "rewarded ad event name")
	cmd.Flags().StringVar(&adFormat, "ad-format", "", "ad impression format")
	return cmd
}

func newOptionsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the country and version filter values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := g.context(cmd)
			defer cancel()
			c, err := g.client()
			if err != nil {
				return err
			}
			p, err := c.FilterOptions(ctx, g.filter)
			printPickers(cmd.OutOrStdout(), newPrinter(g.lang), p)
			return err
		},
	}
}
