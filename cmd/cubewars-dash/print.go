package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"cubewars/internal/core/querybuild"
	"cubewars/internal/core/shape"
	"cubewars/internal/dashboard"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func table(w io.Writer) *tabwriter.Writer { return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0) }

func pct(p *message.Printer, v *float64) string {
	if v == nil {
		return "-"
	}
	return p.Sprintf("%.2f%%", *v)
}

func num(p *message.Printer, v *float64) string {
	if v == nil {
		return "-"
	}
	return p.Sprintf("%.2f", *v)
}

func heading(w io.Writer, v dashboard.View, s dashboard.Section, title string) bool {
	fmt.Fprintf(w, "\n== %s ==\n", title)
	if err := v.Errors[s]; err != nil {
		fmt.Fprintf(w, "unavailable: %v\n", err)
		return false
	}
	return true
}

// printView writes every section; failed sections print their error and move on
func printView(w io.Writer, p *message.Printer, v dashboard.View) {
	if heading(w, v, dashboard.SectionOverall, "Overview") {
		o := v.Overall
		tw := table(w)
		p.Fprintf(tw, "Total users\t%d\n", o.TotalUsers)
		p.Fprintf(tw, "Users who played\t%d\n", o.UsersWhoPlayed)
		p.Fprintf(tw, "Rewarded ads\t%d\n", o.TotalRewardedAds)
		p.Fprintf(tw, "Level completions\t%d\n", o.TotalLevelCompletions)
		p.Fprintf(tw, "Level failures\t%d\n", o.TotalLevelFailures)
		p.Fprintf(tw, "Unit upgrades\t%d\n", o.TotalUnitUpgrades)
		p.Fprintf(tw, "Booster boxes opened\t%d\n", o.TotalBoosterBoxesOpened)
		_ = tw.Flush()
	}

	if heading(w, v, dashboard.SectionRewarded, "Rewarded ads") {
		tw := table(w)
		fmt.Fprintln(tw, "EVENT\tCOUNT\tUSERS\tPER USER\tPER ALL USERS")
		rows := v.Rewarded.Rows
		if t := v.Rewarded.Totals; t != nil {
			rows = append(rows[:len(rows):len(rows)], *t)
		}
		for _, r := range rows {
			p.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%s\n", r.EventName, r.TotalCount, r.UniqueUsers, r.AvgPerUser, num(p, r.AvgPerAllUsers))
		}
		_ = tw.Flush()
	}

	if heading(w, v, dashboard.SectionLevels, "Levels") {
		tw := table(w)
		fmt.Fprintln(tw, "LEVEL\tATTEMPTS\tWINS\tLOSSES\tUSERS\tWIN RATE\tTRIES TO WIN")
		for _, r := range v.Levels {
			p.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\t%s\n", r.Level, r.TotalAttempts, r.Completions, r.Failures, r.UniqueUsers, pct(p, r.CompletionRate), num(p, r.AvgAttemptsToComplete))
		}
		_ = tw.Flush()
	}

	if heading(w, v, dashboard.SectionBoost, "Silver coin boost") {
		tw := table(w)
		fmt.Fprintln(tw, "LEVEL\tATTEMPTS\tBOOSTED\tUSAGE\tWIN WITH\tWIN WITHOUT")
		for _, r := range v.Boost {
			p.Fprintf(tw, "%d\t%d\t%d\t%.2f%%\t%s\t%s\n", r.Level, r.TotalAttempts, r.AttemptsWithBoost, r.BoostUsageRate, pct(p, r.CompletionRateWithBoost), pct(p, r.CompletionRateWithoutBoost))
		}
		_ = tw.Flush()
	}

	if heading(w, v, dashboard.SectionChurn, "Churn") {
		if worst, ok := shape.WorstChurn(v.Churn); ok {
			p.Fprintf(w, "worst level %d loses %.2f%% of %d players\n", worst.Level, worst.ChurnRate, worst.UsersReachedLevel)
		}
		tw := table(w)
		fmt.Fprintln(tw, "LEVEL\tREACHED\tCHURNED\tCHURN\tFAIL RATE\tDIFFICULTY")
		for _, r := range v.Churn {
			p.Fprintf(tw, "%d\t%d\t%d\t%.2f%%\t%s\t%s\n", r.Level, r.UsersReachedLevel, r.UsersChurnedAtLevel, r.ChurnRate, pct(p, r.FailureRate), num(p, r.DifficultyScore))
		}
		_ = tw.Flush()
	}

	if heading(w, v, dashboard.SectionLoadout, "Unit loadouts") {
		tw := table(w)
		fmt.Fprintln(tw, "UNIT\tUSES\tLOADOUTS")
		for _, r := range v.Loadout.UnitFrequency {
			p.Fprintf(tw, "%s\t%d\t%d\n", r.Name, r.UsageCount, r.UniqueLoadouts)
		}
		fmt.Fprintln(tw, "LOADOUT\tUSES\t")
		for _, r := range v.Loadout.TopLoadouts {
			p.Fprintf(tw, "%s\t%d\t\n", r.Name, r.UsageCount)
		}
		_ = tw.Flush()
	}

	if heading(w, v, dashboard.SectionUpgrades, "Unit upgrades") {
		tw := table(w)
		fmt.Fprintln(tw, "UNIT\tUPGRADES\tAVG LEVEL\tMIN\tMAX")
		for _, r := range v.Upgrades {
			p.Fprintf(tw, "%s\t%d\t%.2f\t%d\t%d\n", r.UnitName, r.TotalUpgrades, r.AvgUpgradeLevel, r.MinLevel, r.MaxLevel)
		}
		_ = tw.Flush()
	}

	if heading(w, v, dashboard.SectionBoosters, "Booster boxes") {
		tw := table(w)
		fmt.Fprintln(tw, "BOX\tOPENED\tUSERS\tPER USER")
		for _, r := range v.Boosters {
			p.Fprintf(tw, "%s\t%d\t%d\t%.2f\n", r.BoxID, r.TimesOpened, r.UniqueUsers, r.AvgPerUser)
		}
		_ = tw.Flush()
	}

	if heading(w, v, dashboard.SectionBaseStation, "Base station") {
		tw := table(w)
		fmt.Fprintln(tw, "SKILL\tLEVEL\tUPGRADES\tUSERS")
		for _, r := range v.BaseStation {
			lvl := "-"
			if r.UpgradeLevel != nil {
				lvl = p.Sprintf("%d", *r.UpgradeLevel)
			}
			p.Fprintf(tw, "%s\t%s\t%d\t%d\n", r.Skill, lvl, r.UpgradeCount, r.UniqueUsers)
		}
		_ = tw.Flush()
	}
}

// printCohort writes one row per install date with events/users per day bucket
func printCohort(w io.Writer, p *message.Printer, label string, rows []shape.DayBucketRow) {
	fmt.Fprintf(w, "cohort drill down for %s\n", label)
	if len(rows) == 0 {
		fmt.Fprintln(w, "no installs in range")
		return
	}
	tw := table(w)
	fmt.Fprint(tw, "INSTALLED\tCOHORT")
	for _, k := range querybuild.DayOffsets {
		fmt.Fprintf(tw, "\tD%d", k)
	}
	fmt.Fprintln(tw)
	for _, r := range rows {
		p.Fprintf(tw, "%s\t%d", r.InstallDate, r.CohortSize)
		for _, k := range querybuild.DayOffsets {
			p.Fprintf(tw, "\t%d/%d", r.EventsOn(k), r.UsersOn(k))
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}

func printPickers(w io.Writer, p *message.Printer, pk dashboard.Pickers) {
	tw := table(w)
	fmt.Fprintln(tw, "COUNTRY\tUSERS")
	for _, c := range pk.Countries {
		p.Fprintf(tw, "%s\t%d\n", c.Country, c.UserCount)
	}
	fmt.Fprintln(tw, "VERSION\tUSERS")
	for _, v := range pk.Versions {
		p.Fprintf(tw, "%s\t%d\n", v.Version, v.UserCount)
	}
	_ = tw.Flush()
}
