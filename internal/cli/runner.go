package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Makepad-fr/hebdo/internal/model"
	"github.com/Makepad-fr/hebdo/internal/timeutil"
	"github.com/Makepad-fr/hebdo/internal/tui"
)

// Options tune behavior from root flags.
type Options struct {
	ConfigPath string // empty means the default location
	Compact    bool   // force the compact layout scale
}

// ---------------------------------------------------
// CLI router
// ---------------------------------------------------

func Run(args []string, opt Options) int {
	if len(args) == 0 {
		// Opening the planner is the common case.
		args = []string{"week"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "week":
		return doWeek(opt)

	case "ls":
		return doList(opt, a)

	case "add":
		return doAdd(opt, a)

	case "done":
		if len(a) != 1 {
			fail("usage: hebdo done <id>")
			return 2
		}
		return doToggle(opt, a[0])

	case "rm":
		if len(a) != 1 {
			fail("usage: hebdo rm <id>")
			return 2
		}
		return doRemove(opt, a[0])

	case "bg":
		return doBackground(opt, a)
	}

	fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`hebdo - a weekly activity planner

Usage:
  hebdo [subcommand] [args]

Subcommands:
  week               Open the interactive weekly view (default)
  ls [date]          List the activities of a day (default today)
  add [flags] <title...>   Create an activity
  done <id>          Toggle completion for an activity (id prefix ok)
  rm <id>            Delete an activity (id prefix ok)
  bg <list|set|add|rm>     Manage background images
  help               Show this help

Add flags:
  -date YYYY-MM-DD   Day of the activity (default today)
  -from HH:mm        Start time (default 09:00)
  -to HH:mm          End time (default 10:00)
  -desc text         Optional description
  -color 1-10        Palette color (default 1)
  -stars 1-3         Importance (default 1)

Examples:
  hebdo add -date 2025-09-01 -from 09:00 -to 10:30 -stars 2 "Team sync"
  hebdo ls 2025-09-01
  hebdo done 3f2a
`)
}

// ---------------------------------------------------
// Subcommands
// ---------------------------------------------------

func doWeek(opt Options) int {
	app, err := newApp(opt)
	if err != nil {
		fail(err.Error())
		return 1
	}
	if err := tui.Run(tui.Options{
		Store:      app.store,
		Weeks:      app.weeks,
		Layout:     app.lay,
		Viewport:   app.view,
		Background: app.bgs,
	}); err != nil {
		fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doList(opt Options, args []string) int {
	app, err := newApp(opt)
	if err != nil {
		fail(err.Error())
		return 1
	}

	date := timeutil.KeyOf(time.Now())
	if len(args) > 0 {
		date = args[0]
	}
	day, err := timeutil.ParseDateKey(date)
	if err != nil {
		fail("ls: " + err.Error())
		return 2
	}

	acts := app.store.ByDate(date)
	lines := []string{titleStyle.Render(day.Format("Monday, January 2, 2006"))}
	if len(acts) == 0 {
		lines = append(lines, mutedStyle.Render("no activities"))
		panel(lines)
		return 0
	}

	done := 0
	for _, a := range acts {
		if a.Completed {
			done++
		}
		lines = append(lines, formatActivityLine(a))
		if a.Description != "" {
			lines = append(lines, mutedStyle.Render("         "+a.Description))
		}
	}
	lines = append(lines, "", progressBar(done, len(acts), 28))
	panel(lines)
	return 0
}

func formatActivityLine(a model.Activity) string {
	start, _ := timeutil.TimeToMinutes(a.StartTime)
	end, _ := timeutil.TimeToMinutes(a.EndTime)
	title := a.Title
	check := " "
	if a.Completed {
		title = doneStyle.Render(title)
		check = successStyle.Render("✔")
	}
	return fmt.Sprintf("%s %s %s - %s (%s)  %s %s %s",
		mutedStyle.Render(shortID(a.ID)),
		check,
		a.StartTime, a.EndTime,
		timeutil.MinutesToDuration(end-start),
		swatch(a.Color),
		title,
		stars(a.Importance),
	)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func doAdd(opt Options, args []string) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	date := fs.String("date", "", "date YYYY-MM-DD (default today)")
	from := fs.String("from", "09:00", "start time HH:mm")
	to := fs.String("to", "10:00", "end time HH:mm")
	desc := fs.String("desc", "", "description")
	color := fs.Int("color", 1, "palette color 1-10")
	importance := fs.Int("stars", 1, "importance 1-3")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	title := strings.Join(fs.Args(), " ")
	if title == "" {
		fail("usage: hebdo add [flags] <title...>")
		return 2
	}

	app, err := newApp(opt)
	if err != nil {
		fail(err.Error())
		return 1
	}

	if *date == "" {
		*date = timeutil.KeyOf(time.Now())
	}
	if *color < 1 || *color > len(model.Colors) {
		fail(fmt.Sprintf("add: color must be 1-%d", len(model.Colors)))
		return 2
	}

	a, err := app.store.Create(model.Draft{
		Title:       title,
		Description: *desc,
		Date:        *date,
		StartTime:   *from,
		EndTime:     *to,
		Color:       model.Colors[*color-1],
		Importance:  *importance,
	})
	if err != nil {
		fail("add: " + err.Error())
		return 2
	}
	ok("added " + shortID(a.ID))
	return 0
}

func doToggle(opt Options, prefix string) int {
	app, err := newApp(opt)
	if err != nil {
		fail(err.Error())
		return 1
	}
	id, err := app.resolveID(prefix)
	if err != nil {
		fail("done: " + err.Error())
		return 2
	}
	app.store.ToggleCompleted(id)
	ok("toggled")
	return 0
}

func doRemove(opt Options, prefix string) int {
	app, err := newApp(opt)
	if err != nil {
		fail(err.Error())
		return 1
	}
	id, err := app.resolveID(prefix)
	if err != nil {
		fail("rm: " + err.Error())
		return 2
	}
	app.store.Delete(id)
	ok("removed")
	return 0
}

func doBackground(opt Options, args []string) int {
	if len(args) == 0 {
		args = []string{"list"}
	}
	app, err := newApp(opt)
	if err != nil {
		fail(err.Error())
		return 1
	}

	switch args[0] {
	case "list":
		lines := []string{titleStyle.Render("Backgrounds")}
		for _, bg := range app.bgs.Options() {
			mark := "  "
			if bg.ID == app.bgs.Selected().ID {
				mark = successStyle.Render("✔ ")
			}
			tag := ""
			if bg.Type == model.TypeCustom {
				tag = mutedStyle.Render(" (custom)")
			}
			lines = append(lines, fmt.Sprintf("%s%-16s %s%s", mark, bg.ID, bg.Name, tag))
		}
		panel(lines)
		return 0

	case "set":
		if len(args) != 2 {
			fail("usage: hebdo bg set <id>")
			return 2
		}
		if !app.bgs.Select(args[1]) {
			fail("bg: unknown background " + args[1])
			return 2
		}
		ok("background set to " + args[1])
		return 0

	case "add":
		if len(args) != 3 {
			fail("usage: hebdo bg add <name> <url>")
			return 2
		}
		bg := app.bgs.AddCustom(args[1], args[2])
		ok("added background " + bg.ID)
		return 0

	case "rm":
		if len(args) != 2 {
			fail("usage: hebdo bg rm <id>")
			return 2
		}
		if !app.bgs.DeleteCustom(args[1]) {
			fail("bg: no custom background " + args[1])
			return 2
		}
		ok("removed")
		return 0
	}

	fail("usage: hebdo bg <list|set|add|rm>")
	return 2
}
