package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/colorstacknyu/colorstack-site/internal/bucket"
	"github.com/colorstacknyu/colorstack-site/internal/calendar"
	"github.com/colorstacknyu/colorstack-site/internal/config"
	"github.com/colorstacknyu/colorstack-site/internal/domain"
	"github.com/colorstacknyu/colorstack-site/pkg/client"
)

var (
	endpoint   string
	outputJSON bool
	verbose    bool

	eventTag     string
	showPast     bool
	groupByMonth bool
	showLinks    bool
	writeICS     bool
)

var rootCmd = &cobra.Command{
	Use:   "colorstack",
	Short: "ColorStack @ NYU site tool",
	Long: `A CLI for the ColorStack @ NYU site API.

It reads events and the team roster from a running API server and checks
the curated resources.json file, locally or as committed on GitHub.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show upcoming or past events",
	Long:  `Display events split the way the events page shows them: upcoming soonest first, past most recent first.`,
	Args:  cobra.NoArgs,
	RunE:  runEvents,
}

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Show the team roster",
	Long:  `Display leadership, core members and the Hall of Fame.`,
	Args:  cobra.NoArgs,
	RunE:  runTeam,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the API server",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "API base URL (default is API_ENDPOINT)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	eventsCmd.Flags().StringVar(&eventTag, "tag", "", "only events with this tag")
	eventsCmd.Flags().BoolVar(&showPast, "past", false, "show past events instead of upcoming")
	eventsCmd.Flags().BoolVar(&groupByMonth, "by-month", false, "group events by month")
	eventsCmd.Flags().BoolVar(&showLinks, "links", false, "add a Google Calendar link column")
	eventsCmd.Flags().BoolVar(&writeICS, "ics", false, "print the iCalendar feed instead")

	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(healthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if endpoint != "" {
		cfg.APIEndpoint = endpoint
	}
	return cfg, nil
}

// fetch runs one load to completion, abandoning it on interrupt
func fetch[T any](c *client.Client, path string) (T, error) {
	loader := client.NewJSONLoader[T](c)
	defer loader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader.Load(path)
	settled := make(chan struct{})
	go func() {
		loader.Wait()
		close(settled)
	}()

	var zero T
	select {
	case <-settled:
	case <-ctx.Done():
		return zero, fmt.Errorf("interrupted")
	}

	state := loader.State()
	if state.Err != nil {
		return zero, state.Err
	}
	return state.Data, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

func runEvents(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c := client.NewClient(cfg.APIEndpoint)

	if writeICS {
		feed, err := c.GetCalendar(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get calendar: %w", err)
		}
		fmt.Print(feed)
		return nil
	}

	payload, err := fetch[struct {
		Events []domain.Event `json:"events"`
	}](c, "/api/events")
	if err != nil {
		return fmt.Errorf("failed to get events: %w", err)
	}

	loc := cfg.Location()
	schedule := bucket.SplitSchedule(bucket.FilterByTag(payload.Events, eventTag), time.Now(), loc)
	events, label := schedule.Upcoming, "Upcoming"
	if showPast {
		events, label = schedule.Past, "Past"
	}

	if outputJSON {
		if groupByMonth {
			return printJSON(bucket.GroupByMonth(events, loc))
		}
		return printJSON(events)
	}

	fmt.Printf("\n%s Events", label)
	if eventTag != "" {
		fmt.Printf(" tagged %q", eventTag)
	}
	fmt.Printf(" (%d)\n", len(events))
	if tags := bucket.Tags(payload.Events); len(tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(tags, ", "))
	}
	fmt.Println()

	if len(events) == 0 {
		fmt.Println("No events.")
		return nil
	}

	if !groupByMonth {
		renderEvents(events, loc)
		return nil
	}
	for _, g := range bucket.GroupByMonth(events, loc) {
		fmt.Printf("%s\n", g.Label)
		renderEvents(g.Events, loc)
		fmt.Println()
	}
	return nil
}

func renderEvents(events []domain.Event, loc *time.Location) {
	header := []string{"Date", "Title", "Location", "Tags", "Status"}
	if showLinks {
		header = append(header, "Add to Calendar")
	}
	table := newTable(header...)
	for _, e := range events {
		row := []string{formatWhen(e, loc), e.Title, e.Location, strings.Join(e.Tags, ", "), string(e.Status)}
		if showLinks {
			row = append(row, calendar.GoogleURL(e, loc))
		}
		table.Append(row)
	}
	table.Render()
}

// formatWhen renders "Mon, Nov 10, 2025 6:00 PM-7:30 PM" in the site's zone
func formatWhen(e domain.Event, loc *time.Location) string {
	start, err := bucket.ParseTime(e.Start, loc)
	if err != nil {
		return e.Start
	}
	start = start.In(loc)
	when := start.Format("Mon, Jan 2, 2006 3:04 PM")
	if end, err := bucket.ParseTime(e.End, loc); err == nil {
		when += "-" + end.In(loc).Format("3:04 PM")
	}
	return when
}

func runTeam(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	roster, err := fetch[domain.Roster](client.NewClient(cfg.APIEndpoint), "/api/team")
	if err != nil {
		return fmt.Errorf("failed to get team: %w", err)
	}

	if outputJSON {
		return printJSON(roster)
	}

	sections := []struct {
		title   string
		members []domain.Member
	}{
		{"Leadership", roster.Leadership},
		{"Core Team", roster.Core},
		{"Hall of Fame", roster.HallOfFame},
	}
	for _, s := range sections {
		fmt.Printf("\n%s (%d)\n", s.title, len(s.members))
		if len(s.members) == 0 {
			continue
		}
		table := newTable("Name", "Role", "Year", "Major", "Email", "LinkedIn")
		for _, m := range s.members {
			table.Append([]string{m.Name, m.Role, m.Year, m.Major, m.Email, m.LinkedInURL})
		}
		table.Render()
	}
	return nil
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	health, err := client.NewClient(cfg.APIEndpoint).HealthCheck(cmd.Context())
	if err != nil {
		return fmt.Errorf("API at %s is not healthy: %w", cfg.APIEndpoint, err)
	}

	if outputJSON {
		return printJSON(health)
	}

	fmt.Printf("API at %s is %s (%s)\n", cfg.APIEndpoint, health.Status, health.Environment)
	table := newTable("Dataset", "Notion configured")
	for _, name := range []string{"events", "team"} {
		table.Append([]string{name, fmt.Sprintf("%t", health.Datasets[name])})
	}
	table.Render()
	return nil
}
