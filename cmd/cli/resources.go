package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colorstacknyu/colorstack-site/internal/config"
	"github.com/colorstacknyu/colorstack-site/internal/domain"
	"github.com/colorstacknyu/colorstack-site/internal/resource"
	"github.com/colorstacknyu/colorstack-site/pkg/client"
)

var (
	resourcesFile  string
	fromGitHub     bool
	resourceCat    string
	resourceTag    string
	watchResources bool
	lintResources  bool
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List or check curated resources",
	Long: `Display the curated resources, read from the API server by default.

With --file the local resources.json is read instead, and --github reads the
copy committed to RESOURCES_GITHUB_REPO. --lint reports every invalid entry
and fails when there is one. --watch re-reads a local file on every save.`,
	Args: cobra.NoArgs,
	RunE: runResources,
}

func init() {
	resourcesCmd.Flags().StringVar(&resourcesFile, "file", "", "read this resources.json (default is RESOURCES_FILE when --watch is set)")
	resourcesCmd.Flags().BoolVar(&fromGitHub, "github", false, "read resources.json from GitHub")
	resourcesCmd.Flags().StringVar(&resourceCat, "category", "", "only resources in this category")
	resourcesCmd.Flags().StringVar(&resourceTag, "tag", "", "only resources with this tag")
	resourcesCmd.Flags().BoolVar(&watchResources, "watch", false, "re-read the local file when it changes")
	resourcesCmd.Flags().BoolVar(&lintResources, "lint", false, "validate entries instead of listing them")
	resourcesCmd.MarkFlagsMutuallyExclusive("file", "github")
	resourcesCmd.MarkFlagsMutuallyExclusive("watch", "github")
}

func runResources(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if resourceCat != "" && !domain.IsResourceCategory(resourceCat) {
		return fmt.Errorf("unknown category %q (one of: %s)", resourceCat, categoryList())
	}

	if watchResources {
		path := resourcesFile
		if path == "" {
			path = cfg.ResourcesFile
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		fmt.Fprintf(os.Stderr, "Watching %s (Ctrl-C to stop)\n", path)
		return resource.Watch(ctx, path, func(resources []domain.Resource, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if err := showResources(resources); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		})
	}

	resources, err := readResources(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return showResources(resources)
}

func readResources(ctx context.Context, cfg *config.Config) ([]domain.Resource, error) {
	switch {
	case fromGitHub:
		if cfg.ResourcesGitHubRepo == "" {
			return nil, fmt.Errorf("RESOURCES_GITHUB_REPO is not set")
		}
		src, err := resource.NewGitHubSource(cfg.GitHubToken, cfg.ResourcesGitHubRepo, cfg.ResourcesGitHubPath, cfg.ResourcesGitHubRef)
		if err != nil {
			return nil, err
		}
		resources, err := src.Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", src, err)
		}
		return resources, nil
	case resourcesFile != "":
		return resource.LoadFile(resourcesFile)
	default:
		resources, err := client.NewClient(cfg.APIEndpoint).GetResources(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get resources: %w", err)
		}
		return resources, nil
	}
}

func showResources(resources []domain.Resource) error {
	if lintResources {
		return lint(resources)
	}

	filtered := resource.Filter(resources, resourceCat, resourceTag)
	if outputJSON {
		return printJSON(filtered)
	}

	fmt.Printf("\nResources (%d of %d)\n\n", len(filtered), len(resources))
	table := newTable("Category", "Title", "Link", "Tags", "Added")
	for _, r := range filtered {
		table.Append([]string{r.Category, r.Title, r.Link, strings.Join(r.Tags, ", "), r.DateAdded})
	}
	table.Render()

	if resourceCat == "" && resourceTag == "" {
		counts := newTable("Category", "Count")
		for _, c := range resource.CountByCategory(resources) {
			counts.Append([]string{c.Category, strconv.Itoa(c.Count)})
		}
		counts.Render()
	}
	return nil
}

func lint(resources []domain.Resource) error {
	problems := resource.Validate(resources)

	if outputJSON {
		if problems == nil {
			problems = []resource.Problem{}
		}
		if err := printJSON(problems); err != nil {
			return err
		}
	} else if len(problems) > 0 {
		table := newTable("#", "ID", "Field", "Problem")
		for _, p := range problems {
			table.Append([]string{strconv.Itoa(p.Index), p.ID, p.Field, p.Message})
		}
		table.Render()
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s) in %d resources", len(problems), len(resources))
	}
	if !outputJSON {
		fmt.Printf("%d resources, no problems\n", len(resources))
	}
	return nil
}

func categoryList() string {
	names := make([]string, 0, len(domain.ResourceCategories))
	for _, c := range domain.ResourceCategories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
