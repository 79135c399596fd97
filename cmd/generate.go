package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/tomodakengo/playwright-ai/internal/adapter"
	"github.com/tomodakengo/playwright-ai/internal/controller"
	"github.com/tomodakengo/playwright-ai/internal/domain"
	m "github.com/tomodakengo/playwright-ai/internal/model"
)

var generateDriverFlag string
var generateParallelFlag int
var generateHeadlessFlag bool
var generateScreenshotFlag bool
var generateNameFlag string
var generateNoHelpersFlag bool
var generateNoGotoFlag bool

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [urls...]",
		Short: "Generate page objects from live pages",
		Long:  generateLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args)
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&generateDriverFlag, driverFlagName, "d", viper.GetString(driverConfigKey), "browser driver: playwright or rod")
	bindFlagToConfig(cmd.Flags().Lookup(driverFlagName), driverConfigKey)

	cmd.Flags().IntVarP(&generateParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of URLs processed concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVar(&generateHeadlessFlag, headlessFlagName, viper.GetBool(headlessConfigKey), "run the browser headless")
	bindFlagToConfig(cmd.Flags().Lookup(headlessFlagName), headlessConfigKey)

	cmd.Flags().BoolVar(&generateScreenshotFlag, screenshotFlagName, viper.GetBool(screenshotConfigKey), "capture a full-page screenshot alongside each page object")
	bindFlagToConfig(cmd.Flags().Lookup(screenshotFlagName), screenshotConfigKey)

	cmd.Flags().StringVarP(&generateNameFlag, nameFlagName, "n", "", "page object name (single url only, derived from the url by default)")
	cmd.Flags().BoolVar(&generateNoHelpersFlag, noHelpersFlagName, false, "omit interaction helper methods")
	cmd.Flags().BoolVar(&generateNoGotoFlag, noGotoFlagName, false, "omit the goto navigation method")
}

func runGenerate(ctx context.Context, urls []string) error {
	cfg, err := loadGeneratorConfig()
	if err != nil {
		return err
	}

	if generateNoHelpersFlag {
		cfg.Template.Helpers = false
	}

	if generateNoGotoFlag {
		cfg.Template.Goto = false
	}

	generator, err := domain.NewGenerator(cfg)
	if err != nil {
		return err
	}

	if generateNameFlag != "" && len(urls) > 1 {
		return fmt.Errorf("--%s applies to a single url, got %d", nameFlagName, len(urls))
	}

	outputDir := viper.GetString(outputFlagName)
	driver := viper.GetString(driverConfigKey)
	headless := viper.GetBool(headlessConfigKey)
	screenshot := viper.GetBool(screenshotConfigKey)

	parallel := viper.GetInt(parallelConfigKey)
	if parallel < 1 {
		parallel = 1
	}

	results := make([]controller.GenerationResult, len(urls))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i, pageURL := range urls {
		group.Go(func() error {
			name := generateNameFlag
			if name == "" {
				name = pageName(pageURL)
			}

			result, err := generateOne(groupCtx, generator, generateArgs{
				url:        pageURL,
				name:       name,
				driver:     driver,
				headless:   headless,
				screenshot: screenshot,
				outputDir:  outputDir,
			})
			if err != nil {
				return fmt.Errorf("generate %s: %w", pageURL, err)
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return ui.DisplayGeneration(ctx, results)
}

type generateArgs struct {
	url        string
	name       string
	driver     string
	headless   bool
	screenshot bool
	outputDir  string
}

func generateOne(ctx context.Context, generator *domain.Generator, args generateArgs) (controller.GenerationResult, error) {
	extractor, err := newExtractor(args.driver, args.headless)
	if err != nil {
		return controller.GenerationResult{}, err
	}

	defer func() {
		if err := extractor.Close(); err != nil {
			slog.Warn("failed to close extractor", "url", args.url, "error", err)
		}
	}()

	page, err := extractor.Extract(ctx, args.url)
	if err != nil {
		return controller.GenerationResult{}, err
	}

	batch, err := generator.Resolve(page)
	if err != nil {
		return controller.GenerationResult{}, err
	}

	cfg := generator.Config()
	source := domain.Synthesize(batch, cfg.Template, cfg.Naming, args.name, args.url)

	artifactPath, err := writer.WritePageObject(args.outputDir, args.name, source)
	if err != nil {
		return controller.GenerationResult{}, err
	}

	screenshotPath := ""

	if args.screenshot {
		screenshotPath = filepath.Join(args.outputDir, args.name+".png")
		if err := extractor.Screenshot(ctx, screenshotPath); err != nil {
			return controller.GenerationResult{}, fmt.Errorf("failed to capture screenshot: %w", err)
		}
	}

	snapshot := m.NewSnapshot(page, args.name, batch, cfg, screenshotPath, time.Now().UTC())

	snapshotPath := filepath.Join(args.outputDir, args.name+adapter.SnapshotSuffix)
	if err := store.Save(snapshotPath, snapshot); err != nil {
		return controller.GenerationResult{}, err
	}

	slog.Info("generated page object",
		"url", args.url, "name", args.name,
		"elements", len(batch), "artifact", artifactPath)

	return controller.GenerationResult{
		Page:       args.name,
		URL:        args.url,
		Path:       artifactPath,
		Elements:   len(batch),
		Screenshot: screenshotPath,
	}, nil
}

// pageName derives a page object name from the URL: the last non-empty
// path segment without its extension, falling back to the host.
func pageName(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "page"
	}

	segment := path.Base(strings.TrimSuffix(parsed.Path, "/"))
	segment = strings.TrimSuffix(segment, path.Ext(segment))

	if segment == "" || segment == "." || segment == "/" {
		host := parsed.Hostname()
		if host == "" {
			return "page"
		}

		segment = strings.ReplaceAll(host, ".", "-")
	}

	return segment
}
