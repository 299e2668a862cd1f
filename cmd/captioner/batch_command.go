package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"captioner/internal/batch"
	"captioner/internal/subtitles"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var languageFlag string
	var workers int
	var textOutput bool

	cmd := &cobra.Command{
		Use:   "batch <transcript>...",
		Short: "Format many transcripts concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := make([]batch.Job, 0, len(args))
			seen := make(map[string]bool, len(args))
			for _, arg := range args {
				source, err := resolveSource(arg)
				if err != nil {
					return err
				}
				if seen[source] {
					continue
				}
				seen[source] = true
				jobs = append(jobs, batch.Job{Name: jobName(arg, source), Source: source})
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, closeLog, err := ctx.logger()
			if err != nil {
				return err
			}
			defer closeLog()
			if workers <= 0 {
				workers = cfg.Batch.Workers
			}

			service := subtitles.NewService(cfg, logger)
			request := func(job batch.Job) subtitles.GenerateRequest {
				return subtitles.GenerateRequest{
					SourcePath: job.Source,
					OutputDir:  outputDir,
					Language:   languageFlag,
					Text:       textOutput,
				}
			}
			collisions := outputCollisions(service, jobs, request)

			runner := batch.Runner{Workers: workers, Logger: logger}
			results := runner.Run(cmd.Context(), jobs, func(jobCtx context.Context, job batch.Job) (batch.Outcome, error) {
				if err, ok := collisions[job.Source]; ok {
					return batch.Outcome{}, err
				}
				result, err := service.Generate(jobCtx, request(job))
				if err != nil {
					return batch.Outcome{}, err
				}
				return batch.Outcome{Output: result.OutputPath, Captions: result.CaptionCount}, nil
			})

			rows := make([][]string, 0, len(results))
			for _, res := range results {
				status := "ok"
				output := res.Outcome.Output
				if res.Err != nil {
					status = "failed"
					output = res.Err.Error()
				}
				rows = append(rows, []string{
					res.Job.Name,
					status,
					strconv.Itoa(res.Outcome.Captions),
					res.Elapsed.Round(time.Millisecond).String(),
					output,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Transcript", "Status", "Captions", "Elapsed", "Output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d of %d transcripts formatted\n", len(results)-batch.Failed(results), len(results))
			return batch.Err(results)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: paths.output_dir, else alongside each transcript)")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language override applied to every transcript")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent workers (default: batch.workers)")
	cmd.Flags().BoolVar(&textOutput, "text", false, "Write plain transcripts instead of captions")

	return cmd
}

var errOutputCollision = errors.New("output path already claimed")

// outputCollisions maps the source of every job whose artifact would land on
// a path an earlier job already claims to the error it should fail with. The
// first job in argument order keeps the path. Jobs whose output cannot be
// planned are left for Generate to report.
func outputCollisions(service *subtitles.Service, jobs []batch.Job, request func(batch.Job) subtitles.GenerateRequest) map[string]error {
	claimed := make(map[string]string, len(jobs))
	collisions := make(map[string]error)
	for _, job := range jobs {
		path, err := service.OutputPath(request(job))
		if err != nil {
			continue
		}
		if owner, ok := claimed[path]; ok {
			collisions[job.Source] = fmt.Errorf("%w: %s is written from %s; rename the transcript or format it separately",
				errOutputCollision, path, owner)
			continue
		}
		claimed[path] = job.Source
	}
	return collisions
}

// jobName labels a job with the path as given, shortening absolute arguments
// to parent/base so same-named transcripts stay distinguishable.
func jobName(arg, source string) string {
	arg = filepath.Clean(strings.TrimSpace(arg))
	if filepath.IsAbs(arg) {
		return filepath.Join(filepath.Base(filepath.Dir(source)), filepath.Base(source))
	}
	return arg
}
