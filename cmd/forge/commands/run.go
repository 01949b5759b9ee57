package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [tasks...]",
		Short: "Run the requested tasks and everything they depend on",
		Long: "Run the requested tasks and everything they depend on.\n" +
			"Without arguments every task of the build is run.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, _ := cmd.Flags().GetString("project-dir")
			excluded, _ := cmd.Flags().GetStringSlice("exclude")
			maxWorkers, _ := cmd.Flags().GetInt("max-workers")
			configureOnDemand, _ := cmd.Flags().GetBool("configure-on-demand")
			upTo, _ := cmd.Flags().GetString("up-to")

			stage, err := stageFromName(upTo)
			if err != nil {
				return err
			}

			_, err = c.app.Run(cmd.Context(), app.RunOptions{
				RootDir:           projectDir,
				TaskNames:         args,
				ExcludedTaskNames: excluded,
				ConfigureOnDemand: configureOnDemand,
				MaxWorkers:        maxWorkers,
				UpTo:              stage,
			})
			return err
		},
	}
	cmd.Flags().StringP("project-dir", "p", ".", "Directory containing the build configuration")
	cmd.Flags().StringSliceP("exclude", "x", nil, "Task to exclude from execution (repeatable)")
	cmd.Flags().Int("max-workers", 0, "Maximum number of concurrent workers (0 uses the CPU count)")
	cmd.Flags().Bool("configure-on-demand", false, "Defer project evaluation until the task graph is calculated")
	cmd.Flags().String("up-to", "build", "Stage to run up to: load, configure or build")
	return cmd
}

func stageFromName(name string) (domain.Stage, error) {
	switch name {
	case "load":
		return domain.StageLoad, nil
	case "configure":
		return domain.StageConfigure, nil
	case "build", "":
		return domain.StageBuild, nil
	default:
		return domain.StageUnset, zerr.With(zerr.New("unknown build stage"), "stage", name)
	}
}
