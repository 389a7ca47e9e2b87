package main

import (
	"fmt"
	"os"

	"github.com/san-kum/micromag/internal/catalog"
	"github.com/san-kum/micromag/internal/config"
	"github.com/san-kum/micromag/internal/logger"
	"github.com/san-kum/micromag/internal/micromag"
	"github.com/san-kum/micromag/internal/tui"
	"github.com/san-kum/micromag/internal/viz"
	"github.com/spf13/cobra"
)

var (
	noColor bool
	force   bool
	outFile string

	log      *logger.Logger
	registry = catalog.Default()
)

// main registers the CLI commands and exits with status 1 if any of them fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "micromag",
		Short:         "assemble and inspect micromagnetic models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			log, err = logger.New(settings.LogMode)
			if err != nil {
				return err
			}
			if noColor || settings.NoColor {
				viz.DisableColor()
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "list term kinds and their parameter constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(viz.RenderKinds(registry.Kinds()))
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in model presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [file|preset]",
		Short: "print a model's terms and parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := loadSystem(args[0])
			if err != nil {
				return err
			}
			fmt.Println(viz.RenderSystem(sys))
			return nil
		},
	}

	latexCmd := &cobra.Command{
		Use:   "latex [file|preset]",
		Short: "print the symbolic form of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := loadSystem(args[0])
			if err != nil {
				return err
			}
			fmt.Println(sys.Latex())
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "check model files against every term constraint",
		Args:  cobra.MinimumNArgs(1),
		RunE:  validateFiles,
	}

	initCmd := &cobra.Command{
		Use:   "init [preset] [file]",
		Short: "write a preset to a model file",
		Args:  cobra.ExactArgs(2),
		RunE:  initModel,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	inspectCmd := &cobra.Command{
		Use:   "inspect [file|preset]",
		Short: "edit a model interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectModel,
	}
	inspectCmd.Flags().StringVar(&outFile, "out", "", "save the edited model to this file")

	rootCmd.AddCommand(kindsCmd, presetsCmd, showCmd, latexCmd, validateCmd, initCmd, inspectCmd)

	err := rootCmd.Execute()
	if log != nil {
		log.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, viz.ErrorText.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

// loadSystem builds a system from a preset name or a YAML file path.
func loadSystem(ref string) (*micromag.System, error) {
	m := config.GetPreset(ref)
	if m == nil {
		var err error
		if m, err = config.Load(ref); err != nil {
			return nil, fmt.Errorf("load %s: %w", ref, err)
		}
	}
	sys, err := m.Build(registry, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	log.Debug("model loaded", "source", ref, "energy_terms", sys.Hamiltonian.Len(), "dynamics_terms", sys.Dynamics.Len())
	return sys, nil
}

func validateFiles(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if _, err := loadSystem(path); err != nil {
			failed++
			log.Warn("model rejected", "file", path, "error", err)
			fmt.Printf("%s  %s\n", viz.ErrorText.Render("FAIL"), err)
			continue
		}
		fmt.Printf("%s  %s\n", viz.ParamValue.Render("ok  "), path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d models invalid", failed, len(args))
	}
	return nil
}

func initModel(cmd *cobra.Command, args []string) error {
	preset, path := args[0], args[1]
	m := config.GetPreset(preset)
	if m == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists, use --force to overwrite", path)
	}
	if _, err := m.Build(registry, log); err != nil {
		return err
	}
	if err := config.Save(path, m); err != nil {
		return err
	}
	log.Info("model written", "preset", preset, "file", path)
	return nil
}

func inspectModel(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem(args[0])
	if err != nil {
		return err
	}
	if err := tui.RunInspector(sys); err != nil {
		return err
	}
	fmt.Println(sys.Repr())
	if outFile == "" {
		return nil
	}
	m, err := config.FromSystem(registry, sys)
	if err != nil {
		return err
	}
	if err := config.Save(outFile, m); err != nil {
		return err
	}
	log.Info("model written", "file", outFile)
	return nil
}
