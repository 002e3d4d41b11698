package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sitegen-workers/deployments"
	"sitegen-workers/internal/common/camunda"
	"sitegen-workers/internal/common/config"
	"sitegen-workers/internal/presets"
)

type startOptions struct {
	deploy        bool
	cleanup       bool
	deployProcess bool
}

func newStartCmd(root *rootOptions) *cobra.Command {
	opts := &startOptions{}
	cmd := &cobra.Command{
		Use:   "start <preset-id>...",
		Short: "Start a site-generation process instance per preset on Zeebe",
		Long:  `Creates one site-generation process instance per preset. The generate-site worker picks each one up.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if err := config.ValidateForWorkers(cfg); err != nil {
				return err
			}

			reg := presets.Default()
			if _, err := presets.LoadInto(reg, cfg.Generation.PresetsPath); err != nil {
				return err
			}
			for _, id := range args {
				if _, err := reg.MustGet(id); err != nil {
					return err
				}
			}

			client, err := camunda.NewClientWithConfig(camunda.ConfigFrom(cfg.Camunda))
			if err != nil {
				return err
			}
			defer client.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if opts.deployProcess {
				resources, err := deployments.Resources()
				if err != nil {
					return err
				}
				for _, res := range resources {
					key, err := client.DeployProcess(ctx, res.Name, res.Definition)
					if err != nil {
						return fmt.Errorf("deploy %s: %w", res.Name, err)
					}
					fmt.Fprintf(out, "deployed %s (key %d)\n", res.Name, key)
				}
			}

			for _, id := range args {
				key, err := client.StartGeneration(ctx, id, opts.deploy, opts.cleanup)
				if err != nil {
					return fmt.Errorf("start %s: %w", id, err)
				}
				fmt.Fprintf(out, "%s\tinstance %d\n", id, key)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.deploy, "deploy", false, "Deploy each successful project")
	cmd.Flags().BoolVar(&opts.cleanup, "cleanup", false, "Remove each project after the run")
	cmd.Flags().BoolVar(&opts.deployProcess, "deploy-process", false, "Deploy the site-generation BPMN first")
	return cmd
}
