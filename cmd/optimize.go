package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neurofleetx/fleetops/app"
	"github.com/neurofleetx/fleetops/config"
	"github.com/neurofleetx/fleetops/core/loadbalance"
	"github.com/neurofleetx/fleetops/core/model"
)

var tasksPath string

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Distribute delivery tasks across the fleet",
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&tasksPath, "tasks", "t", "", "JSON file with the task list")
	_ = optimizeCmd.MarkFlagRequired("tasks")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := os.ReadFile(tasksPath)
	if err != nil {
		return fmt.Errorf("read tasks: %w", err)
	}
	var req loadbalance.LoadRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parse tasks: %w", err)
	}
	tasks := make([]model.DeliveryTask, 0, len(req.Tasks))
	for _, p := range req.Tasks {
		tasks = append(tasks, p.Task())
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	ctx := context.Background()
	vehicles, err := svc.Store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load vehicles: %w", err)
	}

	for _, a := range svc.Balancer.OptimizeLoad(vehicles, tasks) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %.1f kg, %s, tasks [%s]\n",
			a.VehicleID, a.VehicleName, a.TotalLoadKg, a.Status, strings.Join(a.AssignedTaskIDs, " "))
	}
	return nil
}
