package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neurofleetx/fleetops/core/geo"
	"github.com/neurofleetx/fleetops/core/routing"
)

var planReq routing.RouteRequest

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute route variants between two points",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().Float64Var(&planReq.StartLat, "start-lat", 28.6315, "start latitude")
	planCmd.Flags().Float64Var(&planReq.StartLng, "start-lng", 77.2167, "start longitude")
	planCmd.Flags().Float64Var(&planReq.EndLat, "end-lat", 28.5355, "end latitude")
	planCmd.Flags().Float64Var(&planReq.EndLng, "end-lng", 77.3910, "end longitude")
	planCmd.Flags().StringVar(&planReq.Preference, "preference", "", "route preference hint")
	planCmd.Flags().StringVar(&planReq.VehicleType, "vehicle-type", "", "vehicle type hint")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	planner := routing.NewPlanner(geo.NewCityGraph(), nil)
	for _, r := range planner.Plan(planReq) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-18s eta=%-9s dist=%-8s traffic=%-8s energy=%.2f kWh  points=%d\n",
			r.ID, r.Kind, r.ETAText, r.DistanceText, r.Traffic, r.EnergyUsage, len(r.Path))
	}
	return nil
}
