package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/planning"
)

func newPlanCommand() *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Strategic planning: rocks, KPIs, and huddles",
	}
	planCmd.AddCommand(newRockAddCommand())
	planCmd.AddCommand(newRockUpdateCommand())
	planCmd.AddCommand(newKPIAddCommand())
	planCmd.AddCommand(newKPIRecordCommand())
	planCmd.AddCommand(newHuddleLogCommand())
	return planCmd
}

func newRockAddCommand() *cobra.Command {
	var dir, description, owner, quarter, due, by string

	cmd := &cobra.Command{
		Use:   "rock-add",
		Short: "Add a quarterly rock",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			var dueDate time.Time
			if due != "" {
				dueDate, err = time.Parse(dateFormat, due)
				if err != nil {
					return fmt.Errorf("parsing due date %q: %w", due, err)
				}
			}

			rock, err := a.planning.CreateRock(planning.RockParams{
				Description: description,
				Owner:       owner,
				Quarter:     quarter,
				DueDate:     dueDate,
			})
			if err != nil {
				return err
			}

			a.finish(by, "add_rock", rock.ID, description)
			fmt.Printf("Added rock %s\n", rock.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&description, "desc", "", "rock description (required)")
	cmd.Flags().StringVar(&owner, "owner", "", "owner (required)")
	cmd.Flags().StringVar(&quarter, "quarter", "", "quarter, e.g. 'Q1 2026' (required)")
	cmd.Flags().StringVar(&due, "due", "", "due date YYYY-MM-DD")
	cmd.Flags().StringVar(&by, "by", "", "who added the rock")
	_ = cmd.MarkFlagRequired("desc")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("quarter")

	return cmd
}

func newRockUpdateCommand() *cobra.Command {
	var dir, rockID, status, by string
	var progress int

	cmd := &cobra.Command{
		Use:   "rock-update",
		Short: "Update a rock's progress and status",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			rock, err := a.planning.UpdateRock(rockID, progress, model.RockStatus(status))
			if err != nil {
				return err
			}

			a.finish(by, "update_rock", rock.ID, fmt.Sprintf("%d%% %s", rock.Progress, rock.Status))
			fmt.Printf("Rock %s: %d%% (%s)\n", rock.ID, rock.Progress, rock.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&rockID, "rock", "", "rock ID (required)")
	cmd.Flags().IntVar(&progress, "progress", 0, "progress 0-100")
	cmd.Flags().StringVar(&status, "status", string(model.RockOnTrack), "on-track, at-risk, or off-track")
	cmd.Flags().StringVar(&by, "by", "", "who updated the rock")
	_ = cmd.MarkFlagRequired("rock")

	return cmd
}

func newKPIAddCommand() *cobra.Command {
	var dir, name, category, unit, frequency, by string
	var target float64
	var higherBetter bool

	cmd := &cobra.Command{
		Use:   "kpi-add",
		Short: "Start tracking a KPI",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			kpi, err := a.planning.CreateKPI(planning.KPIParams{
				Name:           name,
				Category:       category,
				TargetValue:    target,
				Unit:           unit,
				Frequency:      frequency,
				IsHigherBetter: higherBetter,
			})
			if err != nil {
				return err
			}

			a.finish(by, "add_kpi", kpi.ID, name)
			fmt.Printf("Tracking KPI %s\n", kpi.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&name, "name", "", "KPI name (required)")
	cmd.Flags().StringVar(&category, "category", "operational", "financial, operational, tenant, or strategic")
	cmd.Flags().Float64Var(&target, "target", 0, "target value")
	cmd.Flags().StringVar(&unit, "unit", "", "unit, e.g. %")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "daily, weekly, monthly, or quarterly")
	cmd.Flags().BoolVar(&higherBetter, "higher-better", true, "whether higher values are better")
	cmd.Flags().StringVar(&by, "by", "", "who added the KPI")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newKPIRecordCommand() *cobra.Command {
	var dir, kpiID, by string
	var value float64

	cmd := &cobra.Command{
		Use:   "kpi-record",
		Short: "Record a KPI measurement",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			kpi, err := a.planning.RecordKPIValue(kpiID, value)
			if err != nil {
				return err
			}

			a.finish(by, "record_kpi", kpi.ID, fmt.Sprintf("%s = %.2f (%s)", kpi.Name, value, kpi.Status))
			fmt.Printf("%s: %.2f, status %s, trend %s\n", kpi.Name, kpi.CurrentValue, kpi.Status, kpi.Trend)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&kpiID, "kpi", "", "KPI ID (required)")
	cmd.Flags().Float64Var(&value, "value", 0, "measured value")
	cmd.Flags().StringVar(&by, "by", "", "who recorded the measurement")
	_ = cmd.MarkFlagRequired("kpi")

	return cmd
}

func newHuddleLogCommand() *cobra.Command {
	var dir, huddleType, notes, by string
	var attendees, wins, stucks, priorities []string

	cmd := &cobra.Command{
		Use:   "huddle",
		Short: "Log a team huddle",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			huddle, err := a.planning.LogHuddle(planning.HuddleParams{
				Type:       huddleType,
				Attendees:  attendees,
				Wins:       wins,
				Stucks:     stucks,
				Priorities: priorities,
				Notes:      notes,
				CreatedBy:  by,
			})
			if err != nil {
				return err
			}

			a.finish(by, "log_huddle", huddle.ID, huddleType+" huddle")
			fmt.Printf("Logged %s huddle %s\n", huddleType, huddle.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&huddleType, "type", "weekly", "daily, weekly, monthly, quarterly, or annual")
	cmd.Flags().StringSliceVar(&attendees, "attendee", nil, "attendee (repeatable)")
	cmd.Flags().StringSliceVar(&wins, "win", nil, "win (repeatable)")
	cmd.Flags().StringSliceVar(&stucks, "stuck", nil, "stuck (repeatable)")
	cmd.Flags().StringSliceVar(&priorities, "priority", nil, "priority (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	cmd.Flags().StringVar(&by, "by", "", "who logged the huddle")

	return cmd
}
