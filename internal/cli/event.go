package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/remindcal/internal/alarm"
	"github.com/example/remindcal/internal/calendar"
	"github.com/example/remindcal/internal/model"
)

// AddCmd — сохранение события с напоминанием.
func AddCmd(app *App) *cobra.Command {
	var in calendar.EventInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save an event and schedule its reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Planner.SaveEventWithReminder(cmd.Context(), in)
			switch {
			case errors.Is(err, calendar.ErrEmptyTitle):
				return fmt.Errorf("please enter a title for the event")
			case errors.Is(err, calendar.ErrNoDate):
				return fmt.Errorf("please select a date for the event")
			case err != nil:
				return fmt.Errorf("failed to save event: %w", err)
			}

			if result.NotificationScheduled {
				fmt.Printf("Event saved with ID: %d! Alarm scheduled and database records created.\n", result.EventID)
				fmt.Println("Reminders fire while the process runs; use `remindcal watch` to keep them armed.")
			} else {
				fmt.Printf("Event saved with ID: %d. Reminder was not scheduled (alarm time already passed).\n", result.EventID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Title, "title", "t", "", "event title (required)")
	cmd.Flags().StringVar(&in.Description, "desc", "", "event description")
	cmd.Flags().StringVarP(&in.Date, "date", "d", "", "event date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&in.Time, "time", "12:00", "event time, HH:MM (24h)")
	cmd.Flags().StringVar(&in.AlarmOffset, "alarm", alarm.Offset5Min,
		fmt.Sprintf("alarm lead time, one of: %v", alarm.Labels()))
	cmd.Flags().StringVar(&in.Category, "category", model.CategoryWork,
		"event category (Work, Personal, Family, Friends, Other)")

	return cmd
}

// ListCmd — лента событий, сгруппированная по дням.
func ListCmd(app *App) *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved events grouped by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			events := app.Planner.Events()
			if len(events) == 0 {
				fmt.Println("No events yet.")
				return nil
			}

			result := calendar.PaginateEvents(events, page, size, time.Now())
			for _, section := range result.Sections {
				fmt.Println(section.Title)
				printEvents(section.Events)
			}
			if result.HasNext || result.HasPrev {
				fmt.Printf("page %d, %d events total\n", result.Page, result.Total)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&size, "size", 10, "events per page")

	return cmd
}

// AgendaCmd — события одной даты по возрастанию времени.
func AgendaCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show events for a single date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(calendar.DateLayout)
			}

			events, err := app.Planner.Agenda(cmd.Context(), date)
			if err != nil {
				return fmt.Errorf("failed to load agenda: %w", err)
			}
			if len(events) == 0 {
				fmt.Printf("No events on %s.\n", date)
				return nil
			}

			fmt.Println(date)
			printEvents(events)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "date, YYYY-MM-DD (defaults to today)")

	return cmd
}

// DeleteCmd — удаление события по идентификатору.
func DeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [event-id]",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[0])
			}

			if err := app.Planner.DeleteEvent(cmd.Context(), eventID); err != nil {
				return fmt.Errorf("failed to delete event: %w", err)
			}
			fmt.Printf("Event %d deleted.\n", eventID)
			return nil
		},
	}
}

func printEvents(events []model.Event) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, ev := range events {
		chip := categoryColor(ev.Category).Sprintf("[%s]", ev.Category)
		desc := ev.Description
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\n",
			ev.EventID,
			calendar.FormatClock(ev.EventTime),
			ev.EventName,
			chip,
			desc,
		)
	}
	w.Flush()
}
