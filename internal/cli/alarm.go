package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/remindcal/internal/notify"
)

// AlarmsCmd — список ожидающих таймеров текущего процесса.
func AlarmsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "alarms",
		Short: "List pending reminder timers",
		RunE: func(cmd *cobra.Command, args []string) error {
			alarms, err := app.Planner.ScheduledAlarms(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list alarms: %w", err)
			}
			if len(alarms) == 0 {
				fmt.Println("No pending reminders in this process.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFIRES AT\tTITLE")
			for _, a := range alarms {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					a.ID,
					a.At.Format("2006-01-02 15:04"),
					a.Content.Title,
				)
			}
			w.Flush()
			return nil
		},
	}
}

// WatchCmd — долгоживущий режим доставки: перевооружает таймеры по
// сохранённым событиям и печатает напоминания по мере срабатывания.
func WatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep reminders armed and print them as they fire",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Notifier.OnFire = func(s notify.Scheduled) {
				color.New(color.FgYellow, color.Bold).Println(s.Content.Title)
				fmt.Println(s.Content.Body)
			}

			count, err := app.Planner.RescheduleUpcoming(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to arm reminders: %w", err)
			}
			fmt.Printf("%d reminder(s) armed. Waiting... (Ctrl+C to stop)\n", count)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop

			return app.Notifier.CancelAll(cmd.Context())
		},
	}
}
