package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lexboard/internal/config"
	"lexboard/internal/domain"
	"lexboard/internal/engine"
	"lexboard/internal/persist"
	"lexboard/internal/server"
	"lexboard/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lxb",
	Short: "Lexboard CLI",
	Long: `Lexboard manages court hearings, the professionals who cover them, and the
paperwork that follows.
Core concepts:
- Workspace: your .lexboard directory holding the database; lexboard.yml
  alongside it configures the court, practice areas, states, and task titles.
- Jurisdictions: the court units (name, state, city) hearings belong to.
- Professionals: lawyers and court officials with a specialization and the
  state bars they are admitted to.
- Hearings: scheduled sessions that flow pending -> assigned -> completed
  (or cancelled); eligibility matches specialization to area and admission
  to the jurisdiction's state.
- Minutes: uploading the session minutes completes a hearing.
- Payments: fee records per hearing; status syncs back onto the hearing.
- Tasks: follow-ups like upload_minutes or payment, derived from hearing
  state with 'lxb task derive' and auto-closed when the action happens.`,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("LEXBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().Bool("force", false, "force operation")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("force", rootCmd.PersistentFlags().Lookup("force"))
}

func registerCommands() {
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(hearingCmd())
	rootCmd.AddCommand(professionalCmd())
	rootCmd.AddCommand(jurisdictionCmd())
	rootCmd.AddCommand(paymentCmd())
	rootCmd.AddCommand(taskCmd())
	rootCmd.AddCommand(serveCmd())
}

func initCmd() *cobra.Command {
	var court string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace := viper.GetString("workspace")
			if _, err := persist.EnsureWorkspace(workspace); err != nil {
				return err
			}
			path := config.Path(workspace)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.WriteFile(path, []byte(config.GenerateDefault(court)), 0o644); err != nil {
				return err
			}
			fmt.Printf("Initialized workspace: %s and %s\n", persist.Path(workspace), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&court, "court", "Lexboard", "court name for the generated config")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show hearing dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e engine.Engine) error {
				s := e.GetHearingStats()
				if viper.GetBool("json") {
					return printJSON(s)
				}
				fmt.Printf("Hearings today:   %d\n", s.Today)
				fmt.Printf("Pending:          %d\n", s.Pending)
				fmt.Printf("Awaiting minutes: %d\n", s.AwaitingMinutes)
				fmt.Printf("Awaiting payment: %d\n", s.AwaitingPayment)
				return nil
			})
		},
	}
}

func summaryCmd() *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show financial summary for a trailing period",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e engine.Engine) error {
				s := e.GetFinancialSummary(period)
				if viper.GetBool("json") {
					return printJSON(s)
				}
				fmt.Printf("Period:  %s\n", s.Period)
				fmt.Printf("Total:   %.2f\n", s.Total)
				fmt.Printf("Paid:    %.2f\n", s.Paid)
				fmt.Printf("Pending: %.2f\n", s.Pending)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&period, "period", "month", "week, month, or year")
	return cmd
}

func hearingCmd() *cobra.Command {
	hearing := &cobra.Command{
		Use:   "hearing",
		Short: "Manage hearings",
		Long:  "Hearings flow pending -> assigned -> completed; cancel is a valid exit from either. Uploading minutes completes a hearing.",
	}
	hearing.AddCommand(hearingListCmd())
	hearing.AddCommand(hearingCreateCmd())
	hearing.AddCommand(hearingShowCmd())
	hearing.AddCommand(hearingCandidatesCmd())
	hearing.AddCommand(hearingAssignCmd())
	hearing.AddCommand(hearingMinutesCmd())
	hearing.AddCommand(hearingCompleteCmd())
	hearing.AddCommand(hearingCancelCmd())
	return hearing
}

func hearingListCmd() *cobra.Command {
	var status, date, area string
	var jurisdictionID, professionalID int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hearings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e engine.Engine) error {
				items := e.Store.HearingsWhere(func(h domain.Hearing) bool {
					if status != "" && h.Status != status {
						return false
					}
					if date != "" && h.Date != date {
						return false
					}
					if area != "" && h.Area != area {
						return false
					}
					if jurisdictionID != 0 && h.JurisdictionID != jurisdictionID {
						return false
					}
					if professionalID != 0 && (h.ProfessionalID == nil || *h.ProfessionalID != professionalID) {
						return false
					}
					return true
				})
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Process", "Date", "Time", "Type", "Area", "Status", "Professional"})
				for _, h := range items {
					pro := ""
					if h.ProfessionalID != nil {
						pro = strconv.Itoa(*h.ProfessionalID)
					}
					tw.AppendRow(table.Row{h.ID, h.ProcessNumber, h.Date, h.Time, h.Type, h.Area, h.Status, pro})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "status filter")
	cmd.Flags().StringVar(&date, "date", "", "date filter (YYYY-MM-DD)")
	cmd.Flags().StringVar(&area, "area", "", "area filter")
	cmd.Flags().IntVar(&jurisdictionID, "jurisdiction", 0, "jurisdiction id filter")
	cmd.Flags().IntVar(&professionalID, "professional", 0, "professional id filter")
	return cmd
}

func hearingCreateCmd() *cobra.Command {
	var process, date, hearingTime, hearingType, area, notes string
	var jurisdictionID int
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a hearing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if process == "" {
				return fmt.Errorf("--process required")
			}
			if jurisdictionID == 0 {
				return fmt.Errorf("--jurisdiction required")
			}
			return withEngine(func(e engine.Engine) error {
				if _, ok := e.Store.GetJurisdiction(jurisdictionID); !ok {
					return fmt.Errorf("jurisdiction %d: invalid reference", jurisdictionID)
				}
				if e.Config != nil && !e.Config.KnownArea(area) {
					return fmt.Errorf("unknown area %s", area)
				}
				h := e.Store.CreateHearing(domain.Hearing{
					ProcessNumber:  process,
					JurisdictionID: jurisdictionID,
					Date:           date,
					Time:           hearingTime,
					Type:           hearingType,
					Area:           area,
					Notes:          notes,
				})
				return printJSONOrTable(h)
			})
		},
	}
	cmd.Flags().StringVar(&process, "process", "", "process number")
	cmd.Flags().IntVar(&jurisdictionID, "jurisdiction", 0, "jurisdiction id")
	cmd.Flags().StringVar(&date, "date", "", "hearing date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&hearingTime, "time", "", "hearing time (HH:MM)")
	cmd.Flags().StringVar(&hearingType, "type", "Conciliation", "Conciliation, Instruction, Judgment, or Administrative")
	cmd.Flags().StringVar(&area, "area", "", "practice area")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func hearingShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a hearing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid hearing id %q", args[0])
			}
			return withEngine(func(e engine.Engine) error {
				h, ok := e.Store.GetHearing(id)
				if !ok {
					return fmt.Errorf("hearing %d: not found", id)
				}
				return printJSONOrTable(h)
			})
		},
	}
}

func hearingCandidatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates <id>",
		Short: "List professionals eligible for a hearing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid hearing id %q", args[0])
			}
			return withEngine(func(e engine.Engine) error {
				items, err := e.EligibleProfessionals(id)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Name", "Type", "Specialization", "States"})
				for _, p := range items {
					tw.AppendRow(table.Row{p.ID, p.Name, p.Type, p.Specialization, strings.Join(p.Jurisdictions, ",")})
				}
				tw.Render()
				return nil
			})
		},
	}
}

func hearingAssignCmd() *cobra.Command {
	var professionalID int
	cmd := &cobra.Command{
		Use:   "assign <id>",
		Short: "Assign a professional to a hearing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid hearing id %q", args[0])
			}
			if professionalID == 0 {
				return fmt.Errorf("--professional required")
			}
			return withEngine(func(e engine.Engine) error {
				h, err := e.AssignProfessional(id, professionalID, viper.GetBool("force"))
				if err != nil {
					return err
				}
				return printJSONOrTable(h)
			})
		},
	}
	cmd.Flags().IntVar(&professionalID, "professional", 0, "professional id")
	return cmd
}

func hearingMinutesCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "minutes <id>",
		Short: "Record a minutes upload for a hearing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid hearing id %q", args[0])
			}
			if file == "" {
				return fmt.Errorf("--file required")
			}
			return withEngine(func(e engine.Engine) error {
				h, err := e.RecordMinutesUpload(id, file)
				if err != nil {
					return err
				}
				return printJSONOrTable(h)
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "stored reference of the minutes document")
	return cmd
}

func hearingCompleteCmd() *cobra.Command {
	return hearingStatusCmd("complete", "Complete a hearing", domain.HearingCompleted)
}

func hearingCancelCmd() *cobra.Command {
	return hearingStatusCmd("cancel", "Cancel a hearing", domain.HearingCancelled)
}

func hearingStatusCmd(verb, short, status string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid hearing id %q", args[0])
			}
			return withEngine(func(e engine.Engine) error {
				h, err := e.SetHearingStatus(id, status, viper.GetBool("force"))
				if err != nil {
					return err
				}
				return printJSONOrTable(h)
			})
		},
	}
}

func professionalCmd() *cobra.Command {
	pro := &cobra.Command{
		Use:   "professional",
		Short: "Manage professionals",
		Long:  "Professionals are lawyers and court officials. Eligibility for a hearing requires an active professional whose specialization matches the hearing's area and who is admitted in the jurisdiction's state.",
	}
	pro.AddCommand(professionalListCmd())
	pro.AddCommand(professionalAddCmd())
	pro.AddCommand(professionalShowCmd())
	pro.AddCommand(professionalToggleCmd())
	return pro
}

func professionalListCmd() *cobra.Command {
	var proType, specialization, state string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List professionals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e engine.Engine) error {
				items := e.Store.ProfessionalsWhere(func(p domain.Professional) bool {
					if proType != "" && p.Type != proType {
						return false
					}
					if specialization != "" && p.Specialization != specialization {
						return false
					}
					if state != "" && !hasState(p.Jurisdictions, state) {
						return false
					}
					return true
				})
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Name", "Type", "Specialization", "States", "Active"})
				for _, p := range items {
					tw.AppendRow(table.Row{p.ID, p.Name, p.Type, p.Specialization, strings.Join(p.Jurisdictions, ","), p.Active})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&proType, "type", "", "lawyer or court_official")
	cmd.Flags().StringVar(&specialization, "specialization", "", "specialization filter")
	cmd.Flags().StringVar(&state, "state", "", "state admission filter")
	return cmd
}

func professionalAddCmd() *cobra.Command {
	var name, email, phone, proType, specialization string
	var states []string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a professional",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" || specialization == "" {
				return fmt.Errorf("--name, --email, and --specialization are required")
			}
			if len(states) == 0 {
				return fmt.Errorf("--state required at least once")
			}
			return withEngine(func(e engine.Engine) error {
				if e.Config != nil {
					for _, s := range states {
						if !e.Config.KnownState(s) {
							return fmt.Errorf("unknown state code %s", s)
						}
					}
				}
				p := e.Store.CreateProfessional(domain.Professional{
					Name:           name,
					Email:          email,
					Phone:          phone,
					Type:           proType,
					Specialization: specialization,
					Jurisdictions:  states,
					Active:         true,
				})
				return printJSONOrTable(p)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&proType, "type", "lawyer", "lawyer or court_official")
	cmd.Flags().StringVar(&specialization, "specialization", "", "practice area")
	cmd.Flags().StringSliceVar(&states, "state", nil, "state admission (repeatable)")
	return cmd
}

func professionalShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a professional",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid professional id %q", args[0])
			}
			return withEngine(func(e engine.Engine) error {
				p, ok := e.Store.GetProfessional(id)
				if !ok {
					return fmt.Errorf("professional %d: not found", id)
				}
				return printJSONOrTable(p)
			})
		},
	}
}

func professionalToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a professional's active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid professional id %q", args[0])
			}
			return withEngine(func(e engine.Engine) error {
				p, ok := e.Store.GetProfessional(id)
				if !ok {
					return fmt.Errorf("professional %d: not found", id)
				}
				active := !p.Active
				p, _ = e.Store.UpdateProfessional(id, domain.ProfessionalUpdate{Active: &active})
				return printJSONOrTable(p)
			})
		},
	}
}

func jurisdictionCmd() *cobra.Command {
	jur := &cobra.Command{Use: "jurisdiction", Short: "Manage jurisdictions"}
	jur.AddCommand(jurisdictionListCmd())
	jur.AddCommand(jurisdictionAddCmd())
	return jur
}

func jurisdictionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List jurisdictions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e engine.Engine) error {
				items := e.Store.ListJurisdictions()
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Name", "State", "City"})
				for _, j := range items {
					tw.AppendRow(table.Row{j.ID, j.Name, j.State, j.City})
				}
				tw.Render()
				return nil
			})
		},
	}
}

func jurisdictionAddCmd() *cobra.Command {
	var name, state, city, address string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a jurisdiction",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || state == "" || city == "" {
				return fmt.Errorf("--name, --state, and --city are required")
			}
			return withEngine(func(e engine.Engine) error {
				if e.Config != nil && !e.Config.KnownState(state) {
					return fmt.Errorf("unknown state code %s", state)
				}
				j := e.Store.CreateJurisdiction(domain.Jurisdiction{
					Name:    name,
					State:   state,
					City:    city,
					Address: address,
				})
				return printJSONOrTable(j)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "court unit name")
	cmd.Flags().StringVar(&state, "state", "", "two-letter state code")
	cmd.Flags().StringVar(&city, "city", "", "city")
	cmd.Flags().StringVar(&address, "address", "", "street address")
	return cmd
}

func paymentCmd() *cobra.Command {
	pay := &cobra.Command{Use: "payment", Short: "Manage payments"}
	pay.AddCommand(paymentRecordCmd())
	pay.AddCommand(paymentListCmd())
	return pay
}

func paymentRecordCmd() *cobra.Command {
	var hearingID, professionalID int
	var amount float64
	var status, paymentDate, notes string
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a payment for a hearing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e engine.Engine) error {
				p, err := e.RecordPayment(engine.PaymentOptions{
					HearingID:      hearingID,
					ProfessionalID: professionalID,
					Amount:         amount,
					Status:         status,
					PaymentDate:    paymentDate,
					Notes:          notes,
				})
				if err != nil {
					return err
				}
				return printJSONOrTable(p)
			})
		},
	}
	cmd.Flags().IntVar(&hearingID, "hearing", 0, "hearing id")
	cmd.Flags().IntVar(&professionalID, "professional", 0, "professional id")
	cmd.Flags().Float64Var(&amount, "amount", 0, "payment amount")
	cmd.Flags().StringVar(&status, "status", "", "pending, processing, or paid")
	cmd.Flags().StringVar(&paymentDate, "date", "", "payment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func paymentListCmd() *cobra.Command {
	var hearingID int
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e engine.Engine) error {
				items := e.Store.PaymentsWhere(func(p domain.Payment) bool {
					if hearingID != 0 && p.HearingID != hearingID {
						return false
					}
					if status != "" && p.Status != status {
						return false
					}
					return true
				})
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Hearing", "Professional", "Amount", "Status", "Date"})
				for _, p := range items {
					tw.AppendRow(table.Row{p.ID, p.HearingID, p.ProfessionalID, fmt.Sprintf("%.2f", p.Amount), p.Status, p.PaymentDate})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&hearingID, "hearing", 0, "hearing id filter")
	cmd.Flags().StringVar(&status, "status", "", "status filter")
	return cmd
}

func taskCmd() *cobra.Command {
	task := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long:  "Tasks are follow-ups derived from hearing state: assign a professional, upload the minutes, record the payment. Derivation never duplicates an open task and the matching action auto-closes it.",
	}
	task.AddCommand(taskListCmd())
	task.AddCommand(taskDeriveCmd())
	task.AddCommand(taskCompleteCmd())
	return task
}

func taskListCmd() *cobra.Command {
	var status, taskType string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e engine.Engine) error {
				items := e.Store.TasksWhere(func(t domain.Task) bool {
					if status != "" && t.Status != status {
						return false
					}
					if taskType != "" && t.Type != taskType {
						return false
					}
					return true
				})
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Title", "Type", "Status", "Related", "Due"})
				for _, t := range items {
					related := ""
					if t.RelatedID != nil {
						related = strconv.Itoa(*t.RelatedID)
					}
					tw.AppendRow(table.Row{t.ID, t.Title, t.Type, t.Status, related, t.DueDate})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "status filter")
	cmd.Flags().StringVar(&taskType, "type", "", "type filter")
	return cmd
}

func taskDeriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive",
		Short: "Derive pending tasks from hearing state",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e engine.Engine) error {
				created := e.DeriveTasks()
				if viper.GetBool("json") {
					return printJSON(created)
				}
				fmt.Printf("Derived %d task(s)\n", len(created))
				for _, t := range created {
					fmt.Printf("  #%d %s (%s)\n", t.ID, t.Title, t.Type)
				}
				return nil
			})
		},
	}
}

func taskCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			return withEngine(func(e engine.Engine) error {
				status := domain.TaskCompleted
				t, ok := e.Store.UpdateTask(id, domain.TaskUpdate{Status: &status})
				if !ok {
					return fmt.Errorf("task %d: not found", id)
				}
				return printJSONOrTable(t)
			})
		},
	}
}

func serveCmd() *cobra.Command {
	var addr, basePath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace := viper.GetString("workspace")
			if _, err := persist.EnsureWorkspace(workspace); err != nil {
				return err
			}
			db, err := persist.Open(workspace)
			if err != nil {
				return err
			}
			defer db.Close()
			snap, err := db.Load()
			if err != nil {
				return err
			}
			st := store.New()
			st.Restore(snap)
			cfg, err := config.LoadOptional(workspace)
			if err != nil {
				return err
			}
			if cfg == nil {
				cfg = config.Default("Lexboard")
			}
			e := engine.New(st, cfg)
			handler, err := server.New(server.Config{Engine: e, BasePath: basePath})
			if err != nil {
				return err
			}
			srv := &http.Server{Addr: addr, Handler: handler}
			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
			fmt.Printf("Serving Lexboard API on http://%s%s (OpenAPI at %s/openapi.json, Swagger UI at /docs)\n", addr, basePath, basePath)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			// Snapshot the store so the next invocation sees this run's data.
			return db.Save(st.Snapshot())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "/v0", "API base path")
	return cmd
}

func withEngine(fn func(engine.Engine) error) error {
	workspace := viper.GetString("workspace")
	if _, err := persist.EnsureWorkspace(workspace); err != nil {
		return err
	}
	db, err := persist.Open(workspace)
	if err != nil {
		return err
	}
	defer db.Close()
	snap, err := db.Load()
	if err != nil {
		return err
	}
	st := store.New()
	st.Restore(snap)
	cfg, err := config.LoadOptional(workspace)
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = config.Default("Lexboard")
	}
	e := engine.New(st, cfg)
	if err := fn(e); err != nil {
		return err
	}
	return db.Save(st.Snapshot())
}

func hasState(states []string, state string) bool {
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printJSONOrTable(v any) error {
	if viper.GetBool("json") {
		return printJSON(v)
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
	return nil
}
