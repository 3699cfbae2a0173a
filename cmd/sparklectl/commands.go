package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"sparkle/config"
	"sparkle/models"
	"sparkle/services/availability"
	"sparkle/services/pricing"
	"sparkle/utils"

	"github.com/spf13/cobra"
)

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %v", path, err)
	}
	return nil
}

func QuoteCmd() *cobra.Command {
	var (
		rulesPath string
		cfg       pricing.BookingConfiguration
	)
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a booking against a rules file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []models.PricingRule
			if err := readJSON(rulesPath, &records); err != nil {
				return err
			}
			if err := pricing.ValidateConfiguration(cfg); err != nil {
				return err
			}

			rules, skipped := pricing.Compile(records)
			for _, err := range skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %v\n", err)
			}
			res := pricing.Evaluate(rules, cfg)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "rules.json", "JSON array of pricing rules")
	cmd.Flags().StringVar(&cfg.ServiceType, "service", "", "service type")
	cmd.Flags().Float64Var(&cfg.SquareFootage, "sqft", 0, "square footage")
	cmd.Flags().IntVar(&cfg.Bedrooms, "bedrooms", 0, "bedroom count")
	cmd.Flags().IntVar(&cfg.Bathrooms, "bathrooms", 0, "bathroom count")
	cmd.Flags().StringSliceVar(&cfg.SelectedExtras, "extra", nil, "selected extra, by rule id or name (repeatable)")
	_ = cmd.MarkFlagRequired("service")
	return cmd
}

var busyMarks = []string{" ", ".", "*", "#"}

func CalendarCmd() *cobra.Command {
	var bookingsPath, month string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month's busy grid from a bookings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ym, err := availability.ParseYearMonth(month)
			if err != nil {
				return fmt.Errorf("invalid --month %q: want YYYY-MM", month)
			}
			var bookings []models.Booking
			if err := readJSON(bookingsPath, &bookings); err != nil {
				return err
			}

			cal := availability.BuildCalendar(bookings, ym)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ym.Month.String(), ym.Year)
			fmt.Fprintln(out, "  Su   Mo   Tu   We   Th   Fr   Sa")
			for week := 0; week < availability.GridSize/7; week++ {
				cells := make([]string, 7)
				for i, d := range cal.Days[week*7 : week*7+7] {
					if !d.InMonth {
						cells[i] = "  --"
						continue
					}
					cells[i] = fmt.Sprintf("%3d%s", d.Date.Day, busyMarks[d.BusyLevel])
				}
				fmt.Fprintln(out, " "+strings.Join(cells, " "))
			}
			fmt.Fprintln(out, "busy: . 1-2  * 3-4  # 5+")
			return nil
		},
	}
	cmd.Flags().StringVar(&bookingsPath, "bookings", "bookings.json", "JSON array of bookings")
	cmd.Flags().StringVar(&month, "month", "", "month to print (YYYY-MM)")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

func RulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Pricing rule utilities",
	}
	cmd.AddCommand(rulesValidateCmd())
	return cmd
}

func rulesValidateCmd() *cobra.Command {
	var rulesPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every rule in a rules file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []models.PricingRule
			if err := readJSON(rulesPath, &records); err != nil {
				return err
			}

			invalid := 0
			for i, rec := range records {
				if err := pricing.Validate(rec); err != nil {
					invalid++
					name := rec.ID
					if name == "" {
						name = fmt.Sprintf("#%d", i)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "rule %s: %v\n", name, err)
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d rules are invalid", invalid, len(records))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "All %d rules are valid\n", len(records))
			return nil
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "rules.json", "JSON array of pricing rules")
	return cmd
}

// TokenCmd issues a portal JWT signed with the configured JWT_SECRET.
func TokenCmd() *cobra.Command {
	var subject, role string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed portal token",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch role {
			case utils.RoleAdmin, utils.RoleCleaner, utils.RoleClient:
			default:
				return fmt.Errorf("unknown role %q", role)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			config.AppConfig = cfg

			token, err := utils.GenerateToken(subject, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "user id carried in the sub claim")
	cmd.Flags().StringVar(&role, "role", utils.RoleCleaner, "admin, cleaner or client")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
