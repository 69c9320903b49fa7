package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"trustrent-backend/internal/app"
	"trustrent-backend/internal/config"
	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/jobs"
	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/service"
)

func loadApp(cmd *cobra.Command) (*app.App, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	return app.New(cmd.Context(), cfg)
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render PDF reports",
	}
	cmd.PersistentFlags().StringP("out", "o", ".", "Directory to write the PDF to")

	cmd.AddCommand(&cobra.Command{
		Use:   "credit",
		Short: "Render the current tenant's credit report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			link, err := a.Services.Report.GenerateCreditReport(cmd.Context())
			if err != nil {
				return err
			}
			return saveReport(cmd, a, link)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "invoice <paymentId>",
		Short: "Render the invoice of one payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			link, err := a.Services.Report.GenerateInvoice(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return saveReport(cmd, a, link)
		},
	})

	return cmd
}

func saveReport(cmd *cobra.Command, a *app.App, link *service.ReportLink) error {
	dir, _ := cmd.Flags().GetString("out")
	src, err := a.Storage.ReadFile(cmd.Context(), link.Key)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}
	defer src.Close()

	path := filepath.Join(dir, link.Filename)
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func adviseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advise <question>",
		Short: "Ask the AI advisor a question as a landlord or tenant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, _ := cmd.Flags().GetString("role")
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if _, err := a.Services.Session.Authenticate(ctx, domain.UserRole(strings.ToUpper(role))); err != nil {
				return err
			}
			answer, err := a.Services.Advisory.Ask(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
	cmd.Flags().String("role", string(domain.UserRoleLandlord), "Role to ask as (LANDLORD or TENANT)")
	return cmd
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the portfolio summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return printSummary(cmd.Context(), cmd.OutOrStdout(), a.Services)
		},
	}
}

func printSummary(ctx context.Context, w io.Writer, svc *service.Services) error {
	summary, err := svc.Rent.PortfolioSummary(ctx)
	if err != nil {
		return err
	}
	properties, err := svc.Property.ListProperties(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-10s  %-36s  %-12s  %8s\n", "ID", "Address", "Status", "Rent")
	for _, p := range properties {
		fmt.Fprintf(w, "%-10s  %-36s  %-12s  %8d\n", p.ID, p.Address, p.Status, p.RentAmount)
	}
	fmt.Fprintf(w, "\nTotal %d, occupied %d, vacant %d, monthly revenue $%d\n",
		summary.TotalProperties, summary.Occupied, summary.Vacant, summary.MonthlyRevenue)
	return nil
}

func jobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Run scheduled jobs by hand",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reminders",
		Short: "Send rent reminders for properties due soon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			runner := jobs.NewJobRunner(a.Store, &jobs.Services{
				Rent:     a.Services.Rent,
				Reminder: a.Services.Reminder,
			}, a.Config)
			runner.SendRentReminders()
			return nil
		},
	})
	return cmd
}
