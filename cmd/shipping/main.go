// Command shipping is the operator tool for the dispatch workflow.
//
//	shipping resend [-order ID] [-branch ID]
//	shipping test-connection [-shop ID]
//	shipping report [-limit N] [-json]
//	shipping token [-branch ID]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/advfood/internal"
	"github.com/DrGermanius/advfood/internal/model"
)

var errFailures = errors.New("some orders were not dispatched")

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := internal.NewLogger(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	args := os.Args[2:]
	switch os.Args[1] {
	case "resend":
		err = resend(ctx, cfg, logger, args)
	case "test-connection":
		err = testConnection(ctx, cfg, logger, args)
	case "report":
		err = report(ctx, cfg, logger, args)
	case "token":
		err = token(cfg, logger, args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: shipping <resend|test-connection|report|token> [flags]")
}

func resend(ctx context.Context, cfg *internal.Config, logger *zap.SugaredLogger, args []string) error {
	fs := flag.NewFlagSet("resend", flag.ExitOnError)
	orderID := fs.Int64("order", 0, "dispatch a single order")
	branchID := fs.Int64("branch", 0, "branch whose shop mapping applies")
	if err := fs.Parse(args); err != nil {
		return err
	}

	repository, err := internal.NewRepository(cfg.DatabaseURI, logger)
	if err != nil {
		return err
	}
	defer repository.Close()

	shipping, err := internal.NewShippingClient(cfg.Shipping, logger)
	if err != nil {
		return err
	}

	events, err := internal.NewEventPublisher(cfg.Events, logger)
	if err != nil {
		return err
	}
	defer events.Close()

	service := internal.NewService(repository, shipping, events, cfg.AuthSecret, logger)

	var branch *int64
	if *branchID != 0 {
		branch = branchID
	}

	var reports []model.DispatchReport
	if *orderID != 0 {
		r, err := service.Dispatch(ctx, *orderID, branch)
		if err != nil && r.Outcome == "" {
			return err
		}
		reports = append(reports, r)
	} else {
		reports, err = service.DispatchPending(ctx, branch)
		if err != nil {
			return err
		}
	}

	printDispatchReports(os.Stdout, reports)

	for _, r := range reports {
		if r.Outcome == model.OutcomeFailed {
			return errFailures
		}
	}
	return nil
}

func printDispatchReports(w io.Writer, reports []model.DispatchReport) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "no orders waiting for dispatch")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tNUMBER\tOUTCOME\tSHOP\tDISPATCH\tSTATUS\tERROR")
	for _, r := range reports {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.OrderID, r.OrderNumber, r.Outcome, r.ShopID, r.DispatchID, r.ShippingStatus, r.Error)
	}
	tw.Flush()
}

func testConnection(ctx context.Context, cfg *internal.Config, logger *zap.SugaredLogger, args []string) error {
	fs := flag.NewFlagSet("test-connection", flag.ExitOnError)
	shopID := fs.String("shop", "", "shop id to address the test order to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	shipping, err := internal.NewShippingClient(cfg.Shipping, logger)
	if err != nil {
		logger.Warnw("shipping client not configured", "error", err)
	}

	service := internal.NewService(nil, shipping, nil, cfg.AuthSecret, logger)
	r := service.TestConnection(ctx, *shopID)

	if err = printJSON(os.Stdout, r); err != nil {
		return err
	}
	if !r.OK {
		return errors.New("connection test failed")
	}
	return nil
}

func report(ctx context.Context, cfg *internal.Config, logger *zap.SugaredLogger, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	limit := fs.Int("limit", 10, "recent orders per subset")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	repository, err := internal.NewRepository(cfg.DatabaseURI, logger)
	if err != nil {
		return err
	}
	defer repository.Close()

	shipping, err := internal.NewShippingClient(cfg.Shipping, logger)
	if err != nil {
		logger.Warnw("shipping client not configured", "error", err)
	}

	service := internal.NewService(repository, shipping, nil, cfg.AuthSecret, logger)
	r, err := service.HealthReport(ctx, *limit)
	if err != nil {
		return err
	}

	if *asJSON {
		return printJSON(os.Stdout, r)
	}
	printHealthReport(os.Stdout, r)
	return nil
}

func printHealthReport(w io.Writer, r model.HealthReport) {
	if r.Configured {
		fmt.Fprintf(w, "provider: %s\n", r.Provider)
	} else {
		fmt.Fprintln(w, "provider: not configured")
	}

	for _, s := range r.Subsets {
		fmt.Fprintf(w, "\n%s: %d dispatched, %d not dispatched\n", s.Subset.Label, s.Dispatched, s.NotDispatched)

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNUMBER\tPAYMENT\tSTATE\tSHOP\tDISPATCH\tSTATUS\tCREATED")
		for _, o := range s.Recent {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				o.ID, o.Number, o.PaymentStatus, o.DispatchState, o.ShopID, o.DispatchID, o.ShippingStatus,
				o.CreatedAt.Format("2006-01-02 15:04"))
		}
		tw.Flush()
	}
}

func token(cfg *internal.Config, logger *zap.SugaredLogger, args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	branchID := fs.Int64("branch", 0, "branch id, 0 for the platform")
	if err := fs.Parse(args); err != nil {
		return err
	}

	service := internal.NewService(nil, nil, nil, cfg.AuthSecret, logger)
	t, err := service.GetJWTToken(*branchID)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, t)
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
