package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/erazemk/bloodbank/internal/derived"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/views"
)

const requestsUsage = `usage: bloodbank requests [list] [-status all|PENDING|APPROVED|REJECTED]
       bloodbank requests add -patient <name> -age <n> -group <group> -units <n> -hospital <name>`

func cmdRequests(a *app, ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	action, rest := subcommand(args, "list")
	switch action {
	case "list":
		fs := a.newFlags("requests")
		status := fs.String("status", derived.All, "status filter")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		requests, err := a.client.ListRequests(ctx)
		if err != nil {
			return fail("load requests", err)
		}
		return views.Requests(a.out, derived.FilterRequests(requests, *status))

	case "add":
		var in model.NewBloodRequest
		fs := a.newFlags("requests add")
		fs.StringVar(&in.PatientName, "patient", "", "patient name")
		fs.IntVar(&in.Age, "age", 0, "patient age")
		fs.StringVar(&in.BloodGroup, "group", "", "blood group")
		fs.IntVar(&in.UnitsRequired, "units", 0, "units required")
		fs.StringVar(&in.HospitalName, "hospital", "", "hospital name")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if _, err := a.client.CreateRequest(ctx, in); err != nil {
			return fail("submit request", err)
		}
		a.printf("Blood request submitted successfully! Admin will review your request.\n")
		return nil
	}
	return errors.New(requestsUsage)
}

const adminUsage = `usage: bloodbank admin [list] [-status all|PENDING|APPROVED|REJECTED]
       bloodbank admin approve <id>
       bloodbank admin reject <id>
       bloodbank admin stock <id> <quantity>`

func cmdAdmin(a *app, ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	action, rest := subcommand(args, "list")
	switch action {
	case "list":
		fs := a.newFlags("admin")
		status := fs.String("status", derived.All, "status filter")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return adminOverview(a, ctx, *status)

	case "approve", "reject":
		id, _, err := idArg(rest, fmt.Sprintf("bloodbank admin %s <id>", action))
		if err != nil {
			return err
		}
		status := model.RequestApproved
		if action == "reject" {
			status = model.RequestRejected
		}
		if _, err := a.client.UpdateRequestStatus(ctx, id, status); err != nil {
			return fail(action+" request", err)
		}
		if status == model.RequestApproved {
			a.printf("Request approved successfully! Blood units deducted from stock.\n")
		} else {
			a.printf("Request rejected\n")
		}
		return nil

	case "stock":
		return stockSet(a, ctx, rest)
	}
	return errors.New(adminUsage)
}

// adminOverview shows request tallies, the filtered request list and the
// current stock, as the admin page does.
func adminOverview(a *app, ctx context.Context, status string) error {
	requests, err := a.client.ListRequests(ctx)
	if err != nil {
		return fail("load data", err)
	}
	stock, err := a.client.ListStock(ctx)
	if err != nil {
		return fail("load data", err)
	}

	if err := views.RequestCounts(a.out, derived.CountRequests(requests)); err != nil {
		return err
	}
	a.printf("\n")
	if err := views.Requests(a.out, derived.FilterRequests(requests, status)); err != nil {
		return err
	}
	a.printf("\n")
	return views.Stock(a.out, stock, a.clock.Now())
}
