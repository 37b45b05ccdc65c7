package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/erazemk/bloodbank/internal/derived"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/views"
)

const stockUsage = `usage: bloodbank stock [list] [-search <group>] [-status all|available|expiring|expired]
       bloodbank stock add -group <group> -units <n> -expires <yyyy-mm-dd>
       bloodbank stock set <id> <quantity>
       bloodbank stock expiring [-days <n>]
       bloodbank stock expired
       bloodbank stock discard <id>
       bloodbank stock discard-expired`

func cmdStock(a *app, ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	action, rest := subcommand(args, "list")
	switch action {
	case "list":
		return stockList(a, ctx, rest)
	case "add":
		return stockAdd(a, ctx, rest)
	case "set":
		return stockSet(a, ctx, rest)
	case "expiring":
		return stockExpiring(a, ctx, rest)
	case "expired":
		items, err := a.client.ExpiredStock(ctx)
		if err != nil {
			return fail("load expired stock", err)
		}
		return views.Stock(a.out, items, a.clock.Now())
	case "discard":
		id, _, err := idArg(rest, "bloodbank stock discard <id>")
		if err != nil {
			return err
		}
		res, err := a.client.DiscardStock(ctx, id)
		if err != nil {
			return fail("discard blood", err)
		}
		a.printf("%s\n", res.Message)
		return nil
	case "discard-expired":
		res, err := a.client.DiscardExpired(ctx)
		if err != nil {
			return fail("discard expired blood", err)
		}
		msg := res.Message
		if msg == "" {
			msg = "Expired blood discarded successfully"
		}
		a.printf("%s\n", msg)
		return nil
	}
	return errors.New(stockUsage)
}

func stockList(a *app, ctx context.Context, args []string) error {
	fs := a.newFlags("stock")
	search := fs.String("search", "", "blood group substring")
	status := fs.String("status", string(model.FilterAll), "expiry status filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filter, err := derived.ParseStatusFilter(*status)
	if err != nil {
		return fail("filter stock", err)
	}

	items, err := a.client.ListStock(ctx)
	if err != nil {
		return fail("load blood stock", err)
	}

	now := a.clock.Now()
	if err := views.StockSummary(a.out, derived.Aggregate(items, now)); err != nil {
		return err
	}
	a.printf("\n")
	return views.Stock(a.out, derived.FilterStock(items, *search, filter, now), now)
}

func stockAdd(a *app, ctx context.Context, args []string) error {
	fs := a.newFlags("stock add")
	group := fs.String("group", "", "blood group")
	units := fs.Int("units", 0, "number of units")
	expires := fs.String("expires", "", "expiry date (yyyy-mm-dd)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	expiry, err := model.ParseDate(*expires)
	if err != nil {
		return fail("add stock", &model.ValidationError{Field: "expiryDate", Message: err.Error()})
	}
	item, err := a.client.CreateStock(ctx, model.NewStock{BloodGroup: *group, Quantity: *units, ExpiryDate: expiry})
	if err != nil {
		return fail("add stock", err)
	}
	a.printf("Added %d units of %s (id %d, expires %s)\n", item.Quantity, item.BloodGroup, item.ID, item.ExpiryDate)
	return nil
}

func stockSet(a *app, ctx context.Context, args []string) error {
	id, rest, err := idArg(args, "bloodbank stock set <id> <quantity>")
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("usage: bloodbank stock set <id> <quantity>")
	}
	quantity, err := strconv.Atoi(rest[0])
	if err != nil || quantity < 0 {
		return fail("update stock", &model.ValidationError{Field: "quantity", Message: "Please enter a valid quantity"})
	}
	if _, err := a.client.UpdateStockQuantity(ctx, id, quantity); err != nil {
		return fail("update stock", err)
	}
	a.printf("Stock updated successfully\n")
	return nil
}

func stockExpiring(a *app, ctx context.Context, args []string) error {
	fs := a.newFlags("stock expiring")
	days := fs.Int("days", model.ExpiringWindowDays, "window in days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	items, err := a.client.ExpiringStock(ctx, *days)
	if err != nil {
		return fail("load expiring stock", err)
	}
	return views.Stock(a.out, items, a.clock.Now())
}
