package main

import (
	"context"
	"errors"
	"flag"

	"github.com/erazemk/bloodbank/internal/derived"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/views"
)

const donorsUsage = `usage: bloodbank donors [list] [-search <text>] [-group <group>]
       bloodbank donors add -name <name> -age <n> -gender <g> -group <group> -contact <phone> [-last <yyyy-mm-dd>]
       bloodbank donors show <id>
       bloodbank donors update <id> <same flags as add>
       bloodbank donors delete <id>`

func cmdDonors(a *app, ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	action, rest := subcommand(args, "list")
	switch action {
	case "list":
		fs := a.newFlags("donors")
		search := fs.String("search", "", "name, contact or blood group")
		group := fs.String("group", derived.All, "blood group filter")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		donors, err := a.client.ListDonors(ctx)
		if err != nil {
			return fail("load donors", err)
		}
		return views.Donors(a.out, derived.FilterDonors(donors, *search, *group))

	case "add":
		in, err := donorFlags(a, "donors add", rest)
		if err != nil {
			return err
		}
		if _, err := a.client.CreateDonor(ctx, *in); err != nil {
			return fail("register donor", err)
		}
		a.printf("Donor registered successfully!\n")
		return nil

	case "show":
		id, _, err := idArg(rest, "bloodbank donors show <id>")
		if err != nil {
			return err
		}
		d, err := a.client.GetDonor(ctx, id)
		if err != nil {
			return fail("load donor", err)
		}
		return views.Donors(a.out, []model.Donor{*d})

	case "update":
		id, flags, err := idArg(rest, "bloodbank donors update <id> [flags]")
		if err != nil {
			return err
		}
		in, err := donorFlags(a, "donors update", flags)
		if err != nil {
			return err
		}
		if _, err := a.client.UpdateDonor(ctx, id, *in); err != nil {
			return fail("update donor", err)
		}
		a.printf("Donor updated.\n")
		return nil

	case "delete":
		id, _, err := idArg(rest, "bloodbank donors delete <id>")
		if err != nil {
			return err
		}
		if err := a.client.DeleteDonor(ctx, id); err != nil {
			return fail("delete donor", err)
		}
		a.printf("Donor deleted.\n")
		return nil
	}
	return errors.New(donorsUsage)
}

func donorFlags(a *app, name string, args []string) (*model.NewDonor, error) {
	var in model.NewDonor
	var last string

	fs := a.newFlags(name)
	fs.StringVar(&in.Name, "name", "", "full name")
	fs.IntVar(&in.Age, "age", 0, "age in years")
	fs.StringVar(&in.Gender, "gender", "", "gender")
	fs.StringVar(&in.BloodGroup, "group", "", "blood group")
	fs.StringVar(&in.Contact, "contact", "", "phone number")
	fs.StringVar(&last, "last", "", "last donation date (yyyy-mm-dd)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &in, parseOptionalDate(fs, last, &in.LastDonation)
}

// parseOptionalDate sets *dst when s is non-empty.
func parseOptionalDate(fs *flag.FlagSet, s string, dst **model.Date) error {
	if s == "" {
		return nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return fail(fs.Name(), &model.ValidationError{Field: "lastDonation", Message: err.Error()})
	}
	*dst = &d
	return nil
}
