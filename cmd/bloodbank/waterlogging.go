package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/erazemk/bloodbank/internal/derived"
	"github.com/erazemk/bloodbank/internal/model"
	"github.com/erazemk/bloodbank/internal/views"
)

const hotspotsUsage = `usage: bloodbank hotspots [list] [-search <text>] [-severity all|low|medium|high|critical]
       bloodbank hotspots add -location <name> [-ward <w>] [-zone <z>] -severity <s> -water <0-100>
       bloodbank hotspots update <id> <same flags as add>
       bloodbank hotspots delete <id>`

func cmdHotspots(a *app, ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	action, rest := subcommand(args, "list")
	switch action {
	case "list":
		fs := a.newFlags("hotspots")
		search := fs.String("search", "", "location or ward")
		severity := fs.String("severity", derived.All, "severity filter")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		hotspots, err := a.client.ListHotspots(ctx)
		if err != nil {
			return fail("load hotspots", err)
		}
		return views.Hotspots(a.out, derived.FilterHotspots(hotspots, *search, *severity), a.clock.Now())

	case "add":
		in, err := hotspotFlags(a, "hotspots add", rest)
		if err != nil {
			return err
		}
		h, err := a.client.CreateHotspot(ctx, *in)
		if err != nil {
			return fail("add hotspot", err)
		}
		a.printf("Hotspot %d added.\n", h.ID)
		return nil

	case "update":
		id, flags, err := idArg(rest, "bloodbank hotspots update <id> [flags]")
		if err != nil {
			return err
		}
		in, err := hotspotFlags(a, "hotspots update", flags)
		if err != nil {
			return err
		}
		if _, err := a.client.UpdateHotspot(ctx, id, *in); err != nil {
			return fail("update hotspot", err)
		}
		a.printf("Hotspot updated.\n")
		return nil

	case "delete":
		id, _, err := idArg(rest, "bloodbank hotspots delete <id>")
		if err != nil {
			return err
		}
		if err := a.client.DeleteHotspot(ctx, id); err != nil {
			return fail("delete hotspot", err)
		}
		a.printf("Hotspot deleted.\n")
		return nil
	}
	return errors.New(hotspotsUsage)
}

func hotspotFlags(a *app, name string, args []string) (*model.Hotspot, error) {
	var h model.Hotspot
	var severity string

	fs := a.newFlags(name)
	fs.StringVar(&h.Location, "location", "", "location name")
	fs.StringVar(&h.Ward, "ward", "", "ward")
	fs.StringVar(&h.Zone, "zone", "", "zone")
	fs.StringVar(&severity, "severity", "", "low, medium, high or critical")
	fs.IntVar(&h.WaterLevel, "water", 0, "water level in percent")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	h.Severity = model.Severity(severity)
	return &h, nil
}

const reportsUsage = `usage: bloodbank reports [list] [-status PENDING|VERIFIED|RESOLVED]
       bloodbank reports add -location <name> -severity <s> [-description <text>]
       bloodbank reports status <id> <PENDING|VERIFIED|RESOLVED>
       bloodbank reports photo <id> <file>`

func cmdReports(a *app, ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	action, rest := subcommand(args, "list")
	switch action {
	case "list":
		fs := a.newFlags("reports")
		status := fs.String("status", "", "only reports with this status")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		var (
			reports []model.Report
			err     error
		)
		if *status == "" {
			reports, err = a.client.ListReports(ctx)
		} else {
			reports, err = a.client.ReportsByStatus(ctx, model.ReportStatus(*status))
		}
		if err != nil {
			return fail("load reports", err)
		}
		return views.Reports(a.out, reports, a.clock.Now())

	case "add":
		var in model.NewReport
		var severity string
		fs := a.newFlags("reports add")
		fs.StringVar(&in.Location, "location", "", "location")
		fs.StringVar(&in.Description, "description", "", "what is happening")
		fs.StringVar(&severity, "severity", "", "low, medium, high or critical")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		in.Severity = model.Severity(severity)
		r, err := a.client.CreateReport(ctx, in)
		if err != nil {
			return fail("submit report", err)
		}
		a.printf("Report %d submitted.\n", r.ID)
		return nil

	case "status":
		id, more, err := idArg(rest, "bloodbank reports status <id> <status>")
		if err != nil {
			return err
		}
		if len(more) != 1 {
			return errors.New(reportsUsage)
		}
		if _, err := a.client.UpdateReportStatus(ctx, id, model.ReportStatus(more[0])); err != nil {
			return fail("update report", err)
		}
		a.printf("Report %d is now %s.\n", id, more[0])
		return nil

	case "photo":
		id, more, err := idArg(rest, "bloodbank reports photo <id> <file>")
		if err != nil {
			return err
		}
		if len(more) != 1 {
			return errors.New(reportsUsage)
		}
		return uploadPhoto(a, ctx, id, more[0])
	}
	return errors.New(reportsUsage)
}

func uploadPhoto(a *app, ctx context.Context, id int64, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, _ := f.Read(head)
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}

	if err := a.client.UploadReportPhoto(ctx, id, f, http.DetectContentType(head[:n])); err != nil {
		return fail("upload photo", err)
	}
	a.printf("Photo attached to report %d.\n", id)
	return nil
}

const analyticsUsage = `usage: bloodbank analytics
       bloodbank analytics rain -mm <millimetres> [-date <yyyy-mm-dd>]`

func cmdAnalytics(a *app, ctx context.Context, args []string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	action, rest := subcommand(args, "show")
	switch action {
	case "show":
		return analyticsPage(a, ctx)

	case "rain":
		fs := a.newFlags("analytics rain")
		mm := fs.String("mm", "", "rainfall in millimetres")
		date := fs.String("date", "", "day of the reading (default: today)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		p := model.RainfallPoint{Date: model.DateOf(a.clock.Now())}
		if *date != "" {
			d, err := model.ParseDate(*date)
			if err != nil {
				return fail("record rainfall", &model.ValidationError{Field: "date", Message: err.Error()})
			}
			p.Date = d
		}
		v, err := strconv.ParseFloat(*mm, 64)
		if err != nil {
			return fail("record rainfall", &model.ValidationError{Field: "millimetres", Message: fmt.Sprintf("invalid number %q", *mm)})
		}
		p.Millimetres = v
		if err := a.client.RecordRainfall(ctx, p); err != nil {
			return fail("record rainfall", err)
		}
		a.printf("Recorded %.1f mm for %s.\n", p.Millimetres, p.Date)
		return nil
	}
	return errors.New(analyticsUsage)
}

func analyticsPage(a *app, ctx context.Context) error {
	summary, err := a.client.Analytics(ctx)
	if err != nil {
		return fail("load analytics", err)
	}
	rain, err := a.client.Rainfall(ctx)
	if err != nil {
		return fail("load analytics", err)
	}
	dist, err := a.client.Distribution(ctx)
	if err != nil {
		return fail("load analytics", err)
	}
	predictions, err := a.client.Predictions(ctx)
	if err != nil {
		return fail("load analytics", err)
	}

	sections := []struct {
		title  string
		render func() error
	}{
		{"Summary", func() error { return views.Analytics(a.out, *summary) }},
		{"Rainfall, last 7 days", func() error { return views.Rainfall(a.out, rain) }},
		{"Hotspots by severity", func() error { return views.Distribution(a.out, dist) }},
		{"Predicted severity", func() error { return views.Predictions(a.out, predictions) }},
	}
	for i, s := range sections {
		if i > 0 {
			a.printf("\n")
		}
		a.printf("%s\n", s.title)
		if err := s.render(); err != nil {
			return err
		}
	}
	return nil
}
