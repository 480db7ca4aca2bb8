package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/bosphorusfellas/clubclient/internal/client/models"
)

func (a *App) cmdApply(ctx context.Context) {
	first, err := GetSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return
	}
	last, err := GetSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	car, _ := GetSimpleText(a.reader, "Car (brand model, optional)", a.out)
	motivation, _ := GetSimpleText(a.reader, "Why do you want to join? (optional)", a.out)

	app := models.NewApplication{
		FirstName:  first,
		LastName:   last,
		Email:      email,
		Motivation: motivation,
	}
	if parts := strings.SplitN(car, " ", 2); car != "" {
		app.CarBrand = parts[0]
		if len(parts) > 1 {
			app.CarModel = parts[1]
		}
	}

	res := a.apps.Submit(ctx, app)
	if !res.OK {
		fmt.Fprintln(a.out, "Application failed:", res.ErrorMessage)
		return
	}
	fmt.Fprintf(a.out, "Application %s submitted, status %s.\n", res.Data.ID, res.Data.Status)
}

func (a *App) cmdApplications(ctx context.Context, args []string) {
	status := ""
	if len(args) > 0 {
		status = args[0]
	}
	res := a.apps.List(ctx, status)
	if !res.OK {
		fmt.Fprintln(a.out, "Could not load applications:", res.ErrorMessage)
		return
	}
	for _, app := range res.Data {
		line := fmt.Sprintf("%s  %s %s <%s>  %s", app.ID, app.FirstName, app.LastName, app.Email, app.Status)
		if app.RejectionReason != "" {
			line += "  (" + app.RejectionReason + ")"
		}
		fmt.Fprintln(a.out, line)
	}
}

func (a *App) cmdApprove(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: approve <application-id>")
		return
	}
	res := a.apps.Approve(ctx, args[0])
	if !res.OK {
		fmt.Fprintln(a.out, "Approve failed:", res.ErrorMessage)
		return
	}
	fmt.Fprintf(a.out, "Application %s approved.\n", res.Data.ID)
}

func (a *App) cmdReject(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: reject <application-id>")
		return
	}
	reason, err := GetSimpleText(a.reader, "Rejection reason", a.out)
	if err != nil {
		return
	}
	res := a.apps.Reject(ctx, args[0], reason)
	if !res.OK {
		fmt.Fprintln(a.out, "Reject failed:", res.ErrorMessage)
		return
	}
	fmt.Fprintf(a.out, "Application %s rejected.\n", res.Data.ID)
}
