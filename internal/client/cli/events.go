package cli

import (
	"context"
	"fmt"
)

func (a *App) cmdEvents(ctx context.Context) {
	res := a.events.Landing(ctx)
	if a.isLoggedIn() {
		res = a.events.List(ctx)
	}
	if !res.OK {
		fmt.Fprintln(a.out, "Could not load events:", res.ErrorMessage)
		return
	}
	if len(res.Data) == 0 {
		fmt.Fprintln(a.out, "No upcoming events.")
		return
	}
	for _, e := range res.Data {
		fmt.Fprintf(a.out, "%s  %s  %s (%s)\n", e.ID, e.EventDate.Format("2006-01-02 15:04"), e.Title, e.Status)
	}
}

func (a *App) cmdEvent(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: event <id>")
		return
	}
	res := a.events.Get(ctx, args[0])
	if !res.OK {
		fmt.Fprintln(a.out, "Could not load event:", res.ErrorMessage)
		return
	}
	e := res.Data
	fmt.Fprintf(a.out, "%s\n%s\nWhen: %s  Where: %s  Status: %s\n",
		e.Title, e.Description, e.EventDate.Format("2006-01-02 15:04"), e.Location, e.Status)
}

func (a *App) cmdJoin(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: join <event-id>")
		return
	}
	res := a.events.Join(ctx, args[0])
	if !res.OK {
		fmt.Fprintln(a.out, "Could not join:", res.ErrorMessage)
		return
	}
	fmt.Fprintf(a.out, "Joined event %s (%s).\n", res.Data.EventID, res.Data.ParticipationStatus)
}

func (a *App) cmdLeave(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: leave <event-id>")
		return
	}
	res := a.events.Leave(ctx, args[0])
	if !res.OK {
		fmt.Fprintln(a.out, "Could not leave:", res.ErrorMessage)
		return
	}
	fmt.Fprintln(a.out, "Left event", args[0])
}

func (a *App) cmdParticipants(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: participants <event-id>")
		return
	}
	res := a.events.Participants(ctx, args[0])
	if !res.OK {
		fmt.Fprintln(a.out, "Could not load participants:", res.ErrorMessage)
		return
	}
	for _, p := range res.Data {
		name := p.UserID
		if p.User != nil {
			name = p.User.FullName()
		}
		fmt.Fprintf(a.out, "%s  %s\n", name, p.ParticipationStatus)
	}
	fmt.Fprintf(a.out, "%d participant(s)\n", len(res.Data))
}
