package cli

import (
	"context"
	"fmt"

	"github.com/bosphorusfellas/clubclient/internal/client/api"
	"github.com/bosphorusfellas/clubclient/internal/client/models"
)

func (a *App) printContent(res api.Result[[]models.Content]) {
	if !res.OK {
		fmt.Fprintln(a.out, "Could not load content:", res.ErrorMessage)
		return
	}
	for _, c := range res.Data {
		fmt.Fprintf(a.out, "%s  %s  (%s)\n", c.ID, c.Title, c.CreatedAt.Format("2006-01-02"))
	}
}

func (a *App) cmdNews(ctx context.Context) {
	a.printContent(a.content.News(ctx))
}

func (a *App) cmdSponsors(ctx context.Context) {
	a.printContent(a.content.Sponsors(ctx))
}

func (a *App) cmdTheme(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Theme:", a.settings.Theme())
		return
	}
	if err := a.settings.SetTheme(args[0]); err != nil {
		fmt.Fprintln(a.out, "Usage: theme [light|dark]")
		return
	}
	fmt.Fprintln(a.out, "Theme set to", args[0])
}

func (a *App) cmdStats(ctx context.Context) {
	res := a.stats.Dashboard(ctx)
	if !res.OK {
		fmt.Fprintln(a.out, "Could not load statistics:", res.ErrorMessage)
		return
	}
	s := res.Data
	fmt.Fprintf(a.out, "Members: %d  Applications: %d (pending %d)  Events: %d (active %d)\n",
		s.TotalMembers, s.TotalApplications, s.PendingApplications, s.TotalEvents, s.ActiveEvents)
}

func (a *App) cmdMembers(ctx context.Context) {
	res := a.members.List(ctx)
	if !res.OK {
		fmt.Fprintln(a.out, "Could not load members:", res.ErrorMessage)
		return
	}
	for _, m := range res.Data {
		fmt.Fprintf(a.out, "%s  %s <%s>  %s\n", m.ID, m.FullName(), m.Email, m.MembershipStatus)
	}
}

func (a *App) cmdNotifyAll(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil || title == "" {
		return
	}
	message, err := GetSimpleText(a.reader, "Message", a.out)
	if err != nil || message == "" {
		return
	}

	bulk, err := a.notifs.SendToAllMembers(ctx, title, message, models.NotificationAnnouncement, "")
	if err != nil {
		fmt.Fprintln(a.out, "Could not send:", err)
		return
	}
	fmt.Fprintln(a.out, "Sent:", bulk.String())
}
