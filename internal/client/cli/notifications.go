package cli

import (
	"context"
	"fmt"
)

func (a *App) cmdNotifications(ctx context.Context, args []string) {
	var isRead *bool
	if len(args) > 0 {
		switch args[0] {
		case "read":
			v := true
			isRead = &v
		case "unread":
			v := false
			isRead = &v
		default:
			fmt.Fprintln(a.out, "Usage: notifications [read|unread]")
			return
		}
	}

	res := a.notifs.Load(ctx, isRead)
	if !res.OK {
		fmt.Fprintln(a.out, "Could not load notifications:", res.ErrorMessage)
		return
	}
	items := a.notifs.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return
	}
	for _, n := range items {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s  [%s] %s: %s\n", marker, n.ID, n.Kind, n.Title, n.Message)
	}
	fmt.Fprintf(a.out, "%d unread\n", a.notifs.Unread())
}

func (a *App) cmdRead(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: read <notification-id>")
		return
	}
	res := a.notifs.MarkRead(ctx, args[0])
	if !res.OK {
		fmt.Fprintln(a.out, "Could not mark read:", res.ErrorMessage)
		return
	}
	fmt.Fprintf(a.out, "Marked %s read, %d unread left.\n", args[0], a.notifs.Unread())
}

func (a *App) cmdReadAll(ctx context.Context) {
	bulk := a.notifs.MarkAllRead(ctx)
	if bulk.Failed > 0 {
		fmt.Fprintf(a.out, "Marked %d read, %d failed (retry with readall).\n", bulk.Successful, bulk.Failed)
		return
	}
	fmt.Fprintf(a.out, "Marked %d notification(s) read.\n", bulk.Successful)
}
