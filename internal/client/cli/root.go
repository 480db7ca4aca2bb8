package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) status() string {
	if u, ok := a.session.CachedUser(); ok {
		s := u.Email
		if n := a.notifs.Unread(); n > 0 {
			s = fmt.Sprintf("%s, %d unread", s, n)
		}
		return fmt.Sprintf("(%s)", s)
	}
	if a.isLoggedIn() {
		return "(logged in)"
	}
	return ""
}

// Run starts the REPL. It returns when the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the club CLI (type 'help' for commands)")

	if a.isLoggedIn() {
		a.startNotifications(ctx)
	}

	for {
		fmt.Fprintf(a.out, "club %s> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			a.cmdLogin(ctx)
		case "logout":
			a.cmdLogout(ctx)
		case "whoami":
			a.cmdWhoami(ctx)
		case "passwd":
			a.cmdChangePassword(ctx)
		case "events":
			a.cmdEvents(ctx)
		case "event":
			a.cmdEvent(ctx, args)
		case "join":
			a.cmdJoin(ctx, args)
		case "leave":
			a.cmdLeave(ctx, args)
		case "participants":
			a.cmdParticipants(ctx, args)
		case "news":
			a.cmdNews(ctx)
		case "sponsors":
			a.cmdSponsors(ctx)
		case "apply":
			a.cmdApply(ctx)
		case "applications":
			a.cmdApplications(ctx, args)
		case "approve":
			a.cmdApprove(ctx, args)
		case "reject":
			a.cmdReject(ctx, args)
		case "members":
			a.cmdMembers(ctx)
		case "notifications", "n":
			a.cmdNotifications(ctx, args)
		case "read":
			a.cmdRead(ctx, args)
		case "readall":
			a.cmdReadAll(ctx)
		case "notify":
			a.cmdNotifyAll(ctx)
		case "upload":
			a.cmdUpload(ctx, args)
		case "media":
			a.cmdMedia(ctx)
		case "download":
			a.cmdDownload(ctx, args)
		case "stats":
			a.cmdStats(ctx)
		case "theme":
			a.cmdTheme(args)
		case "exit", "quit":
			a.shutdown()
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
	a.shutdown()
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: whoami, passwd, events, event <id>, join <id>, leave <id>,")
		fmt.Fprintln(a.out, "  participants <id>, news, sponsors, notifications [read|unread], read <id>, readall,")
		fmt.Fprintln(a.out, "  upload <file>, media, download <id> [path], theme [light|dark], logout, exit")
		fmt.Fprintln(a.out, "Admin: applications [status], approve <id>, reject <id>, members, notify, stats")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, apply, events, news, sponsors, exit")
	}
}

// startNotifications loads the mirror, subscribes the renderer, and starts
// the poll loop.
func (a *App) startNotifications(ctx context.Context) {
	a.notifs.Load(ctx, nil)
	a.notifs.Subscribe(func() {
		if n := a.notifs.Unread(); n > 0 {
			fmt.Fprintf(a.out, "\n* you have %d unread notification(s)\n", n)
		}
	})
	a.stopPolling = a.notifs.StartPolling(ctx, a.config.PollInterval)
}

func (a *App) shutdown() {
	if a.stopPolling != nil {
		a.stopPolling()
		a.stopPolling = nil
	}
}
