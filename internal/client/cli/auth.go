package cli

import (
	"context"
	"fmt"
)

func (a *App) cmdLogin(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return
	}

	res := a.auth.Login(ctx, email, password)
	if !res.OK {
		fmt.Fprintln(a.out, "Login failed:", res.ErrorMessage)
		return
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", res.Data.FullName())
	a.startNotifications(ctx)
}

func (a *App) cmdLogout(ctx context.Context) {
	a.shutdown()
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) cmdWhoami(ctx context.Context) {
	res := a.auth.CurrentUser(ctx)
	if !res.OK {
		fmt.Fprintln(a.out, "Not logged in:", res.ErrorMessage)
		return
	}
	u := res.Data
	fmt.Fprintf(a.out, "%s <%s> role=%s", u.FullName(), u.Email, u.Role)
	if u.CarBrand != "" {
		fmt.Fprintf(a.out, " car=%s %s", u.CarBrand, u.CarModel)
	}
	fmt.Fprintln(a.out)
}

func (a *App) cmdChangePassword(ctx context.Context) {
	current, err := GetPassword("Current password", a.out)
	if err != nil {
		return
	}
	newPass, err := GetPassword("New password", a.out)
	if err != nil {
		return
	}
	confirm, err := GetPassword("Repeat new password", a.out)
	if err != nil {
		return
	}

	res := a.auth.ChangePassword(ctx, current, newPass, confirm)
	if !res.OK {
		fmt.Fprintln(a.out, "Password change failed:", res.ErrorMessage)
		return
	}
	fmt.Fprintln(a.out, "Password changed.")
}
