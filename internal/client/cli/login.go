package cli

import (
	"context"
	"log"
)

// Login prompts for credentials and authenticates. The password is sent to
// the server as-is; on failure the server-provided message is shown
// verbatim.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	sess, err := a.auth.Login(ctx, username, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.session = sess
	log.Printf("Welcome back, %s!", sess.User.Username)
	if sess.User.IsAdmin {
		log.Println("You have admin privileges")
	}
	return a.Home(ctx)
}

// Logout clears the stored session and returns to the login view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.session = nil
	log.Println("Logged out")
	return nil
}
