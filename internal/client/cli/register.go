package cli

import (
	"context"
	"log"
)

// Register collects registration fields and creates an account. The server
// logs the new user straight in, so on success the session is populated
// just like after Login.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	sess, err := a.auth.Register(ctx, username, email, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	a.session = sess
	log.Printf("Welcome, %s!", sess.User.Username)
	return a.Home(ctx)
}
