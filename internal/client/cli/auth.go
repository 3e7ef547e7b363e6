package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/mdterp/internal/client/chat"
	pb "github.com/dmitrijs2005/mdterp/internal/proto"
)

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

// Register prompts for email, name and password and creates an account.
// The first profile ever registered becomes the administrator.
func (a *App) Register(ctx context.Context, _ []string) error {
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	name, err := a.ask("Enter your name")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	p, err := a.client.Register(ctx, email, name, password)
	if err != nil {
		return err
	}

	a.printf("Success! Registered %s as %s\n", p.GetEmail(), p.GetRole())
	return nil
}

// Login prompts for credentials, signs in and starts the chat subscription
// and the presence session in the background.
func (a *App) Login(ctx context.Context, _ []string) error {
	if a.isLoggedIn() {
		return errors.New("already logged in, logout first")
	}

	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.client.Login(ctx, email, password); err != nil {
		return err
	}

	p := a.client.Profile()
	if p == nil {
		return errors.New("server returned no profile")
	}

	sess := chat.NewSession(p.GetId())
	history, err := a.client.ChatHistory(ctx)
	if err != nil {
		log.Printf("error loading chat history: %v", err)
	}
	sess.Seed(history)

	a.startRealtime(ctx, sess)

	a.printf("Welcome, %s!\n", p.GetName())
	return nil
}

func (a *App) Logout(_ context.Context, _ []string) error {
	a.stopRealtime()
	a.client.Logout()
	a.printf("Logged out\n")
	return nil
}

func (a *App) Profiles(ctx context.Context, _ []string) error {
	list, err := a.client.ListProfiles(ctx)
	if err != nil {
		return err
	}
	for _, p := range list {
		a.printf("%s\t%s\t%s\t%s\n", p.GetId(), p.GetName(), p.GetEmail(), p.GetRole())
	}
	return nil
}

func (a *App) startRealtime(ctx context.Context, sess *chat.Session) {
	rctx, cancel := context.WithCancel(ctx)

	a.mu.Lock()
	a.session = sess
	a.stop = cancel
	a.mu.Unlock()

	go func() {
		err := a.client.SubscribeChat(rctx, func(m *pb.ChatMessage) { a.onMessage(sess, m) })
		if err != nil && rctx.Err() == nil {
			log.Printf("chat subscription ended: %v", err)
		}
	}()

	go func() {
		err := a.client.JoinPresence(rctx, sess.ApplySnapshot)
		if err != nil && rctx.Err() == nil {
			log.Printf("presence session ended: %v", err)
		}
	}()
}

func (a *App) stopRealtime() {
	a.mu.Lock()
	stop := a.stop
	a.stop = nil
	a.session = nil
	a.mu.Unlock()

	if stop != nil {
		stop()
	}
}

func (a *App) onMessage(sess *chat.Session, m *pb.ChatMessage) {
	if sess.Receive(m) {
		a.printf("\n[chat] new message from %s (%d unread)\n", m.GetAuthor(), sess.Unread())
		return
	}
	if sess.IsOpen() && m.GetSenderId() != sess.Me() && sess.InView(m) {
		a.printf("\n%s\n", formatMessage(m))
	}
}

func formatMessage(m *pb.ChatMessage) string {
	prefix := ""
	if m.GetRecipientId() != "" {
		prefix = "(private) "
	}
	return fmt.Sprintf("[%s] %s%s: %s", m.GetTimestamp().AsTime().Local().Format("15:04"), prefix, m.GetAuthor(), m.GetText())
}
