package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/mdterp/internal/client/chat"
)

var errNoSession = errors.New("chat is not connected")

func (a *App) requireSession() (*chat.Session, error) {
	sess := a.chatSession()
	if sess == nil {
		return nil, errNoSession
	}
	return sess, nil
}

func (a *App) printView(sess *chat.Session) {
	peer := sess.Peer()
	if peer == "" {
		a.printf("-- general --\n")
	} else {
		a.printf("-- private with %s --\n", peer)
	}
	for _, m := range sess.View() {
		a.printf("%s\n", formatMessage(m))
	}
}

// OpenChat shows the panel with the active conversation and clears the
// unread counter.
func (a *App) OpenChat(_ context.Context, _ []string) error {
	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	sess.Open()
	a.printView(sess)
	return nil
}

func (a *App) CloseChat(_ context.Context, _ []string) error {
	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	sess.Close()
	return nil
}

// SelectPeer switches to the private conversation with the given profile,
// or back to the general channel without arguments.
func (a *App) SelectPeer(_ context.Context, args []string) error {
	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	peer := ""
	if len(args) > 0 {
		peer = args[0]
	}
	if peer == sess.Me() {
		return errors.New("cannot open a private conversation with yourself")
	}
	sess.SetPeer(peer)
	if sess.IsOpen() {
		a.printView(sess)
	}
	return nil
}

// Say sends text to the active conversation. The message shows up in the
// panel once the subscription delivers it.
func (a *App) Say(ctx context.Context, args []string) error {
	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	if err := needArgs(args, 1, "say <text>"); err != nil {
		return err
	}
	m, err := a.client.SendMessage(ctx, strings.Join(args, " "), sess.Peer())
	if err != nil {
		return err
	}
	if sess.IsOpen() {
		a.printf("%s\n", formatMessage(m))
	}
	return nil
}

func (a *App) Online(ctx context.Context, _ []string) error {
	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	users := sess.Online()
	if len(users) == 0 {
		list, err := a.client.ListOnline(ctx)
		if err != nil {
			return err
		}
		users = list
	}
	for _, u := range users {
		marker := ""
		if u.GetId() == sess.Me() {
			marker = " (you)"
		}
		a.printf("%s  %s%s  since %s\n", u.GetId(), u.GetName(), marker, u.GetOnlineAt().AsTime().Local().Format("15:04"))
	}
	return nil
}
