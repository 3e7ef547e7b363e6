package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mdterp/internal/common"
	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"github.com/dmitrijs2005/mdterp/internal/timex"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// clearValue typed at a prompt removes the current value.
const clearValue = "-"

var workflowStatuses = []string{"pending", "in_progress", "conference", "review", "approved", "delivered"}

func (a *App) askKeepDate(prompt string, cur *timestamppb.Timestamp) (*timestamppb.Timestamp, error) {
	s, err := a.ask(fmt.Sprintf("%s [%s] (YYYY-MM-DD, %s clears)", prompt, timex.FormatProto(cur), clearValue))
	if err != nil {
		return nil, err
	}
	switch s {
	case "":
		return cur, nil
	case clearValue:
		return nil, nil
	}
	d, err := timex.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", s)
	}
	return timex.ToProto(d), nil
}

func (a *App) askKeepText(prompt string, cur *string) (*string, error) {
	s, err := a.ask(fmt.Sprintf("%s [%s] (%s clears)", prompt, common.Deref(cur), clearValue))
	if err != nil {
		return nil, err
	}
	switch s {
	case "":
		return cur, nil
	case clearValue:
		return nil, nil
	}
	return &s, nil
}

// Workflow edits the status and milestone dates of an item and optionally
// adds a comment and a file in the same step.
func (a *App) Workflow(ctx context.Context, args []string) error {
	if err := needArgs(args, 2, "workflow <contract id> <item id>"); err != nil {
		return err
	}
	it, err := a.findItem(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	wf := it.GetWorkflow()
	if wf == nil {
		wf = &pb.Workflow{}
	}
	a.printf("%s: %s\n", it.Description, wf.Status)

	status, err := a.askDefault("Status ("+strings.Join(workflowStatuses, ", ")+")", wf.Status)
	if err != nil {
		return err
	}
	wf.Status = status

	if wf.ExecutorId, err = a.askKeepText("Executor (profile id)", wf.ExecutorId); err != nil {
		return err
	}

	dates := []struct {
		prompt string
		dst    **timestamppb.Timestamp
	}{
		{"Reception date", &wf.ReceptionDate},
		{"Internal deadline", &wf.InternalDeadline},
		{"Client deadline", &wf.ClientDeadline},
		{"Review start", &wf.StartReviewDate},
		{"Review end", &wf.EndReviewDate},
		{"Client approval", &wf.ClientApprovalDate},
		{"ART emission", &wf.ArtEmissionDate},
		{"Invoice emission", &wf.InvoiceEmissionDate},
		{"Billing deadline", &wf.BillingDeadline},
	}
	for _, d := range dates {
		if *d.dst, err = a.askKeepDate(d.prompt, *d.dst); err != nil {
			return err
		}
	}

	if wf.SupervisorObservation, err = a.askKeepText("Supervisor observation", wf.SupervisorObservation); err != nil {
		return err
	}

	comment, err := GetMultiline(a.reader, "Comment (optional)", a.out)
	if err != nil {
		return err
	}

	req := &pb.SaveWorkflowRequest{ItemId: it.GetId(), Workflow: wf, Comment: comment}

	path, err := a.ask("File to attach (empty for none)")
	if err != nil {
		return err
	}
	if path != "" {
		if req.File, err = readFile(path); err != nil {
			return err
		}
	}

	res, err := a.client.SaveWorkflow(ctx, req)
	if err != nil {
		return err
	}

	a.printf("Workflow saved, status %s\n", wf.Status)
	a.printOutcome("comment", res.GetComment())
	a.printOutcome("attachment", res.GetAttachment())
	a.printOutcome("refresh", res.GetRefresh())
	if succeeded(res.GetRefresh()) {
		a.printf("%d comments, %d attachments\n", len(res.GetComments()), len(res.GetAttachments()))
	}
	return nil
}

func (a *App) ItemHistory(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "history <item id>"); err != nil {
		return err
	}
	in, err := a.client.GetWorkflow(ctx, args[0])
	if err != nil {
		return err
	}
	a.printInteractions(in)
	return nil
}

func (a *App) CommentItem(ctx context.Context, args []string) error {
	if err := needArgs(args, 2, "comment <item id> <text>"); err != nil {
		return err
	}
	if _, err := a.client.AddItemComment(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	a.printf("Comment added\n")
	return nil
}

func (a *App) AttachItem(ctx context.Context, args []string) error {
	if err := needArgs(args, 2, "attach <item id> <file>"); err != nil {
		return err
	}
	f, err := readFile(args[1])
	if err != nil {
		return err
	}
	at, err := a.client.AddItemAttachment(ctx, args[0], f)
	if err != nil {
		return err
	}
	a.printf("Attached %s: %s\n", at.Name, at.GetUrl())
	return nil
}
