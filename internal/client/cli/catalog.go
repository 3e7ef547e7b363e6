package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/mdterp/internal/common"
	"github.com/dmitrijs2005/mdterp/internal/filex"
	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"github.com/dmitrijs2005/mdterp/internal/timex"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func needArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

// readFile loads path into an upload payload.
func readFile(path string) (*pb.File, error) {
	name, data, err := filex.ReadForUpload(path)
	if err != nil {
		return nil, err
	}
	return &pb.File{Name: name, ContentType: filex.ContentType(name), Data: data}, nil
}

func (a *App) askDate(prompt string) (*timestamppb.Timestamp, error) {
	d, err := GetDate(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	return timex.ToProto(d), nil
}

func (a *App) askOptional(prompt string) (*string, error) {
	s, err := a.ask(prompt)
	if err != nil {
		return nil, err
	}
	return common.NullIfEmpty(s), nil
}

func (a *App) Clients(ctx context.Context, args []string) error {
	list, err := a.client.ListClients(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	tw := a.table()
	fmt.Fprintln(tw, "ID\tNAME\tCITY\tRESPONSIBLE")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.GetId(), c.Name, common.Deref(c.City), common.Deref(c.Responsible))
	}
	return tw.Flush()
}

func (a *App) ShowClient(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "client <id>"); err != nil {
		return err
	}
	c, err := a.client.GetClient(ctx, args[0])
	if err != nil {
		return err
	}
	tw := a.table()
	fmt.Fprintf(tw, "Name\t%s\n", c.Name)
	fmt.Fprintf(tw, "Address\t%s, %s\n", common.Deref(c.Address), common.Deref(c.Neighborhood))
	fmt.Fprintf(tw, "City\t%s\n", common.Deref(c.City))
	fmt.Fprintf(tw, "WhatsApp\t%s\n", common.Deref(c.Whatsapp))
	fmt.Fprintf(tw, "Email\t%s\n", common.Deref(c.Email))
	fmt.Fprintf(tw, "Responsible\t%s\n", common.Deref(c.Responsible))
	fmt.Fprintf(tw, "Registration\t%s (%s)\n", common.Deref(c.RegistrationNumber), timex.FormatProto(c.RegistrationDate))
	fmt.Fprintf(tw, "Minutes\t%s\n", common.Deref(c.MinutesNumber))
	fmt.Fprintf(tw, "Deadline\t%s\n", timex.FormatProto(c.Deadline))
	fmt.Fprintf(tw, "Created by\t%s\n", c.UserCreated)
	return tw.Flush()
}

func (a *App) AddClient(ctx context.Context, _ []string) error {
	c := &pb.Client{}
	var err error

	if c.Name, err = a.ask("Name"); err != nil {
		return err
	}
	fields := []struct {
		prompt string
		dst    **string
	}{
		{"Address", &c.Address},
		{"Neighborhood", &c.Neighborhood},
		{"City", &c.City},
		{"WhatsApp", &c.Whatsapp},
		{"Email", &c.Email},
		{"Responsible", &c.Responsible},
		{"Registration number", &c.RegistrationNumber},
		{"Minutes number", &c.MinutesNumber},
	}
	for _, f := range fields {
		if *f.dst, err = a.askOptional(f.prompt); err != nil {
			return err
		}
	}
	if c.RegistrationDate, err = a.askDate("Registration date"); err != nil {
		return err
	}
	if c.Deadline, err = a.askDate("Deadline"); err != nil {
		return err
	}

	saved, err := a.client.SaveClient(ctx, c)
	if err != nil {
		return err
	}
	a.printf("Client %s saved\n", saved.GetId())
	return nil
}

func (a *App) Contracts(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "contracts <client id>"); err != nil {
		return err
	}
	list, err := a.client.ListContracts(ctx, args[0])
	if err != nil {
		return err
	}
	tw := a.table()
	fmt.Fprintln(tw, "ID\tNUMBER\tDESCRIPTION\tSTART\tEND\tVALUE")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\n", c.GetId(), common.Deref(c.ContractNumber), c.Description,
			timex.FormatProto(c.StartDate), timex.FormatProto(c.EndDate), c.TotalValue)
	}
	return tw.Flush()
}

func (a *App) AddContract(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "addcontract <client id>"); err != nil {
		return err
	}
	c := &pb.Contract{ClientId: args[0]}
	var err error

	if c.Description, err = a.ask("Description (empty for default)"); err != nil {
		return err
	}
	if c.ContractNumber, err = a.askOptional("Contract number"); err != nil {
		return err
	}
	if c.ProcessNumber, err = a.askOptional("Process number"); err != nil {
		return err
	}
	if c.StartDate, err = a.askDate("Start date"); err != nil {
		return err
	}
	if c.EndDate, err = a.askDate("End date"); err != nil {
		return err
	}
	if c.TotalValue, err = GetNumber(a.reader, "Total value", 0, a.out); err != nil {
		return err
	}

	saved, err := a.client.SaveContract(ctx, c)
	if err != nil {
		return err
	}
	a.printf("Contract %s saved\n", saved.GetId())
	return nil
}

func (a *App) Items(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "items <contract id>"); err != nil {
		return err
	}
	list, err := a.client.ListItems(ctx, args[0])
	if err != nil {
		return err
	}
	tw := a.table()
	fmt.Fprintln(tw, "ID\tDESCRIPTION\tUNIT\tQTY\tPRICE\tTOTAL\tMEASURED\tBALANCE\tSTATUS")
	for _, it := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%.2f\t%.2f\t%g\t%g\t%s\n", it.GetId(), it.Description, it.Unit, it.Quantity,
			it.UnitPrice, it.TotalPrice, it.MeasuredTotal, it.Balance, it.GetWorkflow().GetStatus())
	}
	return tw.Flush()
}

func (a *App) askItemFields(it *pb.Item) error {
	var err error
	if it.Description, err = a.askDefault("Description", it.Description); err != nil {
		return err
	}
	if it.Unit, err = a.askDefault("Unit", it.Unit); err != nil {
		return err
	}
	if it.Quantity, err = GetNumber(a.reader, fmt.Sprintf("Quantity [%g]", it.Quantity), it.Quantity, a.out); err != nil {
		return err
	}
	if it.UnitPrice, err = GetNumber(a.reader, fmt.Sprintf("Unit price [%.2f]", it.UnitPrice), it.UnitPrice, a.out); err != nil {
		return err
	}
	return nil
}

// askDefault keeps def when the answer is empty.
func (a *App) askDefault(prompt, def string) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	s, err := a.ask(prompt)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

func (a *App) AddItem(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "additem <contract id>"); err != nil {
		return err
	}
	it := &pb.Item{ContractId: args[0]}
	if err := a.askItemFields(it); err != nil {
		return err
	}
	saved, err := a.client.AddItem(ctx, it)
	if err != nil {
		return err
	}
	a.printf("Item %s added, total %.2f\n", saved.GetId(), saved.TotalPrice)
	return nil
}

func (a *App) findItem(ctx context.Context, contractID, itemID string) (*pb.Item, error) {
	list, err := a.client.ListItems(ctx, contractID)
	if err != nil {
		return nil, err
	}
	for _, it := range list {
		if it.GetId() == itemID {
			return it, nil
		}
	}
	return nil, fmt.Errorf("item %s not found in contract %s", itemID, contractID)
}

func (a *App) EditItem(ctx context.Context, args []string) error {
	if err := needArgs(args, 2, "edititem <contract id> <item id>"); err != nil {
		return err
	}
	it, err := a.findItem(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if err := a.askItemFields(it); err != nil {
		return err
	}
	saved, err := a.client.UpdateItem(ctx, it)
	if err != nil {
		return err
	}
	a.printf("Item %s updated, total %.2f\n", saved.GetId(), saved.TotalPrice)
	return nil
}

func (a *App) Measure(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "measure <item id> [proof file]"); err != nil {
		return err
	}
	m := &pb.Measurement{ItemId: args[0]}
	var err error

	if m.Quantity, err = GetNumber(a.reader, "Quantity", 0, a.out); err != nil {
		return err
	}
	if m.Date, err = a.askDate("Date"); err != nil {
		return err
	}
	if m.Description, err = a.askOptional("Description"); err != nil {
		return err
	}

	var proof *pb.File
	if len(args) > 1 {
		if proof, err = readFile(args[1]); err != nil {
			return err
		}
	}

	res, err := a.client.AddMeasurement(ctx, m, proof)
	if err != nil {
		return err
	}
	a.printf("Measurement %s recorded, total %.2f\n", res.GetMeasurement().GetId(), res.GetMeasurement().GetTotalPrice())
	a.printOutcome("proof", res.GetProof())
	return nil
}

func (a *App) Measurements(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "measurements <item id>"); err != nil {
		return err
	}
	res, err := a.client.ListMeasurements(ctx, args[0])
	if err != nil {
		return err
	}
	tw := a.table()
	fmt.Fprintln(tw, "ID\tDATE\tQTY\tTOTAL\tDESCRIPTION\tBY")
	for _, m := range res.Measurements {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%.2f\t%s\t%s\n", m.GetId(), timex.FormatProto(m.Date), m.Quantity, m.TotalPrice,
			common.Deref(m.Description), m.UserCreated)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	a.printf("Balance: %g\n", res.Balance)
	return nil
}

// succeeded reports whether an optional step ran without error.
func succeeded(o *pb.StepOutcome) bool {
	return o.GetAttempted() && o.GetError() == ""
}

func (a *App) printOutcome(step string, o *pb.StepOutcome) {
	switch {
	case !o.GetAttempted():
	case succeeded(o):
		a.printf("  %s: ok\n", step)
	default:
		a.printf("  %s: FAILED (%s)\n", step, o.GetError())
	}
}

func (a *App) printInteractions(in *pb.Interactions) {
	if len(in.Comments) == 0 && len(in.Attachments) == 0 {
		a.printf("No comments or attachments\n")
		return
	}
	for _, c := range in.Comments {
		a.printf("[%s] %s: %s\n", c.GetDate().AsTime().Local().Format("2006-01-02 15:04"), c.Author, c.Text)
	}
	for _, at := range in.Attachments {
		a.printf("(%s) %s by %s: %s\n", at.Type, at.Name, at.UploadedBy, at.GetUrl())
	}
}

func (a *App) Tasks(ctx context.Context, _ []string) error {
	list, err := a.client.ListTasks(ctx)
	if err != nil {
		return err
	}
	tw := a.table()
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tDEADLINE\tCREATED BY")
	for _, t := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.GetId(), t.Title, t.Status, timex.FormatProto(t.Deadline), t.CreatedBy)
	}
	return tw.Flush()
}

func (a *App) AddTask(ctx context.Context, _ []string) error {
	t := &pb.Task{}
	var err error

	if t.Title, err = a.ask("Title"); err != nil {
		return err
	}
	desc, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	t.Description = common.NullIfEmpty(desc)
	if t.AssignedTo, err = a.askOptional("Assigned to (profile id)"); err != nil {
		return err
	}
	if t.ClientId, err = a.askOptional("Client id"); err != nil {
		return err
	}
	if t.ContractId, err = a.askOptional("Contract id"); err != nil {
		return err
	}
	if t.Deadline, err = a.askDate("Deadline"); err != nil {
		return err
	}

	saved, err := a.client.CreateTask(ctx, t)
	if err != nil {
		return err
	}
	a.printf("Task %s created\n", saved.GetId())
	return nil
}

func (a *App) ShowTask(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "task <id>"); err != nil {
		return err
	}
	in, err := a.client.GetTaskInteractions(ctx, args[0])
	if err != nil {
		return err
	}
	a.printInteractions(in)
	return nil
}

func (a *App) TaskStatus(ctx context.Context, args []string) error {
	if err := needArgs(args, 2, "taskstatus <id> <pending|in_progress|completed|blocked>"); err != nil {
		return err
	}
	if err := a.client.UpdateTaskStatus(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.printf("Task %s is now %s\n", args[0], args[1])
	return nil
}

func (a *App) CommentTask(ctx context.Context, args []string) error {
	if err := needArgs(args, 2, "taskcomment <id> <text>"); err != nil {
		return err
	}
	if _, err := a.client.AddTaskComment(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	a.printf("Comment added\n")
	return nil
}

func (a *App) AttachTask(ctx context.Context, args []string) error {
	if err := needArgs(args, 2, "taskattach <id> <file>"); err != nil {
		return err
	}
	f, err := readFile(args[1])
	if err != nil {
		return err
	}
	at, err := a.client.AddTaskAttachment(ctx, args[0], f)
	if err != nil {
		return err
	}
	a.printf("Attached %s: %s\n", at.Name, at.GetUrl())
	return nil
}

func (a *App) Documents(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "docs <contract id>"); err != nil {
		return err
	}
	list, err := a.client.ListContractDocuments(ctx, args[0])
	if err != nil {
		return err
	}
	tw := a.table()
	fmt.Fprintln(tw, "NAME\tTYPE\tBY\tDATE\tURL")
	for _, d := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.Name, d.Type, d.UploadedBy, d.GetDate().AsTime().Local().Format(timex.DateLayout), d.GetUrl())
	}
	return tw.Flush()
}

func (a *App) AddDocument(ctx context.Context, args []string) error {
	if err := needArgs(args, 2, "adddoc <contract id> <file> [name]"); err != nil {
		return err
	}
	f, err := readFile(args[1])
	if err != nil {
		return err
	}
	name := f.Name
	if len(args) > 2 {
		name = strings.Join(args[2:], " ")
	}
	at, err := a.client.AddContractDocument(ctx, args[0], name, f)
	if err != nil {
		return err
	}
	a.printf("Document %s stored: %s\n", at.Name, at.GetUrl())
	return nil
}

func (a *App) Download(ctx context.Context, args []string) error {
	if err := needArgs(args, 1, "download <key>"); err != nil {
		return err
	}
	url, err := a.client.GetDownloadURL(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("%s\n", url)
	return nil
}

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	d, err := a.client.GetDashboard(ctx)
	if err != nil {
		return err
	}
	a.printf("Clients: %d\nActive contracts: %d\n", d.TotalClients, d.ActiveContracts)
	if p := a.client.Profile(); p != nil && p.GetRole() == "admin" {
		a.printf("Contracted: %.2f\nItems: %.2f\nMeasured: %.2f\n", d.TotalContractValue, d.TotalItemsValue, d.TotalMeasuredValue)
	}
	if len(d.UrgentTasks) == 0 {
		return nil
	}
	a.printf("Urgent tasks:\n")
	for _, t := range d.UrgentTasks {
		a.printf("  %s  %s (%s)\n", timex.FormatProto(t.Deadline), t.Title, t.Status)
	}
	return nil
}
