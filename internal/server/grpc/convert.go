package grpc

import (
	"github.com/dmitrijs2005/mdterp/internal/common"
	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"github.com/dmitrijs2005/mdterp/internal/server/models"
	"github.com/dmitrijs2005/mdterp/internal/server/services"
	"github.com/dmitrijs2005/mdterp/internal/timex"
)

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func toProfile(p *models.Profile) *pb.Profile {
	if p == nil {
		return nil
	}
	return &pb.Profile{Id: p.ID, Email: p.Email, Name: p.Name, Role: string(p.Role)}
}

func toTokens(t *services.TokenPair) *pb.TokenResponse {
	return &pb.TokenResponse{AccessToken: t.AccessToken, RefreshToken: t.RefreshToken, Profile: toProfile(t.Profile)}
}

func toClient(c *models.Client) *pb.Client {
	return &pb.Client{
		Id:                 c.ID,
		Name:               c.Name,
		Address:            c.Address,
		Neighborhood:       c.Neighborhood,
		City:               c.City,
		Whatsapp:           c.Whatsapp,
		Email:              c.Email,
		Responsible:        c.Responsible,
		RegistrationNumber: c.RegistrationNumber,
		MinutesNumber:      c.MinutesNumber,
		RegistrationDate:   timex.ToProto(c.RegistrationDate),
		Deadline:           timex.ToProto(c.Deadline),
		UserCreated:        c.UserCreated,
	}
}

func fromClient(c *pb.Client) *models.Client {
	return &models.Client{
		ID:                 c.GetId(),
		Name:               c.GetName(),
		Address:            c.Address,
		Neighborhood:       c.Neighborhood,
		City:               c.City,
		Whatsapp:           c.Whatsapp,
		Email:              c.Email,
		Responsible:        c.Responsible,
		RegistrationNumber: c.RegistrationNumber,
		MinutesNumber:      c.MinutesNumber,
		RegistrationDate:   timex.FromProto(c.GetRegistrationDate()),
		Deadline:           timex.FromProto(c.GetDeadline()),
	}
}

func toContract(c *models.Contract) *pb.Contract {
	return &pb.Contract{
		Id:                  c.ID,
		ClientId:            c.ClientID,
		ContractNumber:      c.ContractNumber,
		ProcessNumber:       c.ProcessNumber,
		Description:         c.Description,
		ContractDescription: c.ContractDescription,
		StartDate:           timex.ToProto(c.StartDate),
		EndDate:             timex.ToProto(c.EndDate),
		TotalValue:          c.TotalValue,
	}
}

func fromContract(c *pb.Contract) *models.Contract {
	return &models.Contract{
		ID:                  c.GetId(),
		ClientID:            c.GetClientId(),
		ContractNumber:      c.ContractNumber,
		ProcessNumber:       c.ProcessNumber,
		Description:         c.GetDescription(),
		ContractDescription: c.ContractDescription,
		StartDate:           timex.FromProto(c.GetStartDate()),
		EndDate:             timex.FromProto(c.GetEndDate()),
		TotalValue:          c.GetTotalValue(),
	}
}

func toWorkflow(w models.Workflow) *pb.Workflow {
	return &pb.Workflow{
		Status:                string(w.Status),
		ExecutorId:            w.ExecutorID,
		ReceptionDate:         timex.ToProto(w.ReceptionDate),
		InternalDeadline:      timex.ToProto(w.InternalDeadline),
		ClientDeadline:        timex.ToProto(w.ClientDeadline),
		StartReviewDate:       timex.ToProto(w.StartReviewDate),
		EndReviewDate:         timex.ToProto(w.EndReviewDate),
		SupervisorObservation: w.SupervisorObservation,
		ClientApprovalDate:    timex.ToProto(w.ClientApprovalDate),
		ArtEmissionDate:       timex.ToProto(w.ArtEmissionDate),
		InvoiceEmissionDate:   timex.ToProto(w.InvoiceEmissionDate),
		BillingDeadline:       timex.ToProto(w.BillingDeadline),
	}
}

// fromWorkflow leaves an unknown status in place for the service to reject.
func fromWorkflow(w *pb.Workflow) models.Workflow {
	if w == nil {
		w = &pb.Workflow{}
	}
	return models.Workflow{
		Status:                models.Status(w.GetStatus()),
		ExecutorID:            w.ExecutorId,
		ReceptionDate:         timex.FromProto(w.GetReceptionDate()),
		InternalDeadline:      timex.FromProto(w.GetInternalDeadline()),
		ClientDeadline:        timex.FromProto(w.GetClientDeadline()),
		StartReviewDate:       timex.FromProto(w.GetStartReviewDate()),
		EndReviewDate:         timex.FromProto(w.GetEndReviewDate()),
		SupervisorObservation: w.SupervisorObservation,
		ClientApprovalDate:    timex.FromProto(w.GetClientApprovalDate()),
		ArtEmissionDate:       timex.FromProto(w.GetArtEmissionDate()),
		InvoiceEmissionDate:   timex.FromProto(w.GetInvoiceEmissionDate()),
		BillingDeadline:       timex.FromProto(w.GetBillingDeadline()),
	}
}

func toItem(i *models.ServiceItem) *pb.Item {
	if i == nil {
		return nil
	}
	return &pb.Item{
		Id:            i.ID,
		ContractId:    i.ContractID,
		Description:   i.Description,
		Unit:          i.Unit,
		Quantity:      i.Quantity,
		UnitPrice:     i.UnitPrice,
		TotalPrice:    i.TotalPrice,
		Date:          timex.ToProto(&i.Date),
		UserCreated:   i.UserCreated,
		Workflow:      toWorkflow(i.Workflow),
		MeasuredTotal: i.MeasuredTotal,
		Balance:       i.Balance(),
	}
}

func fromItem(i *pb.Item) *models.ServiceItem {
	return &models.ServiceItem{
		ID:          i.GetId(),
		ContractID:  i.GetContractId(),
		Description: i.GetDescription(),
		Unit:        i.GetUnit(),
		Quantity:    i.GetQuantity(),
		UnitPrice:   i.GetUnitPrice(),
	}
}

func toMeasurement(m *models.Measurement) *pb.Measurement {
	return &pb.Measurement{
		Id:          m.ID,
		ItemId:      m.ItemID,
		Date:        timex.ToProto(m.Date),
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TotalPrice:  m.TotalPrice,
		UserCreated: m.UserCreated,
	}
}

func fromMeasurement(m *pb.Measurement) *models.Measurement {
	if m == nil {
		return &models.Measurement{}
	}
	return &models.Measurement{
		ItemID:      m.GetItemId(),
		Date:        timex.FromProto(m.GetDate()),
		Description: m.Description,
		Quantity:    m.GetQuantity(),
	}
}

func fromFile(f *pb.File) *models.Upload {
	if f == nil {
		return nil
	}
	return &models.Upload{Name: f.GetName(), ContentType: f.GetContentType(), Data: f.GetData()}
}

func toOutcome(o services.StepOutcome) *pb.StepOutcome {
	out := &pb.StepOutcome{Attempted: o.Attempted}
	if o.Err != nil {
		out.Error = o.Err.Error()
	}
	return out
}

func toComment(c *models.Comment) *pb.Comment {
	return &pb.Comment{Id: c.ID, OwnerId: c.OwnerID, Text: c.Text, Author: c.Author, Date: timex.ToProto(&c.Date)}
}

func toAttachment(a *models.Attachment) *pb.Attachment {
	if a == nil {
		return nil
	}
	return &pb.Attachment{
		Id:         a.ID,
		OwnerId:    a.OwnerID,
		Name:       a.Name,
		Url:        a.URL,
		Type:       a.Type,
		UploadedBy: a.UploadedBy,
		Date:       timex.ToProto(&a.Date),
	}
}

func toInteractions(in *services.Interactions) *pb.Interactions {
	return &pb.Interactions{
		Comments:    mapSlice(in.Comments, toComment),
		Attachments: mapSlice(in.Attachments, toAttachment),
	}
}

func toTask(t *models.Task) *pb.Task {
	return &pb.Task{
		Id:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		ClientId:    t.ClientID,
		ContractId:  t.ContractID,
		Deadline:    timex.ToProto(t.Deadline),
	}
}

func fromTask(t *pb.Task) *models.Task {
	return &models.Task{
		Title:       t.GetTitle(),
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		ClientID:    t.ClientId,
		ContractID:  t.ContractId,
		Deadline:    timex.FromProto(t.GetDeadline()),
	}
}

func toDashboard(d *models.Dashboard) *pb.Dashboard {
	return &pb.Dashboard{
		TotalClients:       d.TotalClients,
		ActiveContracts:    d.ActiveContracts,
		UrgentTasks:        mapSlice(d.UrgentTasks, toTask),
		TotalContractValue: d.TotalContractValue,
		TotalItemsValue:    d.TotalItemsValue,
		TotalMeasuredValue: d.TotalMeasuredValue,
	}
}

func toChatMessage(m *models.ChatMessage) *pb.ChatMessage {
	return &pb.ChatMessage{
		Id:          m.ID,
		Text:        m.Text,
		Author:      m.Author,
		SenderId:    m.SenderID,
		RecipientId: common.Deref(m.RecipientID),
		Timestamp:   timex.ToProto(&m.Timestamp),
	}
}

func toSnapshot(users []models.OnlineUser) *pb.PresenceSnapshot {
	out := &pb.PresenceSnapshot{Users: make([]*pb.OnlineUser, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, &pb.OnlineUser{Id: u.ID, Name: u.Name, OnlineAt: timex.ToProto(&u.OnlineAt)})
	}
	return out
}
