package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/mdterp/internal/proto"
	"github.com/dmitrijs2005/mdterp/internal/server/auth"
)

func (s *GRPCServer) SaveClient(ctx context.Context, req *pb.Client) (*pb.Client, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "SaveClient", err)
	}
	c, err := s.svc.Clients.Save(ctx, actor, fromClient(req))
	if err != nil {
		return nil, s.fail(ctx, "SaveClient", err)
	}
	return toClient(c), nil
}

func (s *GRPCServer) GetClient(ctx context.Context, req *pb.IDRequest) (*pb.Client, error) {
	c, err := s.svc.Clients.Get(ctx, req.GetId())
	if err != nil {
		return nil, s.fail(ctx, "GetClient", err)
	}
	return toClient(c), nil
}

func (s *GRPCServer) ListClients(ctx context.Context, req *pb.ListClientsRequest) (*pb.ClientList, error) {
	list, err := s.svc.Clients.List(ctx, req.GetSearch())
	if err != nil {
		return nil, s.fail(ctx, "ListClients", err)
	}
	return &pb.ClientList{Clients: mapSlice(list, toClient)}, nil
}

func (s *GRPCServer) SaveContract(ctx context.Context, req *pb.Contract) (*pb.Contract, error) {
	c, err := s.svc.Contracts.Save(ctx, fromContract(req))
	if err != nil {
		return nil, s.fail(ctx, "SaveContract", err)
	}
	return toContract(c), nil
}

func (s *GRPCServer) ListContracts(ctx context.Context, req *pb.ListContractsRequest) (*pb.ContractList, error) {
	list, err := s.svc.Contracts.List(ctx, req.GetClientId())
	if err != nil {
		return nil, s.fail(ctx, "ListContracts", err)
	}
	return &pb.ContractList{Contracts: mapSlice(list, toContract)}, nil
}

func (s *GRPCServer) AddItem(ctx context.Context, req *pb.Item) (*pb.Item, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "AddItem", err)
	}
	it, err := s.svc.Items.Add(ctx, actor, fromItem(req))
	if err != nil {
		return nil, s.fail(ctx, "AddItem", err)
	}
	return toItem(it), nil
}

func (s *GRPCServer) UpdateItem(ctx context.Context, req *pb.Item) (*pb.Item, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "UpdateItem", err)
	}
	it, err := s.svc.Items.Update(ctx, actor, fromItem(req))
	if err != nil {
		return nil, s.fail(ctx, "UpdateItem", err)
	}
	return toItem(it), nil
}

func (s *GRPCServer) ListItems(ctx context.Context, req *pb.ListItemsRequest) (*pb.ItemList, error) {
	list, err := s.svc.Items.List(ctx, req.GetContractId())
	if err != nil {
		return nil, s.fail(ctx, "ListItems", err)
	}
	return &pb.ItemList{Items: mapSlice(list, toItem)}, nil
}

func (s *GRPCServer) AddMeasurement(ctx context.Context, req *pb.AddMeasurementRequest) (*pb.AddMeasurementResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "AddMeasurement", err)
	}
	res, err := s.svc.Measurements.Add(ctx, actor, fromMeasurement(req.GetMeasurement()), fromFile(req.GetProof()))
	if err != nil {
		return nil, s.fail(ctx, "AddMeasurement", err)
	}
	return &pb.AddMeasurementResponse{
		Measurement: toMeasurement(res.Measurement),
		Proof:       toOutcome(res.Proof),
		Attachment:  toAttachment(res.Attachment),
	}, nil
}

func (s *GRPCServer) ListMeasurements(ctx context.Context, req *pb.ListMeasurementsRequest) (*pb.MeasurementList, error) {
	res, err := s.svc.Measurements.List(ctx, req.GetItemId())
	if err != nil {
		return nil, s.fail(ctx, "ListMeasurements", err)
	}
	return &pb.MeasurementList{
		Item:         toItem(res.Item),
		Measurements: mapSlice(res.Measurements, toMeasurement),
		Balance:      res.Balance,
	}, nil
}

func (s *GRPCServer) CreateTask(ctx context.Context, req *pb.Task) (*pb.Task, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "CreateTask", err)
	}
	t, err := s.svc.Tasks.Create(ctx, actor, fromTask(req))
	if err != nil {
		return nil, s.fail(ctx, "CreateTask", err)
	}
	return toTask(t), nil
}

func (s *GRPCServer) ListTasks(ctx context.Context, _ *pb.Empty) (*pb.TaskList, error) {
	list, err := s.svc.Tasks.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "ListTasks", err)
	}
	return &pb.TaskList{Tasks: mapSlice(list, toTask)}, nil
}

func (s *GRPCServer) UpdateTaskStatus(ctx context.Context, req *pb.UpdateTaskStatusRequest) (*pb.Empty, error) {
	if err := s.svc.Tasks.UpdateStatus(ctx, req.GetId(), req.GetStatus()); err != nil {
		return nil, s.fail(ctx, "UpdateTaskStatus", err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) AddTaskComment(ctx context.Context, req *pb.AddCommentRequest) (*pb.Comment, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "AddTaskComment", err)
	}
	c, err := s.svc.Tasks.AddComment(ctx, actor, req.GetOwnerId(), req.GetText())
	if err != nil {
		return nil, s.fail(ctx, "AddTaskComment", err)
	}
	return toComment(c), nil
}

func (s *GRPCServer) AddTaskAttachment(ctx context.Context, req *pb.AddAttachmentRequest) (*pb.Attachment, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "AddTaskAttachment", err)
	}
	a, err := s.svc.Tasks.AddAttachment(ctx, actor, req.GetOwnerId(), fromFile(req.GetFile()))
	if err != nil {
		return nil, s.fail(ctx, "AddTaskAttachment", err)
	}
	return toAttachment(a), nil
}

func (s *GRPCServer) GetTaskInteractions(ctx context.Context, req *pb.IDRequest) (*pb.Interactions, error) {
	in, err := s.svc.Tasks.Interactions(ctx, req.GetId())
	if err != nil {
		return nil, s.fail(ctx, "GetTaskInteractions", err)
	}
	return toInteractions(in), nil
}

func (s *GRPCServer) AddContractDocument(ctx context.Context, req *pb.AddAttachmentRequest) (*pb.Attachment, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "AddContractDocument", err)
	}
	a, err := s.svc.Documents.Add(ctx, actor, req.GetOwnerId(), req.GetName(), fromFile(req.GetFile()))
	if err != nil {
		return nil, s.fail(ctx, "AddContractDocument", err)
	}
	return toAttachment(a), nil
}

func (s *GRPCServer) ListContractDocuments(ctx context.Context, req *pb.ListDocumentsRequest) (*pb.AttachmentList, error) {
	list, err := s.svc.Documents.List(ctx, req.GetContractId())
	if err != nil {
		return nil, s.fail(ctx, "ListContractDocuments", err)
	}
	return &pb.AttachmentList{Attachments: mapSlice(list, toAttachment)}, nil
}

func (s *GRPCServer) GetDownloadURL(ctx context.Context, req *pb.DownloadURLRequest) (*pb.DownloadURLResponse, error) {
	url, err := s.svc.Documents.DownloadURL(ctx, req.GetKey())
	if err != nil {
		return nil, s.fail(ctx, "GetDownloadURL", err)
	}
	return &pb.DownloadURLResponse{Url: url}, nil
}

func (s *GRPCServer) GetDashboard(ctx context.Context, _ *pb.Empty) (*pb.Dashboard, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "GetDashboard", err)
	}
	d, err := s.svc.Dashboard.Get(ctx, actor)
	if err != nil {
		return nil, s.fail(ctx, "GetDashboard", err)
	}
	return toDashboard(d), nil
}

func (s *GRPCServer) ExportItems(ctx context.Context, req *pb.ExportItemsRequest) (*pb.ExportItemsResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, s.fail(ctx, "ExportItems", err)
	}
	data, name, err := s.svc.Export.ItemsCSV(ctx, actor, req.GetContractId())
	if err != nil {
		return nil, s.fail(ctx, "ExportItems", err)
	}
	return &pb.ExportItemsResponse{FileName: name, Data: data}, nil
}
