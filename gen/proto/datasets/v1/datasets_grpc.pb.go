// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: datasets/v1/datasets.proto

package v1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	DatasetsService_UploadDataset_FullMethodName = "/datasets.v1.DatasetsService/UploadDataset"
	DatasetsService_GetDataset_FullMethodName    = "/datasets.v1.DatasetsService/GetDataset"
	DatasetsService_ListDatasets_FullMethodName  = "/datasets.v1.DatasetsService/ListDatasets"
	DatasetsService_GetJobStatus_FullMethodName  = "/datasets.v1.DatasetsService/GetJobStatus"
	DatasetsService_DeleteDataset_FullMethodName = "/datasets.v1.DatasetsService/DeleteDataset"
	DatasetsService_ExportDataset_FullMethodName = "/datasets.v1.DatasetsService/ExportDataset"
)

// DatasetsServiceClient is the client API for DatasetsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DatasetsService manages uploaded datasets and their processing jobs.
type DatasetsServiceClient interface {
	// UploadDataset registers a source file and queues type inference.
	UploadDataset(ctx context.Context, in *UploadDatasetRequest, opts ...grpc.CallOption) (*UploadDatasetResponse, error)
	// GetDataset returns dataset metadata, columns, and one page of rows.
	GetDataset(ctx context.Context, in *GetDatasetRequest, opts ...grpc.CallOption) (*GetDatasetResponse, error)
	ListDatasets(ctx context.Context, in *ListDatasetsRequest, opts ...grpc.CallOption) (*ListDatasetsResponse, error)
	// GetJobStatus returns the job record plus live progress while running.
	GetJobStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*GetJobStatusResponse, error)
	DeleteDataset(ctx context.Context, in *DeleteDatasetRequest, opts ...grpc.CallOption) (*DeleteDatasetResponse, error)
	// ExportDataset queues an export of the dataset's current values.
	ExportDataset(ctx context.Context, in *ExportDatasetRequest, opts ...grpc.CallOption) (*ExportDatasetResponse, error)
}

type datasetsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDatasetsServiceClient(cc grpc.ClientConnInterface) DatasetsServiceClient {
	return &datasetsServiceClient{cc}
}

func (c *datasetsServiceClient) UploadDataset(ctx context.Context, in *UploadDatasetRequest, opts ...grpc.CallOption) (*UploadDatasetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadDatasetResponse)
	err := c.cc.Invoke(ctx, DatasetsService_UploadDataset_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *datasetsServiceClient) GetDataset(ctx context.Context, in *GetDatasetRequest, opts ...grpc.CallOption) (*GetDatasetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDatasetResponse)
	err := c.cc.Invoke(ctx, DatasetsService_GetDataset_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *datasetsServiceClient) ListDatasets(ctx context.Context, in *ListDatasetsRequest, opts ...grpc.CallOption) (*ListDatasetsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDatasetsResponse)
	err := c.cc.Invoke(ctx, DatasetsService_ListDatasets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *datasetsServiceClient) GetJobStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*GetJobStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobStatusResponse)
	err := c.cc.Invoke(ctx, DatasetsService_GetJobStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *datasetsServiceClient) DeleteDataset(ctx context.Context, in *DeleteDatasetRequest, opts ...grpc.CallOption) (*DeleteDatasetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteDatasetResponse)
	err := c.cc.Invoke(ctx, DatasetsService_DeleteDataset_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *datasetsServiceClient) ExportDataset(ctx context.Context, in *ExportDatasetRequest, opts ...grpc.CallOption) (*ExportDatasetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportDatasetResponse)
	err := c.cc.Invoke(ctx, DatasetsService_ExportDataset_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DatasetsServiceServer is the server API for DatasetsService service.
// All implementations must embed UnimplementedDatasetsServiceServer
// for forward compatibility.
//
// DatasetsService manages uploaded datasets and their processing jobs.
type DatasetsServiceServer interface {
	// UploadDataset registers a source file and queues type inference.
	UploadDataset(context.Context, *UploadDatasetRequest) (*UploadDatasetResponse, error)
	// GetDataset returns dataset metadata, columns, and one page of rows.
	GetDataset(context.Context, *GetDatasetRequest) (*GetDatasetResponse, error)
	ListDatasets(context.Context, *ListDatasetsRequest) (*ListDatasetsResponse, error)
	// GetJobStatus returns the job record plus live progress while running.
	GetJobStatus(context.Context, *GetJobStatusRequest) (*GetJobStatusResponse, error)
	DeleteDataset(context.Context, *DeleteDatasetRequest) (*DeleteDatasetResponse, error)
	// ExportDataset queues an export of the dataset's current values.
	ExportDataset(context.Context, *ExportDatasetRequest) (*ExportDatasetResponse, error)
	mustEmbedUnimplementedDatasetsServiceServer()
}

// UnimplementedDatasetsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDatasetsServiceServer struct{}

func (UnimplementedDatasetsServiceServer) UploadDataset(context.Context, *UploadDatasetRequest) (*UploadDatasetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadDataset not implemented")
}
func (UnimplementedDatasetsServiceServer) GetDataset(context.Context, *GetDatasetRequest) (*GetDatasetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDataset not implemented")
}
func (UnimplementedDatasetsServiceServer) ListDatasets(context.Context, *ListDatasetsRequest) (*ListDatasetsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDatasets not implemented")
}
func (UnimplementedDatasetsServiceServer) GetJobStatus(context.Context, *GetJobStatusRequest) (*GetJobStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJobStatus not implemented")
}
func (UnimplementedDatasetsServiceServer) DeleteDataset(context.Context, *DeleteDatasetRequest) (*DeleteDatasetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteDataset not implemented")
}
func (UnimplementedDatasetsServiceServer) ExportDataset(context.Context, *ExportDatasetRequest) (*ExportDatasetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportDataset not implemented")
}
func (UnimplementedDatasetsServiceServer) mustEmbedUnimplementedDatasetsServiceServer() {}
func (UnimplementedDatasetsServiceServer) testEmbeddedByValue()                         {}

// UnsafeDatasetsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DatasetsServiceServer will
// result in compilation errors.
type UnsafeDatasetsServiceServer interface {
	mustEmbedUnimplementedDatasetsServiceServer()
}

func RegisterDatasetsServiceServer(s grpc.ServiceRegistrar, srv DatasetsServiceServer) {
	// If the following call pancis, it indicates UnimplementedDatasetsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DatasetsService_ServiceDesc, srv)
}

func _DatasetsService_UploadDataset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDatasetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatasetsServiceServer).UploadDataset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DatasetsService_UploadDataset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatasetsServiceServer).UploadDataset(ctx, req.(*UploadDatasetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DatasetsService_GetDataset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDatasetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatasetsServiceServer).GetDataset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DatasetsService_GetDataset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatasetsServiceServer).GetDataset(ctx, req.(*GetDatasetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DatasetsService_ListDatasets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDatasetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatasetsServiceServer).ListDatasets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DatasetsService_ListDatasets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatasetsServiceServer).ListDatasets(ctx, req.(*ListDatasetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DatasetsService_GetJobStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatasetsServiceServer).GetJobStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DatasetsService_GetJobStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatasetsServiceServer).GetJobStatus(ctx, req.(*GetJobStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DatasetsService_DeleteDataset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteDatasetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatasetsServiceServer).DeleteDataset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DatasetsService_DeleteDataset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatasetsServiceServer).DeleteDataset(ctx, req.(*DeleteDatasetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DatasetsService_ExportDataset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportDatasetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatasetsServiceServer).ExportDataset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DatasetsService_ExportDataset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatasetsServiceServer).ExportDataset(ctx, req.(*ExportDatasetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DatasetsService_ServiceDesc is the grpc.ServiceDesc for DatasetsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DatasetsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "datasets.v1.DatasetsService",
	HandlerType: (*DatasetsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadDataset",
			Handler:    _DatasetsService_UploadDataset_Handler,
		},
		{
			MethodName: "GetDataset",
			Handler:    _DatasetsService_GetDataset_Handler,
		},
		{
			MethodName: "ListDatasets",
			Handler:    _DatasetsService_ListDatasets_Handler,
		},
		{
			MethodName: "GetJobStatus",
			Handler:    _DatasetsService_GetJobStatus_Handler,
		},
		{
			MethodName: "DeleteDataset",
			Handler:    _DatasetsService_DeleteDataset_Handler,
		},
		{
			MethodName: "ExportDataset",
			Handler:    _DatasetsService_ExportDataset_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "datasets/v1/datasets.proto",
}

const (
	ColumnsService_ValidateConversion_FullMethodName = "/datasets.v1.ColumnsService/ValidateConversion"
	ColumnsService_ConvertColumnType_FullMethodName  = "/datasets.v1.ColumnsService/ConvertColumnType"
	ColumnsService_RenameColumn_FullMethodName       = "/datasets.v1.ColumnsService/RenameColumn"
)

// ColumnsServiceClient is the client API for ColumnsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ColumnsService manages per-column operations.
type ColumnsServiceClient interface {
	// ValidateConversion checks feasibility without modifying anything.
	ValidateConversion(ctx context.Context, in *ValidateConversionRequest, opts ...grpc.CallOption) (*ValidateConversionResponse, error)
	// ConvertColumnType validates and queues the conversion job.
	ConvertColumnType(ctx context.Context, in *ConvertColumnTypeRequest, opts ...grpc.CallOption) (*ConvertColumnTypeResponse, error)
	RenameColumn(ctx context.Context, in *RenameColumnRequest, opts ...grpc.CallOption) (*RenameColumnResponse, error)
}

type columnsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewColumnsServiceClient(cc grpc.ClientConnInterface) ColumnsServiceClient {
	return &columnsServiceClient{cc}
}

func (c *columnsServiceClient) ValidateConversion(ctx context.Context, in *ValidateConversionRequest, opts ...grpc.CallOption) (*ValidateConversionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ValidateConversionResponse)
	err := c.cc.Invoke(ctx, ColumnsService_ValidateConversion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *columnsServiceClient) ConvertColumnType(ctx context.Context, in *ConvertColumnTypeRequest, opts ...grpc.CallOption) (*ConvertColumnTypeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConvertColumnTypeResponse)
	err := c.cc.Invoke(ctx, ColumnsService_ConvertColumnType_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *columnsServiceClient) RenameColumn(ctx context.Context, in *RenameColumnRequest, opts ...grpc.CallOption) (*RenameColumnResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RenameColumnResponse)
	err := c.cc.Invoke(ctx, ColumnsService_RenameColumn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ColumnsServiceServer is the server API for ColumnsService service.
// All implementations must embed UnimplementedColumnsServiceServer
// for forward compatibility.
//
// ColumnsService manages per-column operations.
type ColumnsServiceServer interface {
	// ValidateConversion checks feasibility without modifying anything.
	ValidateConversion(context.Context, *ValidateConversionRequest) (*ValidateConversionResponse, error)
	// ConvertColumnType validates and queues the conversion job.
	ConvertColumnType(context.Context, *ConvertColumnTypeRequest) (*ConvertColumnTypeResponse, error)
	RenameColumn(context.Context, *RenameColumnRequest) (*RenameColumnResponse, error)
	mustEmbedUnimplementedColumnsServiceServer()
}

// UnimplementedColumnsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedColumnsServiceServer struct{}

func (UnimplementedColumnsServiceServer) ValidateConversion(context.Context, *ValidateConversionRequest) (*ValidateConversionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateConversion not implemented")
}
func (UnimplementedColumnsServiceServer) ConvertColumnType(context.Context, *ConvertColumnTypeRequest) (*ConvertColumnTypeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConvertColumnType not implemented")
}
func (UnimplementedColumnsServiceServer) RenameColumn(context.Context, *RenameColumnRequest) (*RenameColumnResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RenameColumn not implemented")
}
func (UnimplementedColumnsServiceServer) mustEmbedUnimplementedColumnsServiceServer() {}
func (UnimplementedColumnsServiceServer) testEmbeddedByValue()                        {}

// UnsafeColumnsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ColumnsServiceServer will
// result in compilation errors.
type UnsafeColumnsServiceServer interface {
	mustEmbedUnimplementedColumnsServiceServer()
}

func RegisterColumnsServiceServer(s grpc.ServiceRegistrar, srv ColumnsServiceServer) {
	// If the following call pancis, it indicates UnimplementedColumnsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ColumnsService_ServiceDesc, srv)
}

func _ColumnsService_ValidateConversion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateConversionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ColumnsServiceServer).ValidateConversion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ColumnsService_ValidateConversion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ColumnsServiceServer).ValidateConversion(ctx, req.(*ValidateConversionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ColumnsService_ConvertColumnType_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConvertColumnTypeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ColumnsServiceServer).ConvertColumnType(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ColumnsService_ConvertColumnType_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ColumnsServiceServer).ConvertColumnType(ctx, req.(*ConvertColumnTypeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ColumnsService_RenameColumn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenameColumnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ColumnsServiceServer).RenameColumn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ColumnsService_RenameColumn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ColumnsServiceServer).RenameColumn(ctx, req.(*RenameColumnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ColumnsService_ServiceDesc is the grpc.ServiceDesc for ColumnsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ColumnsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "datasets.v1.ColumnsService",
	HandlerType: (*ColumnsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ValidateConversion",
			Handler:    _ColumnsService_ValidateConversion_Handler,
		},
		{
			MethodName: "ConvertColumnType",
			Handler:    _ColumnsService_ConvertColumnType_Handler,
		},
		{
			MethodName: "RenameColumn",
			Handler:    _ColumnsService_RenameColumn_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "datasets/v1/datasets.proto",
}
