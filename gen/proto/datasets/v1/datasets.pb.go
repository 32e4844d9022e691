// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: datasets/v1/datasets.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Dataset struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	FileType      string                 `protobuf:"bytes,3,opt,name=file_type,json=fileType,proto3" json:"file_type,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	RowsCount     int64                  `protobuf:"varint,5,opt,name=rows_count,json=rowsCount,proto3" json:"rows_count,omitempty"`
	ColumnsCount  int32                  `protobuf:"varint,6,opt,name=columns_count,json=columnsCount,proto3" json:"columns_count,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Dataset) Reset() {
	*x = Dataset{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Dataset) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Dataset) ProtoMessage() {}

func (x *Dataset) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Dataset.ProtoReflect.Descriptor instead.
func (*Dataset) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{0}
}

func (x *Dataset) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Dataset) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Dataset) GetFileType() string {
	if x != nil {
		return x.FileType
	}
	return ""
}

func (x *Dataset) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Dataset) GetRowsCount() int64 {
	if x != nil {
		return x.RowsCount
	}
	return 0
}

func (x *Dataset) GetColumnsCount() int32 {
	if x != nil {
		return x.ColumnsCount
	}
	return 0
}

func (x *Dataset) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Dataset) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Column struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DatasetId     string                 `protobuf:"bytes,2,opt,name=dataset_id,json=datasetId,proto3" json:"dataset_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	OriginalName  string                 `protobuf:"bytes,4,opt,name=original_name,json=originalName,proto3" json:"original_name,omitempty"`
	Position      int32                  `protobuf:"varint,5,opt,name=position,proto3" json:"position,omitempty"`
	InferredType  string                 `protobuf:"bytes,6,opt,name=inferred_type,json=inferredType,proto3" json:"inferred_type,omitempty"`
	CurrentType   string                 `protobuf:"bytes,7,opt,name=current_type,json=currentType,proto3" json:"current_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Column) Reset() {
	*x = Column{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Column) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Column) ProtoMessage() {}

func (x *Column) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Column.ProtoReflect.Descriptor instead.
func (*Column) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{1}
}

func (x *Column) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Column) GetDatasetId() string {
	if x != nil {
		return x.DatasetId
	}
	return ""
}

func (x *Column) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Column) GetOriginalName() string {
	if x != nil {
		return x.OriginalName
	}
	return ""
}

func (x *Column) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *Column) GetInferredType() string {
	if x != nil {
		return x.InferredType
	}
	return ""
}

func (x *Column) GetCurrentType() string {
	if x != nil {
		return x.CurrentType
	}
	return ""
}

type Row struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	RowIndex int64                  `protobuf:"varint,1,opt,name=row_index,json=rowIndex,proto3" json:"row_index,omitempty"`
	// Cell values keyed by column id; canonical strings, "" means null.
	Values        map[string]string `protobuf:"bytes,2,rep,name=values,proto3" json:"values,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Row) Reset() {
	*x = Row{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Row) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Row) ProtoMessage() {}

func (x *Row) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Row.ProtoReflect.Descriptor instead.
func (*Row) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{2}
}

func (x *Row) GetRowIndex() int64 {
	if x != nil {
		return x.RowIndex
	}
	return 0
}

func (x *Row) GetValues() map[string]string {
	if x != nil {
		return x.Values
	}
	return nil
}

type ProcessingJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DatasetId     string                 `protobuf:"bytes,2,opt,name=dataset_id,json=datasetId,proto3" json:"dataset_id,omitempty"`
	ColumnId      string                 `protobuf:"bytes,3,opt,name=column_id,json=columnId,proto3" json:"column_id,omitempty"`
	JobType       string                 `protobuf:"bytes,4,opt,name=job_type,json=jobType,proto3" json:"job_type,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	TargetType    string                 `protobuf:"bytes,6,opt,name=target_type,json=targetType,proto3" json:"target_type,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ResultJson    string                 `protobuf:"bytes,8,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	StartedAt     string                 `protobuf:"bytes,10,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt   string                 `protobuf:"bytes,11,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessingJob) Reset() {
	*x = ProcessingJob{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessingJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessingJob) ProtoMessage() {}

func (x *ProcessingJob) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessingJob.ProtoReflect.Descriptor instead.
func (*ProcessingJob) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessingJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ProcessingJob) GetDatasetId() string {
	if x != nil {
		return x.DatasetId
	}
	return ""
}

func (x *ProcessingJob) GetColumnId() string {
	if x != nil {
		return x.ColumnId
	}
	return ""
}

func (x *ProcessingJob) GetJobType() string {
	if x != nil {
		return x.JobType
	}
	return ""
}

func (x *ProcessingJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ProcessingJob) GetTargetType() string {
	if x != nil {
		return x.TargetType
	}
	return ""
}

func (x *ProcessingJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ProcessingJob) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

func (x *ProcessingJob) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ProcessingJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ProcessingJob) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type JobProgress struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stage         string                 `protobuf:"bytes,1,opt,name=stage,proto3" json:"stage,omitempty"`
	ProcessedRows int64                  `protobuf:"varint,2,opt,name=processed_rows,json=processedRows,proto3" json:"processed_rows,omitempty"`
	TotalRows     int64                  `protobuf:"varint,3,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	Percent       float64                `protobuf:"fixed64,4,opt,name=percent,proto3" json:"percent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobProgress) Reset() {
	*x = JobProgress{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobProgress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobProgress) ProtoMessage() {}

func (x *JobProgress) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobProgress.ProtoReflect.Descriptor instead.
func (*JobProgress) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{4}
}

func (x *JobProgress) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *JobProgress) GetProcessedRows() int64 {
	if x != nil {
		return x.ProcessedRows
	}
	return 0
}

func (x *JobProgress) GetTotalRows() int64 {
	if x != nil {
		return x.TotalRows
	}
	return 0
}

func (x *JobProgress) GetPercent() float64 {
	if x != nil {
		return x.Percent
	}
	return 0
}

type UploadDatasetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDatasetRequest) Reset() {
	*x = UploadDatasetRequest{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDatasetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDatasetRequest) ProtoMessage() {}

func (x *UploadDatasetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDatasetRequest.ProtoReflect.Descriptor instead.
func (*UploadDatasetRequest) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{5}
}

func (x *UploadDatasetRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UploadDatasetRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type UploadDatasetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Dataset       *Dataset               `protobuf:"bytes,1,opt,name=dataset,proto3" json:"dataset,omitempty"`
	Job           *ProcessingJob         `protobuf:"bytes,2,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDatasetResponse) Reset() {
	*x = UploadDatasetResponse{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDatasetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDatasetResponse) ProtoMessage() {}

func (x *UploadDatasetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDatasetResponse.ProtoReflect.Descriptor instead.
func (*UploadDatasetResponse) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{6}
}

func (x *UploadDatasetResponse) GetDataset() *Dataset {
	if x != nil {
		return x.Dataset
	}
	return nil
}

func (x *UploadDatasetResponse) GetJob() *ProcessingJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetDatasetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DatasetId     string                 `protobuf:"bytes,1,opt,name=dataset_id,json=datasetId,proto3" json:"dataset_id,omitempty"`
	Page          int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDatasetRequest) Reset() {
	*x = GetDatasetRequest{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDatasetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDatasetRequest) ProtoMessage() {}

func (x *GetDatasetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDatasetRequest.ProtoReflect.Descriptor instead.
func (*GetDatasetRequest) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{7}
}

func (x *GetDatasetRequest) GetDatasetId() string {
	if x != nil {
		return x.DatasetId
	}
	return ""
}

func (x *GetDatasetRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *GetDatasetRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type GetDatasetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Dataset       *Dataset               `protobuf:"bytes,1,opt,name=dataset,proto3" json:"dataset,omitempty"`
	Columns       []*Column              `protobuf:"bytes,2,rep,name=columns,proto3" json:"columns,omitempty"`
	Rows          []*Row                 `protobuf:"bytes,3,rep,name=rows,proto3" json:"rows,omitempty"`
	TotalRows     int64                  `protobuf:"varint,4,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDatasetResponse) Reset() {
	*x = GetDatasetResponse{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDatasetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDatasetResponse) ProtoMessage() {}

func (x *GetDatasetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDatasetResponse.ProtoReflect.Descriptor instead.
func (*GetDatasetResponse) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{8}
}

func (x *GetDatasetResponse) GetDataset() *Dataset {
	if x != nil {
		return x.Dataset
	}
	return nil
}

func (x *GetDatasetResponse) GetColumns() []*Column {
	if x != nil {
		return x.Columns
	}
	return nil
}

func (x *GetDatasetResponse) GetRows() []*Row {
	if x != nil {
		return x.Rows
	}
	return nil
}

func (x *GetDatasetResponse) GetTotalRows() int64 {
	if x != nil {
		return x.TotalRows
	}
	return 0
}

type ListDatasetsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Page          int32                  `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDatasetsRequest) Reset() {
	*x = ListDatasetsRequest{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDatasetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDatasetsRequest) ProtoMessage() {}

func (x *ListDatasetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDatasetsRequest.ProtoReflect.Descriptor instead.
func (*ListDatasetsRequest) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{9}
}

func (x *ListDatasetsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListDatasetsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListDatasetsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Datasets      []*Dataset             `protobuf:"bytes,1,rep,name=datasets,proto3" json:"datasets,omitempty"`
	Total         int64                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDatasetsResponse) Reset() {
	*x = ListDatasetsResponse{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDatasetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDatasetsResponse) ProtoMessage() {}

func (x *ListDatasetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDatasetsResponse.ProtoReflect.Descriptor instead.
func (*ListDatasetsResponse) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{10}
}

func (x *ListDatasetsResponse) GetDatasets() []*Dataset {
	if x != nil {
		return x.Datasets
	}
	return nil
}

func (x *ListDatasetsResponse) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{11}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ProcessingJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	Progress      *JobProgress           `protobuf:"bytes,2,opt,name=progress,proto3" json:"progress,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*GetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{12}
}

func (x *GetJobStatusResponse) GetJob() *ProcessingJob {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *GetJobStatusResponse) GetProgress() *JobProgress {
	if x != nil {
		return x.Progress
	}
	return nil
}

type DeleteDatasetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DatasetId     string                 `protobuf:"bytes,1,opt,name=dataset_id,json=datasetId,proto3" json:"dataset_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDatasetRequest) Reset() {
	*x = DeleteDatasetRequest{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDatasetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDatasetRequest) ProtoMessage() {}

func (x *DeleteDatasetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDatasetRequest.ProtoReflect.Descriptor instead.
func (*DeleteDatasetRequest) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{13}
}

func (x *DeleteDatasetRequest) GetDatasetId() string {
	if x != nil {
		return x.DatasetId
	}
	return ""
}

type DeleteDatasetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDatasetResponse) Reset() {
	*x = DeleteDatasetResponse{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDatasetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDatasetResponse) ProtoMessage() {}

func (x *DeleteDatasetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDatasetResponse.ProtoReflect.Descriptor instead.
func (*DeleteDatasetResponse) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{14}
}

type ExportDatasetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DatasetId     string                 `protobuf:"bytes,1,opt,name=dataset_id,json=datasetId,proto3" json:"dataset_id,omitempty"`
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDatasetRequest) Reset() {
	*x = ExportDatasetRequest{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDatasetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDatasetRequest) ProtoMessage() {}

func (x *ExportDatasetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDatasetRequest.ProtoReflect.Descriptor instead.
func (*ExportDatasetRequest) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{15}
}

func (x *ExportDatasetRequest) GetDatasetId() string {
	if x != nil {
		return x.DatasetId
	}
	return ""
}

func (x *ExportDatasetRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

type ExportDatasetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ProcessingJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDatasetResponse) Reset() {
	*x = ExportDatasetResponse{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDatasetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDatasetResponse) ProtoMessage() {}

func (x *ExportDatasetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDatasetResponse.ProtoReflect.Descriptor instead.
func (*ExportDatasetResponse) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{16}
}

func (x *ExportDatasetResponse) GetJob() *ProcessingJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ValidateConversionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ColumnId      string                 `protobuf:"bytes,1,opt,name=column_id,json=columnId,proto3" json:"column_id,omitempty"`
	TargetType    string                 `protobuf:"bytes,2,opt,name=target_type,json=targetType,proto3" json:"target_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateConversionRequest) Reset() {
	*x = ValidateConversionRequest{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateConversionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateConversionRequest) ProtoMessage() {}

func (x *ValidateConversionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateConversionRequest.ProtoReflect.Descriptor instead.
func (*ValidateConversionRequest) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{17}
}

func (x *ValidateConversionRequest) GetColumnId() string {
	if x != nil {
		return x.ColumnId
	}
	return ""
}

func (x *ValidateConversionRequest) GetTargetType() string {
	if x != nil {
		return x.TargetType
	}
	return ""
}

type ValidateConversionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Feasible      bool                   `protobuf:"varint,1,opt,name=feasible,proto3" json:"feasible,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateConversionResponse) Reset() {
	*x = ValidateConversionResponse{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateConversionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateConversionResponse) ProtoMessage() {}

func (x *ValidateConversionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateConversionResponse.ProtoReflect.Descriptor instead.
func (*ValidateConversionResponse) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{18}
}

func (x *ValidateConversionResponse) GetFeasible() bool {
	if x != nil {
		return x.Feasible
	}
	return false
}

func (x *ValidateConversionResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ConvertColumnTypeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ColumnId      string                 `protobuf:"bytes,1,opt,name=column_id,json=columnId,proto3" json:"column_id,omitempty"`
	TargetType    string                 `protobuf:"bytes,2,opt,name=target_type,json=targetType,proto3" json:"target_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConvertColumnTypeRequest) Reset() {
	*x = ConvertColumnTypeRequest{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConvertColumnTypeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConvertColumnTypeRequest) ProtoMessage() {}

func (x *ConvertColumnTypeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConvertColumnTypeRequest.ProtoReflect.Descriptor instead.
func (*ConvertColumnTypeRequest) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{19}
}

func (x *ConvertColumnTypeRequest) GetColumnId() string {
	if x != nil {
		return x.ColumnId
	}
	return ""
}

func (x *ConvertColumnTypeRequest) GetTargetType() string {
	if x != nil {
		return x.TargetType
	}
	return ""
}

type ConvertColumnTypeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ProcessingJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConvertColumnTypeResponse) Reset() {
	*x = ConvertColumnTypeResponse{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConvertColumnTypeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConvertColumnTypeResponse) ProtoMessage() {}

func (x *ConvertColumnTypeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConvertColumnTypeResponse.ProtoReflect.Descriptor instead.
func (*ConvertColumnTypeResponse) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{20}
}

func (x *ConvertColumnTypeResponse) GetJob() *ProcessingJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type RenameColumnRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ColumnId      string                 `protobuf:"bytes,1,opt,name=column_id,json=columnId,proto3" json:"column_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RenameColumnRequest) Reset() {
	*x = RenameColumnRequest{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenameColumnRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenameColumnRequest) ProtoMessage() {}

func (x *RenameColumnRequest) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RenameColumnRequest.ProtoReflect.Descriptor instead.
func (*RenameColumnRequest) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{21}
}

func (x *RenameColumnRequest) GetColumnId() string {
	if x != nil {
		return x.ColumnId
	}
	return ""
}

func (x *RenameColumnRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type RenameColumnResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Column        *Column                `protobuf:"bytes,1,opt,name=column,proto3" json:"column,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RenameColumnResponse) Reset() {
	*x = RenameColumnResponse{}
	mi := &file_datasets_v1_datasets_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenameColumnResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenameColumnResponse) ProtoMessage() {}

func (x *RenameColumnResponse) ProtoReflect() protoreflect.Message {
	mi := &file_datasets_v1_datasets_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RenameColumnResponse.ProtoReflect.Descriptor instead.
func (*RenameColumnResponse) Descriptor() ([]byte, []int) {
	return file_datasets_v1_datasets_proto_rawDescGZIP(), []int{22}
}

func (x *RenameColumnResponse) GetColumn() *Column {
	if x != nil {
		return x.Column
	}
	return nil
}

var File_datasets_v1_datasets_proto protoreflect.FileDescriptor

const file_datasets_v1_datasets_proto_rawDesc = "" +
	"\n" +
	"\x1adatasets/v1/datasets.proto\x12\vdatasets.v1\"\xe4\x01\n" +
	"\aDataset\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1b\n" +
	"\tfile_type\x18\x03 \x01(\tR\bfileType\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"rows_count\x18\x05 \x01(\x03R\trowsCount\x12#\n" +
	"\rcolumns_count\x18\x06 \x01(\x05R\fcolumnsCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"\xd4\x01\n" +
	"\x06Column\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"dataset_id\x18\x02 \x01(\tR\tdatasetId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12#\n" +
	"\roriginal_name\x18\x04 \x01(\tR\foriginalName\x12\x1a\n" +
	"\bposition\x18\x05 \x01(\x05R\bposition\x12#\n" +
	"\rinferred_type\x18\x06 \x01(\tR\finferredType\x12!\n" +
	"\fcurrent_type\x18\a \x01(\tR\vcurrentType\"\x93\x01\n" +
	"\x03Row\x12\x1b\n" +
	"\trow_index\x18\x01 \x01(\x03R\browIndex\x124\n" +
	"\x06values\x18\x02 \x03(\v2\x1c.datasets.v1.Row.ValuesEntryR\x06values\x1a9\n" +
	"\vValuesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xd6\x02\n" +
	"\rProcessingJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"dataset_id\x18\x02 \x01(\tR\tdatasetId\x12\x1b\n" +
	"\tcolumn_id\x18\x03 \x01(\tR\bcolumnId\x12\x19\n" +
	"\bjob_type\x18\x04 \x01(\tR\ajobType\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1f\n" +
	"\vtarget_type\x18\x06 \x01(\tR\n" +
	"targetType\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\vresult_json\x18\b \x01(\tR\n" +
	"resultJson\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\n" +
	" \x01(\tR\tstartedAt\x12!\n" +
	"\fcompleted_at\x18\v \x01(\tR\vcompletedAt\"\x83\x01\n" +
	"\vJobProgress\x12\x14\n" +
	"\x05stage\x18\x01 \x01(\tR\x05stage\x12%\n" +
	"\x0eprocessed_rows\x18\x02 \x01(\x03R\rprocessedRows\x12\x1d\n" +
	"\n" +
	"total_rows\x18\x03 \x01(\x03R\ttotalRows\x12\x18\n" +
	"\apercent\x18\x04 \x01(\x01R\apercent\">\n" +
	"\x14UploadDatasetRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"u\n" +
	"\x15UploadDatasetResponse\x12.\n" +
	"\adataset\x18\x01 \x01(\v2\x14.datasets.v1.DatasetR\adataset\x12,\n" +
	"\x03job\x18\x02 \x01(\v2\x1a.datasets.v1.ProcessingJobR\x03job\"c\n" +
	"\x11GetDatasetRequest\x12\x1d\n" +
	"\n" +
	"dataset_id\x18\x01 \x01(\tR\tdatasetId\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"\xb8\x01\n" +
	"\x12GetDatasetResponse\x12.\n" +
	"\adataset\x18\x01 \x01(\v2\x14.datasets.v1.DatasetR\adataset\x12-\n" +
	"\acolumns\x18\x02 \x03(\v2\x13.datasets.v1.ColumnR\acolumns\x12$\n" +
	"\x04rows\x18\x03 \x03(\v2\x10.datasets.v1.RowR\x04rows\x12\x1d\n" +
	"\n" +
	"total_rows\x18\x04 \x01(\x03R\ttotalRows\"F\n" +
	"\x13ListDatasetsRequest\x12\x12\n" +
	"\x04page\x18\x01 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\"^\n" +
	"\x14ListDatasetsResponse\x120\n" +
	"\bdatasets\x18\x01 \x03(\v2\x14.datasets.v1.DatasetR\bdatasets\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x03R\x05total\",\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"z\n" +
	"\x14GetJobStatusResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.datasets.v1.ProcessingJobR\x03job\x124\n" +
	"\bprogress\x18\x02 \x01(\v2\x18.datasets.v1.JobProgressR\bprogress\"5\n" +
	"\x14DeleteDatasetRequest\x12\x1d\n" +
	"\n" +
	"dataset_id\x18\x01 \x01(\tR\tdatasetId\"\x17\n" +
	"\x15DeleteDatasetResponse\"M\n" +
	"\x14ExportDatasetRequest\x12\x1d\n" +
	"\n" +
	"dataset_id\x18\x01 \x01(\tR\tdatasetId\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\"E\n" +
	"\x15ExportDatasetResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.datasets.v1.ProcessingJobR\x03job\"Y\n" +
	"\x19ValidateConversionRequest\x12\x1b\n" +
	"\tcolumn_id\x18\x01 \x01(\tR\bcolumnId\x12\x1f\n" +
	"\vtarget_type\x18\x02 \x01(\tR\n" +
	"targetType\"P\n" +
	"\x1aValidateConversionResponse\x12\x1a\n" +
	"\bfeasible\x18\x01 \x01(\bR\bfeasible\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"X\n" +
	"\x18ConvertColumnTypeRequest\x12\x1b\n" +
	"\tcolumn_id\x18\x01 \x01(\tR\bcolumnId\x12\x1f\n" +
	"\vtarget_type\x18\x02 \x01(\tR\n" +
	"targetType\"I\n" +
	"\x19ConvertColumnTypeResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.datasets.v1.ProcessingJobR\x03job\"F\n" +
	"\x13RenameColumnRequest\x12\x1b\n" +
	"\tcolumn_id\x18\x01 \x01(\tR\bcolumnId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"C\n" +
	"\x14RenameColumnResponse\x12+\n" +
	"\x06column\x18\x01 \x01(\v2\x13.datasets.v1.ColumnR\x06column2\x92\x04\n" +
	"\x0fDatasetsService\x12V\n" +
	"\rUploadDataset\x12!.datasets.v1.UploadDatasetRequest\x1a\".datasets.v1.UploadDatasetResponse\x12M\n" +
	"\n" +
	"GetDataset\x12\x1e.datasets.v1.GetDatasetRequest\x1a\x1f.datasets.v1.GetDatasetResponse\x12S\n" +
	"\fListDatasets\x12 .datasets.v1.ListDatasetsRequest\x1a!.datasets.v1.ListDatasetsResponse\x12S\n" +
	"\fGetJobStatus\x12 .datasets.v1.GetJobStatusRequest\x1a!.datasets.v1.GetJobStatusResponse\x12V\n" +
	"\rDeleteDataset\x12!.datasets.v1.DeleteDatasetRequest\x1a\".datasets.v1.DeleteDatasetResponse\x12V\n" +
	"\rExportDataset\x12!.datasets.v1.ExportDatasetRequest\x1a\".datasets.v1.ExportDatasetResponse2\xb0\x02\n" +
	"\x0eColumnsService\x12e\n" +
	"\x12ValidateConversion\x12&.datasets.v1.ValidateConversionRequest\x1a'.datasets.v1.ValidateConversionResponse\x12b\n" +
	"\x11ConvertColumnType\x12%.datasets.v1.ConvertColumnTypeRequest\x1a&.datasets.v1.ConvertColumnTypeResponse\x12S\n" +
	"\fRenameColumn\x12 .datasets.v1.RenameColumnRequest\x1a!.datasets.v1.RenameColumnResponseB:Z8github.com/data-alchemy/backend/gen/proto/datasets/v1;v1b\x06proto3"

var (
	file_datasets_v1_datasets_proto_rawDescOnce sync.Once
	file_datasets_v1_datasets_proto_rawDescData []byte
)

func file_datasets_v1_datasets_proto_rawDescGZIP() []byte {
	file_datasets_v1_datasets_proto_rawDescOnce.Do(func() {
		file_datasets_v1_datasets_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_datasets_v1_datasets_proto_rawDesc), len(file_datasets_v1_datasets_proto_rawDesc)))
	})
	return file_datasets_v1_datasets_proto_rawDescData
}

var file_datasets_v1_datasets_proto_msgTypes = make([]protoimpl.MessageInfo, 24)
var file_datasets_v1_datasets_proto_goTypes = []any{
	(*Dataset)(nil),                    // 0: datasets.v1.Dataset
	(*Column)(nil),                     // 1: datasets.v1.Column
	(*Row)(nil),                        // 2: datasets.v1.Row
	(*ProcessingJob)(nil),              // 3: datasets.v1.ProcessingJob
	(*JobProgress)(nil),                // 4: datasets.v1.JobProgress
	(*UploadDatasetRequest)(nil),       // 5: datasets.v1.UploadDatasetRequest
	(*UploadDatasetResponse)(nil),      // 6: datasets.v1.UploadDatasetResponse
	(*GetDatasetRequest)(nil),          // 7: datasets.v1.GetDatasetRequest
	(*GetDatasetResponse)(nil),         // 8: datasets.v1.GetDatasetResponse
	(*ListDatasetsRequest)(nil),        // 9: datasets.v1.ListDatasetsRequest
	(*ListDatasetsResponse)(nil),       // 10: datasets.v1.ListDatasetsResponse
	(*GetJobStatusRequest)(nil),        // 11: datasets.v1.GetJobStatusRequest
	(*GetJobStatusResponse)(nil),       // 12: datasets.v1.GetJobStatusResponse
	(*DeleteDatasetRequest)(nil),       // 13: datasets.v1.DeleteDatasetRequest
	(*DeleteDatasetResponse)(nil),      // 14: datasets.v1.DeleteDatasetResponse
	(*ExportDatasetRequest)(nil),       // 15: datasets.v1.ExportDatasetRequest
	(*ExportDatasetResponse)(nil),      // 16: datasets.v1.ExportDatasetResponse
	(*ValidateConversionRequest)(nil),  // 17: datasets.v1.ValidateConversionRequest
	(*ValidateConversionResponse)(nil), // 18: datasets.v1.ValidateConversionResponse
	(*ConvertColumnTypeRequest)(nil),   // 19: datasets.v1.ConvertColumnTypeRequest
	(*ConvertColumnTypeResponse)(nil),  // 20: datasets.v1.ConvertColumnTypeResponse
	(*RenameColumnRequest)(nil),        // 21: datasets.v1.RenameColumnRequest
	(*RenameColumnResponse)(nil),       // 22: datasets.v1.RenameColumnResponse
	nil,                                // 23: datasets.v1.Row.ValuesEntry
}
var file_datasets_v1_datasets_proto_depIdxs = []int32{
	23, // 0: datasets.v1.Row.values:type_name -> datasets.v1.Row.ValuesEntry
	0,  // 1: datasets.v1.UploadDatasetResponse.dataset:type_name -> datasets.v1.Dataset
	3,  // 2: datasets.v1.UploadDatasetResponse.job:type_name -> datasets.v1.ProcessingJob
	0,  // 3: datasets.v1.GetDatasetResponse.dataset:type_name -> datasets.v1.Dataset
	1,  // 4: datasets.v1.GetDatasetResponse.columns:type_name -> datasets.v1.Column
	2,  // 5: datasets.v1.GetDatasetResponse.rows:type_name -> datasets.v1.Row
	0,  // 6: datasets.v1.ListDatasetsResponse.datasets:type_name -> datasets.v1.Dataset
	3,  // 7: datasets.v1.GetJobStatusResponse.job:type_name -> datasets.v1.ProcessingJob
	4,  // 8: datasets.v1.GetJobStatusResponse.progress:type_name -> datasets.v1.JobProgress
	3,  // 9: datasets.v1.ExportDatasetResponse.job:type_name -> datasets.v1.ProcessingJob
	3,  // 10: datasets.v1.ConvertColumnTypeResponse.job:type_name -> datasets.v1.ProcessingJob
	1,  // 11: datasets.v1.RenameColumnResponse.column:type_name -> datasets.v1.Column
	5,  // 12: datasets.v1.DatasetsService.UploadDataset:input_type -> datasets.v1.UploadDatasetRequest
	7,  // 13: datasets.v1.DatasetsService.GetDataset:input_type -> datasets.v1.GetDatasetRequest
	9,  // 14: datasets.v1.DatasetsService.ListDatasets:input_type -> datasets.v1.ListDatasetsRequest
	11, // 15: datasets.v1.DatasetsService.GetJobStatus:input_type -> datasets.v1.GetJobStatusRequest
	13, // 16: datasets.v1.DatasetsService.DeleteDataset:input_type -> datasets.v1.DeleteDatasetRequest
	15, // 17: datasets.v1.DatasetsService.ExportDataset:input_type -> datasets.v1.ExportDatasetRequest
	17, // 18: datasets.v1.ColumnsService.ValidateConversion:input_type -> datasets.v1.ValidateConversionRequest
	19, // 19: datasets.v1.ColumnsService.ConvertColumnType:input_type -> datasets.v1.ConvertColumnTypeRequest
	21, // 20: datasets.v1.ColumnsService.RenameColumn:input_type -> datasets.v1.RenameColumnRequest
	6,  // 21: datasets.v1.DatasetsService.UploadDataset:output_type -> datasets.v1.UploadDatasetResponse
	8,  // 22: datasets.v1.DatasetsService.GetDataset:output_type -> datasets.v1.GetDatasetResponse
	10, // 23: datasets.v1.DatasetsService.ListDatasets:output_type -> datasets.v1.ListDatasetsResponse
	12, // 24: datasets.v1.DatasetsService.GetJobStatus:output_type -> datasets.v1.GetJobStatusResponse
	14, // 25: datasets.v1.DatasetsService.DeleteDataset:output_type -> datasets.v1.DeleteDatasetResponse
	16, // 26: datasets.v1.DatasetsService.ExportDataset:output_type -> datasets.v1.ExportDatasetResponse
	18, // 27: datasets.v1.ColumnsService.ValidateConversion:output_type -> datasets.v1.ValidateConversionResponse
	20, // 28: datasets.v1.ColumnsService.ConvertColumnType:output_type -> datasets.v1.ConvertColumnTypeResponse
	22, // 29: datasets.v1.ColumnsService.RenameColumn:output_type -> datasets.v1.RenameColumnResponse
	21, // [21:30] is the sub-list for method output_type
	12, // [12:21] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_datasets_v1_datasets_proto_init() }
func file_datasets_v1_datasets_proto_init() {
	if File_datasets_v1_datasets_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_datasets_v1_datasets_proto_rawDesc), len(file_datasets_v1_datasets_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   24,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_datasets_v1_datasets_proto_goTypes,
		DependencyIndexes: file_datasets_v1_datasets_proto_depIdxs,
		MessageInfos:      file_datasets_v1_datasets_proto_msgTypes,
	}.Build()
	File_datasets_v1_datasets_proto = out.File
	file_datasets_v1_datasets_proto_goTypes = nil
	file_datasets_v1_datasets_proto_depIdxs = nil
}
