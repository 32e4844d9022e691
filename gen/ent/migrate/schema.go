// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DatasetsColumns holds the columns for the "datasets" table.
	DatasetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "file_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "rows_count", Type: field.TypeInt64, Nullable: true},
		{Name: "columns_count", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DatasetsTable holds the schema information for the "datasets" table.
	DatasetsTable = &schema.Table{
		Name:       "datasets",
		Columns:    DatasetsColumns,
		PrimaryKey: []*schema.Column{DatasetsColumns[0]},
	}
	// DatasetColumnsColumns holds the columns for the "dataset_columns" table.
	DatasetColumnsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "original_name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "inferred_type", Type: field.TypeString, Default: "TEXT"},
		{Name: "current_type", Type: field.TypeString, Default: "TEXT"},
		{Name: "dataset_id", Type: field.TypeUUID},
	}
	// DatasetColumnsTable holds the schema information for the "dataset_columns" table.
	DatasetColumnsTable = &schema.Table{
		Name:       "dataset_columns",
		Columns:    DatasetColumnsColumns,
		PrimaryKey: []*schema.Column{DatasetColumnsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dataset_columns_datasets_columns",
				Columns:    []*schema.Column{DatasetColumnsColumns[6]},
				RefColumns: []*schema.Column{DatasetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "datasetcolumn_dataset_id_name",
				Unique:  true,
				Columns: []*schema.Column{DatasetColumnsColumns[6], DatasetColumnsColumns[1]},
			},
			{
				Name:    "datasetcolumn_dataset_id_position",
				Unique:  true,
				Columns: []*schema.Column{DatasetColumnsColumns[6], DatasetColumnsColumns[3]},
			},
		},
	}
	// DatasetRowsColumns holds the columns for the "dataset_rows" table.
	DatasetRowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "row_index", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "dataset_id", Type: field.TypeUUID},
	}
	// DatasetRowsTable holds the schema information for the "dataset_rows" table.
	DatasetRowsTable = &schema.Table{
		Name:       "dataset_rows",
		Columns:    DatasetRowsColumns,
		PrimaryKey: []*schema.Column{DatasetRowsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dataset_rows_datasets_rows",
				Columns:    []*schema.Column{DatasetRowsColumns[3]},
				RefColumns: []*schema.Column{DatasetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "datasetrow_dataset_id_row_index",
				Unique:  true,
				Columns: []*schema.Column{DatasetRowsColumns[3], DatasetRowsColumns[1]},
			},
		},
	}
	// ProcessingJobsColumns holds the columns for the "processing_jobs" table.
	ProcessingJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "column_id", Type: field.TypeUUID, Nullable: true},
		{Name: "job_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "target_type", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "dataset_id", Type: field.TypeUUID},
	}
	// ProcessingJobsTable holds the schema information for the "processing_jobs" table.
	ProcessingJobsTable = &schema.Table{
		Name:       "processing_jobs",
		Columns:    ProcessingJobsColumns,
		PrimaryKey: []*schema.Column{ProcessingJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_jobs_datasets_jobs",
				Columns:    []*schema.Column{ProcessingJobsColumns[10]},
				RefColumns: []*schema.Column{DatasetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processingjob_dataset_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[10], ProcessingJobsColumns[3], ProcessingJobsColumns[7]},
			},
		},
	}
	// RowValuesColumns holds the columns for the "row_values" table.
	RowValuesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "value", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "column_id", Type: field.TypeUUID},
		{Name: "row_id", Type: field.TypeUUID},
	}
	// RowValuesTable holds the schema information for the "row_values" table.
	RowValuesTable = &schema.Table{
		Name:       "row_values",
		Columns:    RowValuesColumns,
		PrimaryKey: []*schema.Column{RowValuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "row_values_dataset_columns_row_values",
				Columns:    []*schema.Column{RowValuesColumns[2]},
				RefColumns: []*schema.Column{DatasetColumnsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "row_values_dataset_rows_values",
				Columns:    []*schema.Column{RowValuesColumns[3]},
				RefColumns: []*schema.Column{DatasetRowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "rowvalue_row_id_column_id",
				Unique:  true,
				Columns: []*schema.Column{RowValuesColumns[3], RowValuesColumns[2]},
			},
			{
				Name:    "rowvalue_column_id",
				Unique:  false,
				Columns: []*schema.Column{RowValuesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DatasetsTable,
		DatasetColumnsTable,
		DatasetRowsTable,
		ProcessingJobsTable,
		RowValuesTable,
	}
)

func init() {
	DatasetsTable.Annotation = &entsql.Annotation{
		Table: "datasets",
	}
	DatasetColumnsTable.ForeignKeys[0].RefTable = DatasetsTable
	DatasetColumnsTable.Annotation = &entsql.Annotation{
		Table: "dataset_columns",
	}
	DatasetRowsTable.ForeignKeys[0].RefTable = DatasetsTable
	DatasetRowsTable.Annotation = &entsql.Annotation{
		Table: "dataset_rows",
	}
	ProcessingJobsTable.ForeignKeys[0].RefTable = DatasetsTable
	ProcessingJobsTable.Annotation = &entsql.Annotation{
		Table: "processing_jobs",
	}
	RowValuesTable.ForeignKeys[0].RefTable = DatasetColumnsTable
	RowValuesTable.ForeignKeys[1].RefTable = DatasetRowsTable
	RowValuesTable.Annotation = &entsql.Annotation{
		Table: "row_values",
	}
}
