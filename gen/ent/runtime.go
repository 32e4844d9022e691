// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/data-alchemy/backend/db/ent/schema"
	"github.com/data-alchemy/backend/gen/ent/dataset"
	"github.com/data-alchemy/backend/gen/ent/datasetcolumn"
	"github.com/data-alchemy/backend/gen/ent/datasetrow"
	"github.com/data-alchemy/backend/gen/ent/processingjob"
	"github.com/data-alchemy/backend/gen/ent/rowvalue"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	datasetFields := schema.Dataset{}.Fields()
	_ = datasetFields
	// datasetDescName is the schema descriptor for name field.
	datasetDescName := datasetFields[1].Descriptor()
	// dataset.NameValidator is a validator for the "name" field. It is called by the builders before save.
	dataset.NameValidator = datasetDescName.Validators[0].(func(string) error)
	// datasetDescFilePath is the schema descriptor for file_path field.
	datasetDescFilePath := datasetFields[2].Descriptor()
	// dataset.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	dataset.FilePathValidator = datasetDescFilePath.Validators[0].(func(string) error)
	// datasetDescFileType is the schema descriptor for file_type field.
	datasetDescFileType := datasetFields[3].Descriptor()
	// dataset.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	dataset.FileTypeValidator = func() func(string) error {
		validators := datasetDescFileType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_type string) error {
			for _, fn := range fns {
				if err := fn(file_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// datasetDescStatus is the schema descriptor for status field.
	datasetDescStatus := datasetFields[4].Descriptor()
	// dataset.DefaultStatus holds the default value on creation for the status field.
	dataset.DefaultStatus = datasetDescStatus.Default.(string)
	// dataset.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	dataset.StatusValidator = datasetDescStatus.Validators[0].(func(string) error)
	// datasetDescCreatedAt is the schema descriptor for created_at field.
	datasetDescCreatedAt := datasetFields[7].Descriptor()
	// dataset.DefaultCreatedAt holds the default value on creation for the created_at field.
	dataset.DefaultCreatedAt = datasetDescCreatedAt.Default.(func() time.Time)
	// datasetDescUpdatedAt is the schema descriptor for updated_at field.
	datasetDescUpdatedAt := datasetFields[8].Descriptor()
	// dataset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dataset.DefaultUpdatedAt = datasetDescUpdatedAt.Default.(func() time.Time)
	// dataset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dataset.UpdateDefaultUpdatedAt = datasetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// datasetDescID is the schema descriptor for id field.
	datasetDescID := datasetFields[0].Descriptor()
	// dataset.DefaultID holds the default value on creation for the id field.
	dataset.DefaultID = datasetDescID.Default.(func() uuid.UUID)
	datasetcolumnFields := schema.DatasetColumn{}.Fields()
	_ = datasetcolumnFields
	// datasetcolumnDescName is the schema descriptor for name field.
	datasetcolumnDescName := datasetcolumnFields[2].Descriptor()
	// datasetcolumn.NameValidator is a validator for the "name" field. It is called by the builders before save.
	datasetcolumn.NameValidator = datasetcolumnDescName.Validators[0].(func(string) error)
	// datasetcolumnDescOriginalName is the schema descriptor for original_name field.
	datasetcolumnDescOriginalName := datasetcolumnFields[3].Descriptor()
	// datasetcolumn.OriginalNameValidator is a validator for the "original_name" field. It is called by the builders before save.
	datasetcolumn.OriginalNameValidator = datasetcolumnDescOriginalName.Validators[0].(func(string) error)
	// datasetcolumnDescPosition is the schema descriptor for position field.
	datasetcolumnDescPosition := datasetcolumnFields[4].Descriptor()
	// datasetcolumn.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	datasetcolumn.PositionValidator = datasetcolumnDescPosition.Validators[0].(func(int) error)
	// datasetcolumnDescInferredType is the schema descriptor for inferred_type field.
	datasetcolumnDescInferredType := datasetcolumnFields[5].Descriptor()
	// datasetcolumn.DefaultInferredType holds the default value on creation for the inferred_type field.
	datasetcolumn.DefaultInferredType = datasetcolumnDescInferredType.Default.(string)
	// datasetcolumn.InferredTypeValidator is a validator for the "inferred_type" field. It is called by the builders before save.
	datasetcolumn.InferredTypeValidator = datasetcolumnDescInferredType.Validators[0].(func(string) error)
	// datasetcolumnDescCurrentType is the schema descriptor for current_type field.
	datasetcolumnDescCurrentType := datasetcolumnFields[6].Descriptor()
	// datasetcolumn.DefaultCurrentType holds the default value on creation for the current_type field.
	datasetcolumn.DefaultCurrentType = datasetcolumnDescCurrentType.Default.(string)
	// datasetcolumn.CurrentTypeValidator is a validator for the "current_type" field. It is called by the builders before save.
	datasetcolumn.CurrentTypeValidator = datasetcolumnDescCurrentType.Validators[0].(func(string) error)
	// datasetcolumnDescID is the schema descriptor for id field.
	datasetcolumnDescID := datasetcolumnFields[0].Descriptor()
	// datasetcolumn.DefaultID holds the default value on creation for the id field.
	datasetcolumn.DefaultID = datasetcolumnDescID.Default.(func() uuid.UUID)
	datasetrowFields := schema.DatasetRow{}.Fields()
	_ = datasetrowFields
	// datasetrowDescRowIndex is the schema descriptor for row_index field.
	datasetrowDescRowIndex := datasetrowFields[2].Descriptor()
	// datasetrow.RowIndexValidator is a validator for the "row_index" field. It is called by the builders before save.
	datasetrow.RowIndexValidator = datasetrowDescRowIndex.Validators[0].(func(int64) error)
	// datasetrowDescCreatedAt is the schema descriptor for created_at field.
	datasetrowDescCreatedAt := datasetrowFields[3].Descriptor()
	// datasetrow.DefaultCreatedAt holds the default value on creation for the created_at field.
	datasetrow.DefaultCreatedAt = datasetrowDescCreatedAt.Default.(func() time.Time)
	// datasetrowDescID is the schema descriptor for id field.
	datasetrowDescID := datasetrowFields[0].Descriptor()
	// datasetrow.DefaultID holds the default value on creation for the id field.
	datasetrow.DefaultID = datasetrowDescID.Default.(func() uuid.UUID)
	processingjobFields := schema.ProcessingJob{}.Fields()
	_ = processingjobFields
	// processingjobDescJobType is the schema descriptor for job_type field.
	processingjobDescJobType := processingjobFields[3].Descriptor()
	// processingjob.JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	processingjob.JobTypeValidator = func() func(string) error {
		validators := processingjobDescJobType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(job_type string) error {
			for _, fn := range fns {
				if err := fn(job_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingjobDescStatus is the schema descriptor for status field.
	processingjobDescStatus := processingjobFields[4].Descriptor()
	// processingjob.DefaultStatus holds the default value on creation for the status field.
	processingjob.DefaultStatus = processingjobDescStatus.Default.(string)
	// processingjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processingjob.StatusValidator = processingjobDescStatus.Validators[0].(func(string) error)
	// processingjobDescCreatedAt is the schema descriptor for created_at field.
	processingjobDescCreatedAt := processingjobFields[8].Descriptor()
	// processingjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	processingjob.DefaultCreatedAt = processingjobDescCreatedAt.Default.(func() time.Time)
	// processingjobDescID is the schema descriptor for id field.
	processingjobDescID := processingjobFields[0].Descriptor()
	// processingjob.DefaultID holds the default value on creation for the id field.
	processingjob.DefaultID = processingjobDescID.Default.(func() uuid.UUID)
	rowvalueFields := schema.RowValue{}.Fields()
	_ = rowvalueFields
	// rowvalueDescID is the schema descriptor for id field.
	rowvalueDescID := rowvalueFields[0].Descriptor()
	// rowvalue.DefaultID holds the default value on creation for the id field.
	rowvalue.DefaultID = rowvalueDescID.Default.(func() uuid.UUID)
}
