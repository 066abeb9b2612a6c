package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")

	// ErrDuplicateInstance is returned by InsertInstance when the unique
	// (series, due date) constraint rejects the row. The instance already
	// exists, materialized by a concurrent pass.
	ErrDuplicateInstance = errors.New("instance already exists for this series and due date")
)
