package services

import "errors"

// ErrFineTypeInUse rejects deletion of a fine type with fines attached.
var ErrFineTypeInUse = errors.New("fine type has fines attached")

// DeleteFineType removes a fine type if nothing references it. When fines
// exist the count is returned along with ErrFineTypeInUse.
func DeleteFineType(store Store, fineTypeID string) (int, error) {
	count, err := store.CountFinesForType(fineTypeID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return count, ErrFineTypeInUse
	}
	return 0, store.DeleteFineType(fineTypeID)
}
