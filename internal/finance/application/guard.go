package application

import (
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

// authorize is the single ownership gate applied before every entity read,
// update, or delete. Ownership mismatch deliberately collapses into
// ErrNotFound so a non-owner cannot distinguish "not yours" from "does not
// exist".
func authorize(callerID, ownerID string) error {
	if callerID == "" {
		return financeErrors.ErrUnauthenticated
	}
	if ownerID != callerID {
		return financeErrors.ErrNotFound
	}
	return nil
}

// requireCaller guards operations that have no target entity yet, such as
// list and create.
func requireCaller(callerID string) error {
	if callerID == "" {
		return financeErrors.ErrUnauthenticated
	}
	return nil
}
