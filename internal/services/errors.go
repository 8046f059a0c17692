package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"tripplanner/pkg/utils"
)

// storeError passes domain errors through and logs anything else before hiding it
// behind ErrDatabaseError.
func storeError(log *zap.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	if utils.IsDomainError(err) {
		return err
	}
	log.Error("store failure", zap.String("op", op), zap.Error(err))
	return utils.DatabaseError(err)
}

// conflictOr maps a unique violation reported by the driver to conflict.
func conflictOr(err, conflict error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict
	}
	return err
}
