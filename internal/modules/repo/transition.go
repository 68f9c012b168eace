package repo

import (
	"github.com/google/uuid"
	"github.com/sitegenie/sitegenie/internal/modules/model"
	"gorm.io/gorm"
)

// transition moves a job row into a terminal status only while it is still
// active. ok is false when the row is gone or already terminal, which makes
// the terminal write idempotent.
func transition(tx *gorm.DB, row interface{}, id uuid.UUID, column string, next model.JobStatus, fields map[string]interface{}) (bool, error) {
	if !next.IsTerminal() {
		_, err := model.JobStatusPending.Transition(next)
		return false, err
	}
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates[column] = next

	res := tx.Model(row).
		Where("id = ? AND "+column+" IN ?", id, model.ActiveStatusValues()).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
