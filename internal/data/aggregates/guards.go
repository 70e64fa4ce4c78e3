package aggregates

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/storefront-backend/internal/platform/apierr"
	"github.com/yungbote/storefront-backend/internal/platform/dbctx"
)

// ReferenceGuard deletes a row only while no row of RefTable points at it.
// The existence check and the delete are one statement, so a reference
// inserted concurrently either blocks the delete or fails its own FK check.
type ReferenceGuard struct {
	Op string
	// Model is a pointer to the zero value of the guarded type, e.g. &store.Product{}.
	Model     interface{}
	RefTable  string
	RefColumn string
	// Message is returned to the client when references exist.
	Message string
}

// Delete must run inside a transaction so the follow-up existence probe sees
// the same snapshot as the conditional delete.
func (g ReferenceGuard) Delete(dbc dbctx.Context, id uint) error {
	if dbc.Tx == nil {
		return apierr.New(apierr.CodeInternal, g.Op, "reference guard requires a transaction", nil)
	}
	if id == 0 {
		return apierr.NotFound(g.Op)
	}
	tx := dbc.DB(nil)

	refs := tx.Session(&gorm.Session{NewDB: true}).
		Table(g.RefTable).
		Select("1").
		Where(fmt.Sprintf("%s = ?", strings.TrimSpace(g.RefColumn)), id)

	res := tx.Where("id = ?", id).
		Where("NOT EXISTS (?)", refs).
		Delete(g.Model)
	if res.Error != nil {
		if IsForeignKeyViolation(res.Error) {
			return apierr.New(apierr.CodeConflict, g.Op, g.Message, res.Error)
		}
		return MapError(g.Op, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var n int64
	if err := tx.Session(&gorm.Session{NewDB: true}).
		Model(g.Model).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return MapError(g.Op, err)
	}
	if n == 0 {
		return apierr.NotFound(g.Op)
	}
	return apierr.Conflict(g.Op, g.Message)
}
