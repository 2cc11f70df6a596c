package model

import "time"

const (
	TableName  = "lodges"
	EntityName = "lodge"

	FieldLodgeID = "lodge_id"
	FieldName    = "name"
	FieldActive  = "is_active"
)

// Lodge is the tenant root. Lodge accounts are managed outside this service.
type Lodge struct {
	LodgeID   int64      `db:"lodge_id"`
	Name      string     `db:"name"`
	Phone     string     `db:"phone"`
	Email     string     `db:"email"`
	Address   string     `db:"address"`
	Active    bool       `db:"is_active"`
	DueDate   *time.Time `db:"due_date"`
	CreatedAt time.Time  `db:"created_at"`
}
