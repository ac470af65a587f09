package entity

// Role representa un cargo (función laboral) con sus dos permisos.
type Role struct {
	ID                 int64
	Name               string
	CanManageInventory bool
	CanSell            bool
}
