package dto

// CreateRoleRequest entrada para crear un cargo. Todos los campos son obligatorios.
type CreateRoleRequest struct {
	Name               string `json:"name" validate:"required,notblank,max=100"`
	CanManageInventory *YesNo `json:"can_manage_inventory" validate:"required"`
	CanSell            *YesNo `json:"can_sell" validate:"required"`
}

// UpdateRoleRequest entrada para actualizar un cargo. nil = mantener el valor actual.
type UpdateRoleRequest struct {
	Name               *string `json:"name" validate:"omitnil,notblank,max=100"`
	CanManageInventory *YesNo  `json:"can_manage_inventory"`
	CanSell            *YesNo  `json:"can_sell"`
}

// RoleResponse salida de un cargo con los permisos como Sim/Não.
type RoleResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	CanManageInventory string `json:"can_manage_inventory"`
	CanSell            string `json:"can_sell"`
}
