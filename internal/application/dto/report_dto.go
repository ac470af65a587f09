package dto

// HeadcountRow fila del reporte de funcionarios por cargo.
type HeadcountRow struct {
	RoleID   int64  `json:"role_id"`
	RoleName string `json:"role"`
	Count    int64  `json:"count"`
}
