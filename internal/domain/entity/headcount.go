package entity

// HeadcountRow cantidad de funcionarios de un cargo (reporte agregado).
type HeadcountRow struct {
	RoleID   int64
	RoleName string
	Count    int64
}
