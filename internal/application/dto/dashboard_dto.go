package dto

// NamedCountDTO un par (nombre, conteo) para los rankings del resumen.
type NamedCountDTO struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DashboardSummaryDTO resumen agregado sobre los activos activos.
//
// Invariante: CountInWarehouse + CountInUnits == TotalAssets.
// ByCategory y ByUnit vienen ordenados por conteo descendente y, a igual
// conteo, por nombre ascendente (orden determinista).
type DashboardSummaryDTO struct {
	TotalAssets      int64            `json:"total_assets"`
	CountInWarehouse int64            `json:"count_in_warehouse"`
	CountInUnits     int64            `json:"count_in_units"`
	ByCondition      map[string]int64 `json:"counts_by_condition"`
	ByCategory       []NamedCountDTO  `json:"counts_by_category"`
	ByUnit           []NamedCountDTO  `json:"counts_by_unit"`
}
