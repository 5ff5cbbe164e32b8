package entity

import "time"

// Budget representa un presupuesto de obra: el documento dueño de las
// partidas. Solo interesa aquí como portador del candado de edición; el resto
// del expediente (cliente, obra, totales) lo maneja la capa administrativa.
type Budget struct {
	ID        string
	Name      string
	ClientID  string
	Region    string
	Status    string // ver budget.Status
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
