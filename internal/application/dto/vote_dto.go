package dto

import "time"

// CastVoteRequest entrada para votar. El empleado se deriva del token,
// nunca del cuerpo: un cliente no puede votar a nombre de otro.
type CastVoteRequest struct {
	MenuID string `json:"menu_id"`
}

// VoteResponse salida de un voto registrado.
type VoteResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	MenuID     string    `json:"menu_id"`
	CreatedAt  time.Time `json:"created_at"`
}
