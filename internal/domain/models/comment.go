package models

import "time"

// Comment representa un comentario en alguno de los dos hilos de una PR:
// el hilo de review (sobre el diff) o el hilo de discusión general.
// El tipo de hilo no se guarda: queda determinado por la operación que lo
// devolvió. Invariante: UpdatedAt >= CreatedAt; si difieren, el comentario
// fue editado después de crearse.
type Comment struct {
	Body      string
	Author    User
	CreatedAt time.Time
	UpdatedAt time.Time
}
