package repository

// SequenceRepository define el puerto del consecutivo de facturación.
// El contador es un entero monotónico persistido; NextValue lo incrementa y
// devuelve el nuevo valor en una sola operación atómica (la implementación
// serializa el ciclo leer-incrementar-escribir, ver localstore).
type SequenceRepository interface {
	NextValue() (int64, error)
	// Current devuelve el último valor asignado sin consumir uno nuevo
	// (0 si nunca se ha facturado).
	Current() (int64, error)
}
