package models

// CounterDoc mantiene la secuencia monotónica que asigna los userId.
// El _id es el nombre de la secuencia ("userId").
type CounterDoc struct {
	ID            string `bson:"_id"`
	SequenceValue int    `bson:"sequence_value"`
}
