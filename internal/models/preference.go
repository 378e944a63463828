package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PreferenceDoc guarda los gustos de un usuario. No hay unicidad por userId:
// pueden existir varios documentos y siempre se usa el primero encontrado.
type PreferenceDoc struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    int                `json:"userId" bson:"userId"`
	Industry  string             `json:"industry" bson:"industry"`
	Genres    []string           `json:"genres" bson:"genres"`
	LastMovie string             `json:"lastMovie" bson:"lastMovie"`
}
