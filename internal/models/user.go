package models

// UserDoc es el documento de la colección users.
// Los nombres bson replican el esquema original del backend en Express.
type UserDoc struct {
	UserID    int    `json:"userId" bson:"userId"`
	FirstName string `json:"firstname" bson:"firstname"`
	LastName  string `json:"lastname" bson:"lastname"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"password" bson:"password"`
	MobileNo  string `json:"mobileno" bson:"mobileno"`
	Location  string `json:"location" bson:"location"`
}
