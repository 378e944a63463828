package service

import (
	"context"

	"github.com/Disu2004/CineSense/internal/apperr"
	"github.com/Disu2004/CineSense/internal/models"
	"github.com/Disu2004/CineSense/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type AuthService struct {
	users   UserStore
	counter UserIDSource
}

func NewAuthService(users UserStore, counter UserIDSource) *AuthService {
	return &AuthService{users: users, counter: counter}
}

type RegisterUserData struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	MobileNo  string
	Location  string
}

type UpdateUserData struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	MobileNo  *string
	Location  *string
}

// ================== REGISTER & LOGIN ==================

// Register crea un usuario nuevo. Primero chequea que ni el email ni el
// celular estén tomados; el mensaje de conflicto dice cuál de los dos fue.
// El userId sale del contador atómico.
func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (int, error) {
	existing, err := s.users.FindByEmailOrPhone(ctx, data.Email, data.MobileNo)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindStore, "buscando duplicados", err)
	}
	if existing != nil {
		if existing.Email == data.Email {
			return 0, apperr.New(apperr.KindConflict, "Email already registered")
		}
		return 0, apperr.New(apperr.KindConflict, "Mobile number already registered")
	}

	userID, err := s.counter.Next(ctx, repository.SeqUserID)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindStore, "asignando userId", err)
	}

	u := &models.UserDoc{
		UserID:    userID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Password:  data.Password,
		MobileNo:  data.MobileNo,
		Location:  data.Location,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return 0, apperr.Wrap(apperr.KindStore, "insertando usuario", err)
	}
	return userID, nil
}

// Login compara la contraseña en texto plano, igual que el sistema original.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.UserDoc, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "buscando usuario", err)
	}
	if u == nil || u.Password != password {
		return nil, apperr.New(apperr.KindUnauthorized, "Invalid email or password")
	}
	return u, nil
}

// ================== GET & UPDATE ==================

func (s *AuthService) GetUser(ctx context.Context, userID int) (*models.UserDoc, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "buscando usuario", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.KindNotFound, "User not found")
	}
	return u, nil
}

// UpdateUser aplica solo los campos presentes y devuelve el documento
// mezclado. Un body vacío no modifica nada.
func (s *AuthService) UpdateUser(ctx context.Context, userID int, data UpdateUserData) (*models.UserDoc, error) {
	update := bson.M{}
	if data.FirstName != nil {
		update["firstname"] = *data.FirstName
	}
	if data.LastName != nil {
		update["lastname"] = *data.LastName
	}
	if data.Email != nil {
		update["email"] = *data.Email
	}
	if data.Password != nil {
		update["password"] = *data.Password
	}
	if data.MobileNo != nil {
		update["mobileno"] = *data.MobileNo
	}
	if data.Location != nil {
		update["location"] = *data.Location
	}

	if len(update) == 0 {
		return s.GetUser(ctx, userID)
	}

	u, err := s.users.UpdateByID(ctx, userID, update)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "actualizando usuario", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.KindNotFound, "User not found")
	}
	return u, nil
}
