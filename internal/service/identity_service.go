package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/pazarlabs/pazar/config"
	"github.com/pazarlabs/pazar/internal/domain"
	"github.com/pazarlabs/pazar/internal/dto"
	"github.com/pazarlabs/pazar/internal/repository"
	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/pazarlabs/pazar/pkg/mailer"
	"github.com/pazarlabs/pazar/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

type IdentityServiceImpl struct {
	repo          repository.UserRepository
	config        config.Config
	kafkaProducer *kafka.Conn
	mailer        mailer.Mailer
}

func CreateNewIdentityService(repo repository.UserRepository, config config.Config, kafkaProducer *kafka.Conn, mailer mailer.Mailer) IdentityService {
	return &IdentityServiceImpl{repo: repo, config: config, kafkaProducer: kafkaProducer, mailer: mailer}
}

func (s *IdentityServiceImpl) Register(ctx context.Context, data dto.UserRequest) (err error) {
	username := strings.TrimSpace(data.Username)
	email := strings.TrimSpace(data.Email)
	password := strings.TrimSpace(data.Password)

	if username == "" || email == "" || password == "" {
		return errs.ErrMissingRegisterFields
	}

	// Duplicate check covers email and username; the error does not reveal
	// which of the two collided.
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return
	}
	if user.ID != 0 {
		return errs.ErrUserAlreadyExists
	}

	user, err = s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return
	}
	if user.ID != 0 {
		return errs.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return errs.ErrInternalServer
	}

	userEnt := domain.User{
		Username:       username,
		Email:          email,
		HashedPassword: string(hash),
		ExternalID:     ulid.Make().String(),
	}

	id, err := s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return err
	}

	s.publishEvent("user_registered", dto.UserResponse{
		ID:         id,
		ExternalID: userEnt.ExternalID,
		Username:   username,
		Email:      email,
	})

	go func() {
		if err := s.mailer.SendWelcomeEmail(email, username); err != nil {
			log.Error().Err(err).Str("component", "Register").Msg("failed to send welcome email")
		}
	}()

	return nil
}

func (s *IdentityServiceImpl) Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return respPayload, errs.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return respPayload, errs.ErrInvalidCredentials
	}

	token, err := utils.CreateJWTToken(user.ID, user.Username, user.ExternalID, s.config.JWTSecret, s.config.JWTKid)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.UserID = user.ID

	return
}

// ResolvePrincipal rejects ids that no longer map to a stored user, so stale
// or forged session ids never yield a principal.
func (s *IdentityServiceImpl) ResolvePrincipal(ctx context.Context, id int64) (principal domain.User, err error) {
	principal, err = s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	if principal.ID == 0 {
		return principal, errs.ErrNotLoggedIn
	}

	return
}

func (s *IdentityServiceImpl) publishEvent(eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	msg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	if _, err := s.kafkaProducer.WriteMessages(kafka.Message{Value: msg}); err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
	}
}
