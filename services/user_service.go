package services

import (
	"context"
	"errors"
	"regexp"

	"foodgram-api/models"
	"foodgram-api/repositories"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.UserView, error)
	List(ctx context.Context, viewer models.Actor, params models.PageParams) (*models.Page[models.UserView], error)
	Get(ctx context.Context, viewer models.Actor, id uint) (*models.UserView, error)
	Me(ctx context.Context, actor models.Actor) (*models.UserView, error)
}

type userService struct {
	userRepo repositories.UserRepository
	views    *projector
	pageSize int
}

func NewUserService(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, pageSize int) UserService {
	return &userService{
		userRepo: userRepo,
		views:    &projector{follows: followRepo},
		pageSize: pageSize,
	}
}

func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserView, error) {
	if !usernamePattern.MatchString(req.Username) {
		return nil, models.NewValidationError("username", "username may contain only letters, digits and @/./+/-/_")
	}
	if req.Username == "me" {
		return nil, models.NewValidationError("username", `username "me" is reserved`)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, models.NewValidationError("password", "password is too long")
	}
	if err != nil {
		return nil, &models.ErrorInternalServer{Inner: err}
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		var conflict *models.ErrorConflict
		if errors.As(err, &conflict) {
			return nil, &models.ErrorConflict{Message: "a user with that username or email already exists"}
		}
		return nil, err
	}

	log.Debug().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	view := plainUserView(*user, false)
	return &view, nil
}

func (s *userService) List(ctx context.Context, viewer models.Actor, params models.PageParams) (*models.Page[models.UserView], error) {
	page, limit := normalizePage(params.Page, params.Limit, s.pageSize)
	users, total, err := s.userRepo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	result := &models.Page[models.UserView]{
		Items: make([]models.UserView, 0, len(users)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for _, user := range users {
		view, err := s.views.userView(ctx, viewer, user)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, view)
	}
	return result, nil
}

func (s *userService) Get(ctx context.Context, viewer models.Actor, id uint) (*models.UserView, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view, err := s.views.userView(ctx, viewer, *user)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *userService) Me(ctx context.Context, actor models.Actor) (*models.UserView, error) {
	if actor.IsAnonymous() {
		return nil, &models.ErrorUnauthorized{}
	}

	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	view := plainUserView(*user, false)
	return &view, nil
}
