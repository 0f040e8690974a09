package service

import (
	"context"
	"errors"

	profileerrors "venuehub/internal/profiles/errors"
	"venuehub/internal/profiles/repository"
	"venuehub/internal/profiles/validator"
	"venuehub/pkg/auth"
	"venuehub/pkg/config"
	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/events"
	"venuehub/pkg/model"
	"venuehub/pkg/sanitizer"
	"venuehub/pkg/validation"

	"go.mongodb.org/mongo-driver/bson"
)

type ProfileService interface {
	// Get returns the caller's profile, creating it from the identity claims
	// on first access.
	Get(ctx context.Context, user *auth.Identity) (*model.Profile, error)
	Update(ctx context.Context, user *auth.Identity, update *model.ProfileUpdate) (*model.Profile, error)
}

type profileService struct {
	repo      repository.ProfileRepository
	validator *validator.ProfileValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewProfileService(
	repo repository.ProfileRepository,
	validator *validator.ProfileValidator,
	publisher events.Publisher,
	cfg *config.Config,
) ProfileService {
	return &profileService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *profileService) Get(ctx context.Context, user *auth.Identity) (*model.Profile, error) {
	if user == nil || user.UserID == "" {
		return nil, apperrors.Unauthorized("Authentication required")
	}

	profile, err := s.repo.FindByID(ctx, user.UserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, profileerrors.ErrNotFound) {
		s.cfg.Log.Error("Failed to get profile", "user_id", user.UserID, "error", err)
		return nil, apperrors.Internal("Failed to load profile", err)
	}

	return s.create(ctx, user)
}

func (s *profileService) create(ctx context.Context, user *auth.Identity) (*model.Profile, error) {
	profile := &model.Profile{
		ID:       user.UserID,
		FullName: sanitizer.NormalizeName(user.FullName),
		Email:    sanitizer.NormalizeEmail(user.Email),
	}
	if err := s.validator.ValidateProfile(profile); err != nil {
		// Claims the profile rules reject are left for the user to fix.
		s.cfg.Log.Warn("Identity claims failed profile validation", "user_id", user.UserID, "error", err)
		profile.FullName = ""
		if s.validator.ValidateProfile(profile) != nil {
			profile.Email = ""
		}
	}

	err := s.repo.Create(ctx, profile)
	if errors.Is(err, profileerrors.ErrAlreadyExists) {
		// Lost a race with a concurrent first request.
		profile, err = s.repo.FindByID(ctx, user.UserID)
	}
	if err != nil {
		s.cfg.Log.Error("Failed to create profile", "user_id", user.UserID, "error", err)
		return nil, apperrors.Internal("Failed to load profile", err)
	}

	s.cfg.Log.Info("Profile created", "user_id", user.UserID)
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, user *auth.Identity, update *model.ProfileUpdate) (*model.Profile, error) {
	if _, err := s.Get(ctx, user); err != nil {
		return nil, err
	}

	sanitizeUpdate(update)
	if err := s.validator.ValidateUpdate(update); err != nil {
		s.cfg.Log.Warn("Profile update validation failed", "user_id", user.UserID, "error", err)
		return nil, validation.AppError("Profile validation failed", err)
	}

	fields, names := updateFields(update)
	if len(fields) == 0 {
		return nil, apperrors.InvalidInput("No fields to update")
	}

	profile, err := s.repo.Update(ctx, user.UserID, fields)
	if err != nil {
		if errors.Is(err, profileerrors.ErrNotFound) {
			return nil, apperrors.NotFound("Profile")
		}
		s.cfg.Log.Error("Failed to update profile", "user_id", user.UserID, "error", err)
		return nil, apperrors.Internal("Failed to update profile", err)
	}

	s.cfg.Log.Info("Profile updated", "user_id", user.UserID, "fields", names)

	events.Emit(ctx, s.publisher, s.cfg.Log, events.Event{
		Type:   events.TypeProfileUpdated,
		UserID: user.UserID,
		Payload: events.ProfileUpdated{
			UserID: user.UserID,
			Fields: names,
		},
	})
	return profile, nil
}

func sanitizeUpdate(u *model.ProfileUpdate) {
	if u.FullName != nil {
		name := sanitizer.NormalizeName(*u.FullName)
		u.FullName = &name
	}
	if u.Phone != nil {
		phone := sanitizer.NormalizePhone(*u.Phone)
		u.Phone = &phone
	}
	if u.AvatarURL != nil {
		avatar := sanitizer.NormalizeURL(*u.AvatarURL)
		u.AvatarURL = &avatar
	}
}

func updateFields(u *model.ProfileUpdate) (bson.M, []string) {
	fields := bson.M{}
	var names []string
	if u.FullName != nil {
		fields["full_name"] = *u.FullName
		names = append(names, "full_name")
	}
	if u.Phone != nil {
		fields["phone"] = *u.Phone
		names = append(names, "phone")
	}
	if u.AvatarURL != nil {
		fields["avatar_url"] = *u.AvatarURL
		names = append(names, "avatar_url")
	}
	return fields, names
}
