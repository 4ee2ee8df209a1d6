package user

import "github.com/asotobase/backend/internal/domain"

// UpdateProfileInput holds parameters for a partial profile update.
// Nil means "leave unchanged"; a pointer to the zero value clears the field.
type UpdateProfileInput struct {
	Bio           *string
	AvatarURL     *string
	Skills        *[]string
	Interests     *[]string
	AvailableTime *int
}

// Validate validates the profile update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Bio != nil && len(*i.Bio) > 1000 {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "max 1000 characters"})
	}
	if i.AvatarURL != nil && len(*i.AvatarURL) > 2048 {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "max 2048 characters"})
	}
	if i.Skills != nil && len(*i.Skills) > 50 {
		errs = append(errs, domain.FieldError{Field: "skills", Message: "max 50 entries"})
	}
	if i.Interests != nil && len(*i.Interests) > 50 {
		errs = append(errs, domain.FieldError{Field: "interests", Message: "max 50 entries"})
	}
	if i.AvailableTime != nil && *i.AvailableTime < 0 {
		errs = append(errs, domain.FieldError{Field: "available_time", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
