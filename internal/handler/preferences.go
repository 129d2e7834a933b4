package handler

import (
	"context"
	"errors"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/handler/gen"
)

// GetPreferences handles GET /preferences.
func (s *Server) GetPreferences(ctx context.Context, _ gen.GetPreferencesRequestObject) (gen.GetPreferencesResponseObject, error) {
	p := s.prefs.Get(ctx)
	return gen.GetPreferences200JSONResponse{Theme: gen.PreferencesTheme(p.Theme)}, nil
}

// UpdatePreferences handles PUT /preferences.
func (s *Server) UpdatePreferences(ctx context.Context, req gen.UpdatePreferencesRequestObject) (gen.UpdatePreferencesResponseObject, error) {
	if req.Body == nil {
		return gen.UpdatePreferences422JSONResponse(requestBody("request body is required")), nil
	}

	saved, err := s.prefs.Update(ctx, domain.Preferences{Theme: domain.Theme(req.Body.Theme)})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdatePreferences422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.UpdatePreferences200JSONResponse{Theme: gen.PreferencesTheme(saved.Theme)}, nil
}
