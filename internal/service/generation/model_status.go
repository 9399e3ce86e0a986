package generation

import (
	"context"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

const probePrompt = "Hello"

// Model status values.
const (
	ModelOperational = "operational"
	ModelError       = "error"
)

// ModelStatus sends a short probe to the model. Probe failures are reported
// in the result, not as an error, and are not written to the call log.
func (s *Service) ModelStatus(ctx context.Context) domain.ModelStatus {
	st := domain.ModelStatus{Model: s.model.Model()}

	if _, err := s.model.Complete(ctx, probePrompt); err != nil {
		st.Status = ModelError
		st.Error = err.Error()
		return st
	}

	st.Status = ModelOperational
	st.APIWorking = true
	return st
}
