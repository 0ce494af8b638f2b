package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akangshyya/image-descriptor/internal/models"
)

// ValidateAnalysis performs consistency checks on an incoming analysis result
// before it is handed to the narration controller.
func ValidateAnalysis(a *models.AnalysisResult, known []models.Language) error {
	if a == nil {
		return errors.New("missing analysis result")
	}

	if len(a.Captions) == 0 {
		return errors.New("analysis result has no captions")
	}

	ids := make(map[string]bool, len(known))
	for _, l := range known {
		ids[l.ID] = true
	}

	for langID, caption := range a.Captions {
		if !ids[langID] {
			return fmt.Errorf("caption for unsupported language %q", langID)
		}
		if strings.TrimSpace(caption.Text) == "" {
			return fmt.Errorf("caption for %s has empty text", langID)
		}
	}

	return nil
}
