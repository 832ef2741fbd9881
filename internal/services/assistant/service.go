package assistant

import (
	"context"
	"strings"

	"securereport/internal/ports"
)

// Placeholder service; wire to a hosted language model later. The report
// core never calls this.
type Service struct{}

func New() *Service { return &Service{} }

func (s *Service) Reply(_ context.Context, messages []ports.ChatMessage) (string, error) {
	last := ""
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			last = strings.TrimSpace(messages[i].Content)
			break
		}
	}
	if last == "" {
		return "¿En qué puedo ayudarte con tu reporte?", nil
	}
	return "Gracias por tu mensaje. Un reporte pasa por los estados pending, in_review, approved o rejected y finalmente resolved.", nil
}
