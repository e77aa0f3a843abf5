package service

import (
	"context"
	"errors"
	"strings"

	"github.com/resepkita/go-resep-backend/internal/chat/llm"
)

// ErrEmptyMessage is reported before any provider call.
var ErrEmptyMessage = errors.New("message cannot be empty")

const chefBotSystemPrompt = "Kamu adalah 'Chef Bot', asisten koki virtual yang cerdas, ramah, dan sangat ahli " +
	"dalam dunia kuliner untuk aplikasi SaaS berbagi resep masakan. " +
	"TUGAS UTAMAMU: Membantu pengguna mencari ide masakan, memodifikasi takaran bahan, " +
	"menyarankan bahan pengganti, dan memberikan tips memasak, serta menjawab cara pakai aplikasi ini. " +
	"ATURAN KETAT: Kamu HANYA boleh merespons topik makanan, dapur, dan aplikasi ini. " +
	"Jika di luar topik, tolak dengan sopan ('Maaf, keahlian saya hanya berkutat di dapur!'). " +
	"Gunakan bahasa Indonesia yang santai, antusias, dan berikan jawaban ringkas terstruktur."

// historyWindow caps how many prior turns are forwarded to the provider.
const historyWindow = 10

// Completer generates a reply for an assembled conversation.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// Turn is one caller-supplied entry of the ephemeral conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatService assembles the bounded Chef Bot conversation and relays it.
type ChatService struct {
	llm Completer
}

func New(completer Completer) *ChatService {
	return &ChatService{llm: completer}
}

// Reply builds the provider request from the fixed persona, the most recent
// well-formed history turns and the new message, and returns the reply.
func (s *ChatService) Reply(ctx context.Context, message string, history []Turn) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	messages := make([]llm.Message, 0, historyWindow+2)
	messages = append(messages, llm.Message{Role: "system", Content: chefBotSystemPrompt})

	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}
	for _, t := range history[start:] {
		if (t.Role == "user" || t.Role == "assistant") && t.Content != "" {
			messages = append(messages, llm.Message{Role: t.Role, Content: t.Content})
		}
	}

	messages = append(messages, llm.Message{Role: "user", Content: message})

	return s.llm.Complete(ctx, messages)
}
