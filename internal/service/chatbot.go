package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/model"
)

const (
	chatbotExpiringWindow = 7 * 24 * time.Hour
	// summaryLimit caps the number of items included in a generative prompt.
	summaryLimit = 50
)

const chatbotHelp = "I can answer questions about your pantry. Try: " +
	"\"what has expired?\", \"what expires soon?\", \"what is running low?\" " +
	"or \"how many eggs do I have?\"."

const chatbotFallback = "Sorry, I can only answer questions about expired, " +
	"expiring and low-stock items right now. Type \"help\" to see examples."

var quantityPrefixes = []string{"how many ", "do i have "}

// Chatbot answers inventory questions with keyword rules and forwards
// everything else to an optional generator.
type Chatbot struct {
	inventory *Inventory
	generator model.Generator
	threshold float64
	logger    *logger.Logger
}

// NewChatbot creates a chatbot. generator may be nil.
func NewChatbot(inventory *Inventory, generator model.Generator, threshold float64, logger *logger.Logger) *Chatbot {
	return &Chatbot{
		inventory: inventory,
		generator: generator,
		threshold: threshold,
		logger:    logger,
	}
}

func (s *Chatbot) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message is required", model.ErrInvalidArgument)
	}

	lower := strings.ToLower(message)
	switch {
	case lower == "help" || strings.HasPrefix(lower, "help "):
		return chatbotHelp, nil
	case strings.Contains(lower, "expired"):
		items, err := s.inventory.Expired(ctx)
		if err != nil {
			return "", err
		}
		return listReply("Expired items", "Nothing in your pantry has expired.", items), nil
	case strings.Contains(lower, "expir") || strings.Contains(lower, "soon"):
		items, err := s.inventory.Expiring(ctx, chatbotExpiringWindow)
		if err != nil {
			return "", err
		}
		return listReply("Expiring within 7 days", "Nothing expires in the next 7 days.", items), nil
	case strings.Contains(lower, "low stock") || strings.Contains(lower, "running low"):
		items, err := s.inventory.LowStock(ctx, s.threshold)
		if err != nil {
			return "", err
		}
		return listReply("Running low", "Nothing is running low.", items), nil
	}

	if name, ok := quantitySubject(lower); ok {
		return s.quantityReply(ctx, name)
	}

	if s.generator == nil {
		return chatbotFallback, nil
	}
	return s.generate(ctx, message)
}

func (s *Chatbot) quantityReply(ctx context.Context, name string) (string, error) {
	items, err := s.inventory.items.FindByName(ctx, name)
	if err != nil {
		return "", s.inventory.storeError("find items by name", err)
	}
	if len(items) == 0 {
		return fmt.Sprintf("You don't have any %s.", name), nil
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, formatItem(item))
	}
	return "You have " + strings.Join(parts, ", ") + ".", nil
}

func (s *Chatbot) generate(ctx context.Context, message string) (string, error) {
	items, err := s.inventory.List(ctx, model.InventoryFilter{})
	if err != nil {
		return "", err
	}

	reply, err := s.generator.Generate(ctx, buildPrompt(message, items))
	if err != nil {
		s.logger.Error("Chatbot service: generator failed", "error", err.Error())
		if errors.Is(err, model.ErrUpstream) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", model.ErrUpstream, err)
	}
	return reply, nil
}

// quantitySubject extracts the item name from "how many X" and
// "do i have X" questions.
func quantitySubject(lower string) (string, bool) {
	for _, prefix := range quantityPrefixes {
		idx := strings.Index(lower, prefix)
		if idx < 0 {
			continue
		}
		name := lower[idx+len(prefix):]
		name = strings.TrimRight(name, "?!. ")
		name = strings.TrimSuffix(name, " do i have")
		name = strings.TrimSpace(strings.TrimPrefix(name, "any "))
		if name != "" {
			return name, true
		}
	}
	return "", false
}

func buildPrompt(message string, items []model.InventoryItem) string {
	var b strings.Builder
	b.WriteString("You are a helpful household pantry assistant. ")
	b.WriteString("The user's current inventory is:\n")
	if len(items) == 0 {
		b.WriteString("(empty)\n")
	}
	for i, item := range items {
		if i == summaryLimit {
			fmt.Fprintf(&b, "...and %d more items\n", len(items)-summaryLimit)
			break
		}
		b.WriteString("- ")
		b.WriteString(formatItem(item))
		if item.ExpiryDate != nil {
			b.WriteString(", expires ")
			b.WriteString(item.ExpiryDate.Format(time.DateOnly))
		}
		b.WriteString("\n")
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(message)
	return b.String()
}

func listReply(title, empty string, items []model.InventoryItem) string {
	if len(items) == 0 {
		return empty
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, formatItem(item))
	}
	return title + ": " + strings.Join(parts, ", ") + "."
}

func formatItem(item model.InventoryItem) string {
	return item.Name + " (" + strconv.FormatFloat(item.Quantity, 'f', -1, 64) + " " + string(item.Unit) + ")"
}
