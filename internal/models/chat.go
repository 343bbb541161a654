package models

import (
	"fmt"
	"strings"
)

const (
	// SessionTitleMaxLength is the number of prompt characters kept as a session title
	SessionTitleMaxLength = 60

	// DefaultUserID is used by the chat endpoint when no authorizer claims are present
	DefaultUserID = "TEST_USER"
)

// MessageRole identifies who authored a chat message
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatSession is an item in the sessions table, keyed by userId
type ChatSession struct {
	UserID    string `json:"userId" dynamodbav:"userId"`
	SessionID string `json:"sessionId" dynamodbav:"sessionId"`
	Title     string `json:"title" dynamodbav:"title"`
	CreatedAt int64  `json:"createdAt" dynamodbav:"createdAt"`
}

// NewChatSession creates a session titled after the opening prompt
func NewChatSession(userID, sessionID, prompt string, createdAt int64) *ChatSession {
	return &ChatSession{
		UserID:    userID,
		SessionID: sessionID,
		Title:     SessionTitle(prompt),
		CreatedAt: createdAt,
	}
}

// SessionTitle returns the first SessionTitleMaxLength characters of prompt
func SessionTitle(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= SessionTitleMaxLength {
		return prompt
	}
	return string(runes[:SessionTitleMaxLength])
}

// ChatMessage is an item in the messages table, keyed by sessionId and timestamp
type ChatMessage struct {
	SessionID string      `json:"sessionId" dynamodbav:"sessionId"`
	Timestamp int64       `json:"timestamp" dynamodbav:"timestamp"`
	Role      MessageRole `json:"role" dynamodbav:"role"`
	Content   string      `json:"content" dynamodbav:"content"`
}

// NewChatMessage creates a message for a session
func NewChatMessage(sessionID string, timestamp int64, role MessageRole, content string) *ChatMessage {
	return &ChatMessage{
		SessionID: sessionID,
		Timestamp: timestamp,
		Role:      role,
		Content:   content,
	}
}

// Validate validates the message data
func (m *ChatMessage) Validate() error {
	if strings.TrimSpace(m.SessionID) == "" {
		return fmt.Errorf("session ID is required")
	}
	if m.Role != RoleUser && m.Role != RoleAssistant {
		return fmt.Errorf("invalid message role: %s", m.Role)
	}
	return nil
}

// View returns the representation sent to clients
func (m *ChatMessage) View() MessageView {
	return MessageView{
		Role:    string(m.Role),
		Message: m.Content,
	}
}

// MessageView is a message as returned by the history endpoint
type MessageView struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// PromptRequest is the body accepted by the chat endpoint
type PromptRequest struct {
	Prompt         string `json:"prompt" validate:"required"`
	SessionID      string `json:"sessionId" validate:"required"`
	IsFirstMessage bool   `json:"isFirstMessage"`
}
