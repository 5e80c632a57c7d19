// Package scholarseeker provides the Session struct for per-conversation
// state, along with methods for handling user questions and producing
// post-processed assistant answers.
package scholarseeker

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/openai/openai-go"

	"github.com/scholar-seeker/scholarseeker/prompts"
)

// Session holds ephemeral conversation data & a reference to the shared
// completion client. One logical request is in flight at a time; the
// State's generating flag serializes interaction at the input layer.
type Session struct {
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	id string

	inUserChannel  chan string
	outUserChannel chan Message

	llm    CompletionClient
	config LLMConfig
	retry  RetryPolicy

	State *SessionState

	logger *slog.Logger
}

// NewSession constructs a session around a completion client, with
// isolated state, and starts its run loop for the streaming path.
func NewSession(ctx context.Context, config LLMConfig, client CompletionClient) *Session {
	sessionID, err := gonanoid.New()
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		ctx:            ctx,
		cancel:         cancel,
		id:             sessionID,
		inUserChannel:  make(chan string),
		outUserChannel: make(chan Message),
		llm:            client,
		config:         config,
		retry:          DefaultRetryPolicy(),
		State:          NewSessionState(),
		logger:         slog.Default(),
	}
	go s.run()
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

func (s *Session) SetRetryPolicy(policy RetryPolicy) {
	s.retry = policy
}

// In submits a user question for streaming processing. It fails when the
// session is closed or a response is already in flight.
func (s *Session) In(userMessage string) error {
	if s.ctx.Err() != nil {
		return ErrSessionClosed
	}
	if !s.State.beginTurn() {
		return ErrSessionBusy
	}
	select {
	case s.inUserChannel <- userMessage:
		return nil
	case <-s.ctx.Done():
		s.State.endTurn()
		return ErrSessionClosed
	}
}

// Out retrieves the next message from the output channel, blocking until a
// message is available. After In, callers drain Out until MessageTypeEnd.
func (s *Session) Out() Message {
	return <-s.outUserChannel
}

// Close ends the session lifecycle and releases any resources if needed.
// The input channel is never closed; run exits through the context so a
// concurrently blocked In cannot send on a closed channel.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
	})
}

// emit delivers a message to the out channel unless the session closes
// first.
func (s *Session) emit(msg Message) bool {
	select {
	case s.outUserChannel <- msg:
		return true
	case <-s.ctx.Done():
		return false
	}
}

// run is the main loop for the streaming path. It listens for user
// questions and emits partial deltas, the post-processed final text, and a
// terminating end marker for each turn.
func (s *Session) run() {
	s.logger.Info("session started", "sessionID", s.id)
	for {
		select {
		case <-s.ctx.Done():
			return
		case userMessage := <-s.inUserChannel:
			s.processTurn(userMessage)
			s.State.endTurn()
			s.emit(Message{Type: MessageTypeEnd})
		}
	}
}

// processTurn runs one streamed completion for the question and appends
// both turns to the history. Failures never escape: the user-visible text
// on any failure is the fixed apology string.
func (s *Session) processTurn(userMessage string) {
	if !s.admitQuestion(userMessage) {
		return
	}

	s.State.MessageHistory.Add(NewUserMessage(userMessage))

	stream := s.llm.NewStreaming(s.ctx, openai.ChatCompletionNewParams{
		Messages: openai.F(s.State.MessageHistory.Params(prompts.SystemPrompt)),
		Model:    openai.F(s.config.Model),
	})
	defer stream.Close()

	var assembled strings.Builder
	var citations []string
	for stream.Next() {
		chunk := stream.Current()
		if c := ExtractChunkCitations(chunk); len(c) > 0 {
			citations = c
		}
		if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
			assembled.WriteString(chunk.Choices[0].Delta.Content)
			if !s.emit(Message{
				Content: chunk.Choices[0].Delta.Content,
				Type:    MessageTypePartialText,
			}) {
				return
			}
		}
	}

	if err := stream.Err(); err != nil {
		// Salvage whatever arrived before the transport failed: the
		// partial text stays in the history as a degraded turn and the
		// session remains usable.
		s.logger.Error("stream interrupted", "sessionID", s.id, "received", assembled.Len(), "error", err)
		if assembled.Len() > 0 {
			s.State.MessageHistory.Add(NewAssistantMessage(assembled.String()))
		}
		s.emit(Message{Content: prompts.Apology, Type: MessageTypeError})
		return
	}

	if assembled.Len() == 0 {
		s.logger.Error("completion finished without content", "sessionID", s.id)
		s.emit(Message{Content: prompts.Apology, Type: MessageTypeError})
		return
	}

	// URLs first, so the hrefs of the citation anchors inserted next are
	// not wrapped again.
	final := LinkifyCitations(LinkifyURLs(assembled.String()), citations)
	s.State.LastCitations = citations
	s.State.MessageHistory.Add(NewAssistantMessage(final))

	s.emit(Message{Content: final, Type: MessageTypeFinalText, Citations: citations})
}

// Ask is the blocking, non-streaming path: one user turn in, the final
// post-processed text and its citation list out. On failure the returned
// text is the fixed apology and the error reports what went wrong; the
// session stays usable either way.
func (s *Session) Ask(ctx context.Context, question string) (string, []string, error) {
	if s.ctx.Err() != nil {
		return "", nil, ErrSessionClosed
	}
	if !s.State.beginTurn() {
		return "", nil, ErrSessionBusy
	}
	defer s.State.endTurn()

	if s.config.GuardModel != "" {
		related, err := AssessQuery(ctx, s.llm, s.config.GuardModel, question)
		if err != nil {
			s.logger.Warn("topic guard unavailable, admitting question", "sessionID", s.id, "error", err)
		} else if !related {
			s.State.MessageHistory.Add(NewUserMessage(question), NewAssistantMessage(prompts.RejectionLine))
			return prompts.RejectionLine, nil, nil
		}
	}

	s.State.MessageHistory.Add(NewUserMessage(question))

	completion, err := CompleteWithRetry(ctx, s.llm, openai.ChatCompletionNewParams{
		Messages: openai.F(s.State.MessageHistory.Params(prompts.SystemPrompt)),
		Model:    openai.F(s.config.Model),
	}, s.retry)
	if err != nil {
		s.logger.Error("completion failed", "sessionID", s.id, "error", err)
		return prompts.Apology, nil, err
	}

	content, ok := ExtractMessageContent(completion)
	if !ok {
		s.logger.Error("completion response missing message content", "sessionID", s.id)
		return prompts.Apology, nil, ErrMalformedResponse
	}

	citations := ExtractCitations(completion)
	final := LinkifyCitations(LinkifyURLs(content), citations)
	s.State.LastCitations = citations
	s.State.MessageHistory.Add(NewAssistantMessage(final))
	return final, citations, nil
}

// admitQuestion applies the topic guard for the streaming path. A rejected
// question becomes a canned assistant turn without calling the main model.
// Guard failures admit the question.
func (s *Session) admitQuestion(userMessage string) bool {
	if s.config.GuardModel == "" {
		return true
	}
	related, err := AssessQuery(s.ctx, s.llm, s.config.GuardModel, userMessage)
	if err != nil {
		s.logger.Warn("topic guard unavailable, admitting question", "sessionID", s.id, "error", err)
		return true
	}
	if related {
		return true
	}
	s.State.MessageHistory.Add(NewUserMessage(userMessage), NewAssistantMessage(prompts.RejectionLine))
	s.emit(Message{Content: prompts.RejectionLine, Type: MessageTypeFinalText})
	return false
}
