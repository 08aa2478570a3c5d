// Package chat simulates the portal's patient messaging. There is no
// transport: sending appends locally and the "patient" answers with a
// randomized canned reply after a short delay.
package chat

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sender of a message.
type Sender string

const (
	SenderDoctor  Sender = "doctor"
	SenderPatient Sender = "patient"
)

// ReplyDelay is how long the simulated patient takes to answer.
const ReplyDelay = 2 * time.Second

var ErrThreadNotFound = errors.New("thread not found")

var cannedReplies = []string{
	"Thank you doctor, I'll do that.",
	"Understood, I'll follow your advice.",
	"Got it, thanks for the clarification.",
	"I appreciate your guidance.",
	"Will do, thank you!",
}

// Message is one chat bubble.
type Message struct {
	ID     string
	Text   string
	Sender Sender
	SentAt time.Time
}

// Thread is one patient conversation.
type Thread struct {
	PatientID string
	Patient   string
	Condition string
	Unread    int
	Messages  []Message
}

// Hub is the in-memory chat state.
type Hub struct {
	mu      sync.Mutex
	threads map[string]*Thread
	now     func() time.Time
	// replyDelay and rng are injectable so tests need not wait or guess.
	replyDelay time.Duration
	pick       func(n int) int
}

type Option func(*Hub)

func WithNowTime(now func() time.Time) Option {
	return func(h *Hub) { h.now = now }
}

func WithReplyDelay(d time.Duration) Option {
	return func(h *Hub) { h.replyDelay = d }
}

// WithPick fixes the canned-reply selector.
func WithPick(pick func(n int) int) Option {
	return func(h *Hub) { h.pick = pick }
}

func NewHub(options ...Option) *Hub {
	h := &Hub{
		threads:    sampleThreads(),
		now:        time.Now,
		replyDelay: ReplyDelay,
		pick:       rand.Intn,
	}
	for _, opt := range options {
		opt(h)
	}
	return h
}

// Threads lists conversations, most recently active first.
func (h *Hub) Threads() []Thread {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Thread, 0, len(h.threads))
	for _, t := range h.threads {
		out = append(out, snapshot(t))
	}
	sort.Slice(out, func(i, j int) bool {
		return lastActivity(out[i]).After(lastActivity(out[j]))
	})
	return out
}

// SearchThreads matches patient name or condition.
func (h *Hub) SearchThreads(term string) []Thread {
	needle := strings.ToLower(term)
	var out []Thread
	for _, t := range h.Threads() {
		if strings.Contains(strings.ToLower(t.Patient), needle) ||
			strings.Contains(strings.ToLower(t.Condition), needle) {
			out = append(out, t)
		}
	}
	return out
}

// UnreadCount returns how many threads have unread messages.
func (h *Hub) UnreadCount() int {
	count := 0
	for _, t := range h.Threads() {
		if t.Unread > 0 {
			count++
		}
	}
	return count
}

// Open returns a thread and marks it read.
func (h *Hub) Open(patientID string) (Thread, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	t, ok := h.threads[patientID]
	if !ok {
		return Thread{}, errors.Wrapf(ErrThreadNotFound, "[Hub.Open] %s", patientID)
	}
	t.Unread = 0
	return snapshot(t), nil
}

// Send appends a doctor message and schedules the simulated patient reply.
// The reply lands after the configured delay unless ctx is cancelled first.
func (h *Hub) Send(ctx context.Context, patientID, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, errors.New("[Hub.Send] empty message")
	}

	h.mu.Lock()
	t, ok := h.threads[patientID]
	if !ok {
		h.mu.Unlock()
		return Message{}, errors.Wrapf(ErrThreadNotFound, "[Hub.Send] %s", patientID)
	}
	msg := Message{
		ID:     uuid.New().String(),
		Text:   text,
		Sender: SenderDoctor,
		SentAt: h.now(),
	}
	t.Messages = append(t.Messages, msg)
	h.mu.Unlock()

	go h.scheduleReply(ctx, patientID)
	return msg, nil
}

func (h *Hub) scheduleReply(ctx context.Context, patientID string) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(h.replyDelay):
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	t, ok := h.threads[patientID]
	if !ok {
		return
	}
	t.Messages = append(t.Messages, Message{
		ID:     uuid.New().String(),
		Text:   cannedReplies[h.pick(len(cannedReplies))],
		Sender: SenderPatient,
		SentAt: h.now(),
	})
	t.Unread++
}

func snapshot(t *Thread) Thread {
	out := *t
	out.Messages = make([]Message, len(t.Messages))
	copy(out.Messages, t.Messages)
	return out
}

func lastActivity(t Thread) time.Time {
	if len(t.Messages) == 0 {
		return time.Time{}
	}
	return t.Messages[len(t.Messages)-1].SentAt
}

func sampleThreads() map[string]*Thread {
	at := func(h, m int) time.Time {
		return time.Date(2024, time.February, 19, h, m, 0, 0, time.UTC)
	}
	return map[string]*Thread{
		"patient-1": {
			PatientID: "patient-1", Patient: "John Doe", Condition: "Hypertension", Unread: 2,
			Messages: []Message{
				{ID: "msg-1", Text: "Good morning doctor, my readings were 150/95 this morning.", Sender: SenderPatient, SentAt: at(8, 15)},
				{ID: "msg-2", Text: "Should I adjust my medication?", Sender: SenderPatient, SentAt: at(8, 16)},
			},
		},
		"patient-2": {
			PatientID: "patient-2", Patient: "Sarah Miller", Condition: "Diabetes Type 2", Unread: 0,
			Messages: []Message{
				{ID: "msg-3", Text: "Please keep logging your fasting glucose this week.", Sender: SenderDoctor, SentAt: at(9, 30)},
				{ID: "msg-4", Text: "Will do, thank you!", Sender: SenderPatient, SentAt: at(9, 42)},
			},
		},
		"patient-3": {
			PatientID: "patient-3", Patient: "Robert Chen", Condition: "Asthma", Unread: 1,
			Messages: []Message{
				{ID: "msg-5", Text: "I've been using the inhaler more often with the pollen this week.", Sender: SenderPatient, SentAt: at(11, 5)},
			},
		},
	}
}
